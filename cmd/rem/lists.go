package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sandeepkv93/rem/internal/storage"
	"github.com/sandeepkv93/rem/internal/views"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newListsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "lists",
		Short: "Print reminder lists with their open counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := a.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer repo.Close()

			lists, err := repo.ListLists(cmd.Context())
			if err != nil {
				return err
			}
			rows := make([]views.ListRowData, 0, len(lists))
			for _, l := range lists {
				rows = append(rows, views.ListRowData{Name: l.Name, Color: l.Color, Count: l.Open})
			}
			fmt.Fprintln(cmd.OutOrStdout(), views.RenderListsPanel(views.ListsPanelData{Rows: rows}))
			return nil
		},
	}
}

func newAddListCmd(a *app) *cobra.Command {
	var color string
	cmd := &cobra.Command{
		Use:   "add-list NAME",
		Short: "Create a reminder list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.TrimSpace(args[0])
			if name == "" {
				return errors.New("list name is required")
			}
			repo, err := a.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer repo.Close()

			list := storage.List{
				ID:        uuid.NewString(),
				Name:      name,
				Color:     color,
				CreatedAt: time.Now(),
			}
			if err := repo.CreateList(cmd.Context(), list); err != nil {
				return fmt.Errorf("create list %q: %w", name, err)
			}
			a.logger.Info("list created", zap.String("id", list.ID), zap.String("name", name))
			fmt.Fprintf(cmd.OutOrStdout(), "created list %s (%s)\n", name, list.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&color, "color", "", "list colour as #RRGGBB")
	return cmd
}
