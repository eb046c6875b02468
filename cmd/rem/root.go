package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/sandeepkv93/rem/internal/config"
	"github.com/sandeepkv93/rem/internal/host"
	"github.com/sandeepkv93/rem/internal/model"
	"github.com/sandeepkv93/rem/internal/session"
	"github.com/sandeepkv93/rem/internal/storage"
	"github.com/sandeepkv93/rem/internal/update"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const defaultListName = "Reminders"

// app holds what every command needs once flags and config are resolved.
type app struct {
	cfgFile string
	cfg     config.Config
	logger  *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}
	root := &cobra.Command{
		Use:           "rem",
		Short:         "Reminders in the terminal",
		Long:          `rem browses reminder lists, toggles, deletes and creates reminders, and searches across lists from a keyboard-driven terminal UI.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runUI(cmd.Context())
		},
	}

	root.PersistentFlags().StringVarP(&a.cfgFile, "config", "c", "", "config file (default: <data dir>/rem.yaml)")
	root.PersistentFlags().String("db", "", "path to the reminder database")
	root.PersistentFlags().String("log-file", "", "file to write logs to")
	root.PersistentFlags().Bool("debug", false, "log at debug level")

	root.AddCommand(newListsCmd(a), newAddListCmd(a))
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(viper.New(), cmd.Flags(), a.cfgFile, config.DataDir())
	if err != nil {
		return err
	}
	if err := cfg.EnsureDirs(); err != nil {
		return err
	}
	a.cfg = cfg

	logger, err := newLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.logger = logger
	return nil
}

// newLogger writes to the log file since the terminal belongs to the UI.
func newLogger(cfg config.Config) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if cfg.Debug {
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	zc.OutputPaths = []string{cfg.LogFile}
	zc.ErrorOutputPaths = []string{cfg.LogFile}
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return zc.Build()
}

func (a *app) openStore(ctx context.Context) (*storage.SQLiteRepository, error) {
	repo, err := storage.OpenSQLite(a.cfg.DB)
	if err != nil {
		return nil, err
	}
	if err := storage.MigrateUp(repo.DB()); err != nil {
		_ = repo.Close()
		return nil, err
	}
	if err := ensureDefaultList(ctx, repo); err != nil {
		_ = repo.Close()
		return nil, err
	}
	return repo, nil
}

// ensureDefaultList seeds an empty store with one list so that reminders
// can be created straight away.
func ensureDefaultList(ctx context.Context, repo storage.Repository) error {
	lists, err := repo.ListLists(ctx)
	if err != nil {
		return err
	}
	if len(lists) > 0 {
		return nil
	}
	return repo.CreateList(ctx, storage.List{
		ID:        uuid.NewString(),
		Name:      defaultListName,
		CreatedAt: time.Now(),
	})
}

func (a *app) runUI(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM)
	defer stop()

	repo, err := a.openStore(ctx)
	if err != nil {
		return err
	}
	defer repo.Close()

	engineCfg := update.RuntimeConfigFromEnv(update.DefaultRuntimeConfig())
	a.logger.Info("starting",
		zap.String("db", a.cfg.DB),
		zap.Duration("chord_window", engineCfg.ChordWindow),
		zap.Duration("tick", engineCfg.TickInterval))

	driver := host.NewDriver(repo, host.WithLogger(a.logger))
	err = driver.Run(ctx, func(lists []model.ReminderList) (host.UI, []model.Action, error) {
		s, actions, err := session.Start(lists,
			session.WithInput(os.Stdin),
			session.WithLogger(a.logger),
			session.WithConfig(engineCfg))
		if err != nil {
			return nil, nil, err
		}
		return s, actions, nil
	})
	if err != nil {
		a.logger.Error("exited with error", zap.Error(err))
	}
	return err
}
