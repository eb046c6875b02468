package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type ListRowData struct {
	Name     string
	Color    string
	Count    uint32
	Selected bool
}

type ListsPanelData struct {
	Rows []ListRowData
}

type ReminderRowData struct {
	Title     string
	Notes     string
	DueDate   string
	ListName  string
	Priority  uint8
	Completed bool
	Selected  bool
}

type RemindersPanelData struct {
	Title         string
	Rows          []ReminderRowData
	SearchView    string
	Query         string
	ShowCompleted bool
	HiddenCount   int
}

type DetailPanelData struct {
	Title        string
	ListName     string
	Priority     uint8
	DueDate      string
	Completed    bool
	NotesPreview string
}

type FormFieldData struct {
	Label   string
	Value   string
	Focused bool
}

type FormPanelData struct {
	Fields    []FormFieldData
	ListColor string
	Valid     bool
}

type HelpPanelData struct {
	Context  string
	HelpView string
}

func RenderListsPanel(data ListsPanelData) string {
	var b strings.Builder
	b.WriteString(nameStyle.Render("Your Reminder Lists") + "\n\n")
	if len(data.Rows) == 0 {
		b.WriteString(emptyStyle.Render("No reminder lists found") + "\n")
		b.WriteString(mutedStyle.Render("press [c] after creating a list, or [q] to quit"))
		return b.String()
	}
	for i, row := range data.Rows {
		name := nameStyle.Render(row.Name)
		if row.Selected {
			name = selectedStyle.Render(row.Name)
		}
		dot := lipgloss.NewStyle().Bold(true).Foreground(ListColor(row.Color)).Render("●")
		b.WriteString(fmt.Sprintf("%s%s  %s\n", cursor(row.Selected), dot, name))
		b.WriteString("    " + mutedStyle.Render(CountText(row.Count)))
		if i < len(data.Rows)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// CountText renders the number of open reminders in a list.
func CountText(count uint32) string {
	switch count {
	case 0:
		return "Empty"
	case 1:
		return "1 reminder"
	default:
		return fmt.Sprintf("%d reminders", count)
	}
}

func RenderRemindersPanel(data RemindersPanelData) string {
	var b strings.Builder
	b.WriteString(nameStyle.Render(data.Title) + "\n")
	if data.SearchView != "" {
		b.WriteString(data.SearchView + "\n")
	} else if data.Query != "" {
		b.WriteString(mutedStyle.Render(fmt.Sprintf("filter: %q", data.Query)) + "\n")
	}
	if !data.ShowCompleted && data.HiddenCount > 0 {
		b.WriteString(mutedStyle.Render(fmt.Sprintf("%d completed hidden [h]", data.HiddenCount)) + "\n")
	}
	b.WriteString("\n")
	if len(data.Rows) == 0 {
		b.WriteString(emptyStyle.Render("No reminders here") + "\n")
		b.WriteString(mutedStyle.Render("press [q] to go back"))
		return b.String()
	}
	for _, row := range data.Rows {
		box := mutedStyle.Render("☐")
		title := row.Title
		if row.Completed {
			box = checkStyle.Render("☑")
			title = doneStyle.Render(row.Title)
		} else if row.Selected {
			title = selectedStyle.Render(row.Title)
		}
		line := fmt.Sprintf("%s%s  %s", cursor(row.Selected), box, title)
		if row.Priority > 0 {
			line += " " + priorityBadge(row.Priority)
		}
		if row.ListName != "" {
			line += " " + mutedStyle.Render("["+row.ListName+"]")
		}
		b.WriteString(line + "\n")
		if row.DueDate != "" {
			b.WriteString("      " + mutedStyle.Render("due "+row.DueDate) + "\n")
		}
		if row.Notes != "" {
			b.WriteString("      " + mutedStyle.Render(firstLine(row.Notes)) + "\n")
		}
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func RenderDetailPanel(data DetailPanelData) string {
	if strings.TrimSpace(data.Title) == "" {
		return "details:\n(no selection)"
	}
	state := "open"
	if data.Completed {
		state = "completed"
	}
	var b strings.Builder
	b.WriteString("details:\n")
	b.WriteString(fmt.Sprintf("title: %s\n", data.Title))
	if data.ListName != "" {
		b.WriteString(fmt.Sprintf("list: %s\n", data.ListName))
	}
	b.WriteString(fmt.Sprintf("state: %s\n", state))
	b.WriteString(fmt.Sprintf("priority: %d\n", data.Priority))
	if data.DueDate != "" {
		b.WriteString(fmt.Sprintf("due: %s\n", data.DueDate))
	}
	if data.NotesPreview != "" {
		b.WriteString("\nnotes:\n" + data.NotesPreview)
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func RenderFormPanel(data FormPanelData) string {
	var b strings.Builder
	b.WriteString(nameStyle.Render("New Reminder") + "\n\n")
	for _, f := range data.Fields {
		label := mutedStyle.Render(fmt.Sprintf("%-9s", f.Label))
		if f.Focused {
			label = cursorStyle.Render(fmt.Sprintf("%-9s", f.Label))
		}
		value := f.Value
		if f.Label == "List" {
			value = lipgloss.NewStyle().Foreground(ListColor(data.ListColor)).Render("●") + " " + value
		}
		b.WriteString(fmt.Sprintf("%s%s %s\n", cursor(f.Focused), label, value))
	}
	if !data.Valid {
		b.WriteString("\n" + mutedStyle.Render("title is required"))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func RenderHelpPanel(data HelpPanelData) string {
	return fmt.Sprintf("%s:\n%s", strings.ToLower(data.Context), data.HelpView)
}

func RenderLoading(spinnerView, message string) string {
	if message == "" {
		return ""
	}
	return fmt.Sprintf("%s %s", spinnerView, message)
}

func cursor(selected bool) string {
	if selected {
		return cursorStyle.Render("▶ ")
	}
	return "  "
}

func priorityBadge(p uint8) string {
	switch {
	case p >= 7:
		return errorStyle.Render(fmt.Sprintf("!%d", p))
	case p >= 4:
		return emptyStyle.Render(fmt.Sprintf("!%d", p))
	default:
		return statusStyle.Render(fmt.Sprintf("!%d", p))
	}
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i] + " …"
	}
	return s
}
