package update

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/sandeepkv93/rem/internal/input"
	"github.com/sandeepkv93/rem/internal/views"
)

type helpKeyMap struct {
	short []key.Binding
	full  [][]key.Binding
}

func (k helpKeyMap) ShortHelp() []key.Binding  { return k.short }
func (k helpKeyMap) FullHelp() [][]key.Binding { return k.full }

func (m Model) contextHelp() helpKeyMap {
	bindings := m.Keys.ShortHelp(m.InputContext())
	return helpKeyMap{short: bindings, full: [][]key.Binding{bindings}}
}

func (m Model) renderHelpFooter() string {
	return m.helpModel.View(m.contextHelp())
}

// renderFullHelp is the long form of the footer, one row per binding.
func (m Model) renderFullHelp() string {
	hm := m.helpModel
	hm.ShowAll = true
	return views.RenderHelpPanel(views.HelpPanelData{
		Context:  contextTitle(m.InputContext()),
		HelpView: hm.View(m.contextHelp()),
	})
}

func contextTitle(ctx input.Context) string {
	switch ctx {
	case input.Search:
		return "Search"
	case input.FormText, input.FormChoice:
		return "New Reminder"
	case input.Reminders:
		return "Reminders"
	default:
		return "Lists"
	}
}
