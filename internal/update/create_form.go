package update

import (
	"errors"
	"fmt"

	"github.com/sandeepkv93/rem/internal/form"
	"github.com/sandeepkv93/rem/internal/input"
	"github.com/sandeepkv93/rem/internal/model"
	"github.com/sandeepkv93/rem/internal/views"
)

// openForm enters CreateForm from the current view. Without any list to
// file the reminder under, the form is not opened.
func (m Model) openForm(preselectID string) Model {
	if len(m.Lists) == 0 {
		m.Status = StatusBar{Text: "no lists available to add a reminder to", IsError: true}
		return m
	}
	m.Form = form.New(m.Lists, preselectID)
	m.Current = CreateFormView(m.Current)
	m.Chord = input.ChordState{}
	m.Status = StatusBar{Text: "new reminder"}
	return m
}

func (m Model) closeForm() Model {
	ret := ListsView()
	if m.Current.Return != nil {
		ret = *m.Current.Return
	}
	m.Current = ret
	m.Form = nil
	return m
}

func (m Model) handleFormCommand(cmd input.Command) Model {
	if m.Form == nil {
		return m.closeForm()
	}
	switch cmd.Type {
	case input.CmdFormNext:
		m.Form.AdvanceField()
	case input.CmdFormPrev:
		m.Form.RetreatField()
	case input.CmdInputChar:
		m.Form.InputChar(cmd.Char)
	case input.CmdBackspace:
		m.Form.Backspace()
	case input.CmdStepUp:
		m.Form.StepUp()
	case input.CmdStepDown:
		m.Form.StepDown()
	case input.CmdSubmit:
		nr, err := m.Form.Submit()
		if err != nil {
			text := err.Error()
			if errors.Is(err, form.ErrInvalid) {
				text = "title is required"
			}
			m.Status = StatusBar{Text: text, IsError: true}
			return m
		}
		m = m.closeForm()
		m.setLoading(fmt.Sprintf("creating %q", nr.Title))
		m.emit(model.CreateReminder{NewReminder: nr})
		return m
	case input.CmdCancel:
		m = m.closeForm()
		m.Status = StatusBar{Text: "cancelled"}
		m.emit(model.Back{})
		return m
	}
	m.Form.Validate()
	return m
}

func (m Model) renderFormView() string {
	if m.Form == nil {
		return ""
	}
	f := m.Form
	listColor := ""
	if f.ListIndex >= 0 && f.ListIndex < len(f.Lists) {
		listColor = f.Lists[f.ListIndex].Color
	}
	values := []string{
		f.Title.View(),
		f.Notes.View(),
		f.DueDate.View(),
		f.ListName(),
		fmt.Sprintf("%d", f.Priority),
	}
	fields := make([]views.FormFieldData, 0, len(values))
	for i, v := range values {
		field := form.Field(i)
		fields = append(fields, views.FormFieldData{
			Label:   field.String(),
			Value:   v,
			Focused: field == f.Current(),
		})
	}
	return views.RenderFormPanel(views.FormPanelData{
		Fields:    fields,
		ListColor: listColor,
		Valid:     f.Valid,
	})
}
