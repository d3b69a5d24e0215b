package tui

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aanand-mishra/users-table/internal/editor"
	"github.com/aanand-mishra/users-table/internal/form"
	"github.com/aanand-mishra/users-table/internal/types"
)

// handleKeyPress routes keys to the table or, while open, to the modal.
func (m *Model) handleKeyPress(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return tea.Quit
	}
	if m.editor.Modal().Open() {
		return m.handleModalKeys(msg)
	}
	return m.handleTableKeys(msg)
}

func (m *Model) handleTableKeys(msg tea.KeyMsg) tea.Cmd {
	m.errorMsg = ""

	switch msg.String() {
	case "q":
		return tea.Quit

	case "a":
		m.editor.OpenCreate()
		m.statusMsg = ""
		return m.loadInputs()

	case "e", "enter":
		u, ok := m.selected()
		if !ok {
			m.errorMsg = "No user selected"
			return nil
		}
		if err := m.editor.OpenEdit(u.ID); err != nil {
			m.errorMsg = err.Error()
			return nil
		}
		m.statusMsg = ""
		return m.loadInputs()

	case "d":
		u, ok := m.selected()
		if !ok {
			m.errorMsg = "No user selected"
			return nil
		}
		if err := m.editor.Delete(u.ID); err != nil {
			m.errorMsg = err.Error()
			return nil
		}
		m.statusMsg = fmt.Sprintf("Deleted %s", u.Name)
		m.reload()
		return nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return cmd
}

func (m *Model) handleModalKeys(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.editor.Cancel()
		m.errorMsg = ""
		return nil

	case "tab", "down":
		return m.setFocus((m.focus + 1) % len(m.inputs))

	case "shift+tab", "up":
		return m.setFocus((m.focus - 1 + len(m.inputs)) % len(m.inputs))

	case "enter":
		return m.submit()
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	if err := m.editor.SetField(types.Fields[m.focus], m.inputs[m.focus].Value()); err != nil {
		m.errorMsg = err.Error()
	}
	return cmd
}

func (m *Model) submit() tea.Cmd {
	creating := m.editor.Modal().State == editor.Creating

	saved, err := m.editor.Submit()
	switch {
	case errors.Is(err, form.ErrInvalid):
		// Inline errors come from the modal snapshot; move to the first
		// field that failed.
		errs := m.editor.Modal().Errors
		for i, name := range types.Fields {
			if errs.Has(name) {
				return m.setFocus(i)
			}
		}
		return nil
	case err != nil:
		m.errorMsg = err.Error()
		return nil
	}

	m.errorMsg = ""
	if creating {
		m.statusMsg = fmt.Sprintf("Created %s", saved.Name)
	} else {
		m.statusMsg = fmt.Sprintf("Updated %s", saved.Name)
	}
	m.reload()
	return nil
}

// loadInputs copies the modal's values into the text inputs and focuses
// the first one.
func (m *Model) loadInputs() tea.Cmd {
	values := m.editor.Modal().Values
	for i, name := range types.Fields {
		m.inputs[i].SetValue(values.Get(name))
	}
	return m.setFocus(0)
}

func (m *Model) setFocus(i int) tea.Cmd {
	m.focus = i
	var cmd tea.Cmd
	for j := range m.inputs {
		if j == i {
			cmd = m.inputs[j].Focus()
		} else {
			m.inputs[j].Blur()
		}
	}
	return cmd
}

func (m *Model) reload() {
	if err := m.refresh(); err != nil {
		m.errorMsg = err.Error()
	}
}
