// Package tui renders the table editor in the terminal with bubbletea.
//
// The Model holds only view state (widgets, focus, status line). Every
// record and modal transition goes through the editor, so the terminal
// and the HTTP page behave identically.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aanand-mishra/users-table/internal/editor"
	"github.com/aanand-mishra/users-table/internal/types"
)

// Model represents the TUI state
type Model struct {
	editor *editor.Editor

	users []types.User // rows currently shown, parallel to table rows
	table table.Model

	inputs []textinput.Model // one per types.Fields entry
	focus  int               // index into inputs while the modal is open

	statusMsg string
	errorMsg  string
	width     int
	height    int
}

// New builds the model and loads the first rows.
func New(ed *editor.Editor) (Model, error) {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Name", Width: colNameWidth},
			{Title: "Age", Width: colAgeWidth},
			{Title: "Email", Width: colEmailWidth},
		}),
		table.WithFocused(true),
		table.WithHeight(tableHeight),
	)

	m := Model{
		editor: ed,
		table:  t,
		inputs: newInputs(),
	}
	if err := m.refresh(); err != nil {
		return Model{}, err
	}
	return m, nil
}

func newInputs() []textinput.Model {
	placeholders := map[string]string{
		types.FieldName:  "Enter full name",
		types.FieldAge:   "Enter age",
		types.FieldEmail: "Enter email",
	}

	inputs := make([]textinput.Model, len(types.Fields))
	for i, name := range types.Fields {
		ti := textinput.New()
		ti.Prompt = "> "
		ti.Placeholder = placeholders[name]
		ti.Width = modalWidth - 8
		if name == types.FieldAge {
			ti.CharLimit = 3
		}
		inputs[i] = ti
	}
	return inputs
}

// Init initializes the TUI
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.handleKeyPress(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

// View renders the page: title, table (or empty state), help line and
// status. While the modal is open it is drawn in place of the table.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(styleTitle.Render("User Management System"))
	b.WriteString("\n")
	b.WriteString(styleSubtitle.Render("Terminal table editor"))
	b.WriteString("\n\n")

	modal := m.editor.Modal()
	if modal.Open() {
		b.WriteString(m.renderModal(modal))
	} else {
		if len(m.users) == 0 {
			b.WriteString(styleSubtitle.Render(editor.EmptyMessage))
		} else {
			b.WriteString(m.table.View())
		}
		b.WriteString("\n\n")
		b.WriteString(styleHelp.Render("a: Add New User • e/enter: Edit • d: Delete • q: quit"))
	}

	b.WriteString("\n")
	if m.errorMsg != "" {
		b.WriteString(styleError.Render(m.errorMsg))
	} else if m.statusMsg != "" {
		b.WriteString(styleStatus.Render(m.statusMsg))
	}

	out := b.String()
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Left, lipgloss.Top, out)
	}
	return out
}

// refresh reloads rows from the editor and keeps the cursor in range.
func (m *Model) refresh() error {
	users, err := m.editor.Users()
	if err != nil {
		return fmt.Errorf("refresh: %w", err)
	}
	m.users = users

	rows := make([]table.Row, 0, len(users))
	for _, u := range users {
		rows = append(rows, table.Row{u.Name, strconv.Itoa(u.Age), u.Email})
	}
	m.table.SetRows(rows)
	if c := m.table.Cursor(); c >= len(rows) {
		m.table.SetCursor(max(0, len(rows)-1))
	}
	return nil
}

// selected returns the user under the table cursor.
func (m *Model) selected() (types.User, bool) {
	c := m.table.Cursor()
	if c < 0 || c >= len(m.users) {
		return types.User{}, false
	}
	return m.users[c], true
}
