package tui

import (
	"io"
	"log/slog"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aanand-mishra/users-table/internal/editor"
	"github.com/aanand-mishra/users-table/internal/form"
	"github.com/aanand-mishra/users-table/internal/storage/memory"
	"github.com/aanand-mishra/users-table/internal/types"
)

// CreateTestModel creates a Model over an in-memory store holding seed.
func CreateTestModel(t *testing.T, seed []types.User) *Model {
	t.Helper()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	ed := editor.New(memory.New(seed), form.NewUserForm(), log)

	m, err := New(ed)
	if err != nil {
		t.Fatalf("Failed to create test model: %v", err)
	}
	return &m
}

// pressKey sends a named key ("enter", "esc", "tab", "down", ...) or, for
// anything else, the literal runes.
func pressKey(m *Model, key string) tea.Cmd {
	var msg tea.KeyMsg
	switch key {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		msg = tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		msg = tea.KeyMsg{Type: tea.KeyShiftTab}
	case "down":
		msg = tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		msg = tea.KeyMsg{Type: tea.KeyUp}
	case "backspace":
		msg = tea.KeyMsg{Type: tea.KeyBackspace}
	case "ctrl+c":
		msg = tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	_, cmd := m.Update(msg)
	return cmd
}

// typeInto clears the focused input and types text.
func typeInto(m *Model, text string) {
	for range m.inputs[m.focus].Value() {
		pressKey(m, "backspace")
	}
	if text != "" {
		pressKey(m, text)
	}
}
