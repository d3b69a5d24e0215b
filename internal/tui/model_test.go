package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aanand-mishra/users-table/internal/editor"
	"github.com/aanand-mishra/users-table/internal/form"
	"github.com/aanand-mishra/users-table/internal/storage"
	"github.com/aanand-mishra/users-table/internal/types"
)

func TestNew_LoadsRows(t *testing.T) {
	m := CreateTestModel(t, storage.Seed)

	assert.Len(t, m.users, 3)
	assert.Len(t, m.table.Rows(), 3)
	assert.Equal(t, "Shivansh", m.table.Rows()[0][0])
	assert.Equal(t, "23", m.table.Rows()[0][1])
	assert.Equal(t, editor.Closed, m.editor.Modal().State)
}

func TestView_EmptyState(t *testing.T) {
	m := CreateTestModel(t, nil)

	assert.Contains(t, m.View(), editor.EmptyMessage)
}

func TestCreateUser(t *testing.T) {
	m := CreateTestModel(t, storage.Seed[:1])

	pressKey(m, "a")
	require.Equal(t, editor.Creating, m.editor.Modal().State)
	assert.Contains(t, m.View(), "Create New User")
	assert.Contains(t, m.View(), "Create User")

	typeInto(m, "Bob")
	pressKey(m, "tab")
	typeInto(m, "30")
	pressKey(m, "tab")
	typeInto(m, "bob@x.com")

	assert.Equal(t, types.FormValues{Name: "Bob", Age: "30", Email: "bob@x.com"}, m.editor.Modal().Values)

	pressKey(m, "enter")

	assert.Equal(t, editor.Closed, m.editor.Modal().State)
	require.Len(t, m.users, 2)
	assert.Equal(t, storage.Seed[0], m.users[0])
	assert.Equal(t, "Bob", m.users[1].Name)
	assert.Equal(t, 30, m.users[1].Age)
	assert.Equal(t, "bob@x.com", m.users[1].Email)
	assert.Equal(t, "Created Bob", m.statusMsg)
}

func TestEditUser_PrefillsAndUpdates(t *testing.T) {
	m := CreateTestModel(t, storage.Seed)

	pressKey(m, "down")
	pressKey(m, "e")

	modal := m.editor.Modal()
	require.Equal(t, editor.Editing, modal.State)
	assert.Equal(t, int64(2), modal.Target.ID)
	assert.Equal(t, "Simran", m.inputs[0].Value())
	assert.Equal(t, "22", m.inputs[1].Value())
	assert.Contains(t, m.View(), "Update User")

	pressKey(m, "tab")
	typeInto(m, "25")
	pressKey(m, "enter")

	require.Len(t, m.users, 3)
	assert.Equal(t, types.User{ID: 2, Name: "Simran", Age: 25, Email: "simran@example.com"}, m.users[1])
	assert.Equal(t, "Updated Simran", m.statusMsg)
}

func TestEditUser_InvalidAgeIsBlocked(t *testing.T) {
	m := CreateTestModel(t, storage.Seed[:1])

	pressKey(m, "enter")
	require.Equal(t, editor.Editing, m.editor.Modal().State)

	pressKey(m, "tab")
	typeInto(m, "150")
	pressKey(m, "tab")
	pressKey(m, "enter")

	modal := m.editor.Modal()
	assert.Equal(t, editor.Editing, modal.State)
	assert.Equal(t, form.KindOutOfRange, modal.Errors[types.FieldAge].Kind)
	assert.Equal(t, 1, m.focus, "focus jumps to the failing field")
	assert.Contains(t, m.View(), "Age must be less than 120")
	assert.Equal(t, storage.Seed[:1], m.users)
}

func TestTypingQDoesNotQuitInsideModal(t *testing.T) {
	m := CreateTestModel(t, nil)

	pressKey(m, "a")
	pressKey(m, "q")

	assert.Equal(t, editor.Creating, m.editor.Modal().State)
	assert.Equal(t, "q", m.editor.Modal().Values.Name)
}

func TestCancel(t *testing.T) {
	m := CreateTestModel(t, storage.Seed)

	pressKey(m, "e")
	typeInto(m, "Changed")
	pressKey(m, "esc")

	assert.Equal(t, editor.Closed, m.editor.Modal().State)
	assert.Equal(t, storage.Seed, m.users)
}

func TestOpenCreateAfterEditClearsInputs(t *testing.T) {
	m := CreateTestModel(t, storage.Seed)

	pressKey(m, "e")
	pressKey(m, "esc")
	pressKey(m, "a")

	for _, in := range m.inputs {
		assert.Equal(t, "", in.Value())
	}
	assert.Equal(t, 0, m.focus)
}

func TestDeleteUser(t *testing.T) {
	m := CreateTestModel(t, storage.Seed)

	pressKey(m, "down")
	pressKey(m, "d")

	require.Len(t, m.users, 2)
	assert.Equal(t, int64(1), m.users[0].ID)
	assert.Equal(t, int64(3), m.users[1].ID)
	assert.Equal(t, "Deleted Simran", m.statusMsg)
}

func TestDeleteLastRowKeepsCursorInRange(t *testing.T) {
	m := CreateTestModel(t, storage.Seed)

	pressKey(m, "down")
	pressKey(m, "down")
	pressKey(m, "d")
	pressKey(m, "d")
	pressKey(m, "d")

	assert.Empty(t, m.users)
	pressKey(m, "d")
	assert.Equal(t, "No user selected", m.errorMsg)
}

func TestFocusCycles(t *testing.T) {
	m := CreateTestModel(t, nil)

	pressKey(m, "a")
	assert.Equal(t, 0, m.focus)
	pressKey(m, "tab")
	pressKey(m, "tab")
	assert.Equal(t, 2, m.focus)
	pressKey(m, "tab")
	assert.Equal(t, 0, m.focus)
	pressKey(m, "shift+tab")
	assert.Equal(t, 2, m.focus)
}

func TestQuit(t *testing.T) {
	m := CreateTestModel(t, storage.Seed)

	cmd := pressKey(m, "q")
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}
