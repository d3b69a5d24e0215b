package editor

import (
	"github.com/aanand-mishra/users-table/internal/form"
	"github.com/aanand-mishra/users-table/internal/types"
)

// State is the modal's mode.
type State int

const (
	Closed State = iota
	Creating
	Editing
)

func (s State) String() string {
	switch s {
	case Creating:
		return "creating"
	case Editing:
		return "editing"
	default:
		return "closed"
	}
}

// Modal is a read-only snapshot of the modal for rendering.
type Modal struct {
	State  State
	Target types.User // the record being edited; zero unless State == Editing
	Values types.FormValues
	Errors form.Errors
}

// Open reports whether the modal is visible.
func (m Modal) Open() bool { return m.State != Closed }

// Title is the modal heading.
func (m Modal) Title() string {
	if m.State == Editing {
		return "Edit User"
	}
	return "Create New User"
}

// SubmitLabel is the text of the submit control.
func (m Modal) SubmitLabel() string {
	if m.State == Editing {
		return "Update User"
	}
	return "Create User"
}

// controller is the Closed / Creating / Editing(record) state machine
// together with the form input it owns while open.
type controller struct {
	state  State
	target types.User
	values types.FormValues
	errors form.Errors
}

func (c *controller) openCreate() {
	c.state = Creating
	c.target = types.User{}
	c.values = types.FormValues{}
	c.errors = nil
}

func (c *controller) openEdit(u types.User) {
	c.state = Editing
	c.target = u
	c.values = types.ValuesOf(u)
	c.errors = nil
}

func (c *controller) close() {
	c.state = Closed
	c.target = types.User{}
	c.values = types.FormValues{}
	c.errors = nil
}

func (c *controller) snapshot() Modal {
	errs := make(form.Errors, len(c.errors))
	for k, v := range c.errors {
		errs[k] = v
	}
	return Modal{State: c.state, Target: c.target, Values: c.values, Errors: errs}
}
