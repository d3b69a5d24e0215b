// Package editor is the table editor: it owns the Record Store, the modal
// state machine and the user form, and turns user actions into store
// mutations.
//
// Both renderers (internal/tui and internal/http/handlers/user) drive the
// same Editor. Every method takes the editor lock, so events coming from
// concurrent HTTP requests are applied one at a time.
package editor

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/aanand-mishra/users-table/internal/form"
	"github.com/aanand-mishra/users-table/internal/storage"
	"github.com/aanand-mishra/users-table/internal/types"
)

// EmptyMessage is shown instead of the table when there are no users.
const EmptyMessage = "No users found. Create your first user!"

// ErrModalClosed is returned when an action needs the modal to be open.
var ErrModalClosed = errors.New("modal is closed")

// Editor is the single stateful component of the application.
type Editor struct {
	mu     sync.Mutex
	store  storage.Storage
	form   *form.Form
	modal  controller
	log    *slog.Logger
	submit func(form.Values) (form.Errors, error)
	saved  types.User
}

// New wires an editor around store. The modal starts Closed.
func New(store storage.Storage, f *form.Form, log *slog.Logger) *Editor {
	e := &Editor{store: store, form: f, log: log}
	e.submit = f.HandleSubmit(e.save)
	return e
}

// Users returns the table rows in order.
func (e *Editor) Users() ([]types.User, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.store.List()
}

// Modal returns a snapshot of the modal.
func (e *Editor) Modal() Modal {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.modal.snapshot()
}

// OpenCreate shows an empty form in create mode.
func (e *Editor) OpenCreate() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.modal.openCreate()
	e.log.Debug("modal opened", slog.String("state", Creating.String()))
}

// OpenEdit shows the form pre-filled with the record id.
func (e *Editor) OpenEdit(id int64) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	u, err := e.store.Get(id)
	if err != nil {
		return fmt.Errorf("OpenEdit: %w", err)
	}
	e.modal.openEdit(u)
	e.log.Debug("modal opened",
		slog.String("state", Editing.String()),
		slog.Int64("id", id))
	return nil
}

// Cancel closes the modal and discards the form input.
func (e *Editor) Cancel() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.modal.close()
	e.log.Debug("modal closed")
}

// SetField replaces the text of one form field.
func (e *Editor) SetField(field, value string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.modal.state == Closed {
		return ErrModalClosed
	}
	e.modal.values = e.modal.values.Set(field, value)
	return nil
}

// SetValues replaces the text of every form field at once.
func (e *Editor) SetValues(v types.FormValues) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.modal.state == Closed {
		return ErrModalClosed
	}
	e.modal.values = v
	return nil
}

// Submit validates the form. When a field fails the store is untouched,
// the modal stays open with per-field errors, and the returned error
// matches form.ErrInvalid. Otherwise the record is added (Creating) or
// replaced (Editing), the modal closes, and the saved record is returned.
func (e *Editor) Submit() (types.User, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.modal.state == Closed {
		return types.User{}, ErrModalClosed
	}

	// save stores its result here; it only runs when validation passed.
	e.saved = types.User{}
	errs, err := e.submit(e.modal.values)
	if errors.Is(err, form.ErrInvalid) {
		e.modal.errors = errs
		e.log.Debug("submission blocked", slog.String("errors", errs.Error()))
		return types.User{}, fmt.Errorf("Submit: %w", err)
	}
	if err != nil {
		return types.User{}, fmt.Errorf("Submit: %w", err)
	}

	saved := e.saved
	e.modal.close()
	return saved, nil
}

// save is the submit callback; it runs with mu held.
func (e *Editor) save(values form.Values) error {
	age, err := strconv.Atoi(strings.TrimSpace(values.Get(types.FieldAge)))
	if err != nil {
		return fmt.Errorf("save: age: %w", err)
	}
	u := types.User{
		ID:    e.modal.target.ID,
		Name:  strings.TrimSpace(values.Get(types.FieldName)),
		Age:   age,
		Email: strings.TrimSpace(values.Get(types.FieldEmail)),
	}
	if err := e.form.ValidateUser(u); err != nil {
		return fmt.Errorf("save: %w", err)
	}

	switch e.modal.state {
	case Creating:
		created, err := e.store.Add(u.Name, u.Age, u.Email)
		if err != nil {
			return fmt.Errorf("save: add: %w", err)
		}
		e.saved = created
		e.log.Info("user created", slog.Int64("id", created.ID))
	case Editing:
		if err := e.store.Update(u.ID, u.Name, u.Age, u.Email); err != nil {
			return fmt.Errorf("save: update: %w", err)
		}
		e.saved = u
		e.log.Info("user updated", slog.Int64("id", u.ID))
	}
	return nil
}

// Delete removes the record id. A missing id is a no-op.
func (e *Editor) Delete(id int64) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.store.Remove(id); err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	e.log.Info("user deleted", slog.Int64("id", id))
	return nil
}
