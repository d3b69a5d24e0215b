// Package user contains the HTTP handlers of the table editor.
//
// Every handler is built by a factory that closes over the editor:
//
//	router.HandleFunc("POST /users/new", user.OpenCreate(ed))
//
// The factory runs once at startup; the returned func runs per request.
//
// The page follows the post/redirect/get pattern: actions answer 303 See
// Other pointing back to "/", except a blocked submission, which renders
// the page directly with 422 so the inline errors are visible.
package user

import (
	"bytes"
	_ "embed"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/aanand-mishra/users-table/internal/editor"
	"github.com/aanand-mishra/users-table/internal/form"
	"github.com/aanand-mishra/users-table/internal/storage"
	"github.com/aanand-mishra/users-table/internal/types"
	"github.com/aanand-mishra/users-table/internal/utils/response"
)

//go:embed page.html
var pageHTML string

var page = template.Must(template.New("page").Parse(pageHTML))

type pageData struct {
	Users []types.User
	Modal editor.Modal
	Empty string
}

// Register mounts every route on router.
//
// Route table:
//
//	GET  /                   → page
//	POST /users/new          → open modal, create mode
//	POST /users/{id}/edit    → open modal, edit mode
//	POST /users/{id}/delete  → delete record
//	POST /modal/submit       → submit form
//	POST /modal/cancel       → close modal
//	GET  /api/users          → JSON list
func Register(router *http.ServeMux, ed *editor.Editor) {
	router.HandleFunc("GET /{$}", Page(ed))
	router.HandleFunc("POST /users/new", OpenCreate(ed))
	router.HandleFunc("POST /users/{id}/edit", OpenEdit(ed))
	router.HandleFunc("POST /users/{id}/delete", Delete(ed))
	router.HandleFunc("POST /modal/submit", Submit(ed))
	router.HandleFunc("POST /modal/cancel", Cancel(ed))
	router.HandleFunc("GET /api/users", List(ed))
}

// Page handles GET /: the table and, when open, the modal.
func Page(ed *editor.Editor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render(w, ed, http.StatusOK)
	}
}

// OpenCreate handles POST /users/new.
func OpenCreate(ed *editor.Editor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("opening create form")
		ed.OpenCreate()
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

// OpenEdit handles POST /users/{id}/edit.
//
// Error responses:
//
//	400 Bad Request — id is not an integer
//	404 Not Found   — no user with that id
func OpenEdit(ed *editor.Editor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}
		slog.Info("opening edit form", slog.Int64("id", id))

		if err := ed.OpenEdit(id); err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, storage.ErrNotFound) {
				status = http.StatusNotFound
			}
			slog.Error("error opening edit form",
				slog.Int64("id", id),
				slog.String("error", err.Error()))
			response.WriteJSON(w, status, response.GeneralError(err))
			return
		}
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

// Delete handles POST /users/{id}/delete. A missing id is not an error.
func Delete(ed *editor.Editor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}
		slog.Info("deleting a user", slog.Int64("id", id))

		if err := ed.Delete(id); err != nil {
			slog.Error("error deleting user",
				slog.Int64("id", id),
				slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError, response.GeneralError(err))
			return
		}
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

// Submit handles POST /modal/submit with form fields name, age and email.
//
// Clients sending "Accept: application/json" get JSON instead of HTML:
// 201/200 with the saved user, or 422 with the per-field messages.
//
// Error responses:
//
//	409 Conflict             — the modal is not open
//	422 Unprocessable Entity — a field failed validation
//	500 Internal             — storage error
func Submit(ed *editor.Editor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		wantJSON := r.Header.Get("Accept") == "application/json"

		if err := r.ParseForm(); err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		creating := ed.Modal().State == editor.Creating
		values := types.FormValues{
			Name:  r.PostFormValue(types.FieldName),
			Age:   r.PostFormValue(types.FieldAge),
			Email: r.PostFormValue(types.FieldEmail),
		}
		if err := ed.SetValues(values); err != nil {
			response.WriteJSON(w, http.StatusConflict, response.GeneralError(err))
			return
		}

		saved, err := ed.Submit()
		switch {
		case errors.Is(err, form.ErrInvalid):
			modal := ed.Modal()
			slog.Info("submission blocked", slog.String("errors", modal.Errors.Error()))
			if wantJSON {
				response.WriteJSON(w, http.StatusUnprocessableEntity, response.ValidationError(modal.Errors))
				return
			}
			render(w, ed, http.StatusUnprocessableEntity)
			return
		case errors.Is(err, editor.ErrModalClosed):
			response.WriteJSON(w, http.StatusConflict, response.GeneralError(err))
			return
		case err != nil:
			slog.Error("error saving user", slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError, response.GeneralError(err))
			return
		}

		slog.Info("user saved", slog.Int64("id", saved.ID))
		if wantJSON {
			status := http.StatusOK
			if creating {
				status = http.StatusCreated
			}
			response.WriteJSON(w, status, saved)
			return
		}
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

// Cancel handles POST /modal/cancel (Cancel button and close button).
func Cancel(ed *editor.Editor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ed.Cancel()
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

// List handles GET /api/users.
//
// Returns an empty array [] (not null) when there are no users.
func List(ed *editor.Editor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("getting all users")

		users, err := ed.Users()
		if err != nil {
			slog.Error("error getting users", slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError, response.GeneralError(err))
			return
		}
		response.WriteJSON(w, http.StatusOK, users)
	}
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		response.WriteJSON(w, http.StatusBadRequest,
			response.GeneralError(errors.New("invalid id: must be an integer")))
		return 0, false
	}
	return id, true
}

// render executes the page into a buffer first so a template error can
// still produce a clean 500.
func render(w http.ResponseWriter, ed *editor.Editor, status int) {
	users, err := ed.Users()
	if err != nil {
		slog.Error("error getting users", slog.String("error", err.Error()))
		response.WriteJSON(w, http.StatusInternalServerError, response.GeneralError(err))
		return
	}

	var buf bytes.Buffer
	data := pageData{Users: users, Modal: ed.Modal(), Empty: editor.EmptyMessage}
	if err := page.Execute(&buf, data); err != nil {
		slog.Error("error rendering page", slog.String("error", err.Error()))
		response.WriteJSON(w, http.StatusInternalServerError, response.GeneralError(err))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
