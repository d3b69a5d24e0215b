// Package response provides helpers for writing consistent JSON HTTP
// responses.
//
// Error responses always look like:
//
//	{ "status": "error", "error": "user not found" }
//
// and validation failures add the per-field messages:
//
//	{ "status": "error", "error": "form has invalid fields",
//	  "fields": { "age": "Age must be less than 120" } }
package response

import (
	"encoding/json"
	"net/http"

	"github.com/aanand-mishra/users-table/internal/form"
)

// Response is the standard envelope returned for error cases.
type Response struct {
	Status string            `json:"status"`
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

const (
	StatusOK    = "ok"
	StatusError = "error"
)

// WriteJSON writes data as JSON with the given HTTP status code.
// Header() → WriteHeader() → body: once WriteHeader is called the headers
// are locked.
func WriteJSON(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

// GeneralError wraps any Go error into the standard Response shape.
func GeneralError(err error) Response {
	return Response{
		Status: StatusError,
		Error:  err.Error(),
	}
}

// ValidationError reports the message of every failing form field, keyed
// by field name.
func ValidationError(errs form.Errors) Response {
	fields := make(map[string]string, len(errs))
	for name, fe := range errs {
		fields[name] = fe.Message
	}
	return Response{
		Status: StatusError,
		Error:  form.ErrInvalid.Error(),
		Fields: fields,
	}
}
