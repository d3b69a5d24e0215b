// Package types holds the shared data structures used across the
// application. Keeping them in one place prevents import cycles:
// storage, the form layer, the editor and both renderers can import types
// without depending on each other.
package types

import "strconv"

// User is one row of the user table.
//
// The validate:"..." tags mirror the form rules in internal/form and are
// checked again by the storage-facing API (see editor.Submit) so that a
// record that reaches the store is always well-formed.
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"  validate:"required,min=3"`
	Age   int    `json:"age"   validate:"required,gte=1,lte=120"`
	Email string `json:"email" validate:"required,useremail"`
}

// Field names used by the form, the HTML page and the terminal UI.
const (
	FieldName  = "name"
	FieldAge   = "age"
	FieldEmail = "email"
)

// Fields lists the form fields in display order.
var Fields = []string{FieldName, FieldAge, FieldEmail}

// FormValues is the raw text typed into the modal form, before it has been
// validated and before age has been converted to an integer.
type FormValues struct {
	Name  string `json:"name"`
	Age   string `json:"age"`
	Email string `json:"email"`
}

// Get returns the value of the named field, or "" for an unknown name.
func (v FormValues) Get(field string) string {
	switch field {
	case FieldName:
		return v.Name
	case FieldAge:
		return v.Age
	case FieldEmail:
		return v.Email
	}
	return ""
}

// Set returns a copy of v with the named field replaced.
// Unknown field names leave v unchanged.
func (v FormValues) Set(field, value string) FormValues {
	switch field {
	case FieldName:
		v.Name = value
	case FieldAge:
		v.Age = value
	case FieldEmail:
		v.Email = value
	}
	return v
}

// ValuesOf pre-populates form values from an existing record.
func ValuesOf(u User) FormValues {
	return FormValues{
		Name:  u.Name,
		Age:   strconv.Itoa(u.Age),
		Email: u.Email,
	}
}
