package form

import (
	"fmt"
	"regexp"

	"github.com/aanand-mishra/users-table/internal/types"
)

// EmailPattern is the address shape accepted by the user form.
var EmailPattern = regexp.MustCompile(`(?i)^[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,}$`)

// Age bounds, inclusive.
const (
	MinAge        = 1
	MaxAge        = 120
	MinNameLength = 3
)

// UserRules is the rule configuration of the user form, field by field.
func UserRules() map[string][]Rule {
	return map[string][]Rule{
		types.FieldName: {
			Required("Name is required"),
			MinLength(MinNameLength, fmt.Sprintf("Name must be at least %d characters", MinNameLength)),
		},
		types.FieldAge: {
			Required("Age is required"),
			Integer("Age must be a number"),
			Min(MinAge, fmt.Sprintf("Age must be at least %d", MinAge)),
			Max(MaxAge, fmt.Sprintf("Age must be less than %d", MaxAge)),
		},
		types.FieldEmail: {
			Required("Email is required"),
			Pattern("useremail", EmailPattern, "Invalid email address"),
		},
	}
}

// NewUserForm returns a Form with the user fields registered in display
// order. It panics if the static rule set cannot be registered, which
// only happens on a programming error.
func NewUserForm() *Form {
	f := New()
	rules := UserRules()
	for _, name := range types.Fields {
		if err := f.Register(name, rules[name]...); err != nil {
			panic(err)
		}
	}
	return f
}

// ValidateUser runs the struct tags of types.User against u. It is the
// last check before a record is written to the store.
func (f *Form) ValidateUser(u types.User) error {
	if err := f.validate.Struct(u); err != nil {
		return fmt.Errorf("form.ValidateUser: %w", err)
	}
	return nil
}
