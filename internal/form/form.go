// Package form is the form-handling collaborator of the editor.
//
// A Form is configured declaratively: each field is registered with an
// ordered list of rules (required, minimum length, numeric bounds, regex
// pattern). Validate evaluates every registered field synchronously and
// reports at most one error per field: the first rule that fails.
// HandleSubmit wraps a submit callback so that it only runs when every
// registered field passes.
//
// The checks themselves are delegated to go-playground/validator: each
// rule is translated into a validator tag and evaluated with Validate.Var.
package form

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Kind classifies a field-validation failure.
type Kind string

const (
	KindRequired        Kind = "required"
	KindTooShort        Kind = "too_short"
	KindOutOfRange      Kind = "out_of_range"
	KindPatternMismatch Kind = "pattern_mismatch"
)

// Rule is one declarative check. Build rules with Required, MinLength,
// Min, Max, Integer and Pattern rather than by hand.
type Rule struct {
	Kind    Kind
	Message string

	tag     string         // validator tag evaluated against the value
	numeric bool           // value is converted to int before evaluation
	pattern *regexp.Regexp // only for pattern rules; registered under tag
}

// Required fails when the value is empty or only whitespace.
func Required(message string) Rule {
	return Rule{Kind: KindRequired, Message: message, tag: "required"}
}

// MinLength fails when the value has fewer than n characters.
func MinLength(n int, message string) Rule {
	return Rule{Kind: KindTooShort, Message: message, tag: fmt.Sprintf("min=%d", n)}
}

// Min fails when the value, read as an integer, is below n.
func Min(n int, message string) Rule {
	return Rule{Kind: KindOutOfRange, Message: message, tag: fmt.Sprintf("gte=%d", n), numeric: true}
}

// Max fails when the value, read as an integer, is above n.
func Max(n int, message string) Rule {
	return Rule{Kind: KindOutOfRange, Message: message, tag: fmt.Sprintf("lte=%d", n), numeric: true}
}

// Integer fails when the value is not a base-10 integer.
func Integer(message string) Rule {
	return Pattern("integer", integerPattern, message)
}

// Pattern fails when the value does not match re. name becomes the
// validator tag the expression is registered under, so it must be a
// plain identifier and unique per expression within one Form.
func Pattern(name string, re *regexp.Regexp, message string) Rule {
	return Rule{Kind: KindPatternMismatch, Message: message, tag: name, pattern: re}
}

var integerPattern = regexp.MustCompile(`^[+-]?[0-9]+$`)

// FieldError is the error shown next to one form field.
type FieldError struct {
	Field   string `json:"field"`
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

// Errors maps a field name to its error. An empty Errors means the form
// is valid.
type Errors map[string]FieldError

// Message returns the error message for field, or "" if it passed.
func (e Errors) Message(field string) string {
	return e[field].Message
}

// Has reports whether field failed validation.
func (e Errors) Has(field string) bool {
	_, ok := e[field]
	return ok
}

// Error joins the messages of every failing field so Errors can travel as
// an error value when needed.
func (e Errors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, fe := range e {
		msgs = append(msgs, fe.Message)
	}
	return strings.Join(msgs, ", ")
}

// Values is anything the form can read field text from.
type Values interface {
	Get(field string) string
}

// ErrInvalid is returned by a HandleSubmit wrapper when validation blocked
// the callback. The per-field details are returned alongside it.
var ErrInvalid = errors.New("form has invalid fields")

type field struct {
	name  string
	rules []Rule
}

// Form holds the registered fields in registration order.
type Form struct {
	validate *validator.Validate
	fields   []field
}

// New returns an empty form backed by its own validator instance.
func New() *Form {
	return &Form{validate: validator.New()}
}

// Register adds a field with its ordered rules. Registering the same name
// twice replaces the earlier rules.
func (f *Form) Register(name string, rules ...Rule) error {
	for _, r := range rules {
		if r.pattern == nil {
			continue
		}
		re := r.pattern
		err := f.validate.RegisterValidation(r.tag, func(fl validator.FieldLevel) bool {
			return re.MatchString(fl.Field().String())
		})
		if err != nil {
			return fmt.Errorf("form.Register: field %s: rule %s: %w", name, r.tag, err)
		}
	}

	for i := range f.fields {
		if f.fields[i].name == name {
			f.fields[i].rules = rules
			return nil
		}
	}
	f.fields = append(f.fields, field{name: name, rules: rules})
	return nil
}

// Fields returns the registered field names in registration order.
func (f *Form) Fields() []string {
	names := make([]string, 0, len(f.fields))
	for _, fd := range f.fields {
		names = append(names, fd.name)
	}
	return names
}

// Validate checks every registered field of values and returns the first
// failing rule of each field. The result is never nil.
func (f *Form) Validate(values Values) Errors {
	errs := make(Errors)
	for _, fd := range f.fields {
		value := strings.TrimSpace(values.Get(fd.name))
		for _, r := range fd.rules {
			if !f.passes(r, value) {
				errs[fd.name] = FieldError{Field: fd.name, Kind: r.Kind, Message: r.Message}
				break
			}
		}
	}
	return errs
}

func (f *Form) passes(r Rule, value string) bool {
	if r.numeric {
		n, err := strconv.Atoi(value)
		if err != nil {
			return false
		}
		return f.validate.Var(n, r.tag) == nil
	}
	return f.validate.Var(value, r.tag) == nil
}

// SubmitFunc receives the values of a form that passed validation.
type SubmitFunc func(values Values) error

// HandleSubmit wraps fn. The returned function validates values first;
// on any field error it returns those errors with ErrInvalid and fn is not
// called. Otherwise it returns fn's error and an empty Errors.
func (f *Form) HandleSubmit(fn SubmitFunc) func(values Values) (Errors, error) {
	return func(values Values) (Errors, error) {
		errs := f.Validate(values)
		if len(errs) > 0 {
			return errs, ErrInvalid
		}
		return errs, fn(values)
	}
}
