package tui

import (
	"strings"

	"github.com/aanand-mishra/users-table/internal/editor"
	"github.com/aanand-mishra/users-table/internal/types"
)

var fieldLabels = map[string]string{
	types.FieldName:  "Full Name",
	types.FieldAge:   "Age",
	types.FieldEmail: "Email",
}

// renderModal draws the create/edit form with an inline error under each
// failing field.
func (m Model) renderModal(modal editor.Modal) string {
	var b strings.Builder

	b.WriteString(styleTitle.Render(modal.Title()))
	b.WriteString("\n\n")

	for i, name := range types.Fields {
		label := styleLabel
		if i == m.focus {
			label = styleLabelFocused
		}
		b.WriteString(label.Render(fieldLabels[name]))
		b.WriteString("\n")
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
		if msg := modal.Errors.Message(name); msg != "" {
			b.WriteString(styleError.Render(msg))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(styleHelp.Render("enter: " + modal.SubmitLabel() + " • esc: Cancel • tab: next field"))

	return styleModal.Render(b.String())
}
