package tui

import (
	"errors"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/saarzint/candle-recall/internal/validators"
	"github.com/saarzint/candle-recall/models"
)

const inputWidth = 40

// formField is a text input bound to a validators.Field. Typing clears the
// internal message, leaving the input validates it, and messages returned
// by the server are shown as external errors.
type formField struct {
	name  string
	label string
	input textinput.Model
	field *validators.Field
}

func newFormField(name, label, placeholder string, rule validators.Rule) *formField {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = 256
	in.Width = inputWidth
	in.Prompt = ""

	return &formField{
		name:  name,
		label: label,
		input: in,
		field: validators.NewField(rule),
	}
}

// masked hides the typed characters.
func (f *formField) masked() *formField {
	f.input.EchoMode = textinput.EchoPassword
	f.input.EchoCharacter = '*'
	return f
}

func (f *formField) limit(n int) *formField {
	f.input.CharLimit = n
	return f
}

func (f *formField) value() string {
	return f.input.Value()
}

func (f *formField) setValue(v string) {
	f.input.SetValue(v)
}

func (f *formField) focus() tea.Cmd {
	return f.input.Focus()
}

func (f *formField) blur() {
	if !f.input.Focused() {
		return
	}
	f.input.Blur()
	f.field.Blur(f.input.Value())
}

func (f *formField) update(msg tea.Msg) tea.Cmd {
	before := f.input.Value()

	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)

	if after := f.input.Value(); after != before {
		// the form, not its parent screen, drops the server error on edit
		f.field.SetExternalError("")
		f.field.Change(after)
	}
	return cmd
}

func (f *formField) reset() {
	f.input.Reset()
	f.input.Blur()
	f.field.Reset()
}

func (f *formField) view() string {
	style := inputStyle
	switch {
	case f.field.HasError():
		style = invalidInputStyle
	case f.input.Focused():
		style = focusedInputStyle
	}

	var b strings.Builder
	b.WriteString(labelStyle.Render(f.label))
	b.WriteString("\n")
	b.WriteString(style.Render(f.input.View()))
	if msg := f.field.Displayed(); msg != "" {
		b.WriteString("\n")
		b.WriteString(fieldErrorStyle.Render(msg))
	}
	return b.String()
}

// form is an ordered set of fields with one of them focused.
type form struct {
	fields  []*formField
	focused int
}

func newForm(fields ...*formField) *form {
	return &form{fields: fields}
}

func (f *form) field(name string) *formField {
	for _, fld := range f.fields {
		if fld.name == name {
			return fld
		}
	}
	return nil
}

func (f *form) current() *formField {
	return f.fields[f.focused]
}

func (f *form) focusFirst() tea.Cmd {
	f.current().blur()
	f.focused = 0
	return f.current().focus()
}

func (f *form) next() tea.Cmd {
	f.current().blur()
	f.focused = (f.focused + 1) % len(f.fields)
	return f.current().focus()
}

func (f *form) prev() tea.Cmd {
	f.current().blur()
	f.focused = (f.focused - 1 + len(f.fields)) % len(f.fields)
	return f.current().focus()
}

func (f *form) update(msg tea.Msg) tea.Cmd {
	return f.current().update(msg)
}

// validate runs every rule and reports whether all fields are valid.
// Server messages from the previous attempt are dropped first.
func (f *form) validate() bool {
	ok := true
	for _, fld := range f.fields {
		fld.field.SetExternalError("")
		if fld.field.Validate(fld.value()) != "" {
			ok = false
		}
	}
	return ok
}

// applyError shows the field errors carried by err under the matching
// inputs. Messages for fields the form does not have are returned joined,
// so the caller can put them in the banner.
func (f *form) applyError(err error) (rest string, applied bool) {
	var fieldErrs models.FieldErrors
	if !errors.As(err, &fieldErrs) {
		return "", false
	}

	names := make([]string, 0, len(fieldErrs))
	for name := range fieldErrs {
		names = append(names, name)
	}
	sort.Strings(names)

	var unknown []string
	for _, name := range names {
		if fld := f.field(name); fld != nil {
			fld.field.SetExternalError(fieldErrs[name])
			continue
		}
		unknown = append(unknown, fieldErrs[name])
	}
	return strings.Join(unknown, " "), true
}

func (f *form) reset() {
	for _, fld := range f.fields {
		fld.reset()
	}
	f.focused = 0
}

func (f *form) view() string {
	parts := make([]string, 0, len(f.fields))
	for _, fld := range f.fields {
		parts = append(parts, fld.view())
	}
	return strings.Join(parts, "\n\n")
}

// failureText applies err to the form and returns what is left for the
// banner.
func (f *form) failureText(err error) string {
	if rest, ok := f.applyError(err); ok {
		return rest
	}
	return humanizeError(err)
}
