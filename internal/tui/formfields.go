package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/sidebyside/internal/forms"
)

type fieldKind int

const (
	fieldText fieldKind = iota
	fieldSecret
	fieldNumber
	fieldChoice
	fieldCheck
)

// formField is one row of a fieldForm. key matches the forms.FieldErrors
// key of the struct field it feeds.
type formField struct {
	key     string
	label   string
	kind    fieldKind
	input   textinput.Model
	options []string
	choice  int
	checked bool
}

func newInputField(kind fieldKind, key, label, placeholder string) *formField {
	in := textinput.New()
	in.Prompt = ""
	in.Placeholder = placeholder
	in.CharLimit = 120
	if kind == fieldSecret {
		in.EchoMode = textinput.EchoPassword
		in.EchoCharacter = '•'
	}
	if kind == fieldNumber {
		in.CharLimit = 3
	}
	return &formField{key: key, label: label, kind: kind, input: in}
}

func textField(key, label, placeholder string) *formField {
	return newInputField(fieldText, key, label, placeholder)
}

func secretField(key, label, placeholder string) *formField {
	return newInputField(fieldSecret, key, label, placeholder)
}

func numberField(key, label, placeholder string) *formField {
	return newInputField(fieldNumber, key, label, placeholder)
}

func choiceField(key, label string, options ...string) *formField {
	return &formField{key: key, label: label, kind: fieldChoice, options: options}
}

func checkField(key, label string) *formField {
	return &formField{key: key, label: label, kind: fieldCheck}
}

func (f *formField) hasInput() bool {
	return f.kind == fieldText || f.kind == fieldSecret || f.kind == fieldNumber
}

// fieldForm is a vertical list of fields with inline validation. Errors are
// shown once the form was submitted and then follow every edit.
type fieldForm struct {
	fields  []*formField
	focus   int
	errors  forms.FieldErrors
	touched bool
	check   func(*fieldForm) forms.FieldErrors
}

func newFieldForm(check func(*fieldForm) forms.FieldErrors, fields ...*formField) *fieldForm {
	return &fieldForm{fields: fields, errors: forms.FieldErrors{}, check: check}
}

func (f *fieldForm) field(key string) *formField {
	for _, fld := range f.fields {
		if fld.key == key {
			return fld
		}
	}
	return nil
}

// Value returns the text of key. Choices yield the selected option.
func (f *fieldForm) Value(key string) string {
	fld := f.field(key)
	switch {
	case fld == nil:
		return ""
	case fld.kind == fieldChoice:
		if len(fld.options) == 0 {
			return ""
		}
		return fld.options[fld.choice]
	case fld.kind == fieldCheck:
		return strconv.FormatBool(fld.checked)
	default:
		return fld.input.Value()
	}
}

// Int parses key as a number; anything unparsable is 0.
func (f *fieldForm) Int(key string) int {
	n, err := strconv.Atoi(strings.TrimSpace(f.Value(key)))
	if err != nil {
		return 0
	}
	return n
}

func (f *fieldForm) Checked(key string) bool {
	fld := f.field(key)
	return fld != nil && fld.checked
}

// SetValue replaces the value of key and revalidates.
func (f *fieldForm) SetValue(key, value string) {
	fld := f.field(key)
	if fld == nil {
		return
	}
	switch fld.kind {
	case fieldChoice:
		for i, opt := range fld.options {
			if opt == value {
				fld.choice = i
			}
		}
	case fieldCheck:
		fld.checked = value == "true"
	default:
		fld.input.SetValue(value)
	}
	f.revalidate()
}

func (f *fieldForm) Focus() tea.Cmd {
	f.Blur()
	if fld := f.fields[f.focus]; fld.hasInput() {
		return fld.input.Focus()
	}
	return nil
}

func (f *fieldForm) Blur() {
	for _, fld := range f.fields {
		if fld.hasInput() {
			fld.input.Blur()
		}
	}
}

func (f *fieldForm) move(delta int) tea.Cmd {
	n := len(f.fields)
	f.focus = ((f.focus+delta)%n + n) % n
	return f.Focus()
}

// Validate marks the form touched and reports whether it is valid.
func (f *fieldForm) Validate() bool {
	f.touched = true
	f.errors = f.check(f)
	return f.errors.Valid()
}

func (f *fieldForm) Errors() forms.FieldErrors {
	return f.errors
}

func (f *fieldForm) revalidate() {
	if f.touched {
		f.errors = f.check(f)
	}
}

// Reset clears every field and hides the errors.
func (f *fieldForm) Reset() {
	for _, fld := range f.fields {
		fld.choice = 0
		fld.checked = false
		if fld.hasInput() {
			fld.input.Reset()
		}
	}
	f.touched = false
	f.errors = forms.FieldErrors{}
	f.focus = 0
}

// Update feeds a message to the focused field. submit is true when enter is
// pressed on the last field.
func (f *fieldForm) Update(msg tea.Msg) (submit bool, cmd tea.Cmd) {
	fld := f.fields[f.focus]
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "tab", "down":
			return false, f.move(1)
		case "shift+tab", "up":
			return false, f.move(-1)
		case "enter":
			if f.focus < len(f.fields)-1 {
				return false, f.move(1)
			}
			return true, nil
		}
		switch fld.kind {
		case fieldChoice:
			switch key.String() {
			case " ", "space", "right", "l":
				fld.choice = (fld.choice + 1) % max(len(fld.options), 1)
			case "left", "h":
				fld.choice = (fld.choice - 1 + len(fld.options)) % max(len(fld.options), 1)
			}
			f.revalidate()
			return false, nil
		case fieldCheck:
			if s := key.String(); s == " " || s == "space" {
				fld.checked = !fld.checked
				f.revalidate()
			}
			return false, nil
		case fieldNumber:
			if key.Type == tea.KeyRunes && strings.TrimFunc(string(key.Runes), isDigit) != "" {
				return false, nil
			}
		}
	}
	if !fld.hasInput() {
		return false, nil
	}
	fld.input, cmd = fld.input.Update(msg)
	f.revalidate()
	return false, cmd
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func (f *fieldForm) View() string {
	labelWidth := 0
	for _, fld := range f.fields {
		labelWidth = max(labelWidth, lipgloss.Width(fld.label))
	}
	label := lipgloss.NewStyle().Width(labelWidth + 2)
	indent := strings.Repeat(" ", labelWidth+4)

	var b strings.Builder
	for i, fld := range f.fields {
		marker := "  "
		if i == f.focus {
			marker = navActiveStyle.Render("› ")
		}
		b.WriteString(marker + label.Render(fld.label) + fld.view())
		b.WriteRune('\n')
		if msg := f.errors[fld.key]; msg != "" {
			b.WriteString(errorStyle.Render(indent + msg))
			b.WriteRune('\n')
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func (f *formField) view() string {
	switch f.kind {
	case fieldChoice:
		parts := make([]string, len(f.options))
		for i, opt := range f.options {
			if i == f.choice {
				parts[i] = navActiveStyle.Render("(•) " + opt)
			} else {
				parts[i] = hintStyle.Render("( ) " + opt)
			}
		}
		return strings.Join(parts, "  ")
	case fieldCheck:
		if f.checked {
			return "[x]"
		}
		return "[ ]"
	default:
		return f.input.View()
	}
}
