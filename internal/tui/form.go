package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const inputWidth = 40

func newInput(placeholder string, charLimit int, secret bool) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.Width = inputWidth
	if charLimit > 0 {
		in.CharLimit = charLimit
	}
	if secret {
		in.EchoMode = textinput.EchoPassword
		in.EchoCharacter = '*'
	}
	return in
}

// inputForm is a column of text inputs with one focused at a time.
type inputForm struct {
	inputs []textinput.Model
	focus  int
}

func newInputForm(inputs ...textinput.Model) inputForm {
	f := inputForm{inputs: inputs}
	if len(f.inputs) > 0 {
		f.inputs[0].Focus()
	}
	return f
}

func (f *inputForm) focusNext() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + 1) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f *inputForm) focusPrev() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus - 1 + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

// update forwards msg to the focused input.
func (f *inputForm) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *inputForm) value(i int) string {
	return strings.TrimSpace(f.inputs[i].Value())
}

// raw returns the input untrimmed, for passwords.
func (f *inputForm) raw(i int) string {
	return f.inputs[i].Value()
}

func (f *inputForm) set(i int, v string) {
	f.inputs[i].SetValue(v)
}

func (f *inputForm) reset() {
	for i := range f.inputs {
		f.inputs[i].SetValue("")
		f.inputs[i].Blur()
	}
	f.focus = 0
	f.inputs[f.focus].Focus()
}

// rows renders "label │ [input]" lines with labels padded to one width.
func (f *inputForm) rows(labels ...string) string {
	width := len([]rune("Поле"))
	for _, l := range labels {
		if n := len([]rune(l)); n > width {
			width = n
		}
	}

	var b strings.Builder
	b.WriteString(padRight("Поле", width) + " │ Значение\n")
	b.WriteString(strings.Repeat("─", width) + "─┼─" + strings.Repeat("─", inputWidth+4) + "\n")
	for i, l := range labels {
		b.WriteString(padRight(l, width) + " │ [" + f.inputs[i].View() + "]\n")
	}
	return b.String()
}

func submitLine(label string, submitting bool) string {
	if submitting {
		return "\n[" + label + "...]\n"
	}
	return "\n[" + label + "]\n"
}

func errorLine(errMsg string) string {
	if errMsg == "" {
		return ""
	}
	return "\n" + errorStyle.Render("Ошибка: "+errMsg) + "\n"
}
