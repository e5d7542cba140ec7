package editor

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// promptKeyFunc runs after every key the prompt receives, with the query as
// it stands after that key.
type promptKeyFunc func(m *Model, msg tea.KeyMsg, query string)

// promptDoneFunc runs once when the prompt closes. ok is false when the user
// cancelled or submitted an empty value.
type promptDoneFunc func(m *Model, value string, ok bool)

type prompt struct {
	input  textinput.Model
	onKey  promptKeyFunc
	onDone promptDoneFunc
}

func (m *Model) startPrompt(label string, onKey promptKeyFunc, onDone promptDoneFunc) {
	in := textinput.New()
	in.Prompt = label
	in.Focus()
	m.prompt = &prompt{input: in, onKey: onKey, onDone: onDone}
}

func (m Model) updatePrompt(msg tea.KeyMsg) (Model, tea.Cmd) {
	p := m.prompt

	switch msg.Type {
	case tea.KeyEnter:
		value := p.input.Value()
		m.prompt = nil
		m.finishPrompt(p, value, value != "")
		return m, nil
	case tea.KeyEsc:
		m.prompt = nil
		m.finishPrompt(p, "", false)
		return m, nil
	}

	var cmd tea.Cmd
	switch msg.Type {
	case tea.KeyLeft, tea.KeyRight, tea.KeyUp, tea.KeyDown:
		// Navigation keys steer the callback, not the input caret.
	default:
		p.input, cmd = p.input.Update(msg)
	}
	if p.onKey != nil {
		p.onKey(&m, msg, p.input.Value())
	}
	m.scroll()
	return m, cmd
}

func (m *Model) finishPrompt(p *prompt, value string, ok bool) {
	m.setStatus("")
	if p.onDone != nil {
		p.onDone(m, value, ok)
	}
	m.scroll()
}

// Prompting reports whether a prompt currently owns the message bar.
func (m Model) Prompting() bool { return m.prompt != nil }
