package editor

import (
	"errors"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/quill/buffer"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	km := m.cfg.KeyMap

	if key.Matches(msg, km.Quit) {
		if m.doc.IsDirty() && m.quitTimes > 0 {
			m.setStatus("WARNING! File has unsaved changes. Press %s %d more times to quit.",
				km.Quit.Help().Key, m.quitTimes)
			m.quitTimes--
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit
	}

	switch {
	case key.Matches(msg, km.Save):
		m.save()
	case key.Matches(msg, km.Find):
		m.startSearch()

	case key.Matches(msg, km.Left):
		m.move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirLeft})
	case key.Matches(msg, km.Right):
		m.move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirRight})
	case key.Matches(msg, km.Up):
		m.move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirUp})
	case key.Matches(msg, km.Down):
		m.move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirDown})
	case key.Matches(msg, km.PageUp):
		m.move(buffer.Move{Unit: buffer.MovePage, Dir: buffer.DirUp, Rows: m.textSize().Height})
	case key.Matches(msg, km.PageDown):
		m.move(buffer.Move{Unit: buffer.MovePage, Dir: buffer.DirDown, Rows: m.textSize().Height})
	case key.Matches(msg, km.Home):
		m.move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirHome})
	case key.Matches(msg, km.End):
		m.move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirEnd})
	case key.Matches(msg, km.DocStart):
		m.move(buffer.Move{Unit: buffer.MoveDoc, Dir: buffer.DirHome})
	case key.Matches(msg, km.DocEnd):
		m.move(buffer.Move{Unit: buffer.MoveDoc, Dir: buffer.DirEnd})

	case key.Matches(msg, km.Backspace):
		if !m.cfg.ReadOnly && (m.cursor.X > 0 || m.cursor.Y > 0) {
			m.move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirLeft})
			m.doc.Delete(m.cursor)
		}
	case key.Matches(msg, km.Delete):
		if !m.cfg.ReadOnly {
			m.doc.Delete(m.cursor)
		}
	case key.Matches(msg, km.Enter):
		m.insert('\n')
	case key.Matches(msg, km.Tab):
		m.insert('\t')

	default:
		if (msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace) && !msg.Alt {
			for _, r := range msg.Runes {
				m.insert(r)
			}
		}
	}

	m.quitTimes = m.cfg.QuitTimes
	m.scroll()
	return m, nil
}

func (m *Model) move(mv buffer.Move) {
	m.cursor = m.doc.Move(m.cursor, mv)
}

// insert adds r at the cursor and advances past it by however many
// graphemes the row grew; a combining mark grows it by none. A newline lands
// the cursor at the start of the new row.
func (m *Model) insert(r rune) {
	if m.cfg.ReadOnly {
		return
	}
	before := 0
	if row, ok := m.doc.Row(m.cursor.Y); ok {
		before = row.Len()
	}
	m.doc.Insert(m.cursor, r)
	if r == '\n' {
		m.cursor = buffer.Position{X: 0, Y: m.cursor.Y + 1}
		return
	}
	if row, ok := m.doc.Row(m.cursor.Y); ok {
		m.cursor.X = minInt(maxInt(m.cursor.X+row.Len()-before, 0), row.Len())
	}
}

func (m *Model) save() {
	if m.cfg.ReadOnly {
		m.setStatus("Read-only: not saved.")
		return
	}
	if m.doc.Path() == "" {
		m.startPrompt("Save as: ", nil, func(m *Model, name string, ok bool) {
			if !ok || name == "" {
				m.setStatus("Save aborted.")
				return
			}
			m.writeDocument(func() error { return m.doc.SaveAs(name) })
			m.lang = detectLanguage(m.doc)
		})
		return
	}
	m.writeDocument(m.doc.Save)
}

func (m *Model) writeDocument(write func() error) {
	m.lastSave = m.cfg.Now()
	if err := write(); err != nil {
		m.cfg.Logger.Error("save failed", "path", m.doc.Path(), "err", err)
		if errors.Is(err, buffer.ErrNoPath) {
			m.setStatus("Save aborted: no file name.")
			return
		}
		m.setStatus("Can't save! I/O error: %v", err)
		return
	}
	m.cfg.Logger.Info("saved", "path", m.doc.Path(), "lines", m.doc.LineCount())
	m.setStatus("File saved successfully.")
}
