package editor

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/quill/buffer"
)

const searchPrompt = "Search (ESC to cancel, Arrows to navigate): "

// startSearch runs an incremental search. Every keystroke re-runs the query
// from the cursor: Right/Down step past the current match and search
// forward, Left/Up search backward. Esc restores the cursor and viewport.
func (m *Model) startSearch() {
	savedCursor, savedOffset := m.cursor, m.offset

	onKey := func(m *Model, msg tea.KeyMsg, query string) {
		dir := buffer.Forward
		moved := false
		switch msg.Type {
		case tea.KeyRight, tea.KeyDown:
			m.move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirRight})
			moved = true
		case tea.KeyLeft, tea.KeyUp:
			dir = buffer.Backward
		}

		pos, found := m.doc.Find(query, m.cursor, dir)
		if found {
			m.cursor = pos
		} else if moved {
			m.move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirLeft})
		}
		m.cfg.Logger.Debug("search step", "query", query, "dir", dir, "found", found)
		m.doc.HighlightAll(query)
	}

	onDone := func(m *Model, query string, ok bool) {
		m.doc.HighlightAll("")
		if !ok {
			m.cursor, m.offset = savedCursor, savedOffset
			return
		}
		m.cfg.Logger.Debug("search", "query", query, "line", m.cursor.Y+1,
			"before_start", buffer.ComparePos(m.cursor, savedCursor) < 0)
	}

	m.startPrompt(searchPrompt, onKey, onDone)
}
