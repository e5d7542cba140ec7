package editor

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/quill/internal/watch"
)

// ownWriteWindow is how long after a save on-disk changes are attributed to
// that save.
const ownWriteWindow = time.Second

type fileChangedMsg struct {
	event  watch.Event
	closed bool
}

func (m Model) waitForChange() tea.Cmd {
	ch := m.cfg.Changes
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-ch
		return fileChangedMsg{event: ev, closed: !ok}
	}
}

func (m *Model) handleFileChanged(msg fileChangedMsg) {
	if !m.lastSave.IsZero() && m.cfg.Now().Sub(m.lastSave) < ownWriteWindow {
		m.cfg.Logger.Debug("ignoring own write", "path", msg.event.Path, "op", msg.event.Op)
		return
	}
	m.cfg.Logger.Info("file changed on disk", "path", msg.event.Path, "op", msg.event.Op)
	m.setStatus("File changed on disk (%s)", msg.event.Op)
}
