package editor

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/quill/buffer"
)

// Model is a Bubble Tea component that edits a buffer.Document.
type Model struct {
	cfg Config
	doc *buffer.Document

	cursor buffer.Position
	offset buffer.Position
	width  int
	height int

	status    statusMessage
	quitTimes int
	prompt    *prompt
	quitting  bool
	lang      string

	// lastSave suppresses change notifications caused by our own writes.
	lastSave time.Time
}

type statusMessage struct {
	text string
	at   time.Time
}

func New(cfg Config) Model {
	cfg = cfg.withDefaults()
	m := Model{
		cfg:       cfg,
		doc:       cfg.Document,
		quitTimes: cfg.QuitTimes,
	}
	m.lang = detectLanguage(m.doc)
	m.setStatus("HELP: %s = save | %s = find | %s = quit",
		m.cfg.KeyMap.Save.Help().Key, m.cfg.KeyMap.Find.Help().Key, m.cfg.KeyMap.Quit.Help().Key)
	return m
}

func (m Model) Document() *buffer.Document { return m.doc }

func (m Model) Cursor() buffer.Position { return m.cursor }

// Offset returns the top-left document position currently visible.
func (m Model) Offset() buffer.Position { return m.offset }

func (m Model) Quitting() bool { return m.quitting }

func (m Model) Init() tea.Cmd { return m.waitForChange() }

func (m Model) SetSize(width, height int) Model {
	m.width = maxInt(width, 0)
	m.height = maxInt(height, 0)
	m.scroll()
	return m
}

// SetCursor moves the cursor to p, clamped to the document.
func (m Model) SetCursor(p buffer.Position) Model {
	m.cursor = m.doc.ClampCursor(p)
	m.scroll()
	return m
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		if m.prompt != nil {
			return m.updatePrompt(msg)
		}
		return m.updateKey(msg)
	case fileChangedMsg:
		if msg.closed {
			return m, nil
		}
		m.handleFileChanged(msg)
		return m, m.waitForChange()
	}
	return m, nil
}

func (m *Model) setStatus(format string, args ...any) {
	m.status = statusMessage{text: fmt.Sprintf(format, args...), at: m.cfg.Now()}
}

// Notify replaces the message bar text.
func (m Model) Notify(format string, args ...any) Model {
	m.setStatus(format, args...)
	return m
}

// StatusMessage returns the message bar text while it has not expired.
func (m Model) StatusMessage() string {
	if m.status.text == "" || m.cfg.Now().Sub(m.status.at) >= m.cfg.MessageTimeout {
		return ""
	}
	return m.status.text
}

func (m *Model) scroll() {
	m.offset = buffer.Scroll(m.cursor, m.textSize(), m.offset)
}

// textSize is the viewport extent left for document rows after the gutter
// and the two bars.
func (m Model) textSize() buffer.Size {
	return buffer.Size{
		Width:  maxInt(m.width-m.gutterWidth(), 0),
		Height: maxInt(m.height-2, 0),
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
