package editor

import (
	"log/slog"
	"time"

	"github.com/iw2rmb/quill/buffer"
	"github.com/iw2rmb/quill/internal/watch"
)

// Config configures the editor Model.
type Config struct {
	// Document to edit. nil starts an empty, unnamed document.
	Document *buffer.Document

	// Rendering options.
	ShowLineNums bool
	Style        Style
	Palette      buffer.Palette

	KeyMap   KeyMap
	ReadOnly bool

	// QuitTimes is the number of extra quit presses required while the
	// document has unsaved changes.
	QuitTimes      int
	MessageTimeout time.Duration

	// Changes, when set, delivers on-disk changes of the open file.
	Changes <-chan watch.Event

	Logger *slog.Logger
	// Now is the clock used for message expiry (default: time.Now).
	Now func() time.Time
}

const defaultMessageTimeout = 5 * time.Second

func (c Config) withDefaults() Config {
	if c.Document == nil {
		c.Document = buffer.New()
	}
	if c.KeyMap.isZero() {
		c.KeyMap = DefaultKeyMap()
	}
	if c.Palette == (buffer.Palette{}) {
		c.Palette = buffer.DefaultPalette()
	}
	if c.QuitTimes < 0 {
		c.QuitTimes = 0
	}
	if c.MessageTimeout <= 0 {
		c.MessageTimeout = defaultMessageTimeout
	}
	if c.Logger == nil {
		c.Logger = slog.New(slog.DiscardHandler)
	}
	if c.Now == nil {
		c.Now = time.Now
	}
	return c
}
