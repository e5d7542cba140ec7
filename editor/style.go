package editor

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/iw2rmb/quill/buffer"
)

// Style controls the editor's chrome. Row text colours come from the
// buffer.Palette in Config.
type Style struct {
	Gutter  lipgloss.Style
	LineNum lipgloss.Style

	Filler    lipgloss.Style
	Welcome   lipgloss.Style
	Cursor    lipgloss.Style
	StatusBar lipgloss.Style
	Message   lipgloss.Style
}

func DefaultStyle() Style {
	gutter := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	return Style{
		Gutter:    gutter,
		LineNum:   gutter,
		Filler:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Welcome:   lipgloss.NewStyle().Bold(true),
		Cursor:    lipgloss.NewStyle().Reverse(true),
		StatusBar: lipgloss.NewStyle().Foreground(lipgloss.Color("16")).Background(lipgloss.Color("250")),
		Message:   lipgloss.NewStyle(),
	}
}

// HighlightPalette builds a row palette from colour strings ("#rrggbb" or an
// ANSI index). Empty strings keep the default colour for that class.
func HighlightPalette(number, match string) buffer.Palette {
	p := buffer.DefaultPalette()
	if number != "" {
		p.Number = termenv.TrueColor.Color(number)
	}
	if match != "" {
		p.Match = termenv.TrueColor.Color(match)
	}
	return p
}
