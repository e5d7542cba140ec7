package editor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/quill"
	"github.com/iw2rmb/quill/buffer"
	graphemeutil "github.com/iw2rmb/quill/internal/grapheme"
)

const maxStatusName = 20

func (m Model) View() string {
	if m.quitting || m.width <= 0 || m.height <= 0 {
		return ""
	}

	size := m.textSize()
	out := make([]string, 0, size.Height+2)
	for i := 0; i < size.Height; i++ {
		out = append(out, m.renderLine(i, size))
	}
	out = append(out, m.renderStatusBar())
	if m.height > 1 {
		out = append(out, m.renderMessageBar())
	}
	if len(out) > m.height {
		out = out[len(out)-m.height:]
	}
	return strings.Join(out, "\n")
}

func (m Model) renderLine(screenRow int, size buffer.Size) string {
	y := m.offset.Y + screenRow
	row, ok := m.doc.Row(y)
	if !ok {
		if m.doc.IsEmpty() && screenRow == size.Height/3 {
			return m.renderWelcome()
		}
		return m.cfg.Style.Filler.Render("~")
	}

	var sb strings.Builder
	if m.cfg.ShowLineNums {
		digits := gutterDigits(m.doc.LineCount())
		sb.WriteString(m.cfg.Style.LineNum.Render(fmt.Sprintf("%*d", digits, y+1)))
		sb.WriteString(m.cfg.Style.Gutter.Render(" "))
	}
	sb.WriteString(m.renderRow(row, y, size.Width))
	return sb.String()
}

// renderRow paints the visible grapheme window of row. The cursor cell is
// drawn with Style.Cursor unless a prompt owns the cursor.
func (m Model) renderRow(row *buffer.Row, y, width int) string {
	start, end := m.offset.X, m.offset.X+width
	p := m.cfg.Palette
	cx := m.cursor.X
	if y != m.cursor.Y || m.prompt != nil || cx < start || cx >= end {
		return row.RenderWith(start, end, p)
	}

	cell := row.Slice(cx, cx+1)
	if cell == "" || cell == "\t" {
		cell = " "
	}
	return row.RenderWith(start, cx, p) + m.cfg.Style.Cursor.Render(cell) + row.RenderWith(cx+1, end, p)
}

func (m Model) renderWelcome() string {
	msg := quill.Welcome()
	pad := maxInt(m.width-lipgloss.Width(msg), 0) / 2
	line := "~" + strings.Repeat(" ", maxInt(pad-1, 0)) + m.cfg.Style.Welcome.Render(msg)
	return lipgloss.NewStyle().MaxWidth(m.width).Render(line)
}

func (m Model) renderStatusBar() string {
	name := "[No Name]"
	if p := m.doc.Path(); p != "" {
		name = graphemeutil.Slice(p, 0, maxStatusName)
	}
	left := fmt.Sprintf("%s - %d lines", name, m.doc.LineCount())
	if m.doc.IsDirty() {
		left += " (modified)"
	}

	ft := m.lang
	if ft == "" {
		ft = "no ft"
	}
	right := fmt.Sprintf("%s | %d/%d", ft, m.cursor.Y+1, m.doc.LineCount())

	gap := maxInt(m.width-lipgloss.Width(left)-lipgloss.Width(right), 0)
	line := left + strings.Repeat(" ", gap) + right
	return m.cfg.Style.StatusBar.Inline(true).MaxWidth(m.width).Render(line)
}

func (m Model) renderMessageBar() string {
	if m.prompt != nil {
		return lipgloss.NewStyle().MaxWidth(m.width).Render(m.prompt.input.View())
	}
	return m.cfg.Style.Message.Inline(true).MaxWidth(m.width).Render(m.StatusMessage())
}
