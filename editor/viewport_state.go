package editor

// CursorScreen maps the cursor to viewport-local terminal cells, gutter
// included.
func (m Model) CursorScreen() (x, y int) {
	y = m.cursor.Y - m.offset.Y
	x = m.gutterWidth()
	if row, ok := m.doc.Row(m.cursor.Y); ok {
		x += row.Width(m.offset.X, m.cursor.X)
	}
	return x, y
}
