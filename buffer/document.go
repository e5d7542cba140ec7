package buffer

import "strings"

// Document is an ordered sequence of rows plus its file association.
//
// A zero-row document is valid (an empty file). dirty is set by every call
// that changes the rows and cleared only by a successful save.
type Document struct {
	rows  []*Row
	path  string
	dirty bool

	// word is the active search term re-applied when a row is recomputed.
	word string
}

// New returns an empty, unnamed, clean document.
func New() *Document { return &Document{} }

// FromText builds an unnamed document from newline-separated text. A single
// trailing newline does not produce an extra row and a trailing '\r' is
// dropped from every line.
func FromText(text string) *Document {
	return &Document{rows: splitRows(text)}
}

func splitRows(text string) []*Row {
	if text == "" {
		return nil
	}
	parts := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	rows := make([]*Row, 0, len(parts))
	for _, line := range parts {
		rows = append(rows, NewRow(strings.TrimSuffix(line, "\r")))
	}
	return rows
}

// Row returns row y, if any.
func (d *Document) Row(y int) (*Row, bool) {
	if y < 0 || y >= len(d.rows) {
		return nil, false
	}
	return d.rows[y], true
}

func (d *Document) LineCount() int { return len(d.rows) }

func (d *Document) IsEmpty() bool { return len(d.rows) == 0 }

func (d *Document) IsDirty() bool { return d.dirty }

// Path returns the associated file name; "" means the document is unnamed.
func (d *Document) Path() string { return d.path }

func (d *Document) SetPath(path string) { d.path = path }

// Text returns the rows joined by '\n'.
func (d *Document) Text() string {
	var sb strings.Builder
	for i, row := range d.rows {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(row.text)
	}
	return sb.String()
}

// Insert inserts ch at pos. '\n' splits the row (see InsertNewline). pos.Y may
// be LineCount(), which appends a new row holding ch; anything further is
// ignored.
func (d *Document) Insert(pos Position, ch rune) {
	if pos.Y < 0 || pos.Y > len(d.rows) {
		return
	}
	if ch == '\n' {
		d.InsertNewline(pos)
		return
	}
	if pos.Y == len(d.rows) {
		row := &Row{word: d.word}
		row.Insert(0, ch)
		d.rows = append(d.rows, row)
	} else {
		d.rows[pos.Y].Insert(pos.X, ch)
	}
	d.dirty = true
}

// InsertNewline splits row pos.Y at pos.X, moving the tail into a new row
// right after it. At pos.Y == LineCount() an empty row is appended.
func (d *Document) InsertNewline(pos Position) {
	if pos.Y < 0 || pos.Y > len(d.rows) {
		return
	}
	if pos.Y == len(d.rows) {
		d.rows = append(d.rows, &Row{word: d.word})
		d.dirty = true
		return
	}

	tail := d.rows[pos.Y].Split(pos.X)
	d.rows = append(d.rows, nil)
	copy(d.rows[pos.Y+2:], d.rows[pos.Y+1:])
	d.rows[pos.Y+1] = tail
	d.dirty = true
}

// Delete removes the grapheme at pos. At the end of a row that has a
// successor, the successor is merged into it. The end of the last row and
// positions outside the document are no-ops.
func (d *Document) Delete(pos Position) {
	if pos.Y < 0 || pos.Y >= len(d.rows) {
		return
	}
	row := d.rows[pos.Y]
	if pos.X == row.Len() && pos.Y+1 < len(d.rows) {
		row.Append(d.rows[pos.Y+1])
		d.rows = append(d.rows[:pos.Y+1], d.rows[pos.Y+2:]...)
		d.dirty = true
		return
	}
	if pos.X < 0 || pos.X >= row.Len() {
		return
	}
	row.Delete(pos.X)
	d.dirty = true
}

// Find scans rows from from.Y in direction dir and returns the first match.
// Forward continues at column 0 of each following row; Backward continues
// from the end of each preceding row. The scan stops at the document
// boundary; it does not wrap.
func (d *Document) Find(query string, from Position, dir SearchDirection) (Position, bool) {
	if query == "" || from.Y < 0 || from.Y >= len(d.rows) {
		return Position{}, false
	}

	pos := from
	for {
		if x, ok := d.rows[pos.Y].Find(query, pos.X, dir); ok {
			return Position{X: x, Y: pos.Y}, true
		}
		if dir == Forward {
			if pos.Y+1 >= len(d.rows) {
				return Position{}, false
			}
			pos = Position{X: 0, Y: pos.Y + 1}
			continue
		}
		if pos.Y == 0 {
			return Position{}, false
		}
		pos.Y--
		pos.X = d.rows[pos.Y].Len()
	}
}

// HighlightAll recomputes every row's overlay for word ("" clears search
// matches) and keeps word active for subsequent edits.
func (d *Document) HighlightAll(word string) {
	d.word = word
	for _, row := range d.rows {
		row.Highlight(word)
	}
}

// SearchWord returns the word last passed to HighlightAll.
func (d *Document) SearchWord() string { return d.word }
