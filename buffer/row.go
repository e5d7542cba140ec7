package buffer

import (
	"strings"
	"unicode/utf8"

	"github.com/iw2rmb/quill/internal/grapheme"
)

// Row is one line of the document. Its text never contains '\n'.
//
// n caches the grapheme count of text and hl holds one Highlight per
// grapheme; both are refreshed after every mutation.
type Row struct {
	text string
	n    int
	hl   []Highlight
	word string
}

func NewRow(text string) *Row {
	r := &Row{text: text}
	r.update()
	return r
}

func (r *Row) update() {
	r.n = grapheme.Count(r.text)
	r.Highlight(r.word)
}

// Len returns the number of grapheme clusters in the row.
func (r *Row) Len() int { return r.n }

func (r *Row) IsEmpty() bool { return r.n == 0 }

func (r *Row) String() string { return r.text }

// Bytes returns a copy of the row's raw UTF-8 text.
func (r *Row) Bytes() []byte { return []byte(r.text) }

// Render returns graphemes [start, end) for painting with the default
// palette. See RenderWith.
func (r *Row) Render(start, end int) string {
	return r.RenderWith(start, end, DefaultPalette())
}

// RenderWith returns graphemes [start, end), clamped to the row, with tabs
// shown as a single space. A colour marker is emitted whenever the highlight
// class changes (the run starts as HighlightNone) and the output always ends
// with ResetMarker.
func (r *Row) RenderWith(start, end int, p Palette) string {
	end = clampInt(end, 0, r.n)
	start = clampInt(start, 0, end)

	var sb strings.Builder
	cur := HighlightNone
	if start < end {
		bounds := grapheme.Boundaries(r.text)
		sb.Grow(bounds[end] - bounds[start] + len(ResetMarker))
		for i := start; i < end; i++ {
			if h := r.highlightAt(i); h != cur {
				cur = h
				sb.WriteString(p.Marker(h))
			}
			g := r.text[bounds[i]:bounds[i+1]]
			if g == "\t" {
				sb.WriteByte(' ')
				continue
			}
			sb.WriteString(g)
		}
	}
	sb.WriteString(ResetMarker)
	return sb.String()
}

// Slice returns the plain text of graphemes [start, end), clamped.
func (r *Row) Slice(start, end int) string {
	return grapheme.Slice(r.text, start, end)
}

// Width returns the terminal cell width of graphemes [start, end) as Render
// paints them.
func (r *Row) Width(start, end int) int {
	end = clampInt(end, 0, r.n)
	start = clampInt(start, 0, end)
	if start == end {
		return 0
	}
	w := 0
	for _, g := range grapheme.Split(r.Slice(start, end)) {
		if g == "\t" {
			w++
			continue
		}
		w += grapheme.Width(g)
	}
	return w
}

// Insert inserts ch before grapheme at, or appends when at >= Len().
// '\n' is ignored; splitting a row is Document.InsertNewline's job.
//
// ch may combine with its neighbours (e.g. a combining accent), so the
// length is recounted rather than assumed to grow by one.
func (r *Row) Insert(at int, ch rune) {
	if ch == '\n' {
		return
	}
	off := len(r.text)
	if at < r.n {
		off = grapheme.ByteOffset(r.text, maxInt(at, 0))
	}
	r.text = r.text[:off] + string(ch) + r.text[off:]
	r.update()
}

// Delete removes grapheme at. Out-of-range indices are a no-op.
func (r *Row) Delete(at int) {
	if at < 0 || at >= r.n {
		return
	}
	bounds := grapheme.Boundaries(r.text)
	r.text = r.text[:bounds[at]] + r.text[bounds[at+1]:]
	r.update()
}

// Append concatenates other's text after this row's text.
func (r *Row) Append(other *Row) {
	if other == nil || other.text == "" {
		return
	}
	r.text += other.text
	r.update()
}

// Split truncates the row to graphemes [0, at) and returns a new row holding
// [at, Len()). at is clamped to [0, Len()].
func (r *Row) Split(at int) *Row {
	at = clampInt(at, 0, r.n)
	off := grapheme.ByteOffset(r.text, at)

	tail := &Row{text: r.text[off:], word: r.word}
	tail.update()

	r.text = r.text[:off]
	r.update()
	return tail
}

// Find returns the grapheme index of query in the row.
//
// Forward returns the first occurrence starting at or after from; Backward
// returns the last occurrence lying entirely before from. Matches must start
// and end on grapheme boundaries. ok is false for an empty query or a from
// outside [0, Len()].
func (r *Row) Find(query string, from int, dir SearchDirection) (int, bool) {
	start, _, ok := r.findSpan(grapheme.Boundaries(r.text), query, from, dir)
	return start, ok
}

func (r *Row) findSpan(bounds []int, query string, from int, dir SearchDirection) (start, end int, ok bool) {
	if query == "" || from < 0 || from > r.n {
		return 0, 0, false
	}

	if dir == Backward {
		hay := r.text[:bounds[from]]
		for {
			i := strings.LastIndex(hay, query)
			if i < 0 {
				return 0, 0, false
			}
			if s, e, aligned := alignedSpan(bounds, i, i+len(query)); aligned {
				return s, e, true
			}
			// Any earlier occurrence ends before the last byte of this one.
			hay = hay[:i+len(query)-1]
		}
	}

	off := bounds[from]
	for off < len(r.text) {
		i := strings.Index(r.text[off:], query)
		if i < 0 {
			return 0, 0, false
		}
		at := off + i
		if s, e, aligned := alignedSpan(bounds, at, at+len(query)); aligned {
			return s, e, true
		}
		_, size := utf8.DecodeRuneInString(r.text[at:])
		off = at + size
	}
	return 0, 0, false
}

func alignedSpan(bounds []int, from, to int) (start, end int, ok bool) {
	start, ok = grapheme.IndexAt(bounds, from)
	if !ok {
		return 0, 0, false
	}
	end, ok = grapheme.IndexAt(bounds, to)
	if !ok {
		return 0, 0, false
	}
	return start, end, true
}
