package buffer

import (
	"github.com/muesli/termenv"

	"github.com/iw2rmb/quill/internal/grapheme"
)

// Highlight classifies one grapheme of a row.
type Highlight uint8

const (
	HighlightNone Highlight = iota
	HighlightNumber
	HighlightMatch
)

func (h Highlight) String() string {
	switch h {
	case HighlightNumber:
		return "number"
	case HighlightMatch:
		return "match"
	default:
		return "none"
	}
}

// ResetMarker terminates every rendered span.
const ResetMarker = termenv.CSI + termenv.ResetSeq + "m"

// Palette maps highlight classes to foreground colours. A nil or empty colour
// renders as ResetMarker.
type Palette struct {
	None   termenv.Color
	Number termenv.Color
	Match  termenv.Color
}

func DefaultPalette() Palette {
	return Palette{
		None:   termenv.NoColor{},
		Number: termenv.RGBColor("#dca3a3"),
		Match:  termenv.RGBColor("#268bd2"),
	}
}

// Marker returns the SGR sequence that starts a run of h.
func (p Palette) Marker(h Highlight) string {
	var c termenv.Color
	switch h {
	case HighlightNumber:
		c = p.Number
	case HighlightMatch:
		c = p.Match
	default:
		c = p.None
	}
	if c == nil {
		return ResetMarker
	}
	seq := c.Sequence(false)
	if seq == "" {
		return ResetMarker
	}
	return termenv.CSI + seq + "m"
}

type matchSpan struct {
	start, end int
}

// Highlight recomputes the row's overlay from scratch. A non-empty word
// marks every non-overlapping occurrence as HighlightMatch; other ASCII
// digits are HighlightNumber. The word is kept and reused when later
// mutations recompute the overlay.
func (r *Row) Highlight(word string) {
	r.word = word
	bounds := grapheme.Boundaries(r.text)

	var matches []matchSpan
	if word != "" {
		at := 0
		for {
			start, end, ok := r.findSpan(bounds, word, at, Forward)
			if !ok {
				break
			}
			matches = append(matches, matchSpan{start: start, end: end})
			at = end
		}
	}

	hl := make([]Highlight, r.n)
	next := 0
	for i := 0; i < r.n; {
		if next < len(matches) && matches[next].start == i {
			for ; i < matches[next].end && i < r.n; i++ {
				hl[i] = HighlightMatch
			}
			next++
			continue
		}
		if grapheme.IsDigit(r.text[bounds[i]:bounds[i+1]]) {
			hl[i] = HighlightNumber
		}
		i++
	}
	r.hl = hl
}

// Highlighting returns a copy of the per-grapheme overlay.
func (r *Row) Highlighting() []Highlight {
	return append([]Highlight(nil), r.hl...)
}

func (r *Row) highlightAt(i int) Highlight {
	if i < 0 || i >= len(r.hl) {
		return HighlightNone
	}
	return r.hl[i]
}
