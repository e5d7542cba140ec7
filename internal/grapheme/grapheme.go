// Package grapheme wraps uniseg segmentation for the buffer: every row index
// in quill is a grapheme-cluster index, and these helpers are the only place
// that maps between clusters and UTF-8 byte offsets.
package grapheme

import (
	"sort"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(text)
}

// Slice returns the grapheme-safe substring for [start, end).
func Slice(text string, start, end int) string {
	if text == "" {
		return ""
	}
	if start < 0 {
		start = 0
	}
	if end <= start {
		return ""
	}

	bounds := Boundaries(text)
	n := len(bounds) - 1
	if start >= n {
		return ""
	}
	if end > n {
		end = n
	}
	return text[bounds[start]:bounds[end]]
}

// Boundaries returns the byte offset of every cluster start followed by
// len(text), so cluster i spans text[b[i]:b[i+1]].
func Boundaries(text string) []int {
	out := make([]int, 0, len(text)+1)
	if text == "" {
		return append(out, 0)
	}
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		from, _ := g.Positions()
		out = append(out, from)
	}
	return append(out, len(text))
}

// ByteOffset returns the byte offset where cluster idx starts. idx is clamped
// to [0, Count(text)]; the clamped end maps to len(text).
func ByteOffset(text string, idx int) int {
	if idx <= 0 || text == "" {
		return 0
	}
	bounds := Boundaries(text)
	if idx >= len(bounds) {
		return len(text)
	}
	return bounds[idx]
}

// IndexAt returns the cluster index whose start is exactly byte offset off.
// ok is false when off falls inside a cluster.
func IndexAt(bounds []int, off int) (idx int, ok bool) {
	i := sort.SearchInts(bounds, off)
	if i < len(bounds) && bounds[i] == off {
		return i, true
	}
	return 0, false
}

// Width returns the terminal cell width of a single cluster.
func Width(cluster string) int {
	w := runewidth.StringWidth(cluster)
	if w < 0 {
		w = 0
	}
	if w == 0 {
		if fallback := uniseg.StringWidth(cluster); fallback > w {
			w = fallback
		}
	}
	return w
}

// IsDigit reports whether cluster is exactly one ASCII digit.
func IsDigit(cluster string) bool {
	return len(cluster) == 1 && cluster[0] >= '0' && cluster[0] <= '9'
}
