// Package buffer implements the line-oriented document model for quill.
//
// Coordinates are 0-based Position{X, Y}: Y is the row index and X is a
// grapheme-cluster index within that row, never a byte or rune offset.
// Out-of-range positions are clamped or ignored; no operation panics on a
// stale cursor.
package buffer
