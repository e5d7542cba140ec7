// Package editor provides a Bubble Tea screen editor backed by the buffer
// package.
//
// The package turns key events into buffer.Document edits, keeps the cursor
// inside a scrolled viewport, and paints visible rows with Row.Render plus a
// status bar and a message/prompt bar.
package editor
