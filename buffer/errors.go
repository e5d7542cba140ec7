package buffer

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidUTF8 reports a source that is not valid UTF-8 text.
	ErrInvalidUTF8 = errors.New("content is not valid UTF-8")
	// ErrNoPath reports a save of a document that has no file name yet.
	ErrNoPath = errors.New("no file name")
)

// LoadError is returned by Open when the source cannot be read or decoded.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// SaveError is returned by Save and SaveAs when the destination cannot be
// written. The document stays dirty.
type SaveError struct {
	Path string
	Err  error
}

func (e *SaveError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("save: %v", e.Err)
	}
	return fmt.Sprintf("save %s: %v", e.Path, e.Err)
}

func (e *SaveError) Unwrap() error { return e.Err }
