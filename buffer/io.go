package buffer

import (
	"bufio"
	"io"
	"os"
	"unicode/utf8"
)

var newline = []byte{'\n'}

// Open reads path into a new document. Unreadable files and content that is
// not valid UTF-8 fail with *LoadError.
func Open(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	if !utf8.Valid(data) {
		return nil, &LoadError{Path: path, Err: ErrInvalidUTF8}
	}
	d := FromText(string(data))
	d.path = path
	return d, nil
}

// WriteTo writes every row followed by a single '\n'. A short write is
// reported as io.ErrShortWrite.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, row := range d.rows {
		for _, chunk := range [][]byte{row.Bytes(), newline} {
			n, err := w.Write(chunk)
			total += int64(n)
			if err != nil {
				return total, err
			}
			if n != len(chunk) {
				return total, io.ErrShortWrite
			}
		}
	}
	return total, nil
}

// Save overwrites the document's file and clears the dirty flag. An unnamed
// document fails with ErrNoPath; a failed write leaves dirty untouched.
func (d *Document) Save() error {
	if d.path == "" {
		return &SaveError{Err: ErrNoPath}
	}
	if err := d.writeFile(d.path); err != nil {
		return &SaveError{Path: d.path, Err: err}
	}
	d.dirty = false
	return nil
}

// SaveAs associates the document with path and saves it there.
func (d *Document) SaveAs(path string) error {
	if path == "" {
		return &SaveError{Err: ErrNoPath}
	}
	d.path = path
	return d.Save()
}

func (d *Document) writeFile(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	w := bufio.NewWriter(f)
	if _, err := d.WriteTo(w); err != nil {
		return err
	}
	return w.Flush()
}
