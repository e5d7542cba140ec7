package editor

import (
	"path/filepath"

	"github.com/go-enry/go-enry/v2"

	"github.com/iw2rmb/quill/buffer"
)

// languageSample bounds how much of the document is classified.
const languageSample = 16 << 10

// detectLanguage names the document's language for the status bar, or ""
// when it is unnamed or unknown.
func detectLanguage(doc *buffer.Document) string {
	path := doc.Path()
	if path == "" {
		return ""
	}
	content := doc.Text()
	if len(content) > languageSample {
		content = content[:languageSample]
	}
	return enry.GetLanguage(filepath.Base(path), []byte(content))
}
