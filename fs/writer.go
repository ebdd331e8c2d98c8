// Package fs persists the output payload to the local filesystem.
package fs

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/jomaia7338/tarifs"
)

// Ensure Writer implements tarifs.PayloadWriter at compile time.
var _ tarifs.PayloadWriter = (*Writer)(nil)

// Writer writes the payload as indented JSON to a fixed path, replacing the
// previous file wholesale on every run.
type Writer struct {
	path string
}

// NewWriter creates a Writer targeting path. Missing parent directories are
// created on write.
func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

// Path returns the target file path.
func (w *Writer) Path() string {
	return w.path
}

// WritePayload serializes p and replaces the target file. The payload is
// encoded to memory first, so a validation or encoding failure leaves any
// existing file untouched. Non-ASCII characters are written literally and
// the document is indented with two spaces.
func (w *Writer) WritePayload(ctx context.Context, p *tarifs.Payload) error {
	if err := p.Validate(); err != nil {
		return err
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(p); err != nil {
		return tarifs.Errorf(tarifs.EINTERNAL, "encode payload: %v", err)
	}

	if dir := filepath.Dir(w.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return tarifs.Errorf(tarifs.EINTERNAL, "create output directory %s: %v", dir, err)
		}
	}
	if err := os.WriteFile(w.path, buf.Bytes(), 0o644); err != nil {
		return tarifs.Errorf(tarifs.EINTERNAL, "write %s: %v", w.path, err)
	}
	return nil
}
