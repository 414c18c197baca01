package fixtures

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const manifestName = "manifest.json"

// Writer persists recorded responses under basePath and keeps the manifest current.
type Writer struct {
	mu       sync.Mutex
	basePath string
	now      func() time.Time
}

// NewWriter constructs a writer rooted at basePath.
func NewWriter(basePath string) *Writer {
	return &Writer{basePath: basePath, now: time.Now}
}

// BasePath exposes the writer root path (primarily for testing).
func (w *Writer) BasePath() string {
	if w == nil {
		return ""
	}
	return w.basePath
}

// Write records body for requestPath and returns the file written.
// Identical content is left in place; only the manifest is refreshed. A
// manifest that exists but cannot be decoded is an error; nothing is written.
func (w *Writer) Write(requestPath string, body []byte) (string, error) {
	if w == nil || w.basePath == "" {
		return "", fmt.Errorf("fixtures: writer not configured")
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	rel, err := RecordingPath(requestPath)
	if err != nil {
		return "", err
	}
	m, err := ReadManifest(w.basePath)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("fixtures: read manifest: %w", err)
	}

	target := filepath.Join(w.basePath, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return "", err
	}

	existing, readErr := os.ReadFile(target)
	if readErr != nil || !bytes.Equal(existing, body) {
		tmp := target + ".tmp"
		if err := os.WriteFile(tmp, body, 0o644); err != nil {
			return "", err
		}
		if err := os.Rename(tmp, target); err != nil {
			return "", err
		}
	}

	m.upsert(Recording{Path: rel, RecordedAt: w.now().UTC(), Bytes: len(body)})
	if err := writeManifest(w.basePath, m); err != nil {
		return "", err
	}
	return target, nil
}
