package fixtures

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

//go:embed data
var embedded embed.FS

// ErrNotRecorded is returned when no recording exists for a request path.
var ErrNotRecorded = errors.New("fixtures: response not recorded")

// Embedded returns the recordings shipped with the module.
func Embedded() fs.FS {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		panic(err)
	}
	return sub
}

// Store loads recorded response bodies.
type Store struct {
	fsys fs.FS
}

// NewStore constructs a store over fsys.
func NewStore(fsys fs.FS) *Store {
	return &Store{fsys: fsys}
}

// NewDirStore constructs a store rooted at dir on disk, or over the embedded
// recordings when dir is empty.
func NewDirStore(dir string) *Store {
	if dir == "" {
		return NewStore(Embedded())
	}
	return NewStore(os.DirFS(dir))
}

// Load returns the recorded body for requestPath.
func (s *Store) Load(requestPath string) ([]byte, error) {
	if s == nil || s.fsys == nil {
		return nil, errors.New("fixtures: store not configured")
	}
	rel, err := RecordingPath(requestPath)
	if err != nil {
		return nil, err
	}
	body, err := fs.ReadFile(s.fsys, rel)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotRecorded, rel)
	}
	return body, err
}

// Has reports whether a recording exists for requestPath.
func (s *Store) Has(requestPath string) bool {
	_, err := s.Load(requestPath)
	return err == nil
}
