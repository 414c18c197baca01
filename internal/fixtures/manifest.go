package fixtures

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// Manifest tracks what has been recorded.
type Manifest struct {
	Version     int         `json:"version"`
	GeneratedAt time.Time   `json:"generatedAt"`
	Recordings  []Recording `json:"recordings"`
}

// Recording describes one recorded response.
type Recording struct {
	Path       string    `json:"path"`
	RecordedAt time.Time `json:"recordedAt"`
	Bytes      int       `json:"bytes"`
}

func defaultManifest() Manifest {
	return Manifest{
		Version:     1,
		GeneratedAt: time.Now().UTC(),
		Recordings:  []Recording{},
	}
}

func (m *Manifest) upsert(rec Recording) {
	for i := range m.Recordings {
		if m.Recordings[i].Path == rec.Path {
			m.Recordings[i] = rec
			return
		}
	}
	m.Recordings = append(m.Recordings, rec)
	sort.Slice(m.Recordings, func(i, j int) bool {
		return m.Recordings[i].Path < m.Recordings[j].Path
	})
}

// ReadManifest loads the manifest under basePath. On error it also returns a
// fresh manifest; a missing file yields an error matching fs.ErrNotExist.
func ReadManifest(basePath string) (Manifest, error) {
	f, err := os.Open(filepath.Join(basePath, manifestName))
	if err != nil {
		return defaultManifest(), err
	}
	defer f.Close()
	var m Manifest
	if err := json.NewDecoder(f).Decode(&m); err != nil {
		return defaultManifest(), err
	}
	return m, nil
}

func writeManifest(basePath string, m Manifest) error {
	m.GeneratedAt = time.Now().UTC()
	path := filepath.Join(basePath, manifestName)
	tmp := path + ".tmp"
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
