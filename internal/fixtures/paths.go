package fixtures

import (
	"errors"
	"net/url"
	"path"
	"strings"
)

// ErrInvalidPath is returned for request paths that cannot name a recording.
var ErrInvalidPath = errors.New("fixtures: invalid request path")

// RecordingPath maps a request path such as /developer/json/Standings/2013REG
// to its slash-separated recording path, developer/json/Standings/2013REG.json.
// The format segment doubles as the file extension.
func RecordingPath(requestPath string) (string, error) {
	trimmed := strings.Trim(requestPath, "/")
	if trimmed == "" {
		return "", ErrInvalidPath
	}
	raw := strings.Split(trimmed, "/")
	if len(raw) < 3 {
		return "", ErrInvalidPath
	}
	segs := make([]string, len(raw))
	for i, r := range raw {
		s, err := url.PathUnescape(r)
		if err != nil || s == "" || s == "." || s == ".." || strings.ContainsAny(s, `/\`) {
			return "", ErrInvalidPath
		}
		segs[i] = s
	}
	return path.Join(segs...) + "." + segs[1], nil
}
