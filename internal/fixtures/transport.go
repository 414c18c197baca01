package fixtures

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"strings"

	"github.com/preston-bernstein/fantasydata-client/internal/logging"
)

// Transport is an http.RoundTripper that answers GET requests from a Store
// instead of the network. Query parameters, including the API key, are ignored.
type Transport struct {
	store  *Store
	logger *slog.Logger
	prefix string
}

// NewTransport returns a Transport replaying recordings from store.
func NewTransport(store *Store, logger *slog.Logger) *Transport {
	return &Transport{store: store, logger: logger}
}

// StripPrefix removes the escaped base path prefix (e.g. /v3/nfl) from request
// paths before lookup, so recordings stay keyed by /{subscription}/{format}/...
// Requests outside the prefix are answered 404.
func (t *Transport) StripPrefix(prefix string) *Transport {
	t.prefix = strings.TrimSuffix(prefix, "/")
	return t
}

func (t *Transport) requestPath(u *url.URL) (string, bool) {
	escaped := u.EscapedPath()
	if t.prefix == "" {
		return escaped, true
	}
	rest, ok := strings.CutPrefix(escaped, t.prefix)
	if !ok || !strings.HasPrefix(rest, "/") {
		return "", false
	}
	return rest, true
}

// RoundTrip implements http.RoundTripper.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Body != nil {
		_ = req.Body.Close()
	}
	if req.Method != http.MethodGet {
		return respond(req, http.StatusMethodNotAllowed, "text/plain", []byte("method not allowed")), nil
	}

	requestPath, ok := t.requestPath(req.URL)
	var body []byte
	err := ErrNotRecorded
	if ok {
		body, err = t.store.Load(requestPath)
	}
	switch {
	case err == nil:
		logging.Debug(t.logger, "served recorded response",
			slog.String(logging.FieldPath, req.URL.Path),
			slog.Int(logging.FieldBytes, len(body)),
		)
		return respond(req, http.StatusOK, contentType(requestPath), body), nil
	case errors.Is(err, ErrNotRecorded), errors.Is(err, ErrInvalidPath):
		logging.Warn(t.logger, "no recorded response", slog.String(logging.FieldPath, req.URL.Path))
		return respond(req, http.StatusNotFound, "application/json", []byte(`{"Message":"no recorded response"}`)), nil
	default:
		return nil, err
	}
}

func contentType(requestPath string) string {
	if rel, err := RecordingPath(requestPath); err == nil && strings.EqualFold(path.Ext(rel), ".xml") {
		return "application/xml"
	}
	return "application/json"
}

func respond(req *http.Request, status int, ctype string, body []byte) *http.Response {
	header := make(http.Header)
	header.Set("Content-Type", ctype)
	header.Set("Content-Length", strconv.Itoa(len(body)))
	return &http.Response{
		Status:        strconv.Itoa(status) + " " + http.StatusText(status),
		StatusCode:    status,
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        header,
		Body:          io.NopCloser(bytes.NewReader(body)),
		ContentLength: int64(len(body)),
		Request:       req,
	}
}
