package providers

import (
	"context"
	"log/slog"

	"github.com/preston-bernstein/fantasydata-client/internal/fantasydata"
	"github.com/preston-bernstein/fantasydata-client/internal/fixtures"
	"github.com/preston-bernstein/fantasydata-client/internal/logging"
)

// Fetcher is the raw request side of *fantasydata.Client.
type Fetcher interface {
	NewRequest(resource string, params ...string) fantasydata.Request
	Get(ctx context.Context, req fantasydata.Request) (*fantasydata.Response, error)
}

var _ Fetcher = (*fantasydata.Client)(nil)

// Recording describes a response written to disk by Record.
type Recording struct {
	File string
	Path string
	Body []byte
}

// Record fetches resource with params and stores the 200 body through w under
// the request path, so a fixtures.Transport can replay it later.
func Record(ctx context.Context, f Fetcher, w *fixtures.Writer, resource string, params ...string) (Recording, error) {
	if f == nil {
		return Recording{}, ErrProviderUnavailable
	}
	req := f.NewRequest(resource, params...)
	if err := req.Validate(); err != nil {
		return Recording{}, err
	}

	resp, err := f.Get(ctx, req)
	if err != nil {
		return Recording{}, err
	}

	file, err := w.Write(req.Path(), resp.Body)
	if err != nil {
		return Recording{}, err
	}
	logging.Info(logging.FromContext(ctx, nil), "recorded response",
		slog.String(logging.FieldResource, resource),
		slog.String(logging.FieldPath, req.Path()),
		slog.Int(logging.FieldBytes, len(resp.Body)),
	)
	return Recording{File: file, Path: req.Path(), Body: resp.Body}, nil
}
