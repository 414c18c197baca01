package providers

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/preston-bernstein/fantasydata-client/internal/fantasydata"
	"github.com/preston-bernstein/fantasydata-client/internal/schema"
)

// ErrProviderUnavailable is returned when no upstream provider is configured.
var ErrProviderUnavailable = errors.New("standings provider unavailable")

// Retryable reports whether err is worth another attempt. Shape drift, client
// errors and malformed bodies will not change by asking again.
func Retryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	if errors.Is(err, ErrProviderUnavailable) || errors.Is(err, fantasydata.ErrUnsupportedFormat) || errors.Is(err, fantasydata.ErrMissingSegment) {
		return false
	}
	if schema.IsMismatch(err) {
		return false
	}
	if sErr, ok := fantasydata.AsStatusError(err); ok {
		return sErr.Temporary()
	}
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
		return false
	}
	return true
}
