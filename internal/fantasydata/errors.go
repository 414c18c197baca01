package fantasydata

import (
	"errors"
	"fmt"
)

// ErrUnsupportedFormat is returned when typed decoding is requested for a non-JSON format.
var ErrUnsupportedFormat = errors.New("fantasydata: typed decoding requires json format")

// StatusError is returned for any non-200 response. The remote body is kept so
// errors such as an unknown subscription tier surface as the service wrote them.
type StatusError struct {
	StatusCode int
	Status     string
	URL        string
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("fantasydata: unexpected status %d from %s: %s", e.StatusCode, e.URL, e.Body)
	}
	return fmt.Sprintf("fantasydata: unexpected status %d from %s", e.StatusCode, e.URL)
}

// Temporary reports whether retrying the call could succeed.
func (e *StatusError) Temporary() bool {
	return e.StatusCode == 429 || e.StatusCode >= 500
}

// AsStatusError attempts to unwrap an error into a StatusError.
func AsStatusError(err error) (*StatusError, bool) {
	var sErr *StatusError
	if errors.As(err, &sErr) {
		return sErr, true
	}
	return nil, false
}
