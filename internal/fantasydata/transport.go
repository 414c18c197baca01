package fantasydata

import (
	"net/http"
	"strings"
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// resolveHTTPClient copies the caller's client so the history transport can be
// installed without mutating it.
func resolveHTTPClient(client *http.Client, history *History) *http.Client {
	var out http.Client
	if client != nil {
		out = *client
	} else {
		out = http.Client{Timeout: defaultHTTPTimeout}
	}
	out.Transport = history.Wrap(out.Transport)
	return &out
}

func normalizeBaseURL(raw string) string {
	if raw == "" {
		raw = defaultBaseURL
	}
	return strings.TrimSuffix(raw, "/")
}

func resolveSubscription(s Subscription) Subscription {
	if s == "" {
		return defaultSubscription
	}
	return s
}

func resolveFormat(f Format) Format {
	if f == "" {
		return defaultFormat
	}
	return f
}
