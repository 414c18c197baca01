package fantasydata

import (
	"net/http"
	"net/url"
	"sync"
	"time"
)

const defaultHistoryLimit = 32

// Exchange is one recorded round trip.
type Exchange struct {
	Method     string
	URL        *url.URL
	StatusCode int
	Duration   time.Duration
	Err        error
}

// EffectiveURL is the URL actually requested, API key included.
func (e Exchange) EffectiveURL() string {
	if e.URL == nil {
		return ""
	}
	return e.URL.String()
}

// RedactedURL is EffectiveURL with the API key hidden, safe for logs.
func (e Exchange) RedactedURL() string {
	return redactURL(e.URL)
}

// History is an http.RoundTripper that remembers recent exchanges, most
// importantly the effective URL of the last one.
type History struct {
	mu      sync.Mutex
	next    http.RoundTripper
	entries []Exchange
	limit   int
	now     func() time.Time
}

// NewHistory returns a History keeping at most limit entries (a default when limit <= 0).
func NewHistory(limit int) *History {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	return &History{limit: limit, now: time.Now}
}

// Wrap installs h in front of next, falling back to http.DefaultTransport.
func (h *History) Wrap(next http.RoundTripper) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	h.mu.Lock()
	h.next = next
	h.mu.Unlock()
	return h
}

// RoundTrip implements http.RoundTripper.
func (h *History) RoundTrip(req *http.Request) (*http.Response, error) {
	h.mu.Lock()
	next := h.next
	h.mu.Unlock()
	if next == nil {
		next = http.DefaultTransport
	}

	start := h.now()
	resp, err := next.RoundTrip(req)
	u := *req.URL
	ex := Exchange{
		Method:   req.Method,
		URL:      &u,
		Duration: h.now().Sub(start),
		Err:      err,
	}
	if resp != nil {
		ex.StatusCode = resp.StatusCode
	}
	h.record(ex)
	return resp, err
}

func (h *History) record(ex Exchange) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = append(h.entries, ex)
	if over := len(h.entries) - h.limit; over > 0 {
		h.entries = append([]Exchange(nil), h.entries[over:]...)
	}
}

// Last returns the most recent exchange.
func (h *History) Last() (Exchange, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.entries) == 0 {
		return Exchange{}, false
	}
	return h.entries[len(h.entries)-1], true
}

// Entries returns a copy of the recorded exchanges, oldest first.
func (h *History) Entries() []Exchange {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]Exchange(nil), h.entries...)
}

// Len returns the number of recorded exchanges.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}
