package fantasydata

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrMissingSegment is returned when a request is missing one of its path segments.
var ErrMissingSegment = errors.New("fantasydata: missing path segment")

// Request describes a single call: /{subscription}/{format}/{resource}/{params...}?key=...
// The zero value is not useful; build one with NewRequest.
type Request struct {
	subscription Subscription
	format       Format
	resource     string
	params       []string
	query        url.Values
}

// NewRequest builds a request descriptor. The API key is always carried as the key query parameter.
func NewRequest(sub Subscription, format Format, resource string, apiKey string, params ...string) Request {
	return Request{
		subscription: sub,
		format:       format,
		resource:     resource,
		params:       append([]string(nil), params...),
		query:        url.Values{keyParam: []string{apiKey}},
	}
}

// WithQuery returns a copy of r with an additional query parameter.
// The key parameter cannot be replaced this way.
func (r Request) WithQuery(name, value string) Request {
	out := r
	out.params = append([]string(nil), r.params...)
	out.query = r.Query()
	if name != keyParam {
		out.query.Add(name, value)
	}
	return out
}

func (r Request) Subscription() Subscription { return r.subscription }
func (r Request) Format() Format             { return r.format }
func (r Request) Resource() string           { return r.resource }

// Params returns the path parameters following the resource.
func (r Request) Params() []string {
	return append([]string(nil), r.params...)
}

// Query returns a copy of the query parameters.
func (r Request) Query() url.Values {
	out := make(url.Values, len(r.query))
	for k, v := range r.query {
		out[k] = append([]string(nil), v...)
	}
	return out
}

// Segments returns the unescaped path segments in wire order.
func (r Request) Segments() []string {
	segs := make([]string, 0, 3+len(r.params))
	segs = append(segs, string(r.subscription), string(r.format), r.resource)
	return append(segs, r.params...)
}

// Validate checks that every path segment is present.
func (r Request) Validate() error {
	names := []string{"subscription", "format", "resource"}
	for i, seg := range r.Segments() {
		if seg != "" {
			continue
		}
		name := "path parameter"
		if i < len(names) {
			name = names[i]
		}
		return fmt.Errorf("%w: %s", ErrMissingSegment, name)
	}
	return nil
}

// Path returns the escaped request path, e.g. /developer/json/Standings/2013REG.
func (r Request) Path() string {
	segs := r.Segments()
	escaped := make([]string, len(segs))
	for i, s := range segs {
		escaped[i] = url.PathEscape(s)
	}
	return "/" + strings.Join(escaped, "/")
}

// URL resolves the request against baseURL. Any path on baseURL is kept as a prefix.
func (r Request) URL(baseURL string) (*url.URL, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	base, err := url.Parse(normalizeBaseURL(baseURL))
	if err != nil {
		return nil, err
	}

	u := *base
	u.RawPath = strings.TrimSuffix(base.EscapedPath(), "/") + r.Path()
	u.Path, err = url.PathUnescape(u.RawPath)
	if err != nil {
		return nil, err
	}
	u.RawQuery = r.query.Encode()
	u.Fragment = ""
	return &u, nil
}

// redactURL hides the API key so URLs can be logged or returned in errors.
func redactURL(u *url.URL) string {
	if u == nil {
		return ""
	}
	c := *u
	q := c.Query()
	if q.Has(keyParam) {
		q.Set(keyParam, redactedKey)
		c.RawQuery = q.Encode()
	}
	return c.String()
}

// RedactURL returns raw with the API key replaced. Unparseable input is returned unchanged.
func RedactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	return redactURL(u)
}
