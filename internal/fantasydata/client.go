package fantasydata

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/preston-bernstein/fantasydata-client/internal/logging"
	"github.com/preston-bernstein/fantasydata-client/internal/schema"
)

// Config controls how the client reaches the FantasyData service.
type Config struct {
	BaseURL      string
	APIKey       string
	Subscription Subscription
	Format       Format
	HTTPClient   *http.Client
	Logger       *slog.Logger
	Mode         DecodeMode
}

// Client issues GET requests against the service and decodes typed records.
type Client struct {
	baseURL      string
	apiKey       string
	subscription Subscription
	format       Format
	httpClient   httpDoer
	history      *History
	logger       *slog.Logger
	mode         DecodeMode
	now          func() time.Time
}

// Response is a completed 200 exchange.
type Response struct {
	StatusCode int
	Body       []byte
	URL        *url.URL
	Duration   time.Duration
}

// NewClient constructs a client with the provided configuration.
func NewClient(cfg Config) *Client {
	history := NewHistory(0)
	return &Client{
		baseURL:      normalizeBaseURL(cfg.BaseURL),
		apiKey:       cfg.APIKey,
		subscription: resolveSubscription(cfg.Subscription),
		format:       resolveFormat(cfg.Format),
		httpClient:   resolveHTTPClient(cfg.HTTPClient, history),
		history:      history,
		logger:       cfg.Logger,
		mode:         cfg.Mode,
		now:          time.Now,
	}
}

// NewRequest builds a request for resource using the client's tier, format and key.
func (c *Client) NewRequest(resource string, params ...string) Request {
	return NewRequest(c.subscription, c.format, resource, c.apiKey, params...)
}

// History exposes the exchanges this client has made.
func (c *Client) History() *History {
	return c.history
}

// Subscription returns the tier the client was configured with.
func (c *Client) Subscription() Subscription { return c.subscription }

// Format returns the response format the client requests.
func (c *Client) Format() Format { return c.format }

// Get performs the request. Transport and read errors are returned as net/http produced them;
// a non-200 response is returned together with a *StatusError.
func (c *Client) Get(ctx context.Context, req Request) (*Response, error) {
	u, err := req.URL(c.baseURL)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Accept", req.Format().contentType())

	logger := logging.FromContext(ctx, c.logger)
	start := c.now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		logging.Error(logger, "fantasydata request failed", err,
			slog.String(logging.FieldResource, req.Resource()),
			slog.String(logging.FieldURL, redactURL(u)),
		)
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	effective := u
	if resp.Request != nil && resp.Request.URL != nil {
		effective = resp.Request.URL
	}
	out := &Response{
		StatusCode: resp.StatusCode,
		Body:       body,
		URL:        effective,
		Duration:   c.now().Sub(start),
	}
	c.logExchange(ctx, logger, req, out)

	if resp.StatusCode != http.StatusOK {
		return out, &StatusError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			URL:        redactURL(effective),
			Body:       trimBody(body),
		}
	}
	return out, nil
}

// StandingsBody returns the raw standings payload for a season code such as 2013REG.
func (c *Client) StandingsBody(ctx context.Context, season string) ([]byte, error) {
	resp, err := c.Get(ctx, c.NewRequest(ResourceStandings, season))
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}

// Standings fetches and decodes the team standings for a season.
func (c *Client) Standings(ctx context.Context, season string) ([]Standing, error) {
	if c.format != FormatJSON {
		return nil, ErrUnsupportedFormat
	}
	body, err := c.StandingsBody(ctx, season)
	if err != nil {
		return nil, err
	}

	standings, extra, err := DecodeStandings(body, c.mode)
	if err != nil {
		return nil, err
	}
	if len(extra) > 0 {
		logging.Warn(logging.FromContext(ctx, c.logger), "standings carry unknown fields",
			slog.String(logging.FieldSeason, season),
			slog.Any("fields", extra),
		)
	}
	return standings, nil
}

// CheckStandings fetches a season and validates its shape against teams records
// of exactly StandingFields. The returned error is a *schema.MismatchError for
// drift and the transport or decode error otherwise.
func (c *Client) CheckStandings(ctx context.Context, season string, teams int) (schema.Report, error) {
	exp := StandingsExpectation(teams)
	if c.format != FormatJSON {
		return schema.NewReport(exp, 0, ErrUnsupportedFormat), ErrUnsupportedFormat
	}
	body, err := c.StandingsBody(ctx, season)
	if err != nil {
		return schema.NewReport(exp, 0, err), err
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return schema.NewReport(exp, 0, err), err
	}
	err = exp.Validate(body)
	return schema.NewReport(exp, len(raw), err), err
}

// logExchange maps HTTP status classes to log levels.
func (c *Client) logExchange(ctx context.Context, logger *slog.Logger, req Request, resp *Response) {
	if logger == nil {
		return
	}
	level := slog.LevelDebug
	switch {
	case resp.StatusCode >= 400:
		level = slog.LevelError
	case resp.StatusCode >= 300:
		level = slog.LevelWarn
	}
	logger.Log(ctx, level, "fantasydata request",
		slog.String(logging.FieldMethod, http.MethodGet),
		slog.String(logging.FieldResource, req.Resource()),
		slog.String(logging.FieldURL, redactURL(resp.URL)),
		slog.Int(logging.FieldStatusCode, resp.StatusCode),
		slog.Int(logging.FieldBytes, len(resp.Body)),
		slog.Int64(logging.FieldDurationMS, resp.Duration.Milliseconds()),
	)
}

func trimBody(body []byte) string {
	if len(body) > errorBodyCap {
		body = body[:errorBodyCap]
	}
	return strings.TrimSpace(string(body))
}
