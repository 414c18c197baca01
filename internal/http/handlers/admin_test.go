package handlers

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/preston-bernstein/fantasydata-client/internal/fantasydata"
	"github.com/preston-bernstein/fantasydata-client/internal/fixtures"
	"github.com/preston-bernstein/fantasydata-client/internal/testutil"
)

type roundTripperFunc func(req *http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func liveStub(t *testing.T, status int, body []byte) *fantasydata.Client {
	t.Helper()
	return fantasydata.NewClient(fantasydata.Config{
		BaseURL: "http://example.com",
		APIKey:  "secret-key",
		HTTPClient: &http.Client{Transport: roundTripperFunc(func(req *http.Request) (*http.Response, error) {
			return &http.Response{
				StatusCode: status,
				Body:       io.NopCloser(strings.NewReader(string(body))),
				Header:     make(http.Header),
				Request:    req,
			}, nil
		})},
	})
}

func TestAdminRecordRequiresAuth(t *testing.T) {
	h := NewAdminHandler(nil, nil, "secret", nil)
	req := httptest.NewRequest(http.MethodPost, "/admin/fixtures/record?season=2013REG", nil)
	rr := httptest.NewRecorder()

	h.RecordStandings(rr, req)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}

	req.Header.Set("Authorization", "Bearer wrong")
	rr = httptest.NewRecorder()
	h.RecordStandings(rr, req)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for wrong token, got %d", rr.Code)
	}
}

func TestAdminRecordWritesFixture(t *testing.T) {
	dir := t.TempDir()
	body := testutil.RecordedStandingsBody(t)
	h := NewAdminHandler(fixtures.NewWriter(dir), liveStub(t, http.StatusOK, body), "secret", nil)

	req := httptest.NewRequest(http.MethodPost, "/admin/fixtures/record?season=2014REG", nil)
	req.Header.Set("Authorization", "Bearer secret")
	rr := httptest.NewRecorder()
	h.RecordStandings(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	if !fixtures.NewDirStore(dir).Has("/developer/json/Standings/2014REG") {
		t.Fatalf("expected recording on disk")
	}
	if strings.Contains(rr.Body.String(), "secret-key") {
		t.Fatalf("api key leaked into response: %s", rr.Body.String())
	}
}

func TestAdminRecordRejectsInvalidSeason(t *testing.T) {
	h := NewAdminHandler(fixtures.NewWriter(t.TempDir()), liveStub(t, http.StatusOK, nil), "secret", nil)

	req := httptest.NewRequest(http.MethodPost, "/admin/fixtures/record?season=../etc", nil)
	req.Header.Set("Authorization", "Bearer secret")
	rr := httptest.NewRecorder()
	h.RecordStandings(rr, req)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestAdminRecordSurfacesUpstreamFailure(t *testing.T) {
	h := NewAdminHandler(fixtures.NewWriter(t.TempDir()), liveStub(t, http.StatusInternalServerError, []byte("oops")), "secret", nil)

	req := httptest.NewRequest(http.MethodPost, "/admin/fixtures/record?season=2013REG", nil)
	req.Header.Set("Authorization", "Bearer secret")
	rr := httptest.NewRecorder()
	h.RecordStandings(rr, req)
	if rr.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rr.Code)
	}
}

func TestAdminRecordRelaysUpstreamNotFoundAs502(t *testing.T) {
	h := NewAdminHandler(fixtures.NewWriter(t.TempDir()), liveStub(t, http.StatusNotFound, []byte(`{"Message":"no"}`)), "secret", nil)

	req := httptest.NewRequest(http.MethodPost, "/admin/fixtures/record?season=1999REG", nil)
	req.Header.Set("Authorization", "Bearer secret")
	rr := testutil.ServeRequest(http.HandlerFunc(h.RecordStandings), req)

	testutil.AssertStatus(t, rr, http.StatusBadGateway)
	testutil.AssertErrorKind(t, rr, KindUpstream)
	if !strings.Contains(rr.Body.String(), "upstream returned 404") {
		t.Fatalf("expected upstream status in body, got %s", rr.Body.String())
	}
}

func TestAdminRecordRequiresPost(t *testing.T) {
	h := NewAdminHandler(nil, nil, "secret", nil)
	rr := httptest.NewRecorder()
	h.RecordStandings(rr, httptest.NewRequest(http.MethodGet, "/admin/fixtures/record", nil))
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rr.Code)
	}
}
