package handlers

import (
	"encoding/json"
	nethttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/preston-bernstein/fantasydata-client/internal/watcher"
)

type staticStatus watcher.Status

func (s staticStatus) Status() watcher.Status { return watcher.Status(s) }

func TestWatchStatusReady(t *testing.T) {
	h := NewWatchHandler(staticStatus{Seasons: []string{"2013REG"}, LastSuccess: time.Now()}, nil)

	rr := httptest.NewRecorder()
	h.Status(rr, httptest.NewRequest(nethttp.MethodGet, "/watch", nil))
	if rr.Code != nethttp.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var body watcher.Status
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Seasons) != 1 || body.Drift {
		t.Fatalf("unexpected body %+v", body)
	}
}

func TestWatchStatusDriftIsUnavailable(t *testing.T) {
	h := NewWatchHandler(staticStatus{Drift: true, ConsecutiveFailures: 3, LastSuccess: time.Now()}, nil)

	rr := httptest.NewRecorder()
	h.Status(rr, httptest.NewRequest(nethttp.MethodGet, "/watch", nil))
	if rr.Code != nethttp.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rr.Code)
	}
}

func TestWatchStatusRejectsPost(t *testing.T) {
	h := NewWatchHandler(staticStatus{}, nil)

	rr := httptest.NewRecorder()
	h.Status(rr, httptest.NewRequest(nethttp.MethodPost, "/watch", nil))
	if rr.Code != nethttp.StatusMethodNotAllowed || rr.Header().Get("Allow") != nethttp.MethodGet {
		t.Fatalf("expected 405 with Allow, got %d", rr.Code)
	}
}

func TestWatchStatusWithoutSource(t *testing.T) {
	h := NewWatchHandler(nil, nil)

	rr := httptest.NewRecorder()
	h.Status(rr, httptest.NewRequest(nethttp.MethodGet, "/watch", nil))
	if rr.Code != nethttp.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rr.Code)
	}
}
