package server

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"testing"
	"time"
)

type refusingListener struct{}

func (refusingListener) Accept() (net.Conn, error) { return nil, errors.New("listener closed") }
func (refusingListener) Close() error              { return nil }
func (refusingListener) Addr() net.Addr            { return &net.TCPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 4000} }

func TestNetHTTPServerServesOnListener(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Skipf("cannot listen on loopback: %v", err)
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "ok")
	})
	s := netHTTPServer{srv: &http.Server{Addr: ":0", Handler: mux}, listener: ln}

	done := make(chan error, 1)
	go func() { done <- s.ListenAndServe() }()

	resp, err := http.Get("http://" + s.Addr() + "/health")
	if err != nil {
		t.Fatalf("get health: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if string(body) != "ok" {
		t.Fatalf("unexpected body %q", body)
	}

	if err := s.Shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
	select {
	case err := <-done:
		if !errors.Is(err, http.ErrServerClosed) {
			t.Fatalf("expected ErrServerClosed, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("serve did not return after shutdown")
	}
}

func TestNetHTTPServerSurfacesAcceptErrors(t *testing.T) {
	s := netHTTPServer{srv: &http.Server{Handler: http.NewServeMux()}, listener: refusingListener{}}

	if err := s.ListenAndServe(); err == nil {
		t.Fatalf("expected accept error to end serving")
	}
	if s.Addr() != "127.0.0.1:4000" {
		t.Fatalf("expected listener address, got %s", s.Addr())
	}
}

func TestNetHTTPServerFallsBackToConfiguredAddr(t *testing.T) {
	handler := http.NewServeMux()
	s := netHTTPServer{srv: &http.Server{Addr: ":4000", Handler: handler}}

	if s.Addr() != ":4000" {
		t.Fatalf("expected configured addr, got %s", s.Addr())
	}
	if s.Handler() != handler {
		t.Fatalf("expected handler passthrough")
	}
}
