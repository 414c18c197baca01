package server

import (
	"context"
	"net"
	"net/http"
)

// httpServer is the part of *http.Server the Server drives; tests swap in stubs.
type httpServer interface {
	ListenAndServe() error
	Shutdown(context.Context) error
	Addr() string
	Handler() http.Handler
}

// netHTTPServer adapts *http.Server. With a listener set it serves on that
// listener instead of binding srv.Addr.
type netHTTPServer struct {
	srv      *http.Server
	listener net.Listener
}

func (s netHTTPServer) ListenAndServe() error {
	if s.listener == nil {
		return s.srv.ListenAndServe()
	}
	return s.srv.Serve(s.listener)
}

func (s netHTTPServer) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

// Addr reports the bound address when a listener is set.
func (s netHTTPServer) Addr() string {
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.srv.Addr
}

func (s netHTTPServer) Handler() http.Handler {
	return s.srv.Handler
}
