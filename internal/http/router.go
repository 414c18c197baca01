package http

import (
	nethttp "net/http"

	"github.com/preston-bernstein/fantasydata-client/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux. The admin and watch routes
// are mounted only when their handlers are non-nil.
func NewRouter(handler *handlers.Handler, admin *handlers.AdminHandler, watch *handlers.WatchHandler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/standings/{"+handlers.SeasonParam+"}", handler.Standings)
	mux.HandleFunc("/standings/{"+handlers.SeasonParam+"}/check", handler.CheckStandings)
	if admin != nil {
		mux.HandleFunc("/admin/fixtures/record", admin.RecordStandings)
	}
	if watch != nil {
		mux.HandleFunc("/watch", watch.Status)
	}
	return mux
}
