package server

import "time"

// Server-side limits. The write timeout covers a full retry cycle against the
// upstream service: three attempts at the client timeout plus backoff.
const (
	readTimeout       = 5 * time.Second
	readHeaderTimeout = 2 * time.Second
	writeTimeout      = 45 * time.Second
	idleTimeout       = 90 * time.Second
)

// shutdownTimeout applies when the config carries none. Tests shorten it.
var shutdownTimeout = 10 * time.Second
