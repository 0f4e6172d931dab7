package dispatchhandlers

import (
	"net"
	"net/http"
	"time"

	"golang.org/x/net/netutil"
)

// ServeConfig configures the ListenAndServe and Serve helpers.
type ServeConfig struct {
	// MaxConnections caps the number of concurrently accepted
	// connections. Zero means unlimited.
	MaxConnections int

	// ReadHeaderTimeout bounds how long the server waits for request
	// headers. Defaults to 10 seconds when zero.
	ReadHeaderTimeout time.Duration
}

// ListenAndServe listens on the TCP network address addr and serves
// handler. It blocks until the server fails, like http.ListenAndServe.
func ListenAndServe(addr string, handler http.Handler, cfg ServeConfig) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}

	return Serve(ln, handler, cfg)
}

// Serve serves handler on the given listener, applying the connection cap
// from cfg. The listener is closed when Serve returns.
func Serve(ln net.Listener, handler http.Handler, cfg ServeConfig) error {
	if cfg.MaxConnections > 0 {
		ln = netutil.LimitListener(ln, cfg.MaxConnections)
	}

	readHeaderTimeout := cfg.ReadHeaderTimeout
	if readHeaderTimeout == 0 {
		readHeaderTimeout = 10 * time.Second
	}

	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	return srv.Serve(ln)
}
