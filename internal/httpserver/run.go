package httpserver

import (
	"context"
	"fmt"
)

// Run wires all routes and serves until the listener fails or the process
// is signalled.
func (srv *HTTPServer) Run() error {
	if err := srv.mapHandlers(); err != nil {
		return err
	}

	addr := fmt.Sprintf(":%d", srv.port)
	srv.l.Infof(context.Background(), "HTTP server listening on %s (mode: %s)", addr, srv.mode)

	return srv.gin.Run(addr)
}
