package middleware

import (
	"hr-assistant/pkg/log"
)

// Middleware bundles the HTTP middlewares applied by the server.
type Middleware struct {
	l log.Logger
}

func New(l log.Logger) Middleware {
	return Middleware{l: l}
}
