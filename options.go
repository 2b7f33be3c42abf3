package flash

import (
	"log/slog"

	"github.com/dmitrymomot/flash/pkg/cookie"
)

// Option configures a Middleware.
type Option func(*Middleware)

// WithLogger sets the logger. Outcomes are logged at debug level, malformed
// cookies at warn and header failures at error. Nil is ignored.
func WithLogger(log *slog.Logger) Option {
	return func(m *Middleware) {
		if log != nil {
			m.log = log
		}
	}
}

// WithCookieOptions sets attributes for the cookies the middleware writes.
// By default none are set and the path is always "/".
func WithCookieOptions(opts ...cookie.Option) Option {
	return func(m *Middleware) {
		for _, opt := range opts {
			opt(&m.cookie)
		}
	}
}
