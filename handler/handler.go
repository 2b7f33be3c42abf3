package handler

import (
	"errors"
	"net/http"
)

// Response renders itself to an http.ResponseWriter.
// Implementations set headers, status code and body.
// A returned error is passed to the ErrorHandler.
type Response interface {
	Render(w http.ResponseWriter, r *http.Request) error
}

// ResponseFunc adapts an ordinary function to the Response interface.
type ResponseFunc func(w http.ResponseWriter, r *http.Request) error

// Render calls f(w, r).
func (f ResponseFunc) Render(w http.ResponseWriter, r *http.Request) error {
	return f(w, r)
}

// HandlerFunc handles a request and returns the Response to render.
// C must implement the Context interface.
//
// Example:
//
//	show := handler.HandlerFunc[handler.Context](func(ctx handler.Context) handler.Response {
//		return handler.Text("hello")
//	})
type HandlerFunc[C Context] func(ctx C) Response

// ErrorHandler handles errors returned while rendering a Response.
type ErrorHandler[C Context] func(ctx C, err error)

// Decorator wraps a HandlerFunc to add cross-cutting functionality.
// The first decorator in a list is the outermost wrapper.
type Decorator[C Context] func(HandlerFunc[C]) HandlerFunc[C]

// WrapOption configures Wrap.
type WrapOption[C Context] func(*wrapConfig[C])

type wrapConfig[C Context] struct {
	errorHandler   ErrorHandler[C]
	contextFactory func(http.ResponseWriter, *http.Request) C
	decorators     []Decorator[C]
}

// WithErrorHandler sets a custom error handler.
func WithErrorHandler[C Context](h ErrorHandler[C]) WrapOption[C] {
	return func(c *wrapConfig[C]) {
		if h != nil {
			c.errorHandler = h
		}
	}
}

// WithContextFactory sets a custom context factory.
func WithContextFactory[C Context](f func(http.ResponseWriter, *http.Request) C) WrapOption[C] {
	return func(c *wrapConfig[C]) {
		if f != nil {
			c.contextFactory = f
		}
	}
}

// WithDecorators adds decorators to wrap the handler.
func WithDecorators[C Context](decorators ...Decorator[C]) WrapOption[C] {
	return func(c *wrapConfig[C]) {
		c.decorators = append(c.decorators, decorators...)
	}
}

// defaultErrorHandler writes the HTTPError status and key, or a 500 for
// any other error.
func defaultErrorHandler[C Context](ctx C, err error) {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		http.Error(ctx.ResponseWriter(), httpErr.Key, httpErr.Code)
		return
	}
	http.Error(ctx.ResponseWriter(), err.Error(), http.StatusInternalServerError)
}

// Wrap converts a HandlerFunc to http.HandlerFunc.
//
//	http.Handle("/show", handler.Wrap(show,
//		handler.WithErrorHandler(errorHandler),
//		handler.WithDecorators(logRequests),
//	))
func Wrap[C Context](h HandlerFunc[C], opts ...WrapOption[C]) http.HandlerFunc {
	cfg := &wrapConfig[C]{
		errorHandler: defaultErrorHandler[C],
		contextFactory: func(w http.ResponseWriter, r *http.Request) C {
			if c, ok := NewContext(w, r).(C); ok {
				return c
			}
			panic("cannot use default context factory with custom context type - provide WithContextFactory")
		},
	}

	for _, opt := range opts {
		opt(cfg)
	}

	// Reverse order so the first decorator is the outermost.
	final := h
	for i := len(cfg.decorators) - 1; i >= 0; i-- {
		final = cfg.decorators[i](final)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := cfg.contextFactory(w, r)

		response := final(ctx)
		if response == nil {
			cfg.errorHandler(ctx, ErrNilResponse)
			return
		}
		if err := response.Render(ctx.ResponseWriter(), ctx.Request()); err != nil {
			cfg.errorHandler(ctx, err)
		}
	}
}
