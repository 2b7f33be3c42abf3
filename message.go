package flash

import (
	"context"
	"fmt"
	"net/http"
)

// Message is a flash message received with the current request.
type Message[T any] struct {
	value T
}

// NewMessage wraps v.
func NewMessage[T any](v T) Message[T] {
	return Message[T]{value: v}
}

// Value returns the wrapped message.
func (m Message[T]) Value() T {
	return m.value
}

// FromRequest returns the flash message sent with r.
// See FromContext.
func FromRequest[T any](r *http.Request) (Message[T], error) {
	return FromContext[T](r.Context())
}

// FromContext returns the flash message the middleware read from the
// incoming request. It fails with ErrMissingFlash when no flash cookie was
// sent, and with an error matching both ErrMissingFlash and ErrDecode when
// the cookie could not be decoded into T.
//
// Any handler.Context can be passed directly:
//
//	msg, err := flash.FromContext[string](ctx)
//	if err != nil {
//		return handler.Error(err)
//	}
func FromContext[T any](ctx context.Context) (Message[T], error) {
	c := cycleFrom(ctx)
	if c == nil || c.incoming == nil {
		return Message[T]{}, ErrMissingFlash
	}

	v, err := decodeValue[T](c.incoming.Value)
	if err != nil {
		return Message[T]{}, fmt.Errorf("%w: %w", ErrMissingFlash, err)
	}
	return Message[T]{value: v}, nil
}

// Has reports whether a flash cookie came with the request, well-formed or not.
func Has(ctx context.Context) bool {
	c := cycleFrom(ctx)
	return c != nil && c.incoming != nil
}
