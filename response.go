package flash

import (
	"net/http"

	"github.com/dmitrymomot/flash/handler"
)

// Response pairs an ordinary response with an optional flash message that
// the middleware sends as a cookie.
type Response[T any] struct {
	message *T
	inner   handler.Response
}

// NewResponse creates a Response rendering inner. A nil message sends none.
//
// The encoded message has to fit in a single cookie. Browsers keep about
// 4 KB per cookie (see MaxCookieSize), and the cookie value is the
// percent-escaped JSON envelope, which can be up to three times longer than
// the JSON for text full of quotes, braces or spaces. Keep messages short.
func NewResponse[T any](message *T, inner handler.Response) *Response[T] {
	return &Response[T]{message: message, inner: inner}
}

// WithRedirect sets message and redirects to location with 303 See Other.
// The cookie size limit described on NewResponse applies.
//
//	return flash.WithRedirect("Saved", "/items")
func WithRedirect[T any](message T, location string) *Response[T] {
	return NewResponse(&message, handler.Redirect(location))
}

// Render stages the message for the middleware and renders the inner
// response. The message is consumed; rendering again sends none.
//
// The message is staged before the inner response writes anything so the
// cookie goes out with the headers. If the inner response fails the cycle
// is aborted and the flash cookie is neither written nor cleared.
func (resp *Response[T]) Render(w http.ResponseWriter, r *http.Request) error {
	c := cycleFrom(r.Context())

	if msg := resp.message; msg != nil {
		resp.message = nil

		value, err := encodeValue(*msg)
		if err != nil {
			return err
		}
		if c == nil {
			return ErrNotInstalled
		}
		c.stage(value)
	}

	err := handler.ErrNilResponse
	if resp.inner != nil {
		err = resp.inner.Render(w, r)
	}
	if err != nil {
		if c != nil {
			c.abort()
		}
		return err
	}
	return nil
}
