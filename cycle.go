package flash

import (
	"context"
	"net/http"
)

type cycleKey struct{}

// cycle holds the state of one request/response pass through the
// middleware. Only this package reads or writes it.
type cycle struct {
	incoming *http.Cookie
	staged   *string
	aborted  bool
}

func withCycle(ctx context.Context, c *cycle) context.Context {
	return context.WithValue(ctx, cycleKey{}, c)
}

func cycleFrom(ctx context.Context) *cycle {
	if ctx == nil {
		return nil
	}
	c, _ := ctx.Value(cycleKey{}).(*cycle)
	return c
}

// stage replaces any previously staged value; one message per response.
func (c *cycle) stage(value string) {
	c.staged = &value
}

func (c *cycle) abort() {
	c.aborted = true
}
