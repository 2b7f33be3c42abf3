package flash

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/flash/handler"
	"github.com/dmitrymomot/flash/pkg/cookie"
	"github.com/dmitrymomot/flash/pkg/logger"
)

// DefaultCookieName is the cookie used by Default.
const DefaultCookieName = "_flash"

// MaxCookieSize is the name=value size browsers are guaranteed to keep.
// Larger flash cookies are still sent but logged at warn level, since
// browsers may silently drop them.
const MaxCookieSize = 4096

// Interceptor wraps a single request/response cycle around next.
type Interceptor interface {
	Handle(w http.ResponseWriter, r *http.Request, next http.Handler)
}

var _ Interceptor = (*Middleware)(nil)

// Middleware moves flash messages between responses and the next request.
//
// On entry it makes the incoming flash cookie available to FromContext.
// Right before the response headers go out it writes the message staged by
// a Response, or clears the cookie the client sent when nothing was staged.
//
// A Middleware is immutable after construction and safe for concurrent use.
type Middleware struct {
	name   string
	log    *slog.Logger
	cookie cookie.Options
}

// New creates a Middleware using the named cookie.
// Panics if name is not a valid cookie name.
func New(name string, opts ...Option) *Middleware {
	if !cookie.ValidName(name) {
		panic(fmt.Errorf("flash: invalid cookie name %q", name))
	}

	m := &Middleware{
		name: name,
		log:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Default creates a Middleware using DefaultCookieName.
func Default(opts ...Option) *Middleware {
	return New(DefaultCookieName, opts...)
}

// NewFromConfig creates a Middleware from cfg. Options passed explicitly
// are applied after the ones derived from cfg.
func NewFromConfig(cfg Config, opts ...Option) *Middleware {
	return New(cfg.CookieName, append([]Option{WithCookieOptions(cfg.cookieOptions()...)}, opts...)...)
}

// CookieName returns the name of the flash cookie.
func (m *Middleware) CookieName() string {
	return m.name
}

// Handler adapts the middleware to func(http.Handler) http.Handler.
//
//	r := chi.NewRouter()
//	r.Use(flash.Default().Handler)
func (m *Middleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m.Handle(w, r, next)
	})
}

// Handle runs one cycle. A panic in next skips the commit, as does a
// request cancelled before next wrote anything.
func (m *Middleware) Handle(w http.ResponseWriter, r *http.Request, next http.Handler) {
	c := &cycle{}
	if in, err := cookie.ReadRaw(r, m.name); err == nil {
		c.incoming = &http.Cookie{Name: in.Name, Value: in.Value, Path: in.Path}
		if !wellFormed(in.Value) {
			m.log.WarnContext(r.Context(), "malformed flash cookie",
				logger.Component("flash"),
				logger.CookieName(m.name),
			)
		}
	}

	r = r.WithContext(withCycle(r.Context(), c))
	fw := &writer{ResponseWriter: w}
	fw.commit = func() error {
		return m.commit(fw.ResponseWriter, r, c)
	}

	next.ServeHTTP(fw, r)

	if r.Context().Err() != nil {
		c.abort()
	}
	_ = fw.flush()
}

// Outcome is how a cycle left the flash cookie.
type Outcome int

const (
	// Untouched means no cookie came in and none was staged.
	Untouched Outcome = iota
	// Refreshed means a staged message was written.
	Refreshed
	// Expired means the incoming cookie was cleared.
	Expired
	// Skipped means the cycle was aborted and cookies were left as they were.
	Skipped
)

func (o Outcome) String() string {
	switch o {
	case Untouched:
		return "untouched"
	case Refreshed:
		return "refreshed"
	case Expired:
		return "expired"
	case Skipped:
		return "skipped"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

func (m *Middleware) commit(w http.ResponseWriter, r *http.Request, c *cycle) error {
	outcome, err := m.apply(w.Header(), r, c)
	if err != nil {
		m.log.ErrorContext(r.Context(), "failed to attach flash cookie",
			logger.Component("flash"),
			logger.CookieName(m.name),
			logger.Error(err),
		)
		// Headers set by the handler, a redirect Location included, must
		// not leak into the error response.
		clear(w.Header())
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return err
	}

	if outcome == Refreshed && len(m.name)+1+len(*c.staged) > MaxCookieSize {
		m.log.WarnContext(r.Context(), "flash cookie exceeds browser size limit",
			logger.Component("flash"),
			logger.CookieName(m.name),
			slog.Int("size", len(m.name)+1+len(*c.staged)),
		)
	}

	m.log.DebugContext(r.Context(), "flash cycle committed",
		logger.Component("flash"),
		logger.CookieName(m.name),
		logger.Outcome(outcome.String()),
	)
	return nil
}

// apply adds the Set-Cookie headers for the cycle to h. The incoming
// cookie is read from r again rather than taken from the cycle, and the
// headers come from the jar delta so a name never gets two headers.
func (m *Middleware) apply(h http.Header, r *http.Request, c *cycle) (Outcome, error) {
	if c.aborted {
		return Skipped, nil
	}

	jar := cookie.NewJar()
	if original, err := cookie.ReadRaw(r, m.name); err == nil {
		jar.AddOriginal(original)
	}

	outcome := Untouched
	switch {
	case c.staged != nil:
		jar.Add(m.cookie.Build(m.name, *c.staged, "/"))
		outcome = Refreshed
	case jar.Get(m.name) != nil:
		jar.Remove(m.cookie.Build(m.name, "", "/"))
		outcome = Expired
	}

	for _, ck := range jar.Delta() {
		if err := cookie.Append(h, ck); err != nil {
			return outcome, fmt.Errorf("%w: %w", ErrHeader, err)
		}
	}
	return outcome, nil
}

// Abort leaves the flash cookie untouched for the cycle ctx belongs to.
// Neither a staged message nor a deletion is sent. It has no effect once
// the response headers are written or outside the middleware.
func Abort(ctx context.Context) {
	if c := cycleFrom(ctx); c != nil {
		c.abort()
	}
}

// AbortOnError decorates an error handler so server errors abort the flash
// cycle. Client errors, ErrMissingFlash included, still let the middleware
// clear the cookie the client sent.
//
//	handler.WithErrorHandler(flash.AbortOnError(handler.NewErrorHandler(log, cfg)))
func AbortOnError[C handler.Context](next handler.ErrorHandler[C]) handler.ErrorHandler[C] {
	return func(ctx C, err error) {
		var httpErr handler.HTTPError
		if !errors.As(err, &httpErr) || httpErr.Code >= http.StatusInternalServerError {
			Abort(ctx)
		}
		next(ctx, err)
	}
}
