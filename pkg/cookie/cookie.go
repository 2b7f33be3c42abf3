package cookie

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Read returns the first cookie with the given name sent with the request.
func Read(r *http.Request, name string) (*http.Cookie, error) {
	c, err := r.Cookie(name)
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			return nil, ErrCookieNotFound
		}
		return nil, err
	}
	return c, nil
}

// ReadRaw returns the first cookie with the given name found in the
// request's Cookie headers, with its value untouched. Unlike Read it also
// finds cookies whose values net/http rejects, such as raw JSON with
// quotes or spaces. Surrounding whitespace is trimmed.
func ReadRaw(r *http.Request, name string) (*http.Cookie, error) {
	for _, line := range r.Header.Values("Cookie") {
		for _, part := range strings.Split(line, ";") {
			k, v, ok := strings.Cut(part, "=")
			if !ok || strings.TrimSpace(k) != name {
				continue
			}
			return &http.Cookie{Name: name, Value: strings.TrimSpace(v)}, nil
		}
	}
	return nil, ErrCookieNotFound
}

// Append validates c and adds it to h as a Set-Cookie header.
// Unlike http.SetCookie it never drops an invalid cookie silently.
func Append(h http.Header, c *http.Cookie) error {
	if c == nil {
		return ErrInvalidCookie
	}
	if err := c.Valid(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidCookie, err)
	}
	h.Add("Set-Cookie", c.String())
	return nil
}

// ValidName reports whether name can be used as a cookie name.
func ValidName(name string) bool {
	return name != "" && (&http.Cookie{Name: name}).Valid() == nil
}

// removal turns c into a cookie that instructs the client to drop it.
func removal(c *http.Cookie) *http.Cookie {
	rm := *c
	rm.Value = ""
	rm.MaxAge = -1
	rm.Expires = time.Unix(0, 0)
	return &rm
}
