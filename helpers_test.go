package flash_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

// flashValue returns the cookie value carrying the given envelope.
func flashValue(envelope string) string {
	return url.PathEscape(envelope)
}

func newRequest(method, target string, cookies ...*http.Cookie) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	return req
}

func serve(h http.Handler, req *http.Request) *http.Response {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec.Result()
}

// setCookies returns the Set-Cookie entries for name.
func setCookies(resp *http.Response, name string) []*http.Cookie {
	var out []*http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

// single asserts resp sets name exactly once and returns that cookie.
func single(t *testing.T, resp *http.Response, name string) *http.Cookie {
	t.Helper()
	cookies := setCookies(resp, name)
	require.Len(t, cookies, 1)
	return cookies[0]
}

// decoded returns the envelope text carried by c.
func decoded(t *testing.T, c *http.Cookie) string {
	t.Helper()
	s, err := url.PathUnescape(c.Value)
	require.NoError(t, err)
	return s
}

func isDeletion(c *http.Cookie) bool {
	return c.Value == "" && c.MaxAge < 0
}
