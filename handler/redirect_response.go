package handler

import (
	"net/http"
	"net/url"
)

type redirectResponse struct {
	url  string
	code int
}

// Render redirects regular requests with the configured status code and
// DataStar requests with an SSE redirect event.
func (r redirectResponse) Render(w http.ResponseWriter, req *http.Request) error {
	if IsDataStar(req) {
		return NewSSE(w, req).Redirect(r.url)
	}
	http.Redirect(w, req, r.url, r.code)
	return nil
}

// Redirect creates a redirect response with status 303 (See Other).
//
//	return handler.Redirect("/users/" + user.ID)
func Redirect(url string) Response {
	return redirectResponse{url: url, code: http.StatusSeeOther}
}

// RedirectWithCode creates a redirect response with a specific status code.
func RedirectWithCode(url string, code int) Response {
	return redirectResponse{url: url, code: code}
}

type redirectBackResponse struct {
	fallback string
	code     int
}

func (r redirectBackResponse) Render(w http.ResponseWriter, req *http.Request) error {
	target := r.fallback
	if referer := req.Header.Get("Referer"); referer != "" && sameHost(referer, req) {
		target = referer
	}
	return redirectResponse{url: target, code: r.code}.Render(w, req)
}

// RedirectBack redirects to the referrer, or to fallback when the referrer
// is missing or points to another host. Uses status 303 (See Other).
func RedirectBack(fallback string) Response {
	return redirectBackResponse{fallback: fallback, code: http.StatusSeeOther}
}

func sameHost(rawURL string, r *http.Request) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return parsed.Host == "" || parsed.Host == r.Host
}
