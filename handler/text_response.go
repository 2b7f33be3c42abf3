package handler

import (
	"io"
	"net/http"
)

type textResponse struct {
	status int
	body   string
}

func (t textResponse) Render(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(t.status)
	_, err := io.WriteString(w, t.body)
	return err
}

// Text creates a plain text response with status 200.
func Text(body string) Response {
	return textResponse{status: http.StatusOK, body: body}
}

// TextWithStatus creates a plain text response with a custom status code.
func TextWithStatus(status int, body string) Response {
	return textResponse{status: status, body: body}
}

type emptyResponse struct {
	status int
}

func (e emptyResponse) Render(w http.ResponseWriter, r *http.Request) error {
	w.WriteHeader(e.status)
	return nil
}

// Empty creates a response with status 204 (No Content) and no body.
func Empty() Response {
	return emptyResponse{status: http.StatusNoContent}
}

// EmptyWithStatus creates a bodyless response with a custom status code.
func EmptyWithStatus(status int) Response {
	return emptyResponse{status: status}
}
