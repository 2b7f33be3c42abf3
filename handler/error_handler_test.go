package handler_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/flash/handler"
)

func mockErrorPage(params handler.ErrorPageParams) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, "Error %d: %s", params.StatusCode, params.Error)
		return err
	})
}

func mockErrorToast(params handler.ErrorToastParams) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<div id="toast">`+params.Message+`</div>`)
		return err
	})
}

func TestClassifyError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		err    error
		status int
		level  slog.Level
		kind   string
	}{
		{"generic", errors.New("boom"), http.StatusInternalServerError, slog.LevelError, "error"},
		{"bad request", handler.ErrBadRequest, http.StatusBadRequest, slog.LevelWarn, "warning"},
		{"wrapped not found", fmt.Errorf("lookup: %w", handler.ErrNotFound), http.StatusNotFound, slog.LevelWarn, "warning"},
		{"internal", handler.ErrInternalServerError, http.StatusInternalServerError, slog.LevelError, "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			info := handler.ClassifyError(tt.err)
			assert.Equal(t, tt.status, info.StatusCode)
			assert.Equal(t, tt.level, info.LogLevel)
			assert.Equal(t, tt.kind, info.Type)
		})
	}
}

func TestNewErrorHandler(t *testing.T) {
	t.Parallel()

	t.Run("renders error page", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := slog.New(slog.NewTextHandler(&buf, nil))
		onError := handler.NewErrorHandler(log, handler.ErrorHandlerConfig{ErrorPage: mockErrorPage})

		rec := httptest.NewRecorder()
		onError(handler.NewContext(rec, httptest.NewRequest(http.MethodGet, "/show", nil)), handler.ErrBadRequest)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Error 400: bad_request", rec.Body.String())
		assert.Contains(t, buf.String(), "request error")
		assert.Contains(t, buf.String(), "component=error_handler")
	})

	t.Run("plain text without page", func(t *testing.T) {
		t.Parallel()
		onError := handler.NewErrorHandler(slog.New(slog.NewTextHandler(io.Discard, nil)), handler.ErrorHandlerConfig{})

		rec := httptest.NewRecorder()
		onError(handler.NewContext(rec, httptest.NewRequest(http.MethodGet, "/", nil)), errors.New("secret details"))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), "An error occurred processing your request")
		assert.NotContains(t, rec.Body.String(), "secret details")
	})

	t.Run("datastar request gets a toast", func(t *testing.T) {
		t.Parallel()
		onError := handler.NewErrorHandler(slog.New(slog.NewTextHandler(io.Discard, nil)), handler.ErrorHandlerConfig{
			ErrorPage:  mockErrorPage,
			ErrorToast: mockErrorToast,
		})

		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.Header.Set("Accept", "text/event-stream")
		rec := httptest.NewRecorder()
		onError(handler.NewContext(rec, req), handler.ErrForbidden)

		assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))
		assert.Contains(t, rec.Body.String(), "forbidden")
		assert.Contains(t, rec.Body.String(), "#toast-container")
	})
}
