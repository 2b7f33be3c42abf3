package handler_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/flash/handler"
)

type mockResponse struct {
	statusCode int
	body       string
	renderErr  error
}

func (m mockResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if m.renderErr != nil {
		return m.renderErr
	}
	w.WriteHeader(m.statusCode)
	_, err := w.Write([]byte(m.body))
	return err
}

func TestWrap(t *testing.T) {
	t.Parallel()

	t.Run("renders the returned response", func(t *testing.T) {
		t.Parallel()
		h := handler.HandlerFunc[handler.Context](func(ctx handler.Context) handler.Response {
			assert.NotNil(t, ctx.Request())
			assert.NotNil(t, ctx.ResponseWriter())
			return mockResponse{statusCode: http.StatusOK, body: "success"}
		})

		rec := httptest.NewRecorder()
		handler.Wrap(h)(rec, httptest.NewRequest(http.MethodGet, "/test", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "success", rec.Body.String())
	})

	t.Run("render error goes to the default error handler", func(t *testing.T) {
		t.Parallel()
		h := handler.HandlerFunc[handler.Context](func(ctx handler.Context) handler.Response {
			return mockResponse{renderErr: errors.New("render failed")}
		})

		rec := httptest.NewRecorder()
		handler.Wrap(h)(rec, httptest.NewRequest(http.MethodGet, "/test", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), "render failed")
	})

	t.Run("http error keeps its status", func(t *testing.T) {
		t.Parallel()
		h := handler.HandlerFunc[handler.Context](func(ctx handler.Context) handler.Response {
			return mockResponse{renderErr: handler.ErrNotFound}
		})

		rec := httptest.NewRecorder()
		handler.Wrap(h)(rec, httptest.NewRequest(http.MethodGet, "/test", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "not_found")
	})

	t.Run("nil response", func(t *testing.T) {
		t.Parallel()
		h := handler.HandlerFunc[handler.Context](func(ctx handler.Context) handler.Response {
			return nil
		})

		rec := httptest.NewRecorder()
		handler.Wrap(h)(rec, httptest.NewRequest(http.MethodGet, "/test", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), handler.ErrNilResponse.Error())
	})

	t.Run("custom error handler", func(t *testing.T) {
		t.Parallel()
		var got error
		h := handler.HandlerFunc[handler.Context](func(ctx handler.Context) handler.Response {
			return mockResponse{renderErr: handler.ErrForbidden}
		})
		onError := func(ctx handler.Context, err error) {
			got = err
			ctx.ResponseWriter().WriteHeader(http.StatusTeapot)
		}

		rec := httptest.NewRecorder()
		handler.Wrap(h, handler.WithErrorHandler(onError))(rec, httptest.NewRequest(http.MethodGet, "/test", nil))

		assert.ErrorIs(t, got, handler.ErrForbidden)
		assert.Equal(t, http.StatusTeapot, rec.Code)
	})

	t.Run("custom context factory", func(t *testing.T) {
		t.Parallel()
		created := false
		factory := func(w http.ResponseWriter, r *http.Request) handler.Context {
			created = true
			return handler.NewContext(w, r)
		}
		h := handler.HandlerFunc[handler.Context](func(ctx handler.Context) handler.Response {
			return handler.Empty()
		})

		rec := httptest.NewRecorder()
		handler.Wrap(h, handler.WithContextFactory(factory))(rec, httptest.NewRequest(http.MethodGet, "/test", nil))

		assert.True(t, created)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("decorators run first to last", func(t *testing.T) {
		t.Parallel()
		var order []string
		decorator := func(name string) handler.Decorator[handler.Context] {
			return func(next handler.HandlerFunc[handler.Context]) handler.HandlerFunc[handler.Context] {
				return func(ctx handler.Context) handler.Response {
					order = append(order, name)
					return next(ctx)
				}
			}
		}
		h := handler.HandlerFunc[handler.Context](func(ctx handler.Context) handler.Response {
			order = append(order, "handler")
			return handler.Empty()
		})

		rec := httptest.NewRecorder()
		handler.Wrap(h, handler.WithDecorators(decorator("first"), decorator("second")))(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		require.Equal(t, []string{"first", "second", "handler"}, order)
	})
}

func TestContextValue(t *testing.T) {
	t.Parallel()

	type key struct{}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(contextWith(req, key{}, "value"))

	ctx := handler.NewContext(httptest.NewRecorder(), req)
	assert.Equal(t, "value", ctx.Value(key{}))
	assert.NoError(t, ctx.Err())
	assert.Nil(t, ctx.SSE())
}

func TestResponseFunc(t *testing.T) {
	t.Parallel()

	called := false
	resp := handler.ResponseFunc(func(w http.ResponseWriter, r *http.Request) error {
		called = true
		w.WriteHeader(http.StatusAccepted)
		return nil
	})

	rec := httptest.NewRecorder()
	require.NoError(t, resp.Render(rec, httptest.NewRequest(http.MethodGet, "/", nil)))
	assert.True(t, called)
	assert.Equal(t, http.StatusAccepted, rec.Code)
}

func TestErrorResponse(t *testing.T) {
	t.Parallel()

	h := handler.HandlerFunc[handler.Context](func(ctx handler.Context) handler.Response {
		return handler.Error(handler.ErrUnauthorized)
	})

	rec := httptest.NewRecorder()
	handler.Wrap(h)(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "unauthorized\n", rec.Body.String())
}
