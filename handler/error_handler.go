package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/flash/pkg/logger"
	"github.com/dmitrymomot/flash/pkg/requestid"
)

// ErrorPageParams contains data for rendering error pages
type ErrorPageParams struct {
	Error      string
	StatusCode int
	RequestID  string
}

// ErrorToastParams contains data for rendering error toasts
type ErrorToastParams struct {
	Message   string
	Type      string // "error", "warning"
	RequestID string
}

// ErrorHandlerConfig configures the default error handler
type ErrorHandlerConfig struct {
	// ErrorPage renders a full error page for regular HTTP requests.
	// When nil a plain text error is written.
	ErrorPage func(ErrorPageParams) templ.Component

	// ErrorToast renders a toast notification for DataStar requests.
	ErrorToast func(ErrorToastParams) templ.Component

	// ToastTarget specifies where to render toast notifications (default: "#toast-container")
	ToastTarget string
}

// ErrorInfo contains classified error information
type ErrorInfo struct {
	StatusCode int
	Message    string
	Type       string
	LogLevel   slog.Level
}

// ClassifyError maps err to the status code, message and log level used
// when answering it. HTTPError values are client-visible; anything else is
// reported as a generic 500.
func ClassifyError(err error) ErrorInfo {
	info := ErrorInfo{
		StatusCode: http.StatusInternalServerError,
		Message:    "An error occurred processing your request",
		Type:       "error",
		LogLevel:   slog.LevelError,
	}

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		info.StatusCode = httpErr.Code
		info.Message = httpErr.Key
	}

	if info.StatusCode >= http.StatusBadRequest && info.StatusCode < http.StatusInternalServerError {
		info.Type = "warning"
		info.LogLevel = slog.LevelWarn
	}

	return info
}

// NewErrorHandler creates the default error handler.
// Regular requests get an error page, DataStar requests a toast.
func NewErrorHandler(log *slog.Logger, cfg ErrorHandlerConfig) ErrorHandler[Context] {
	if cfg.ToastTarget == "" {
		cfg.ToastTarget = "#toast-container"
	}
	if log == nil {
		log = slog.Default()
	}

	return func(ctx Context, err error) {
		r := ctx.Request()
		requestID := requestid.FromContext(r.Context())
		info := ClassifyError(err)

		log.LogAttrs(r.Context(), info.LogLevel, "request error",
			logger.RequestID(requestID),
			logger.Error(err),
			slog.Int("status_code", info.StatusCode),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			logger.Component("error_handler"),
		)

		if IsDataStar(r) && cfg.ErrorToast != nil {
			toast := cfg.ErrorToast(ErrorToastParams{
				Message:   info.Message,
				Type:      info.Type,
				RequestID: requestID,
			})
			if renderErr := Templ(toast, WithTarget(cfg.ToastTarget), WithPatchMode(PatchPrepend)).Render(ctx.ResponseWriter(), r); renderErr != nil {
				log.Error("failed to render error toast",
					logger.RequestID(requestID),
					logger.Error(renderErr),
					logger.Event("render_error_toast"),
				)
			}
			return
		}

		if cfg.ErrorPage == nil {
			http.Error(ctx.ResponseWriter(), info.Message, info.StatusCode)
			return
		}

		page := cfg.ErrorPage(ErrorPageParams{
			Error:      info.Message,
			StatusCode: info.StatusCode,
			RequestID:  requestID,
		})
		if renderErr := TemplWithStatus(info.StatusCode, page).Render(ctx.ResponseWriter(), r); renderErr != nil {
			log.Error("failed to render error page",
				logger.RequestID(requestID),
				logger.Error(renderErr),
				logger.Event("render_error_page"),
			)
		}
	}
}
