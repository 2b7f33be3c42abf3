// Package logger builds *slog.Logger values with functional options and
// provides helpers that keep attribute names consistent.
//
// New picks slog.NewTextHandler or slog.NewJSONHandler based on the
// configured Format and wraps it with LogHandlerDecorator, which runs the
// registered ContextExtractor callbacks for every record. That is how
// request-scoped values such as the request id end up in log lines without
// being passed around explicitly.
//
// # Usage
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.Env, "flash-example"),
//		logger.WithContextExtractors(requestid.Extractor),
//	)
//	logger.SetAsDefault(log)
//
//	log.DebugContext(ctx, "flash cycle committed",
//		logger.Component("flash"),
//		logger.CookieName("_flash"),
//		logger.Outcome("refreshed"),
//	)
//
// # Configuration
//
//   - WithEnvironment: per-environment defaults (text/debug for development,
//     json/info for staging and production).
//   - WithFormat, WithTextFormatter, WithJSONFormatter: output format.
//   - WithLevel: minimum level.
//   - WithOutput: destination writer.
//   - WithAttr: static attributes.
//   - WithContextExtractors, WithContextValue: attributes from context.
//
// Error and Errors return an empty attribute for nil errors, so
//
//	log.Info("done", logger.Error(err))
//
// needs no nil check.
package logger
