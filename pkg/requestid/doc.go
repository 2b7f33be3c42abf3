// Package requestid attaches a correlation id to every HTTP request.
//
// Middleware reuses a well-formed X-Request-ID header sent by the client
// or generates a UUID, stores it in the request context and echoes it in
// the response. FromContext reads it back, and Extractor plugs it into
// logger.WithContextExtractors so every log line of a request carries it.
//
//	r := chi.NewRouter()
//	r.Use(requestid.Middleware)
//
//	log := logger.New(logger.WithContextExtractors(requestid.Extractor))
package requestid
