// Package flash provides one-shot flash messages for net/http applications.
//
// A flash message is set by one response and read by the next request from
// the same client, then cleared. It rides in a single cookie, so it survives
// exactly one redirect or reload, which makes it the natural companion of
// the post-redirect-get pattern.
//
// # Lifecycle
//
// The Middleware wraps every request/response cycle:
//
//  1. On entry the flash cookie sent by the client (if any) is stored in the
//     request context where FromContext can find it.
//  2. The handler runs. It may read the message and may return a Response
//     staging a new one.
//  3. Right before the response headers are written the middleware either
//     sets the staged message (Path=/), clears the cookie the client sent,
//     or does nothing when there was neither.
//
// A staged message always wins over the deletion of the old cookie: the
// response carries a single Set-Cookie header for the flash cookie.
// When the inner response fails, Abort is called or the handler panics, the
// cookie is left as it was and gets reconciled on the next cycle.
//
// # Usage
//
//	fm := flash.Default(flash.WithLogger(log))
//
//	r := chi.NewRouter()
//	r.Use(fm.Handler)
//
//	r.Post("/items", handler.Wrap(func(ctx handler.Context) handler.Response {
//		// ... create the item
//		return flash.WithRedirect("Item created", "/items")
//	}))
//
//	r.Get("/items", handler.Wrap(func(ctx handler.Context) handler.Response {
//		msg, err := flash.FromContext[string](ctx)
//		if err != nil {
//			return handler.Error(err)
//		}
//		return handler.Text(msg.Value())
//	}))
//
// # Wire Format
//
// Messages are JSON encoded inside an envelope, {"_": <value>}, so strings,
// numbers and structs are all carried the same way. The envelope is
// percent-escaped into the cookie value because JSON quotes and commas are
// not valid cookie octets. Cookies are neither signed nor encrypted: never
// put anything in a flash message the client must not read or change.
//
// # Error Handling
//
// FromContext fails with ErrMissingFlash when no message is available. A
// cookie that cannot be decoded yields the same error to the handler, and it
// additionally matches ErrDecode for code that wants to tell the two apart.
// ErrMissingFlash is a handler.HTTPError and renders as 400 Bad Request.
//
// Encoding failures (ErrEncode) and invalid Set-Cookie headers (ErrHeader)
// are server faults. A header failure replaces the response with
// 500 Internal Server Error.
//
// Use AbortOnError with handler.WithErrorHandler to keep the flash cookie
// intact when a handler fails with a server error.
package flash
