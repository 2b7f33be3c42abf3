// Package handler is the hosting layer for typed HTTP handlers.
//
// A handler is a function that receives a Context and returns a Response
// value instead of writing to the http.ResponseWriter itself. Wrap turns it
// into an http.HandlerFunc; rendering errors go to an ErrorHandler.
//
//	show := func(ctx handler.Context) handler.Response {
//		return handler.Text("hello")
//	}
//
//	r.Get("/hello", handler.Wrap(show))
//
// Because a Response is a value, other packages can wrap one Response in
// another and run code before or after it renders. The flash package uses
// that to attach a one-time message to any response.
//
// # Response Types
//
//	handler.Text("body")              // 200 text/plain
//	handler.JSON(data)                // 200 application/json
//	handler.Empty()                   // 204
//	handler.Redirect("/next")         // 303 See Other
//	handler.RedirectBack("/fallback") // 303 to a same-host referrer
//	handler.Templ(component)          // HTML, or an SSE patch for DataStar
//
// DataStar requests (Accept: text/event-stream) get SSE redirects and
// element patches instead of plain HTTP responses.
//
// # Errors
//
// HTTPError carries a status code and key. The default error handler
// answers with that status; NewErrorHandler logs the error with the request
// ID and renders a templ error page or DataStar toast.
package handler
