// Package cookie provides small helpers around net/http cookies that
// middleware needs when it manages a cookie on behalf of a handler.
//
// # Overview
//
//   - Read returns a request cookie, mapping http.ErrNoCookie to ErrCookieNotFound.
//   - Append validates a cookie and adds it as a Set-Cookie header. Invalid
//     cookies produce ErrInvalidCookie instead of being dropped.
//   - Options carries the optional Domain, Secure, HttpOnly and SameSite
//     attributes applied to outgoing cookies.
//   - Jar computes the minimal set of Set-Cookie headers that moves the client
//     from the cookies it sent to the desired state.
//
// # Jar
//
// A Jar separates what the client already holds from what the response
// changes. Removing a cookie the client holds produces exactly one removal
// header (empty value, Max-Age=0, Expires in the past). Removing a cookie the
// client does not hold produces nothing, and adding a cookie after a removal
// replaces the removal.
//
//	jar := cookie.NewJar()
//	if c, err := cookie.Read(r, "_flash"); err == nil {
//		jar.AddOriginal(c)
//	}
//	jar.Remove(&http.Cookie{Name: "_flash", Path: "/"})
//	for _, c := range jar.Delta() {
//		if err := cookie.Append(w.Header(), c); err != nil {
//			// handle
//		}
//	}
//
// # Error Handling
//
// ErrCookieNotFound and ErrInvalidCookie are sentinel errors to be checked
// with errors.Is.
package cookie
