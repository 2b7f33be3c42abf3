package httpserver

import "errors"

// Error keys follow the "<package>.<failure>" form used by the flash and
// handler errors, so they read the same in logs.
var (
	// ErrListen is returned when the listening socket cannot be opened.
	ErrListen = errors.New("httpserver.listen")
	// ErrServe is returned when the serve loop stops for any reason other
	// than a shutdown.
	ErrServe = errors.New("httpserver.serve")
	// ErrAlreadyRunning is returned by a second Run on the same Server.
	ErrAlreadyRunning = errors.New("httpserver.already_running")
	// ErrShutdown is returned when in-flight requests outlive the shutdown
	// timeout.
	ErrShutdown = errors.New("httpserver.shutdown")
)
