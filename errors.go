package flash

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/flash/handler"
)

// ErrMissingFlash is returned by FromContext and FromRequest when no usable
// flash message arrived with the request. It covers both an absent cookie
// and a cookie that failed to decode; the latter also matches ErrDecode.
// Being an HTTPError it renders as 400 Bad Request through handler.Wrap.
var ErrMissingFlash = handler.HTTPError{Code: http.StatusBadRequest, Key: "flash.missing"}

var (
	ErrEncode       = errors.New("flash.encode")
	ErrDecode       = errors.New("flash.decode")
	ErrHeader       = errors.New("flash.header")
	ErrNotInstalled = errors.New("flash.not_installed")
)
