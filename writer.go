package flash

import (
	"bufio"
	"net"
	"net/http"
	"sync"
)

// writer commits the flash cookie once, right before the first byte of the
// response leaves.
type writer struct {
	http.ResponseWriter
	commit func() error

	once sync.Once
	err  error
}

func (w *writer) flush() error {
	w.once.Do(func() {
		w.err = w.commit()
	})
	return w.err
}

func (w *writer) WriteHeader(code int) {
	if w.flush() != nil {
		return
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *writer) Write(b []byte) (int, error) {
	if err := w.flush(); err != nil {
		return 0, err
	}
	return w.ResponseWriter.Write(b)
}

func (w *writer) Flush() {
	if w.flush() != nil {
		return
	}
	_ = http.NewResponseController(w.ResponseWriter).Flush()
}

func (w *writer) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	return http.NewResponseController(w.ResponseWriter).Hijack()
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (w *writer) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
