package cookie

import (
	"net/http"
	"slices"
	"strings"
)

// Jar tracks the cookies a client is known to hold and the changes a
// response has to send to move it to the desired state.
//
// Originals registered with AddOriginal describe what the client sent.
// Add and Remove record changes, and Delta returns only those changes,
// so every cookie name yields at most one Set-Cookie header.
//
// A Jar is not safe for concurrent use.
type Jar struct {
	original map[string]*http.Cookie
	delta    map[string]*http.Cookie
}

// NewJar returns an empty jar.
func NewJar() *Jar {
	return &Jar{
		original: make(map[string]*http.Cookie),
		delta:    make(map[string]*http.Cookie),
	}
}

// AddOriginal registers a cookie the client already holds.
// Originals never show up in Delta by themselves.
func (j *Jar) AddOriginal(c *http.Cookie) {
	if c == nil {
		return
	}
	cp := *c
	j.original[c.Name] = &cp
}

// Add records c as a cookie to send, replacing any pending change for the
// same name.
func (j *Jar) Add(c *http.Cookie) {
	if c == nil {
		return
	}
	cp := *c
	j.delta[c.Name] = &cp
}

// Remove schedules removal of the cookie named like c. The removal is
// built from c so path and domain match what the client stores.
// If the client never held the cookie, the pending change is dropped and
// nothing is sent.
func (j *Jar) Remove(c *http.Cookie) {
	if c == nil {
		return
	}
	if _, ok := j.original[c.Name]; ok {
		j.delta[c.Name] = removal(c)
		return
	}
	delete(j.delta, c.Name)
}

// Get returns the cookie the client will hold for name once Delta is
// applied, or nil if it will hold none.
func (j *Jar) Get(name string) *http.Cookie {
	if c, ok := j.delta[name]; ok {
		if c.MaxAge < 0 {
			return nil
		}
		return c
	}
	return j.original[name]
}

// Delta returns the cookies that must be sent, ordered by name.
func (j *Jar) Delta() []*http.Cookie {
	out := make([]*http.Cookie, 0, len(j.delta))
	for _, c := range j.delta {
		out = append(out, c)
	}
	slices.SortFunc(out, func(a, b *http.Cookie) int {
		return strings.Compare(a.Name, b.Name)
	})
	return out
}
