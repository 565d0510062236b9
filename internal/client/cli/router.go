package cli

import (
	"fmt"
	"io"
	"sync"
)

// Router tracks the current page and announces every change.
type Router struct {
	mu   sync.Mutex
	path string
	out  io.Writer
}

// NewRouter starts at path.
func NewRouter(out io.Writer, path string) *Router {
	return &Router{out: out, path: path}
}

// Navigate implements forms.Navigator.
func (r *Router) Navigate(path string) {
	r.mu.Lock()
	r.path = path
	r.mu.Unlock()

	fmt.Fprintf(r.out, "-> %s\n", path)
}

// Current returns the current path.
func (r *Router) Current() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.path
}
