package server

import (
	"sync"

	"github.com/nhdewitt/embedhttp/internal/request"
)

type route struct {
	method  request.Method
	path    string
	handler *Handler
}

// Registry holds routes in registration order. It is safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	routes []route
}

func NewRegistry() *Registry {
	return &Registry{}
}

// Register appends a route. Duplicates are kept; the earliest one wins.
func (r *Registry) Register(method request.Method, path string, h *Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.routes = append(r.routes, route{method: method, path: path, handler: h})
}

// Unregister removes the first route served by h.
func (r *Registry) Unregister(h *Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, rt := range r.routes {
		if rt.handler == h {
			r.routes = append(r.routes[:i:i], r.routes[i+1:]...)
			return
		}
	}
}

// Resolve returns the first handler registered for exactly method and path,
// or nil.
func (r *Registry) Resolve(method request.Method, path string) *Handler {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, rt := range r.routes {
		if rt.method == method && rt.path == path {
			return rt.handler
		}
	}
	return nil
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.routes)
}
