package app

import (
	"fmt"
	"regexp"

	"github.com/retok/revenue"
	"github.com/retok/revenue/errors"
)

// isPath is the RegExp to ensure the routes make sense
var isPath = regexp.MustCompile(`^[a-zA-Z0-9_/]+$`).MatchString

// Router allows us to register many handlers with different
// paths and then direct each message to the proper handler.
//
// Minimal interface modeled after net/http.ServeMux
type Router struct {
	routes map[string]revenue.Handler
}

var _ revenue.Registry = (*Router)(nil)
var _ revenue.Handler = (*Router)(nil)

// NewRouter returns a new empty router instance.
func NewRouter() *Router {
	return &Router{
		routes: make(map[string]revenue.Handler, 32),
	}
}

// Handle adds a new Handler for the given path. This function panics if a
// handler for given path is already registered.
func (r *Router) Handle(path string, h revenue.Handler) {
	if !isPath(path) {
		panic(fmt.Sprintf("invalid path: %s", path))
	}
	if _, ok := r.routes[path]; ok {
		panic(fmt.Sprintf("re-registering route: %s", path))
	}
	r.routes[path] = h
}

// handler returns the registered Handler for this path. If no path is
// found, returns a noSuchPath Handler. This function never returns nil.
func (r *Router) handler(m revenue.Msg) revenue.Handler {
	path := m.Path()
	if h, ok := r.routes[path]; ok {
		return h
	}
	return notFoundHandler(path)
}

// Deliver dispatches the message to the handler registered for its path.
func (r *Router) Deliver(ctx revenue.Context, store revenue.KVStore, msg revenue.Msg) (*revenue.DeliverResult, error) {
	if msg == nil {
		return nil, errors.Wrap(errors.ErrInvalidInput, "no message")
	}
	return r.handler(msg).Deliver(ctx, store, msg)
}

// notFoundHandler always returns ErrNotFound.
type notFoundHandler string

func (path notFoundHandler) Deliver(revenue.Context, revenue.KVStore, revenue.Msg) (*revenue.DeliverResult, error) {
	return nil, errors.Wrapf(errors.ErrNotFound, "no handler for path %q", string(path))
}
