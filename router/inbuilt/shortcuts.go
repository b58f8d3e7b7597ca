package inbuilt

import (
	"github.com/indigo-web/pathway/http/method"
)

// Get is a shortcut for registering GET-requests.
func (r *Router) Get(path string, handler HandlerFunc, state ...State) *Router {
	return r.Route(method.GET, path, handler, state...)
}

// Head is a shortcut for registering HEAD-requests.
func (r *Router) Head(path string, handler HandlerFunc, state ...State) *Router {
	return r.Route(method.HEAD, path, handler, state...)
}

// Post is a shortcut for registering POST-requests.
func (r *Router) Post(path string, handler HandlerFunc, state ...State) *Router {
	return r.Route(method.POST, path, handler, state...)
}

// Put is a shortcut for registering PUT-requests.
func (r *Router) Put(path string, handler HandlerFunc, state ...State) *Router {
	return r.Route(method.PUT, path, handler, state...)
}

// Delete is a shortcut for registering DELETE-requests.
func (r *Router) Delete(path string, handler HandlerFunc, state ...State) *Router {
	return r.Route(method.DELETE, path, handler, state...)
}

// Options is a shortcut for registering OPTIONS-requests.
func (r *Router) Options(path string, handler HandlerFunc, state ...State) *Router {
	return r.Route(method.OPTIONS, path, handler, state...)
}

// Patch is a shortcut for registering PATCH-requests.
func (r *Router) Patch(path string, handler HandlerFunc, state ...State) *Router {
	return r.Route(method.PATCH, path, handler, state...)
}
