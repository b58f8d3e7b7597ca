package inbuilt

import (
	"log"

	"github.com/indigo-web/pathway/http"
	"github.com/indigo-web/pathway/http/status"
	"github.com/indigo-web/pathway/kv"
	"github.com/indigo-web/pathway/router"
)

var _ router.Router = new(Router)

// Router is a built-in implementation of router.Router interface. Routes are kept in a single
// list ordered from the most specific pattern to the least one, so a request is served by
// the first route whose method and pattern both match it.
//
// The router is built by a single goroutine. Once OnStart is called, it is frozen: no more
// routes or middlewares can be added, and it is safe to be used by many connections at once.
type Router struct {
	routes      []Route
	middlewares []Middleware
	notFound    Handler
	logger      Logger
	frozen      bool
}

// New constructs a new instance of inbuilt router
func New() *Router {
	return &Router{
		notFound: HandlerFunc(notFound),
		logger:   log.Default(),
	}
}

// Use appends middlewares. They are called in order of their registration.
func (r *Router) Use(middlewares ...Middleware) *Router {
	r.mustNotBeFrozen()
	r.middlewares = append(r.middlewares, middlewares...)
	return r
}

// NotFound replaces the handler of requests no route matched. The default one responds
// with 404 Not Found and no body.
func (r *Router) NotFound(handler Handler) *Router {
	r.mustNotBeFrozen()
	r.notFound = handler
	return r
}

// Logger sets the logger recovered panics are reported to. log.Default() is used by default.
func (r *Router) Logger(logger Logger) *Router {
	r.logger = logger
	return r
}

// OnStart freezes the router.
func (r *Router) OnStart() error {
	r.frozen = true
	return nil
}

// Routes returns the registered routes in order they are matched. The returned slice
// must not be modified.
func (r *Router) Routes() []Route {
	return r.routes
}

// Match returns the first route matching the request and the values captured by its pattern.
// The last returned value is false if there's no such route.
func (r *Router) Match(request *http.Request) (Route, http.Params, bool) {
	params := kv.New()

	for _, route := range r.routes {
		if route.Method != request.Method {
			continue
		}

		if route.Pattern.Match(request.Path, params.Clear()) {
			return route, params, true
		}
	}

	return Route{}, nil, false
}

// OnRequest runs the middlewares and then the handler of the matched route. Panics are
// recovered and result in 500 Internal Server Error.
func (r *Router) OnRequest(request *http.Request) (response *http.Response) {
	defer func() {
		if err := recover(); err != nil {
			r.logger.Printf("pathway: panic while serving %s %s: %v", request.Method, request.Path, err)
			response = http.Error(request, status.ErrInternalServerError)
		}
	}()

	for _, middleware := range r.middlewares {
		if resp, intercepted := middleware(request); intercepted {
			return orDefault(request, resp)
		}
	}

	route, params, found := r.Match(request)
	if !found {
		return orDefault(request, r.notFound.Serve(request, State{}, kv.New()))
	}

	return orDefault(request, route.Handler.Serve(request, route.State, params))
}

func (r *Router) mustNotBeFrozen() {
	if r.frozen {
		panic(ErrFrozen)
	}
}

func orDefault(request *http.Request, response *http.Response) *http.Response {
	if response == nil {
		return request.Respond()
	}

	return response
}

func notFound(request *http.Request, _ State, _ http.Params) *http.Response {
	return http.Error(request, status.ErrNotFound)
}
