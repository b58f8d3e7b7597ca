package inbuilt

import (
	"github.com/indigo-web/pathway/http"
)

// Handler produces a response for a matched request. State is the read-only configuration
// the route was registered with, params are the values captured by the route pattern.
type Handler interface {
	Serve(request *http.Request, state State, params http.Params) *http.Response
}

// HandlerFunc adapts an ordinary function to the Handler interface.
type HandlerFunc func(request *http.Request, state State, params http.Params) *http.Response

func (h HandlerFunc) Serve(request *http.Request, state State, params http.Params) *http.Response {
	return h(request, state, params)
}

// Middleware is called for every request before it is matched against the routes. It may
// modify the request. Returning intercepted=true stops the processing, so the returned
// response is written back as is. Otherwise the returned response is ignored.
type Middleware func(request *http.Request) (response *http.Response, intercepted bool)

type Logger interface {
	Printf(format string, v ...any)
}
