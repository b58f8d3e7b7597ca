package router

import (
	"github.com/indigo-web/pathway/http"
)

// Router is what the server dispatches requests to.
type Router interface {
	// OnStart is called once before the first connection is accepted. The router must not
	// be modified after it.
	OnStart() error
	// OnRequest processes the request. The returned response is never nil.
	OnRequest(request *http.Request) *http.Response
}
