package middleware

import (
	"github.com/dchest/uniuri"
	"github.com/indigo-web/pathway/http"
	"github.com/indigo-web/pathway/router/inbuilt"
)

const (
	RequestIDHeader = "X-Request-Id"
	requestIDLength = 16
)

// RequestID sets a random X-Request-Id header unless the client has already sent one.
func RequestID() inbuilt.Middleware {
	return func(request *http.Request) (*http.Response, bool) {
		if _, found := request.Headers.GetFold(RequestIDHeader); !found {
			request.Headers.Set(RequestIDHeader, uniuri.NewLen(requestIDLength))
		}

		return nil, false
	}
}
