package middleware

import (
	"log"

	"github.com/indigo-web/pathway/http"
	"github.com/indigo-web/pathway/router/inbuilt"
)

type Logger interface {
	Printf(fmt string, v ...any)
}

// LogRequests logs the method and path of every request before it's routed. If RequestID
// was used earlier, the request ID is logged as well.
func LogRequests(loggers ...Logger) inbuilt.Middleware {
	if len(loggers) == 0 {
		loggers = append(loggers, log.Default())
	}

	return func(request *http.Request) (*http.Response, bool) {
		id, found := request.Headers.GetFold(RequestIDHeader)

		for _, logger := range loggers {
			if found {
				logger.Printf("%s %s [%s]", request.Method, request.Path, id)
			} else {
				logger.Printf("%s %s", request.Method, request.Path)
			}
		}

		return nil, false
	}
}
