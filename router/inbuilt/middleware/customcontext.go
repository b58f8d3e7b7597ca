package middleware

import (
	"context"

	"github.com/indigo-web/pathway/http"
	"github.com/indigo-web/pathway/router/inbuilt"
)

// CustomContext replaces the context of every request.
func CustomContext(ctx context.Context) inbuilt.Middleware {
	return func(request *http.Request) (*http.Response, bool) {
		request.Ctx = ctx
		return nil, false
	}
}
