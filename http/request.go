package http

import (
	"context"
	"net"

	"github.com/indigo-web/pathway/http/method"
	"github.com/indigo-web/pathway/kv"
	"github.com/indigo-web/utils/uf"
)

var zeroContext = context.Background()

type (
	Headers = *kv.Storage
	Header  = kv.Pair
	Params  = *kv.Storage
)

// Request represents HTTP request
type Request struct {
	// Method is an enum representing the request method.
	Method method.Method
	// Path is the request target exactly as it appeared in the request line.
	Path string
	// Headers holds header pairs. Keys are case-sensitive and stored as received; repeating
	// a header overrides its previous value.
	Headers Headers
	// Body is the whole message body, framed either by Content-Length or by the chunked
	// transfer encoding. Empty if neither was present.
	Body []byte
	// ContentLength obtains the value from Content-Length header. It holds the value of 0
	// if isn't presented.
	ContentLength int
	// Chunked reports whether the body was transferred using chunked transfer encoding.
	Chunked bool
	// Remote holds the remote address. Please note that this is generally not a good parameter to identify
	// a user, because there might be proxies in the middle.
	Remote net.Addr
	// Ctx is user-managed context which lives as long as the request does.
	Ctx context.Context
}

// NewRequest returns an empty request with the Unknown method.
func NewRequest(headers Headers) *Request {
	return &Request{
		Method:  method.Unknown,
		Headers: headers,
		Ctx:     zeroContext,
	}
}

// BodyString returns the body as a string without copying it.
func (r *Request) BodyString() string {
	return uf.B2S(r.Body)
}

// Respond returns a new Response object with 200 OK status.
func (r *Request) Respond() *Response {
	return NewResponse()
}
