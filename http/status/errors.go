package status

// HTTPError is an error carrying the status code it must be answered with.
type HTTPError struct {
	Message string
	Code    Code
}

func NewError(code Code, message string) error {
	return HTTPError{
		Code:    code,
		Message: message,
	}
}

func (h HTTPError) Error() string {
	return h.Message
}

var (
	// ErrShutdown is returned by the accept loop once it was stopped.
	ErrShutdown = NewError(ServiceUnavailable, "server is shutting down")

	ErrMalformedRequest     = NewError(BadRequest, "malformed request")
	ErrBadChunk             = NewError(BadRequest, "malformed chunk-encoded data")
	ErrNotFound             = NewError(NotFound, "not found")
	ErrMethodNotImplemented = NewError(NotImplemented, "request method is not supported")
	ErrBodyTooLarge         = NewError(RequestEntityTooLarge, "request body is too large")
	ErrHeaderFieldsTooLarge = NewError(RequestHeaderFieldsTooLarge, "too large headers section")
	ErrTooManyHeaders       = NewError(RequestHeaderFieldsTooLarge, "too many headers")
	ErrInternalServerError  = NewError(InternalServerError, "internal server error")
)
