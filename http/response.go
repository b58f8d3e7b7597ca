package http

import (
	"errors"
	"io/fs"
	"os"

	"github.com/indigo-web/pathway/http/mime"
	"github.com/indigo-web/pathway/http/status"
	"github.com/indigo-web/utils/strcomp"
	"github.com/indigo-web/utils/uf"
	json "github.com/json-iterator/go"
)

// why 4? There's no theory behind this number. Most of responses produced here carry
// no custom headers at all.
const preallocRespHeaders = 4

// Fields are the values the Response builder was filled with.
type Fields struct {
	Code status.Code
	// Status is a custom status text. If empty, the default one for the Code is used.
	Status      status.Status
	ContentType mime.MIME
	Headers     []Header
	Body        []byte
}

type Response struct {
	fields *Fields
}

// NewResponse returns a new instance of the Response object with status code set to 200 OK
// and no body.
func NewResponse() *Response {
	return &Response{
		&Fields{
			Code:    status.OK,
			Headers: make([]Header, 0, preallocRespHeaders),
		},
	}
}

// Code sets a Response code and a corresponding status.
func (r *Response) Code(code status.Code) *Response {
	r.fields.Code = code
	return r
}

// Status sets a custom status text.
func (r *Response) Status(status status.Status) *Response {
	r.fields.Status = status
	return r
}

// ContentType sets a custom Content-Type header value. It is transmitted only along with
// a non-empty body.
func (r *Response) ContentType(value mime.MIME) *Response {
	r.fields.ContentType = value
	return r
}

// Header sets header values to a key. In case it already exists the value will
// be appended. Content-Length is always computed from the body, so it can't be set
// manually.
func (r *Response) Header(key string, values ...string) *Response {
	switch {
	case strcomp.EqualFold(key, "content-type"):
		if len(values) == 0 {
			return r
		}

		return r.ContentType(values[0])
	case strcomp.EqualFold(key, "content-length"):
		return r
	}

	for i := range values {
		r.fields.Headers = append(r.fields.Headers, Header{
			Key:   key,
			Value: values[i],
		})
	}

	return r
}

// String sets the response's body to the passed string
func (r *Response) String(body string) *Response {
	return r.Bytes(uf.S2B(body))
}

// Bytes sets the response's body to passed slice WITHOUT COPYING. Changing
// the passed slice later will affect the response by itself
func (r *Response) Bytes(body []byte) *Response {
	r.fields.Body = body
	return r
}

// Write implements io.Writer interface. It always returns n=len(b) and err=nil
func (r *Response) Write(b []byte) (n int, err error) {
	r.fields.Body = append(r.fields.Body, b...)
	return len(b), nil
}

// TryFile reads the file and sets it as the body, guessing the Content-Type by its
// extension. Missing files and directories result in status.ErrNotFound, any other failure
// in status.ErrInternalServerError.
func (r *Response) TryFile(path string) (*Response, error) {
	stat, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return r, status.ErrNotFound
		}

		return r, status.ErrInternalServerError
	}

	if stat.IsDir() {
		return r, status.ErrNotFound
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return r, status.ErrInternalServerError
	}

	return r.ContentType(mime.ByPath(path)).Bytes(content), nil
}

// File does the same as TryFile, except the error is implicitly passed to Error.
func (r *Response) File(path string) *Response {
	resp, err := r.TryFile(path)
	if err != nil {
		return r.Error(err)
	}

	return resp
}

// TryJSON receives a model (must be a pointer to the structure) and returns a new Response
// object and an error
func (r *Response) TryJSON(model any) (*Response, error) {
	// the previous body might be borrowed from a string, so it must never be written into
	r.fields.Body = nil
	stream := json.ConfigDefault.BorrowStream(r)
	stream.WriteVal(model)
	err := stream.Flush()
	json.ConfigDefault.ReturnStream(stream)

	return r.ContentType(mime.JSON), err
}

// JSON does the same as TryJSON does, except returned error is being implicitly wrapped
// by Error
func (r *Response) JSON(model any) *Response {
	resp, err := r.TryJSON(model)
	if err != nil {
		return r.Error(err)
	}

	return resp
}

// Error returns a response builder with an error set. If passed err is nil, nothing will happen.
// If an instance of status.HTTPError is passed (probably wrapped), its code is set and the body
// is discarded. Otherwise, the code defaults to 500 Internal Server Error, unless passed
// explicitly (only the first one is used).
func (r *Response) Error(err error, code ...status.Code) *Response {
	if err == nil {
		return r
	}

	var httpErr status.HTTPError
	if errors.As(err, &httpErr) {
		return r.Code(httpErr.Code).Bytes(nil)
	}

	c := status.InternalServerError
	if len(code) > 0 {
		c = code[0]
	}

	return r.
		Code(c).
		ContentType(mime.Plain).
		String(err.Error())
}

// Reveal returns a struct with values, filled by builder. Used mostly in internal purposes
func (r *Response) Reveal() *Fields {
	return r.fields
}

// Respond is a predicate to request.Respond(). May be used as a dummy handler
func Respond(request *Request) *Response {
	return request.Respond()
}

// Code is a predicate to request.Respond().Code(...)
func Code(request *Request, code status.Code) *Response {
	return request.Respond().Code(code)
}

// String is a predicate to request.Respond().String(...)
func String(request *Request, str string) *Response {
	return request.Respond().String(str)
}

// Bytes is a predicate to request.Respond().Bytes(...)
func Bytes(request *Request, b []byte) *Response {
	return request.Respond().Bytes(b)
}

// File is a predicate to request.Respond().File(...)
func File(request *Request, path string) *Response {
	return request.Respond().File(path)
}

// JSON is a predicate to request.Respond().JSON(...)
func JSON(request *Request, model any) *Response {
	return request.Respond().JSON(model)
}

// Error is a predicate to request.Respond().Error(...)
func Error(request *Request, err error, code ...status.Code) *Response {
	return request.Respond().Error(err, code...)
}
