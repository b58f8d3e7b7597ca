package http1

import (
	"strconv"

	"github.com/indigo-web/pathway/http"
	"github.com/indigo-web/pathway/http/mime"
	"github.com/indigo-web/pathway/http/status"
)

const (
	protocol = "HTTP/1.1 "
	crlf     = "\r\n"
)

// Writer is the destination of serialized responses. transport.Client satisfies it.
type Writer interface {
	Write([]byte) error
}

// Serializer renders responses into a reusable buffer and writes them at once.
type Serializer struct {
	buff []byte
	w    Writer
}

func NewSerializer(w Writer, buff []byte) *Serializer {
	return &Serializer{
		buff: buff[:0],
		w:    w,
	}
}

// Write renders and transmits the response.
func (s *Serializer) Write(response *http.Response) error {
	s.buff = Render(s.buff[:0], response)
	return s.w.Write(s.buff)
}

// Render appends the wire form of the response to buff: the status line, Content-Type and
// Content-Length if the body isn't empty, custom headers, the empty line and the body as-is.
// Nothing is appended after the body.
func Render(buff []byte, response *http.Response) []byte {
	fields := response.Reveal()

	buff = append(buff, protocol...)
	buff = strconv.AppendUint(buff, uint64(fields.Code), 10)
	buff = append(buff, ' ')

	if len(fields.Status) > 0 {
		buff = append(buff, fields.Status...)
	} else {
		buff = append(buff, status.Text(fields.Code)...)
	}

	buff = append(buff, crlf...)

	if len(fields.Body) > 0 {
		contentType := fields.ContentType
		if len(contentType) == 0 {
			contentType = mime.Plain
		}

		buff = appendHeader(buff, "Content-Type", contentType)
		buff = append(buff, "Content-Length: "...)
		buff = strconv.AppendInt(buff, int64(len(fields.Body)), 10)
		buff = append(buff, crlf...)
	}

	for _, header := range fields.Headers {
		buff = appendHeader(buff, header.Key, header.Value)
	}

	buff = append(buff, crlf...)

	return append(buff, fields.Body...)
}

func appendHeader(buff []byte, key, value string) []byte {
	buff = append(buff, key...)
	buff = append(buff, ": "...)
	buff = append(buff, value...)

	return append(buff, crlf...)
}
