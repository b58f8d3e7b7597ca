package http1

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/indigo-web/chunkedbody"
	"github.com/indigo-web/pathway/config"
	"github.com/indigo-web/pathway/http"
	"github.com/indigo-web/pathway/http/status"
	"github.com/indigo-web/pathway/kv"
	"github.com/indigo-web/utils/buffer"
)

const preallocHeaders = 8

var headTerminator = []byte("\r\n\r\n")

// Source is a stream the request is read from. transport.Client satisfies it.
type Source interface {
	// Read returns the next piece of data. The returned slice may be reused by the source
	// after the next call.
	Read() ([]byte, error)
	// Unread makes the next Read return the passed data.
	Unread([]byte)
}

// Reader reads a single request from the source. The request head is accumulated into a
// buffer growing from cfg.Headers.Space.Default up to cfg.Headers.Space.Maximal, so a request
// split over arbitrary many reads is handled. The body is then read according to its framing.
type Reader struct {
	cfg     *config.Config
	src     Source
	head    *buffer.Buffer[byte]
	chunked *chunkedbody.Parser
}

func NewReader(cfg *config.Config, src Source) *Reader {
	return &Reader{
		cfg:     cfg,
		src:     src,
		head:    buffer.NewBuffer[byte](cfg.Headers.Space.Default, cfg.Headers.Space.Maximal),
		chunked: chunkedbody.NewParser(chunkedbody.DefaultSettings()),
	}
}

// Parse parses a request, which is entirely contained in raw.
func Parse(cfg *config.Config, raw []byte) (*http.Request, error) {
	return NewReader(cfg, newSliceSource(raw)).Read()
}

// Read reads the next request. Everything following the request is left in the source.
func (r *Reader) Read() (*http.Request, error) {
	head, err := r.readHead()
	if err != nil {
		return nil, err
	}

	request := http.NewRequest(kv.NewPrealloc(preallocHeaders))
	if err = parseHead(r.cfg, string(head), request); err != nil {
		return nil, err
	}

	switch {
	case request.Chunked:
		err = r.readChunked(request)
	case request.ContentLength > 0:
		err = r.readPlain(request)
	}

	if err != nil {
		return nil, err
	}

	return request, nil
}

func (r *Reader) readHead() ([]byte, error) {
	for {
		data, err := r.src.Read()
		if len(data) > 0 {
			if end := r.terminator(data); end != -1 {
				if !r.head.Append(data[:end]) {
					return nil, status.ErrHeaderFieldsTooLarge
				}

				if extra := data[end:]; len(extra) > 0 {
					r.src.Unread(extra)
				}

				head := r.head.Finish()
				return head[:len(head)-len(headTerminator)], nil
			}

			if !r.head.Append(data) {
				return nil, status.ErrHeaderFieldsTooLarge
			}
		}

		if err != nil {
			if !errors.Is(err, io.EOF) {
				return nil, err
			}

			// the peer has closed its side without finishing the head. Whatever was
			// received is the best we have.
			head := r.head.Finish()
			if len(bytes.TrimSpace(head)) == 0 {
				return nil, status.ErrMalformedRequest
			}

			return bytes.TrimRight(head, "\r\n"), nil
		}
	}
}

// terminator returns the offset in data right past the head terminator, or -1 if there
// is none. The terminator may start in the already buffered part of the head.
func (r *Reader) terminator(data []byte) int {
	buffered := r.head.Preview()
	tail := buffered[max(len(buffered)-len(headTerminator)+1, 0):]

	var joint [6]byte
	n := copy(joint[:], tail)
	n += copy(joint[n:], data[:min(len(data), len(headTerminator)-1)])

	if i := bytes.Index(joint[:n], headTerminator); i != -1 {
		return i + len(headTerminator) - len(tail)
	}

	if i := bytes.Index(data, headTerminator); i != -1 {
		return i + len(headTerminator)
	}

	return -1
}

func (r *Reader) readPlain(request *http.Request) error {
	if request.ContentLength > r.cfg.Body.MaxSize {
		return status.ErrBodyTooLarge
	}

	body := make([]byte, 0, request.ContentLength)

	for len(body) < request.ContentLength {
		data, err := r.src.Read()
		if left := request.ContentLength - len(body); len(data) > left {
			r.src.Unread(data[left:])
			data = data[:left]
		}

		body = append(body, data...)

		if err != nil && len(body) < request.ContentLength {
			if errors.Is(err, io.EOF) {
				return fmt.Errorf("%w: body is shorter than Content-Length", status.ErrMalformedRequest)
			}

			return err
		}
	}

	request.Body = body

	return nil
}

func (r *Reader) readChunked(request *http.Request) error {
	var body []byte

	for {
		data, err := r.src.Read()
		if len(data) == 0 && err != nil {
			if errors.Is(err, io.EOF) {
				return fmt.Errorf("%w: unexpected end of chunked body", status.ErrBadChunk)
			}

			return err
		}

		if len(data) == 0 {
			continue
		}

		chunk, extra, err := r.chunked.Parse(data, false)
		switch err {
		case nil, io.EOF:
		default:
			return fmt.Errorf("%w: %s", status.ErrBadChunk, err)
		}

		if len(body)+len(chunk) > r.cfg.Body.MaxSize {
			return status.ErrBodyTooLarge
		}

		body = append(body, chunk...)
		if len(extra) > 0 {
			r.src.Unread(extra)
		}

		if err == io.EOF {
			request.Body = body
			return nil
		}
	}
}

type sliceSource struct {
	data []byte
}

func newSliceSource(data []byte) *sliceSource {
	return &sliceSource{data: data}
}

func (s *sliceSource) Read() ([]byte, error) {
	if len(s.data) == 0 {
		return nil, io.EOF
	}

	data := s.data
	s.data = nil

	return data, nil
}

func (s *sliceSource) Unread(b []byte) {
	s.data = b
}
