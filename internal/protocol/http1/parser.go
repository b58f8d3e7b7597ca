package http1

import (
	"strconv"
	"strings"

	"github.com/indigo-web/pathway/config"
	"github.com/indigo-web/pathway/http"
	"github.com/indigo-web/pathway/http/method"
	"github.com/indigo-web/pathway/http/status"
	"github.com/indigo-web/utils/strcomp"
)

// parseHead fills the request with the request line and headers. The head must not include
// the empty line terminating it.
func parseHead(cfg *config.Config, head string, request *http.Request) error {
	requestLine, rest := nextLine(head)

	fields := strings.Fields(requestLine)
	if len(fields) < 2 {
		return status.ErrMalformedRequest
	}

	request.Method = method.Parse(fields[0])
	if request.Method == method.Unknown {
		if cfg.HTTP.StrictMethods {
			return status.ErrMethodNotImplemented
		}

		request.Method = method.GET
	}

	request.Path = fields[1]

	var headers int

	for len(rest) > 0 {
		var line string
		line, rest = nextLine(rest)

		colon := strings.IndexByte(line, ':')
		if colon == -1 {
			continue
		}

		if headers++; headers > cfg.Headers.Number.Maximal {
			return status.ErrTooManyHeaders
		}

		request.Headers.Set(line[:colon], strings.TrimSpace(line[colon+1:]))
	}

	return parseFraming(request)
}

// parseFraming decides how the body is delimited. Framing headers are looked up
// case-insensitively, even though the headers storage itself isn't.
func parseFraming(request *http.Request) error {
	if te, found := request.Headers.GetFold("transfer-encoding"); found && isChunked(te) {
		request.Chunked = true
		return nil
	}

	cl, found := request.Headers.GetFold("content-length")
	if !found {
		return nil
	}

	length, err := strconv.Atoi(strings.TrimSpace(cl))
	if err != nil || length < 0 {
		return status.ErrMalformedRequest
	}

	request.ContentLength = length

	return nil
}

// isChunked reports whether chunked is the last of the comma-separated codings, as only
// this way it frames the message.
func isChunked(te string) bool {
	if comma := strings.LastIndexByte(te, ','); comma != -1 {
		te = te[comma+1:]
	}

	return strcomp.EqualFold(strings.TrimSpace(te), "chunked")
}

// nextLine cuts the first line off, stripping the trailing CR if any.
func nextLine(data string) (line, rest string) {
	line, rest, _ = strings.Cut(data, "\n")

	return strings.TrimSuffix(line, "\r"), rest
}
