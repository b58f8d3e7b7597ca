package config

import (
	"time"
)

type (
	HeadersNumber struct {
		Maximal int
	}

	HeadersSpace struct {
		Default, Maximal int
	}
)

type (
	Headers struct {
		// Number limits how many header lines a single request may carry.
		Number HeadersNumber
		// Space limits the memory occupied by the request head (request line and headers).
		// Default is the initial size of the growable read buffer, Maximal is the boundary
		// it is never allowed to grow past.
		Space HeadersSpace
	}

	Body struct {
		// MaxSize describes the maximal size of a body, that can be processed. 0 will discard
		// any request with body (resulting in status.ErrBodyTooLarge).
		MaxSize int
	}

	NET struct {
		// ReadBufferSize is a size of buffer in bytes which will be used to read from
		// socket
		ReadBufferSize int
		// ReadTimeout controls the maximal lifetime of IDLE connections. If no data was
		// received in this period of time, it'll be closed.
		ReadTimeout time.Duration
		// AcceptLoopInterruptPeriod controls how often will the Accept() call be interrupted
		// in order to check whether it's time to stop.
		AcceptLoopInterruptPeriod time.Duration
		// WriteBufferSize is the initial capacity of the buffer the response is serialized into.
		WriteBufferSize int
		// MaxConnections caps the number of connections served simultaneously. Once the cap
		// is reached, the accept loop waits for one of them to finish. 0 disables the cap.
		MaxConnections int `test:"nullable"`
	}

	HTTP struct {
		// StrictMethods makes requests with unrecognized methods fail instead of being
		// treated as GET.
		StrictMethods bool `test:"nullable"`
	}
)

// Config holds settings used across various parts of pathway, mainly restrictions, limitations
// and pre-allocations.
//
// You must ALWAYS modify defaults (returned via Default()) and NEVER try to initialize the
// config manually, because most likely this will result in ambiguous errors.
type Config struct {
	Headers Headers
	Body    Body
	NET     NET
	HTTP    HTTP
}

// Default returns default config.
func Default() *Config {
	return &Config{
		Headers: Headers{
			Number: HeadersNumber{
				Maximal: 50,
			},
			Space: HeadersSpace{
				Default: 1 * 1024,  // 1kb for headers must be fairly enough in most cases.
				Maximal: 16 * 1024, // However, there also might be extremely long cookies.
			},
		},
		Body: Body{
			MaxSize: 64 * 1024 * 1024,
		},
		NET: NET{
			ReadBufferSize:            4 * 1024,
			ReadTimeout:               90 * time.Second,
			AcceptLoopInterruptPeriod: 5 * time.Second,
			WriteBufferSize:           2 * 1024,
		},
	}
}
