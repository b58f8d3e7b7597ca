package transport

import (
	"net"

	"github.com/indigo-web/pathway/config"
)

// Transport is the listening side of the transport boundary. It yields a stream per incoming
// connection by calling the callback, each call on its own goroutine.
type Transport interface {
	Bind(addr string) error
	Addr() net.Addr
	Listen(cfg config.NET, cb func(conn net.Conn)) error
	Stop()
	Close()
	Wait()
}

// Logger is used to report errors which are not fatal for the whole transport.
type Logger interface {
	Printf(format string, v ...any)
}
