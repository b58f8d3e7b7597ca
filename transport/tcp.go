package transport

import (
	"errors"
	"log"
	"net"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/indigo-web/pathway/config"
)

const (
	minAcceptBackoff = 5 * time.Millisecond
	maxAcceptBackoff = 1 * time.Second
)

type listener interface {
	net.Listener
	SetDeadline(t time.Time) error
}

var _ Transport = new(TCP)

// TCP accepts connections serially and serves each of them on its own goroutine.
type TCP struct {
	l      listener
	logger Logger
	wg     *sync.WaitGroup
	stop   *atomic.Bool
}

// NewTCP returns an unbound TCP transport. If no logger is passed, log.Default() is used.
func NewTCP(logger ...Logger) *TCP {
	var l Logger = log.Default()
	if len(logger) > 0 {
		l = logger[0]
	}

	return &TCP{
		logger: l,
		wg:     new(sync.WaitGroup),
		stop:   new(atomic.Bool),
	}
}

func bindTCP(addr string) (*net.TCPListener, error) {
	tcpaddr, err := net.ResolveTCPAddr("tcp", addr)
	if err != nil {
		return nil, err
	}

	return net.ListenTCP("tcp", tcpaddr)
}

func (t *TCP) Bind(addr string) (err error) {
	t.l, err = bindTCP(addr)
	return err
}

// Addr returns the address the transport is bound to, or nil if it isn't bound yet.
func (t *TCP) Addr() net.Addr {
	if t.l == nil {
		return nil
	}

	return t.l.Addr()
}

// Listen runs the accept loop until Stop is called. Failures of a single Accept call are
// logged and retried with a backoff, so that one bad connection never terminates the
// loop. When cfg.MaxConnections is set, the loop doesn't accept new connections until
// the number of connections in flight drops below it.
func (t *TCP) Listen(cfg config.NET, cb func(conn net.Conn)) error {
	var (
		slots   chan struct{}
		backoff time.Duration
	)

	if cfg.MaxConnections > 0 {
		slots = make(chan struct{}, cfg.MaxConnections)
	}

	for !t.stop.Load() {
		if slots != nil {
			slots <- struct{}{}
		}

		conn, err := t.accept(cfg.AcceptLoopInterruptPeriod)
		if err != nil {
			if slots != nil {
				<-slots
			}

			switch {
			case errors.Is(err, os.ErrDeadlineExceeded):
				continue
			case errors.Is(err, net.ErrClosed):
				return nil
			}

			backoff = min(max(backoff*2, minAcceptBackoff), maxAcceptBackoff)
			t.logger.Printf("transport: accept: %s; retrying in %s", err, backoff)
			time.Sleep(backoff)
			continue
		}

		backoff = 0
		t.wg.Add(1)

		go func(conn net.Conn) {
			defer t.wg.Done()
			cb(conn)
			_ = conn.Close()

			if slots != nil {
				<-slots
			}
		}(conn)
	}

	return nil
}

func (t *TCP) accept(interruptPeriod time.Duration) (net.Conn, error) {
	if err := t.l.SetDeadline(time.Now().Add(interruptPeriod)); err != nil {
		return nil, err
	}

	return t.l.Accept()
}

// Stop makes the accept loop exit at the nearest interruption. Already accepted connections
// are left intact.
func (t *TCP) Stop() {
	t.stop.Store(true)
}

func (t *TCP) Close() {
	if t.l != nil {
		_ = t.l.Close()
	}
}

// Wait blocks until every accepted connection is served.
func (t *TCP) Wait() {
	t.wg.Wait()
}
