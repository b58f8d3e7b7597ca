package pathway

import (
	"fmt"
	"log"
	"net"
	"sync"

	"github.com/indigo-web/pathway/config"
	"github.com/indigo-web/pathway/http/status"
	"github.com/indigo-web/pathway/internal/server"
	"github.com/indigo-web/pathway/router"
	"github.com/indigo-web/pathway/router/inbuilt"
	"github.com/indigo-web/pathway/transport"
)

type Logger interface {
	Printf(format string, v ...any)
}

// App binds the address and serves every accepted connection with the router.
type App struct {
	addr   string
	cfg    *config.Config
	logger Logger
	onBind func(addr string)

	mu      sync.Mutex
	tcp     *transport.TCP
	stopped bool
}

// New returns a new App instance.
func New(addr string) *App {
	return &App{
		addr:   addr,
		cfg:    config.Default(),
		logger: log.Default(),
	}
}

// Tune replaces default config.
func (a *App) Tune(cfg *config.Config) *App {
	a.cfg = cfg
	return a
}

// Logger replaces the logger the transport and connection failures are reported to.
func (a *App) Logger(logger Logger) *App {
	a.logger = logger
	return a
}

// OnBind calls the callback with the actual listening address once it's bound, but
// before the first connection is accepted. Mostly useful with port 0.
func (a *App) OnBind(cb func(addr string)) *App {
	a.onBind = cb
	return a
}

// Serve freezes the router and serves connections until Stop is called. If nil is passed
// instead of a router, empty inbuilt will be used. Only a failure to bind the address
// is returned as is. After stopping, status.ErrShutdown is returned once all the already
// accepted connections are served.
func (a *App) Serve(r router.Router) error {
	if r == nil {
		r = inbuilt.New()
	}

	if err := r.OnStart(); err != nil {
		return err
	}

	tcp, err := a.bind()
	if err != nil {
		return err
	}

	defer tcp.Close()

	if a.onBind != nil {
		a.onBind(tcp.Addr().String())
	}

	srv := server.New(a.cfg, r, a.logger)
	err = tcp.Listen(a.cfg.NET, func(conn net.Conn) {
		buff := make([]byte, a.cfg.NET.ReadBufferSize)
		srv.Serve(transport.NewClient(conn, a.cfg.NET.ReadTimeout, buff))
	})
	tcp.Wait()

	if err != nil {
		return err
	}

	return status.ErrShutdown
}

func (a *App) bind() (*transport.TCP, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.stopped {
		return nil, status.ErrShutdown
	}

	tcp := transport.NewTCP(a.logger)
	if err := tcp.Bind(a.addr); err != nil {
		return nil, fmt.Errorf("pathway: bind %s: %w", a.addr, err)
	}

	a.tcp = tcp

	return tcp, nil
}

// Stop stops accepting new connections. The call isn't blocking: Serve returns only after
// the connections in flight are done.
func (a *App) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.stopped = true
	if a.tcp != nil {
		a.tcp.Stop()
		a.tcp.Close()
	}
}
