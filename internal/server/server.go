package server

import (
	"log"

	"github.com/indigo-web/pathway/config"
	"github.com/indigo-web/pathway/http"
	"github.com/indigo-web/pathway/internal/protocol/http1"
	"github.com/indigo-web/pathway/router"
	"github.com/indigo-web/pathway/transport"
)

type Logger interface {
	Printf(format string, v ...any)
}

// Server drives a single exchange per connection: read the request, route it, write the
// response back and close. Requests that fail to be read are never responded to.
type Server struct {
	cfg    *config.Config
	router router.Router
	logger Logger
}

func New(cfg *config.Config, r router.Router, logger ...Logger) *Server {
	var l Logger = log.Default()
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0]
	}

	return &Server{
		cfg:    cfg,
		router: r,
		logger: l,
	}
}

// Serve serves the client and closes it afterward. A panic on the way is logged and
// leaves the client unanswered, the process keeps running.
func (s *Server) Serve(client transport.Client) {
	defer func() {
		if v := recover(); v != nil {
			s.logger.Printf("pathway: %s: panic: %v", client.Remote(), v)
		}

		_ = client.Close()
	}()

	request, err := http1.NewReader(s.cfg, client).Read()
	if err != nil {
		s.logger.Printf("pathway: %s: bad request: %s", client.Remote(), err)
		return
	}

	request.Remote = client.Remote()
	response := notNil(request, s.router.OnRequest(request))

	serializer := http1.NewSerializer(client, make([]byte, 0, s.cfg.NET.WriteBufferSize))
	if err = serializer.Write(response); err != nil {
		s.logger.Printf("pathway: %s: write: %s", client.Remote(), err)
	}
}

func notNil(request *http.Request, response *http.Response) *http.Response {
	if response != nil {
		return response
	}

	return http.Respond(request)
}
