package main

import (
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/indigo-web/pathway"
	"github.com/indigo-web/pathway/config"
	"github.com/indigo-web/pathway/http"
	"github.com/indigo-web/pathway/http/status"
	"github.com/indigo-web/pathway/router/inbuilt"
	"github.com/indigo-web/pathway/router/inbuilt/middleware"
	"github.com/spf13/cobra"
)

type serveOptions struct {
	addr       string
	pages      string
	static     string
	readBuffer int
	maxConns   int
	strict     bool
	quiet      bool
}

func serveCmd() *cobra.Command {
	var opts serveOptions

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the server",
		Long: `Start the server with the demo routes:

  GET  /             empty 200 OK
  GET  /echo/*text   responds with the rest of the path
  POST /echo         responds with the request body
  GET  /user-agent   responds with the User-Agent header
  GET  /allen/:id    greets the id
  GET  /json         a JSON document

Every file under --pages is served at its relative path.

Examples:
  pathway serve
  pathway serve --addr=:4221 --pages=./pages
  pathway serve --static=./public --max-conns=512`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.addr, "addr", "a", ":3000", "Address to listen on")
	cmd.Flags().StringVarP(&opts.pages, "pages", "p", "", "Directory whose files are served as routes")
	cmd.Flags().StringVar(&opts.static, "static", "", "Directory served under /static")
	cmd.Flags().IntVar(&opts.readBuffer, "read-buffer", 0, "Socket read buffer size in bytes (default from config)")
	cmd.Flags().IntVar(&opts.maxConns, "max-conns", 0, "Maximal number of connections served at once, 0 for unlimited")
	cmd.Flags().BoolVar(&opts.strict, "strict-methods", false, "Reject requests with unknown methods")
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "Don't log every request")

	return cmd
}

func runServe(opts serveOptions) error {
	cfg := config.Default()
	if opts.readBuffer > 0 {
		cfg.NET.ReadBufferSize = opts.readBuffer
	}
	cfg.NET.MaxConnections = opts.maxConns
	cfg.HTTP.StrictMethods = opts.strict

	r := demoRouter()
	if !opts.quiet {
		r.Use(middleware.RequestID(), middleware.LogRequests())
	}

	if len(opts.pages) > 0 {
		if err := r.Files(opts.pages); err != nil {
			return err
		}
	}

	if len(opts.static) > 0 {
		r.Static("/static", opts.static)
	}

	app := pathway.New(opts.addr).
		Tune(cfg).
		OnBind(func(addr string) {
			log.Printf("listening on %s", addr)
		})

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-signals
		log.Print("shutting down")
		app.Stop()
	}()

	err := app.Serve(r)
	if errors.Is(err, status.ErrShutdown) {
		return nil
	}

	return err
}

type greeting struct {
	Message string `json:"message"`
	Routes  int    `json:"routes"`
}

func demoRouter() *inbuilt.Router {
	r := inbuilt.New()

	return r.
		Get("/", func(request *http.Request, _ inbuilt.State, _ http.Params) *http.Response {
			return http.Respond(request)
		}).
		Get("/echo/*text", func(request *http.Request, _ inbuilt.State, params http.Params) *http.Response {
			return http.String(request, params.Value("text"))
		}).
		Post("/echo", func(request *http.Request, _ inbuilt.State, _ http.Params) *http.Response {
			return http.Bytes(request, request.Body)
		}).
		Get("/user-agent", func(request *http.Request, _ inbuilt.State, _ http.Params) *http.Response {
			return http.String(request, request.Headers.Value("User-Agent"))
		}).
		Get("/allen/:id", func(request *http.Request, _ inbuilt.State, params http.Params) *http.Response {
			return http.String(request, "Hello, "+params.Value("id")+"!")
		}).
		Get("/json", func(request *http.Request, _ inbuilt.State, _ http.Params) *http.Response {
			return http.JSON(request, greeting{
				Message: "Hello from pathway",
				Routes:  len(r.Routes()),
			})
		})
}
