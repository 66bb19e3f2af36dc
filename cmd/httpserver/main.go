package main

import (
	"flag"
	"fmt"
	"maps"
	"os"
	"os/signal"
	"slices"
	"strings"
	"syscall"
	"time"

	"github.com/nhdewitt/embedhttp/internal/request"
	"github.com/nhdewitt/embedhttp/internal/response"
	"github.com/nhdewitt/embedhttp/internal/server"
	"github.com/rs/zerolog"
)

const (
	defaultPort = 42069
	htmlPage    = `
<html>
	<head>
		<title>%s</title>
	</head>
	<body>
		<h1>%s</h1>
		<p>%s</p>
	</body>
</html>
`
)

func rootHandler(_ *request.Request, resp *response.Response) {
	resp.Headers.Set("Content-Type", "text/html")
	resp.Headers.Set("Connection", "close")
	resp.Body = fmt.Sprintf(htmlPage, "200 OK", "Success!", "Your request was an absolute banger.")
}

func echoHandler(req *request.Request, resp *response.Response) {
	resp.Headers.Set("Content-Type", "text/plain")
	resp.Body = req.Body
}

// queryHandler lists query parameters and request headers, one per line.
func queryHandler(req *request.Request, resp *response.Response) {
	var b strings.Builder
	for _, k := range slices.Sorted(maps.Keys(req.QueryParams)) {
		fmt.Fprintf(&b, "query %s=%s\n", k, req.QueryParams[k])
	}
	for _, k := range req.Headers.Keys() {
		fmt.Fprintf(&b, "header %s=%s\n", k, req.Headers[k])
	}

	resp.Headers.Set("Content-Type", "text/plain")
	resp.Body = b.String()
}

func main() {
	port := flag.Int("port", defaultPort, "TCP port to listen on")
	level := flag.String("log-level", "info", "log level (debug, info, warn, error)")
	maxConns := flag.Int("max-conns", 0, "maximum concurrent connections, 0 for unbounded")
	canonical := flag.Bool("canonical-headers", false, "title-case response header names")
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()
	lvl, err := zerolog.ParseLevel(*level)
	if err != nil {
		logger.Fatal().Err(err).Msg("bad log level")
	}
	logger = logger.Level(lvl)

	srv, err := server.New(*port,
		server.WithLogger(logger),
		server.WithMaxConnections(*maxConns),
		server.WithCanonicalHeaderKeys(*canonical),
	)
	if err != nil {
		logger.Fatal().Err(err).Msg("Error starting server")
	}

	echo := server.NewHandler(echoHandler)
	srv.Register(request.MethodGet, "/", server.NewHandler(rootHandler))
	srv.Register(request.MethodPost, "/echo", echo)
	srv.Register(request.MethodPut, "/echo", echo)
	srv.Register(request.MethodGet, "/query", server.NewHandler(queryHandler))

	// DELETE /echo unregisters the echo handler's first route.
	srv.Register(request.MethodDelete, "/echo", server.NewHandler(func(_ *request.Request, resp *response.Response) {
		srv.Unregister(echo)
		resp.Body = "echo unregistered\n"
	}))

	if err := srv.BeginAccepting(); err != nil {
		logger.Fatal().Err(err).Msg("Error starting server")
	}
	logger.Info().Str("addr", srv.Addr().String()).Msg("Server started")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		if err := srv.StopAndClean(); err != nil {
			logger.Error().Err(err).Msg("closing listener")
		}
	}()

	srv.WaitForClose()
	logger.Info().Msg("Server gracefully stopped")
}
