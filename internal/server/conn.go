package server

import (
	"fmt"
	"net"
	"time"

	"github.com/nhdewitt/embedhttp/internal/request"
	"github.com/nhdewitt/embedhttp/internal/response"
)

// handle serves exactly one request on conn and closes it. Failures end this
// connection only.
func (s *Server) handle(conn net.Conn) {
	defer conn.Close()
	if s.slots != nil {
		defer func() { <-s.slots }()
	}

	start := time.Now()
	log := s.logger.With().Str("remote", conn.RemoteAddr().String()).Logger()

	defer func() {
		if p := recover(); p != nil {
			log.Error().Interface("panic", p).Msg("handler panicked")
		}
	}()

	raw, err := request.ReadRaw(conn)
	if err != nil {
		log.Warn().Err(fmt.Errorf("%w: read: %w", ErrConnection, err)).Msg("dropping connection")
		return
	}
	req := request.Parse(raw)

	resp := response.NewResponse()
	if h := s.registry.Resolve(req.Method, req.Path); h != nil {
		h.Serve(req, resp)
	} else {
		resp.Code = response.StatusNotFound
	}

	out, err := response.Build(resp, response.WithCanonicalKeys(s.canonicalKeys))
	if err != nil {
		log.Error().Err(err).Stringer("method", req.Method).Str("path", req.Path).Msg("cannot build response")
		return
	}

	if _, err := conn.Write(out); err != nil {
		log.Warn().Err(fmt.Errorf("%w: write: %w", ErrConnection, err)).Msg("dropping connection")
		return
	}

	log.Debug().
		Stringer("method", req.Method).
		Str("path", req.Path).
		Int("status", int(resp.Code)).
		Dur("elapsed", time.Since(start)).
		Msg("served")
}
