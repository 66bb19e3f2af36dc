package server

import "github.com/rs/zerolog"

type Option func(*Server)

// WithLogger sets the logger for accept and connection events. The default
// discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Server) {
		s.logger = l
	}
}

// WithMaxConnections caps the number of connections handled at once. When the
// cap is reached the accept loop waits for a slot. Zero means unbounded.
func WithMaxConnections(n int) Option {
	return func(s *Server) {
		s.maxConns = n
	}
}

// WithCanonicalHeaderKeys title-cases response header names on the wire.
func WithCanonicalHeaderKeys(on bool) Option {
	return func(s *Server) {
		s.canonicalKeys = on
	}
}
