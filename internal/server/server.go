package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"github.com/nhdewitt/embedhttp/internal/request"
	"github.com/rs/zerolog"
)

const pollInterval = 100 * time.Millisecond

type Server struct {
	listener    net.Listener
	isListening atomic.Bool
	registry    *Registry
	logger      zerolog.Logger

	maxConns      int
	slots         chan struct{}
	canonicalKeys bool

	mu     sync.Mutex
	closed bool
}

// New binds a TCP listener on port on all interfaces. Port 0 picks a free
// port; see Addr. The server does not accept until BeginAccepting.
func New(port int, opts ...Option) (*Server, error) {
	if port < 0 || port > 65535 {
		return nil, fmt.Errorf("%w: invalid port %d", ErrInitialization, port)
	}

	s := &Server{
		registry: NewRegistry(),
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.maxConns < 0 {
		return nil, fmt.Errorf("%w: invalid connection limit %d", ErrInitialization, s.maxConns)
	}
	if s.maxConns > 0 {
		s.slots = make(chan struct{}, s.maxConns)
	}

	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBind, err)
	}
	s.listener = listener

	return s, nil
}

// BeginAccepting starts the accept loop on its own goroutine and returns.
func (s *Server) BeginAccepting() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return fmt.Errorf("%w: listener already closed", ErrListen)
	}
	if !s.isListening.CompareAndSwap(false, true) {
		return fmt.Errorf("%w: already accepting", ErrListen)
	}

	s.logger.Info().Str("addr", s.listener.Addr().String()).Msg("accepting connections")
	go s.listen()

	return nil
}

// StopAndClean stops accepting and closes the listener. Connections that are
// already being handled run to completion on their own; nothing waits for
// them. Calling it more than once is a no-op.
func (s *Server) StopAndClean() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	s.isListening.Store(false)

	s.logger.Info().Msg("listener closed")
	return s.listener.Close()
}

// WaitForClose blocks until the server is no longer accepting.
func (s *Server) WaitForClose() {
	_ = s.WaitForCloseContext(context.Background())
}

func (s *Server) WaitForCloseContext(ctx context.Context) error {
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for s.isListening.Load() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
	return nil
}

func (s *Server) Accepting() bool {
	return s.isListening.Load()
}

func (s *Server) Addr() net.Addr {
	return s.listener.Addr()
}

func (s *Server) Registry() *Registry {
	return s.registry
}

func (s *Server) Register(method request.Method, path string, h *Handler) {
	s.registry.Register(method, path, h)
}

func (s *Server) Unregister(h *Handler) {
	s.registry.Unregister(h)
}

func (s *Server) listen() {
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			if !s.isListening.Load() || errors.Is(err, net.ErrClosed) {
				return
			}
			s.logger.Debug().Err(err).Msg("accept failed")
			continue
		}

		if s.slots != nil {
			s.slots <- struct{}{}
		}
		go s.handle(conn)
	}
}
