package server

import "errors"

var (
	ErrInitialization = errors.New("server: initialization failed")
	ErrBind           = errors.New("server: bind failed")
	ErrListen         = errors.New("server: listen failed")
	// ErrConnection wraps per-connection failures. It is only logged.
	ErrConnection     = errors.New("server: connection failed")
)
