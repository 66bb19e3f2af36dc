package server

import (
	"github.com/nhdewitt/embedhttp/internal/request"
	"github.com/nhdewitt/embedhttp/internal/response"
)

// HandlerFunc fills resp for req. It runs on the connection's goroutine and
// must not keep req or resp after returning.
type HandlerFunc func(req *request.Request, resp *response.Response)

// Handler wraps a HandlerFunc so that it has an identity: Unregister removes
// routes by comparing *Handler pointers.
type Handler struct {
	fn HandlerFunc
}

func NewHandler(fn HandlerFunc) *Handler {
	return &Handler{fn: fn}
}

func (h *Handler) Serve(req *request.Request, resp *response.Response) {
	h.fn(req, resp)
}
