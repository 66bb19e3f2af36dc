package response

import (
	"bytes"

	"github.com/nhdewitt/embedhttp/internal/headers"
)

type Response struct {
	Code    StatusCode
	Headers headers.Headers
	Body    string
}

// NewResponse returns a 200 response with no headers and an empty body.
func NewResponse() *Response {
	return &Response{
		Code:    StatusOK,
		Headers: headers.NewHeaders(),
	}
}

type BuildOption func(*Writer)

// WithCanonicalKeys title-cases header names on the wire.
func WithCanonicalKeys(on bool) BuildOption {
	return func(w *Writer) {
		w.CanonicalKeys(on)
	}
}

// Build serializes resp. An unknown status code fails before any byte is
// produced. The body is written as-is with no trailing terminator.
func Build(resp *Response, opts ...BuildOption) ([]byte, error) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	for _, opt := range opts {
		opt(w)
	}

	if err := w.WriteStatusLine(resp.Code); err != nil {
		return nil, err
	}
	if err := w.WriteHeaders(resp.Headers); err != nil {
		return nil, err
	}
	if _, err := w.WriteBody([]byte(resp.Body)); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
