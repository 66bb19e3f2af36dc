package request

import (
	"bytes"
	"errors"
	"io"
	"strings"

	"github.com/nhdewitt/embedhttp/internal/headers"
)

const (
	// ChunkSize is the read size used by ReadRaw. A read shorter than this
	// ends the request.
	ChunkSize = 1024

	headerTerminator = "\r"
)

type Request struct {
	Method      Method
	Path        string
	QueryParams map[string]string
	Headers     headers.Headers
	Body        string
}

// ReadRaw reads from reader until a single read returns fewer than ChunkSize
// bytes. There is no Content-Length framing: a request that is an exact
// multiple of ChunkSize blocks for one more read, and a client that writes in
// small fragments is cut off after the first one.
func ReadRaw(reader io.Reader) ([]byte, error) {
	var buf bytes.Buffer
	chunk := make([]byte, ChunkSize)

	for {
		n, err := reader.Read(chunk)
		if n > 0 {
			buf.Write(chunk[:n])
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return buf.Bytes(), nil
			}
			return nil, err
		}
		if n < ChunkSize {
			return buf.Bytes(), nil
		}
	}
}

// RequestFromReader reads one request with ReadRaw and parses it.
func RequestFromReader(reader io.Reader) (*Request, error) {
	data, err := ReadRaw(reader)
	if err != nil {
		return nil, err
	}
	return Parse(data), nil
}

// Parse never fails: malformed input yields MethodUnknown, an empty path, or
// missing headers rather than an error.
func Parse(data []byte) *Request {
	r := &Request{
		QueryParams: map[string]string{},
		Headers:     headers.NewHeaders(),
	}

	rest := string(data)
	var token string

	token, rest, _ = strings.Cut(rest, " ")
	r.Method = ParseMethod(token)

	token, rest, _ = strings.Cut(rest, " ")
	r.Path = parseTarget(token, r.QueryParams)

	// drop the protocol version
	_, rest, _ = strings.Cut(rest, "\n")

	lines := splitLines(rest)
	i := 0
	for ; i < len(lines); i++ {
		if lines[i] == headerTerminator {
			i++
			break
		}
		r.Headers.ParseLine(lines[i])
	}

	var body strings.Builder
	for _, line := range lines[i:] {
		body.WriteString(line)
		body.WriteByte('\n')
	}
	r.Body = body.String()

	return r
}

// splitLines splits on '\n'. An empty fragment after the final newline is not
// a line.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.Split(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
