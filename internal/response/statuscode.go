package response

import (
	"errors"
	"fmt"
)

var ErrUnknownStatusCode = errors.New("unknown status code")

type StatusCode int

const (
	StatusSwitchingProtocols StatusCode = 101
	StatusOK                 StatusCode = 200
	StatusNotFound           StatusCode = 404
)

// ReasonPhrase returns the phrase for the codes this server can name.
func ReasonPhrase(code StatusCode) (string, error) {
	switch code {
	case StatusSwitchingProtocols:
		return "Switching Protocols", nil
	case StatusOK:
		return "OK", nil
	case StatusNotFound:
		return "Not Found", nil
	default:
		return "", fmt.Errorf("%w: %d", ErrUnknownStatusCode, int(code))
	}
}
