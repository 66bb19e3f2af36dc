package response

import (
	"errors"
	"fmt"
	"io"

	"github.com/nhdewitt/embedhttp/internal/headers"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const crlf = "\r\n"

var errOutOfOrder = errors.New("writer state out-of-order")

type writerState int

const (
	StateWritingStatusLine writerState = iota
	StateWritingHeaders
	StateWritingBody
	StateDone
)

type Writer struct {
	writer        io.Writer
	state         writerState
	canonicalKeys bool
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{
		writer: w,
		state:  StateWritingStatusLine,
	}
}

// CanonicalKeys makes WriteHeaders title-case every field name.
func (w *Writer) CanonicalKeys(on bool) *Writer {
	w.canonicalKeys = on
	return w
}

func (w *Writer) WriteStatusLine(statusCode StatusCode) error {
	if w.state != StateWritingStatusLine {
		return errOutOfOrder
	}

	reason, err := ReasonPhrase(statusCode)
	if err != nil {
		return err
	}

	line := fmt.Sprintf("HTTP/1.1 %d %s%s", int(statusCode), reason, crlf)
	if _, err := io.WriteString(w.writer, line); err != nil {
		return fmt.Errorf("error writing status line: %w", err)
	}

	w.state = StateWritingHeaders
	return nil
}

func (w *Writer) WriteHeaders(h headers.Headers) error {
	if w.state != StateWritingHeaders {
		return errOutOfOrder
	}

	caser := cases.Title(language.English)
	for _, k := range h.Keys() {
		name := k
		if w.canonicalKeys {
			name = caser.String(k)
		}
		if _, err := io.WriteString(w.writer, name+": "+h[k]+crlf); err != nil {
			return fmt.Errorf("error writing headers: %w", err)
		}
	}
	if _, err := io.WriteString(w.writer, crlf); err != nil {
		return fmt.Errorf("error writing headers: %w", err)
	}

	w.state = StateWritingBody
	return nil
}

func (w *Writer) WriteBody(p []byte) (int, error) {
	if w.state != StateWritingBody {
		return 0, errOutOfOrder
	}

	w.state = StateDone
	return w.writer.Write(p)
}
