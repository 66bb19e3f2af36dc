package headers

import (
	"maps"
	"slices"
	"strings"
)

const (
	leadingSpace  = " \t"
	trailingSpace = " \t\r\n"
)

// Headers maps field names to values. Keys are kept exactly as received,
// so lookups are case-sensitive.
type Headers map[string]string

func NewHeaders() Headers {
	return map[string]string{}
}

// ParseLine parses a single "key: value" line into h. Lines without a colon
// are ignored and reported with ok=false. A repeated key overwrites the
// earlier value.
func (h Headers) ParseLine(line string) (ok bool) {
	key, value, found := strings.Cut(line, ":")
	if !found {
		return false
	}

	key = trim(key)
	value = trim(value)
	h.Set(key, value)

	return true
}

func trim(s string) string {
	return strings.TrimRight(strings.TrimLeft(s, leadingSpace), trailingSpace)
}

func (h Headers) Set(key, value string) {
	h[key] = value
}

func (h Headers) Get(key string) (value string) {
	return h[key]
}

func (h Headers) Del(key string) {
	delete(h, key)
}

// Keys returns the field names in sorted order.
func (h Headers) Keys() []string {
	return slices.Sorted(maps.Keys(h))
}
