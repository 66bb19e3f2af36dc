package request

import "strings"

// parseTarget splits target at the first '?' and fills params from the query
// string. Values are not percent-decoded.
func parseTarget(target string, params map[string]string) (path string) {
	path, query, found := strings.Cut(target, "?")
	if !found {
		return path
	}

	for _, pair := range strings.Split(query, "&") {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}
		params[key] = value
	}

	return path
}
