package citer

import (
	"net/http"
	"strconv"
	"strings"
	"time"
)

// YearFromHeader infers a publication year from HTTP response headers.
//
// Last-Modified is preferred over Date. The value is parsed as an HTTP date
// first; a value that does not parse falls back to its fourth
// whitespace-separated token, matching the "<weekday>, <day> <month> <year>"
// layout. The token is not validated. When no usable header is present the
// year of now is returned.
func YearFromHeader(h http.Header, now time.Time) string {
	current := strconv.Itoa(now.Year())

	value := h.Get("Last-Modified")
	if value == "" {
		value = h.Get("Date")
	}
	if value == "" || !isVisibleASCII(value) {
		return current
	}

	if t, err := http.ParseTime(value); err == nil {
		return strconv.Itoa(t.Year())
	}

	fields := strings.Fields(value)
	if len(fields) < 4 {
		return current
	}
	return fields[3]
}

// isVisibleASCII reports whether s decodes as a header string:
// visible ASCII, space and tab only.
func isVisibleASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\t' {
			continue
		}
		if c < 0x20 || c > 0x7e {
			return false
		}
	}
	return true
}
