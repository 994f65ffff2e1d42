package guess

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/net/html/charset"
)

// decodeBody converts an HTML response body to UTF-8 text.
// The encoding comes from the Content-Type header, a <meta> declaration,
// or content sniffing, in that order. A body declared as UTF-8 that is not
// valid UTF-8 is rejected.
func decodeBody(body []byte, contentType string) (string, error) {
	enc, name, _ := charset.DetermineEncoding(body, contentType)
	if name == "utf-8" {
		if !utf8.Valid(body) {
			return "", fmt.Errorf("body is not valid UTF-8")
		}
		return string(body), nil
	}

	decoded, err := enc.NewDecoder().Bytes(body)
	if err != nil {
		return "", fmt.Errorf("decoding %s body: %w", name, err)
	}
	return string(decoded), nil
}
