package citer

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// SuffixSet holds the subdomain and registrable-suffix tokens that are
// skipped when deriving a site label. Tokens are stored lower-cased.
type SuffixSet map[string]struct{}

// NewSuffixSet returns a SuffixSet containing tokens.
func NewSuffixSet(tokens ...string) SuffixSet {
	s := make(SuffixSet, len(tokens))
	for _, t := range tokens {
		s.Add(t)
	}
	return s
}

// ParseSuffixSet reads newline-separated tokens from r.
// Blank lines and lines starting with '#' are ignored.
func ParseSuffixSet(r io.Reader) (SuffixSet, error) {
	s := make(SuffixSet)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		s.Add(line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading suffix list: %w", err)
	}
	return s, nil
}

// DefaultSuffixSet returns the tokens used when no suffix list is configured.
func DefaultSuffixSet() SuffixSet {
	return NewSuffixSet(
		"www", "www2", "m", "en", "blog", "news",
		"com", "org", "net", "edu", "gov", "mil", "int", "info", "biz", "io",
		"co", "ac", "uk", "us", "ca", "au", "nz", "de", "fr", "eu",
	)
}

// Add inserts a token into the set.
func (s SuffixSet) Add(token string) {
	s[strings.ToLower(token)] = struct{}{}
}

// Contains reports whether label is in the set, ignoring case.
func (s SuffixSet) Contains(label string) bool {
	_, ok := s[strings.ToLower(label)]
	return ok
}

// SiteLabel derives a presentable site name from host.
// It returns the leftmost label not present in set with its first character
// upper-cased, or "" if every label is in the set.
func SiteLabel(host string, set SuffixSet) string {
	for _, label := range strings.Split(host, ".") {
		if label == "" || set.Contains(label) {
			continue
		}
		return upperFirst(label)
	}
	return ""
}

// upperFirst upper-cases the first rune of s, which may expand to more
// than one rune (e.g. "ß" becomes "SS").
func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return cases.Upper(language.Und).String(string(r)) + s[size:]
}
