// Package goquery provides an HTML title extractor built on goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/citer"
	"golang.org/x/net/html"
)

// Ensure TitleExtractor implements citer.TitleExtractor.
var _ citer.TitleExtractor = (*TitleExtractor)(nil)

// TitleExtractor extracts the <title> of an HTML document.
type TitleExtractor struct{}

// NewTitleExtractor creates a new TitleExtractor.
func NewTitleExtractor() *TitleExtractor {
	return &TitleExtractor{}
}

// ExtractTitle parses html and returns the text of the first non-empty
// <title> element in document order.
func (e *TitleExtractor) ExtractTitle(htmlContent string) (string, bool, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return "", false, citer.Errorf(citer.EINVALID, "failed to parse HTML: %v", err)
	}

	for _, n := range doc.Nodes {
		if title, ok := FindTitle(n); ok {
			return title, true, nil
		}
	}
	return "", false, nil
}

// FindTitle searches the children of n depth-first, pre-order, for an
// element named "title" (case-insensitive). The title's direct text nodes
// are trimmed and joined with a single space. A title with no text does not
// match and the search continues.
func FindTitle(n *html.Node) (string, bool) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode && c.Type != html.DocumentNode {
			continue
		}
		if c.Type == html.ElementNode && strings.EqualFold(c.Data, "title") {
			if title := joinText(c); title != "" {
				return title, true
			}
			continue
		}
		if title, ok := FindTitle(c); ok {
			return title, true
		}
	}
	return "", false
}

// joinText concatenates the direct text-node children of n.
// Inside a normal <title> the parser keeps comments as literal text, so
// "<!--...-->" runs split the text the same way comment nodes do.
func joinText(n *html.Node) string {
	var parts []string
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.TextNode {
			continue
		}
		for _, frag := range splitComments(c.Data) {
			if s := strings.TrimSpace(frag); s != "" {
				parts = append(parts, s)
			}
		}
	}
	return strings.Join(parts, " ")
}

// splitComments returns the text of s between "<!--...-->" runs.
// An unterminated comment runs to the end of s.
func splitComments(s string) []string {
	var frags []string
	for {
		start := strings.Index(s, "<!--")
		if start < 0 {
			return append(frags, s)
		}
		frags = append(frags, s[:start])

		end := strings.Index(s[start+4:], "-->")
		if end < 0 {
			return frags
		}
		s = s[start+4+end+3:]
	}
}
