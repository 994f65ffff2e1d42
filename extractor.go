package citer

// TitleExtractor finds the title of an HTML page.
type TitleExtractor interface {
	// ExtractTitle parses html and returns the text of its first <title>
	// element. ok is false when the document has no non-empty title.
	// err is non-nil only when the document could not be parsed.
	ExtractTitle(html string) (title string, ok bool, err error)
}
