package mock

import "github.com/fwojciec/citer"

var _ citer.TitleExtractor = (*TitleExtractor)(nil)

// TitleExtractor is a mock implementation of citer.TitleExtractor.
type TitleExtractor struct {
	ExtractTitleFn func(html string) (string, bool, error)
}

func (e *TitleExtractor) ExtractTitle(html string) (string, bool, error) {
	return e.ExtractTitleFn(html)
}
