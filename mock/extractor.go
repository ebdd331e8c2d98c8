package mock

import "github.com/jomaia7338/tarifs"

var _ tarifs.TableExtractor = (*TableExtractor)(nil)

// TableExtractor is a mock implementation of tarifs.TableExtractor.
type TableExtractor struct {
	TableTextFn func(markup string) []string
}

func (e *TableExtractor) TableText(markup string) []string {
	return e.TableTextFn(markup)
}
