// Package goquery provides a goquery-based implementation of
// tarifs.TableExtractor. The underlying golang.org/x/net/html parser accepts
// arbitrary input, so malformed markup degrades gracefully: unclosed tables
// are implicitly closed at end of document and never produce an error.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/jomaia7338/tarifs"
	"golang.org/x/net/html"
)

// Ensure Extractor implements tarifs.TableExtractor at compile time.
var _ tarifs.TableExtractor = (*Extractor)(nil)

// Extractor isolates text inside <table> elements. It is stateless and safe
// for reuse across documents.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// TableText returns one whitespace-collapsed fragment per table element in
// markup, in document order. Tables with no non-whitespace text content are
// omitted. Nested tables yield their own fragment in addition to contributing
// text to the enclosing table's fragment.
func (e *Extractor) TableText(markup string) []string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		// html.Parse accepts any input; an error can only come from the
		// reader, and strings.Reader never fails.
		return nil
	}

	var fragments []string
	doc.Find("table").Each(func(_ int, sel *goquery.Selection) {
		var words []string
		for _, node := range sel.Nodes {
			collectWords(node, &words)
		}
		if text := strings.Join(words, " "); text != "" {
			fragments = append(fragments, text)
		}
	})
	return fragments
}

// collectWords appends the whitespace-separated runs of every text node
// under n, in document order. Splitting on fields collapses internal
// whitespace and drops whitespace-only nodes in one pass.
func collectWords(n *html.Node, words *[]string) {
	if n.Type == html.TextNode {
		*words = append(*words, strings.Fields(n.Data)...)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectWords(c, words)
	}
}
