package tarifs

// TableExtractor isolates human-readable text confined to the tabular
// regions of an HTML document, discarding all non-table content.
type TableExtractor interface {
	// TableText returns one fragment per table element found in markup,
	// in document order. A fragment is the space-joined concatenation of
	// all text nodes nested anywhere inside the table, with whitespace
	// collapsed to single spaces and trimmed. Tables without text content
	// are omitted. Arbitrary, possibly malformed markup degrades
	// gracefully: the extractor never returns an error and never panics.
	TableText(markup string) []string
}
