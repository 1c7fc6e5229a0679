package interests

// Document is a parsed HTML page. Implementations are read-only.
type Document interface {
	// URL returns the address the page was fetched from.
	URL() string

	// Elements returns the elements with any of the given tag names,
	// in document order.
	Elements(tags ...string) []Element

	// Text returns the plain text of the whole page.
	Text() string
}

// Element is a single element of a parsed Document.
type Element interface {
	// Tag returns the lower-case tag name (e.g. "a", "h2").
	Tag() string

	// Attr returns the value of the named attribute.
	Attr(name string) (string, bool)

	// Text returns the combined text of the element and its descendants.
	Text() string

	// Next returns the first element that follows this one in document
	// order and is not one of its descendants.
	Next() (Element, bool)
}

// Parser turns raw page markup into a Document.
type Parser interface {
	Parse(pageURL, html string) (Document, error)
}
