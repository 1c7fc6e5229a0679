package mock

import "github.com/fwojciec/interests"

var _ interests.Document = (*Document)(nil)

// Document is a mock implementation of interests.Document.
type Document struct {
	URLFn      func() string
	ElementsFn func(tags ...string) []interests.Element
	TextFn     func() string
}

func (d *Document) URL() string {
	return d.URLFn()
}

func (d *Document) Elements(tags ...string) []interests.Element {
	return d.ElementsFn(tags...)
}

func (d *Document) Text() string {
	return d.TextFn()
}

var _ interests.Element = (*Element)(nil)

// Element is a mock implementation of interests.Element.
type Element struct {
	TagFn  func() string
	AttrFn func(name string) (string, bool)
	TextFn func() string
	NextFn func() (interests.Element, bool)
}

func (e *Element) Tag() string {
	return e.TagFn()
}

func (e *Element) Attr(name string) (string, bool) {
	return e.AttrFn(name)
}

func (e *Element) Text() string {
	return e.TextFn()
}

func (e *Element) Next() (interests.Element, bool) {
	return e.NextFn()
}

var _ interests.Parser = (*Parser)(nil)

// Parser is a mock implementation of interests.Parser.
type Parser struct {
	ParseFn func(pageURL, html string) (interests.Document, error)
}

func (p *Parser) Parse(pageURL, html string) (interests.Document, error) {
	return p.ParseFn(pageURL, html)
}
