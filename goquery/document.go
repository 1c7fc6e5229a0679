// Package goquery implements interests.Parser and interests.Document on
// top of PuerkitoBio/goquery and golang.org/x/net/html.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/interests"
	"golang.org/x/net/html"
)

// Ensure Parser implements interests.Parser at compile time.
var _ interests.Parser = (*Parser)(nil)

// Parser parses HTML with goquery.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse parses html fetched from pageURL.
// Malformed markup is repaired by the HTML5 parsing algorithm rather than
// rejected, so errors are only returned for unreadable input.
func (p *Parser) Parse(pageURL, html string) (interests.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, interests.WrapError(err, interests.EINVALID, "failed to parse HTML from %s", pageURL)
	}
	return &Document{doc: doc, url: pageURL}, nil
}

// Ensure Document implements interests.Document at compile time.
var _ interests.Document = (*Document)(nil)

// Document is a parsed page backed by a goquery document.
type Document struct {
	doc *goquery.Document
	url string
}

// URL returns the address the page was fetched from.
func (d *Document) URL() string {
	return d.url
}

// Elements returns elements matching any of the tag names in document order.
func (d *Document) Elements(tags ...string) []interests.Element {
	if len(tags) == 0 {
		return nil
	}
	sel := d.doc.Find(strings.Join(tags, ", "))
	elems := make([]interests.Element, 0, sel.Length())
	for _, n := range sel.Nodes {
		elems = append(elems, &element{doc: d, node: n})
	}
	return elems
}

// Text returns the visible text of the page. Script and style contents are
// skipped and block-level elements end with a newline so that headings and
// paragraphs do not run together.
func (d *Document) Text() string {
	var b strings.Builder
	for _, n := range d.doc.Nodes {
		writeText(&b, n)
	}
	return b.String()
}

var skippedText = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
	"template": true,
	"head":     true,
}

var blockElements = map[string]bool{
	"address": true, "article": true, "aside": true, "blockquote": true,
	"br": true, "dd": true, "div": true, "dl": true, "dt": true,
	"figcaption": true, "footer": true, "form": true, "h1": true, "h2": true,
	"h3": true, "h4": true, "h5": true, "h6": true, "header": true, "hr": true,
	"li": true, "main": true, "nav": true, "ol": true, "p": true, "pre": true,
	"section": true, "table": true, "td": true, "th": true, "tr": true, "ul": true,
}

func writeText(b *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(n.Data)
		return
	case html.ElementNode:
		if skippedText[n.Data] {
			return
		}
	case html.CommentNode:
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeText(b, c)
	}
	if n.Type == html.ElementNode && blockElements[n.Data] {
		b.WriteByte('\n')
	}
}

// element adapts an html.Node to interests.Element.
type element struct {
	doc  *Document
	node *html.Node
}

func (e *element) Tag() string {
	return e.node.Data
}

func (e *element) Attr(name string) (string, bool) {
	for _, a := range e.node.Attr {
		if a.Namespace == "" && a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

func (e *element) Text() string {
	return goquery.NewDocumentFromNode(e.node).Text()
}

// Next walks forward from the element: its next sibling element, otherwise
// the next sibling element of the nearest ancestor that has one. The
// element's own children are skipped. This differs from BeautifulSoup's
// find_next, which would return the first child element, so
// <h2><span>Research</span> focus</h2><p>x</p> yields the <p> here rather
// than the <span>.
func (e *element) Next() (interests.Element, bool) {
	for cur := e.node; cur != nil; cur = cur.Parent {
		for s := cur.NextSibling; s != nil; s = s.NextSibling {
			if s.Type == html.ElementNode {
				return &element{doc: e.doc, node: s}, true
			}
		}
	}
	return nil, false
}
