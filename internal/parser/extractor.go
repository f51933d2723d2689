// Package parser provides HTML content extraction for the crawler.
// It derives a page's title, its visible text, and its outbound links
// from raw HTML.
package parser

import (
	"bytes"
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/net/html"
)

// NoTitle is recorded when a document has no usable title element.
const NoTitle = "No Title"

// MaxContentLength caps the extracted text, counted in runes after
// whitespace collapsing so the budget reflects logical text rather than
// raw markup.
const MaxContentLength = 5000

// Extraction contains the content derived from one HTML document
type Extraction struct {
	Title   string   // Document title, NoTitle if absent
	Content string   // Visible text, whitespace-collapsed, truncated
	Links   []string // Resolved absolute anchor targets in document order
}

// ResolveLink joins a possibly-relative href against the base page URL
// and validates the result. URLs lacking a scheme or a host after
// resolution (mailto:, javascript:, tel: and the like) are rejected;
// the second return value is false and the link must be dropped.
func ResolveLink(base *url.URL, href string) (string, bool) {
	u, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return "", false
	}

	resolved := base.ResolveReference(u)
	if resolved.Scheme == "" || resolved.Host == "" {
		return "", false
	}

	return resolved.String(), true
}

// Extract parses an HTML document and returns its title, visible text,
// and outbound links. Script and style subtrees are removed entirely:
// neither their text nor any anchors they contain survive extraction.
// Anchor hrefs are resolved against base in document order; invalid ones
// are omitted rather than nulled, so Links holds only valid absolute URLs.
func Extract(base *url.URL, body []byte) (*Extraction, error) {
	doc, err := html.Parse(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	e := &Extraction{Links: []string{}}
	var text strings.Builder
	walk(doc, base, e, &text)

	e.Content = truncate(collapseWhitespace(text.String()))
	if e.Title == "" {
		e.Title = NoTitle
	}

	return e, nil
}

// walk traverses the parse tree collecting title, text, and anchors
func walk(n *html.Node, base *url.URL, e *Extraction, text *strings.Builder) {
	if n.Type == html.ElementNode {
		switch n.Data {
		case "script", "style":
			// Drop the whole subtree
			return

		case "title":
			if e.Title == "" && n.FirstChild != nil && n.FirstChild.Type == html.TextNode {
				e.Title = strings.TrimSpace(n.FirstChild.Data)
			}

		case "a":
			if href, ok := anchorHref(n); ok {
				if resolved, ok := ResolveLink(base, href); ok {
					e.Links = append(e.Links, resolved)
				}
			}
		}
	}

	if n.Type == html.TextNode {
		text.WriteString(n.Data)
		text.WriteByte(' ')
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, base, e, text)
	}
}

// anchorHref returns the href attribute of an anchor node
func anchorHref(n *html.Node) (string, bool) {
	for _, attr := range n.Attr {
		if attr.Key == "href" {
			return attr.Val, true
		}
	}
	return "", false
}

// collapseWhitespace reduces every run of whitespace to a single space
// and trims the ends.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// truncate caps a string at MaxContentLength runes
func truncate(s string) string {
	runes := []rune(s)
	if len(runes) <= MaxContentLength {
		return s
	}
	return string(runes[:MaxContentLength])
}
