// Package htmltext extracts plain text from HTML documents so web content
// can be fed to the keyword extractor.
package htmltext

import (
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Extract parses HTML from the reader and returns its visible text with
// whitespace collapsed to single spaces. Script and style contents are
// skipped.
func Extract(r io.Reader) (string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return "", err
	}

	var buf strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			buf.WriteString(n.Data)
			buf.WriteByte(' ')
		case html.ElementNode:
			if n.Data == "script" || n.Data == "style" {
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return strings.Join(strings.Fields(buf.String()), " "), nil
}

// ExtractString extracts visible text from an HTML string. If parsing fails
// the input is returned unchanged, so callers can feed it onward as-is.
func ExtractString(s string) string {
	text, err := Extract(strings.NewReader(s))
	if err != nil {
		return s
	}
	return text
}
