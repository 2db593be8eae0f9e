// Package htmltext flattens HTML mail bodies to plain text.
package htmltext

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Flatten returns the text of an HTML document, title included. Text
// nodes are trimmed and joined with single spaces; script and style
// content is dropped. Runs of spaces inside a node collapse to one, but
// line breaks are kept. Unparseable input yields "".
func Flatten(source string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(source))
	if err != nil {
		return ""
	}
	doc.Find("script, style, noscript").Remove()

	var parts []string
	for _, n := range doc.Nodes {
		collect(n, &parts)
	}
	return strings.Join(parts, " ")
}

func collect(n *html.Node, parts *[]string) {
	if n.Type == html.TextNode {
		if s := collapseSpaces(n.Data); s != "" {
			*parts = append(*parts, s)
		}
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collect(c, parts)
	}
}

// collapseSpaces squeezes horizontal whitespace within each line and drops
// blank lines.
func collapseSpaces(text string) string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.Join(strings.Fields(line), " "); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}
