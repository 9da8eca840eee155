// Package textutil prepares item text for matching. Upstream collection
// is expected to deliver cleaned text, but feed descriptions occasionally
// arrive with residual markup; matching always runs on visible text.
package textutil

import (
	"strings"

	"golang.org/x/net/html"
)

// VisibleText returns the visible text of s. Plain text passes through
// unchanged; markup is parsed and reduced to its text nodes, skipping
// script/style/noscript/iframe content.
func VisibleText(s string) string {
	if !strings.ContainsRune(s, '<') {
		return s
	}

	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		return s
	}

	var buf strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "iframe":
				return
			}
		}
		if n.Type == html.TextNode {
			text := strings.TrimSpace(n.Data)
			if text != "" {
				if buf.Len() > 0 {
					buf.WriteString(" ")
				}
				buf.WriteString(text)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return buf.String()
}

// Excerpt returns up to max runes of s, cut at a word boundary where
// possible.
func Excerpt(s string, max int) string {
	s = strings.TrimSpace(s)
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	cut := string(runes[:max])
	if i := strings.LastIndexByte(cut, ' '); i > max/2 {
		cut = cut[:i]
	}
	return cut + "…"
}
