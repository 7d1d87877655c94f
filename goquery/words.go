package goquery

import (
	"strings"
	"unicode"

	"golang.org/x/net/html"
)

// invisibleElements hold text that is never rendered.
var invisibleElements = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
	"template": true,
}

// Words returns the lower-cased words of every visible text node in the
// document, keeping only tokens made entirely of letters.
// Text nodes are treated as separate lines, so markup splits words.
func Words(document string) []string {
	root, err := html.Parse(strings.NewReader(document))
	if err != nil {
		return nil
	}

	var text strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && invisibleElements[n.Data] {
			return
		}
		if n.Type == html.TextNode {
			text.WriteString(n.Data)
			text.WriteByte('\n')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)

	var words []string
	for _, token := range strings.Fields(text.String()) {
		token = strings.ToLower(token)
		if isAlpha(token) {
			words = append(words, token)
		}
	}
	return words
}

func isAlpha(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return s != ""
}
