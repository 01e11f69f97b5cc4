package feed

import (
	"strings"

	"golang.org/x/net/html"
)

// htmlToText flattens an HTML fragment into single-spaced plain text.
func htmlToText(input string) string {
	if strings.TrimSpace(input) == "" {
		return ""
	}

	node, err := html.Parse(strings.NewReader(input))
	if err != nil {
		return strings.Join(strings.Fields(input), " ")
	}

	var builder strings.Builder
	extractText(node, &builder)
	return strings.Join(strings.Fields(builder.String()), " ")
}

func extractText(node *html.Node, builder *strings.Builder) {
	switch node.Type {
	case html.TextNode:
		builder.WriteString(node.Data)
	case html.ElementNode:
		switch node.Data {
		case "script", "style":
			return
		case "br", "p", "li", "div":
			builder.WriteRune(' ')
		}
	}

	for child := node.FirstChild; child != nil; child = child.NextSibling {
		extractText(child, builder)
	}

	if node.Type == html.ElementNode && (node.Data == "p" || node.Data == "li") {
		builder.WriteRune(' ')
	}
}
