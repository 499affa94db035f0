package pagetext

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/ProbablyMaybeNo/campaign-console/internal/rulebook"
)

// HTMLSource handles HTML files. Headings and content blocks are flattened
// in document order, headings on their own lines, then paginated
// synthetically.
type HTMLSource struct{}

func (s *HTMLSource) Pages(r io.Reader, filename string) ([]rulebook.PageText, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	var buf strings.Builder
	write := func(t string) {
		t = strings.TrimSpace(t)
		if t == "" {
			return
		}
		if buf.Len() > 0 {
			buf.WriteString("\n\n")
		}
		buf.WriteString(t)
	}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "h1", "h2", "h3", "h4", "h5", "h6":
				write(textContent(n))
				return
			case "script", "style", "nav", "footer", "header":
				return
			case "p", "li", "td", "blockquote":
				write(textContent(n))
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	if body := findBody(doc); body != nil {
		walk(body)
	} else {
		walk(doc)
	}

	return paginate(buf.String()), nil
}

func textContent(n *html.Node) string {
	var buf strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.TrimSpace(buf.String())
}

func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "body" {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if b := findBody(c); b != nil {
			return b
		}
	}
	return nil
}
