package pagetext

import (
	"bytes"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/ProbablyMaybeNo/campaign-console/internal/rulebook"
)

// MarkdownSource handles Markdown files using goldmark. Headings are
// flattened to their own paragraph so the section heuristics can detect
// them as header lines; the result is paginated synthetically.
type MarkdownSource struct{}

func (s *MarkdownSource) Pages(r io.Reader, filename string) ([]rulebook.PageText, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	md := goldmark.New()
	reader := text.NewReader(src)
	doc := md.Parser().Parse(reader)

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

	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		if h, ok := n.(*ast.Heading); ok {
			write(string(h.Text(src)))
			continue
		}
		write(blockText(n, src))
	}

	return paginate(buf.String()), nil
}

// blockText gets the text content of a goldmark AST block node. Blocks
// that own source lines (paragraphs, code blocks) read them directly;
// container blocks (lists, block quotes) recurse into their children.
func blockText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	if n.Type() == ast.TypeBlock && n.Lines().Len() > 0 {
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			line := lines.At(i)
			buf.Write(line.Value(src))
			buf.WriteByte('\n')
		}
		return strings.TrimSpace(buf.String())
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		t := blockText(c, src)
		if t == "" {
			continue
		}
		if buf.Len() > 0 {
			buf.WriteByte('\n')
		}
		buf.WriteString(t)
	}
	return strings.TrimSpace(buf.String())
}
