// Package markdown converts informally written markdown text into an
// ADF document tree.
//
// The converter is deliberately best-effort rather than spec-compliant:
// it recognizes the constructs people actually type into tickets
// (headings, lists, tables, fenced code, blockquotes, rules, and the
// common inline formatting) and guarantees that Convert always returns a
// valid document preserving the caller's text, no matter how malformed
// the input. It is a pure function with no I/O and is safe for
// concurrent use.
package markdown

import (
	"strings"

	"github.com/tixmd/tixmd/internal/adf"
)

// defaultLanguage is the code block language when a fence gives none.
const defaultLanguage = "text"

// Convert transforms markdown text into an ADF document.
//
// Blank input yields an empty document. Non-blank input that produces no
// blocks (for example a single unterminated code fence) falls back to
// one paragraph wrapping the entire original text verbatim, and any
// internal fault is recovered into the same fallback, so user content is
// never dropped end to end and Convert never panics to its caller.
func Convert(text string) (doc *adf.Document) {
	doc = adf.NewDocument()
	if strings.TrimSpace(text) == "" {
		return doc
	}

	defer func() {
		if r := recover(); r != nil {
			doc = verbatimDocument(text)
		}
	}()

	var blocks []*adf.Node
	for _, g := range groupLines(strings.Split(text, "\n")) {
		if node := buildBlock(g); node != nil {
			blocks = append(blocks, node)
		}
	}
	if len(blocks) == 0 {
		return verbatimDocument(text)
	}
	doc.Content = blocks
	return doc
}

// buildBlock dispatches one line-group to its builder. Returns nil for
// groups that produce nothing: blank paragraphs, out-of-range headings,
// empty tables, and unterminated code fences.
func buildBlock(g *group) *adf.Node {
	switch g.kind {
	case blockParagraph:
		nodes := inlineNodes(g.text)
		if len(nodes) == 0 {
			return nil
		}
		return adf.NewParagraph(nodes...)

	case blockHeading:
		if g.level < 1 || g.level > 6 {
			return nil
		}
		nodes := inlineNodes(g.text)
		if len(nodes) == 0 {
			return nil
		}
		return adf.NewHeading(g.level, nodes...)

	case blockList:
		return buildListGroup(g)

	case blockQuote:
		return buildQuoteGroup(g)

	case blockRule:
		return adf.NewRule()

	case blockTable:
		return buildTableGroup(g)

	case blockCode:
		if !g.closed {
			return nil
		}
		lang := g.lang
		if lang == "" {
			lang = defaultLanguage
		}
		return adf.NewCodeBlock(lang, strings.Join(g.code, "\n"))

	default:
		return nil
	}
}

// buildQuoteGroup joins the quoted lines (prefix stripped, trimmed) with
// newlines into a single paragraph inside one blockquote.
func buildQuoteGroup(g *group) *adf.Node {
	lines := make([]string, 0, len(g.lines))
	for _, info := range g.lines {
		lines = append(lines, strings.TrimSpace(strings.TrimPrefix(info.raw, "> ")))
	}
	nodes := inlineNodes(strings.Join(lines, "\n"))
	if len(nodes) == 0 {
		return nil
	}
	return adf.NewBlockquote(adf.NewParagraph(nodes...))
}

// verbatimDocument wraps the entire original input in one paragraph.
func verbatimDocument(text string) *adf.Document {
	doc := adf.NewDocument()
	doc.Content = []*adf.Node{adf.NewParagraph(adf.NewText(text))}
	return doc
}
