package markdown

import (
	"regexp"
	"strings"

	"github.com/tixmd/tixmd/internal/adf"
)

// separatorRe matches separator-row shapes: pipe-delimited runs of only
// hyphens and colons, e.g. |---|:--:|.
var separatorRe = regexp.MustCompile(`^[\s|:-]+$`)

func isSeparatorRow(line string) bool {
	return strings.Contains(line, "-") && separatorRe.MatchString(line)
}

// buildTableGroup reconstructs a table from a flat group of
// pipe-delimited lines. The first non-separator row becomes the header
// row; every later row is a data row. A table without a separator row is
// accepted as-is, and no column-count consistency is enforced.
func buildTableGroup(g *group) *adf.Node {
	var rows []*adf.Node
	header := true
	for _, info := range g.lines {
		if isSeparatorRow(info.raw) {
			continue
		}
		cells := splitCells(info.raw)
		if len(cells) == 0 {
			continue
		}
		row := make([]*adf.Node, 0, len(cells))
		for _, cell := range cells {
			p := cellParagraph(cell)
			if header {
				row = append(row, adf.NewTableHeader(p))
			} else {
				row = append(row, adf.NewTableCell(p))
			}
		}
		rows = append(rows, adf.NewTableRow(row...))
		header = false
	}
	if len(rows) == 0 {
		return nil
	}
	return adf.NewTable(rows...)
}

// splitCells splits a row on '|', dropping the empty leading cell when
// the line begins with a pipe and the empty trailing cell when it ends
// with one. Interior empty cells are preserved.
func splitCells(line string) []string {
	trimmed := strings.TrimSpace(line)
	cells := strings.Split(trimmed, "|")
	if strings.HasPrefix(trimmed, "|") && len(cells) > 0 {
		cells = cells[1:]
	}
	if strings.HasSuffix(trimmed, "|") && len(cells) > 0 {
		cells = cells[:len(cells)-1]
	}
	return cells
}

// cellParagraph wraps one cell's text. Blank cells still need a text
// child, so they get a single empty-string text node.
func cellParagraph(cell string) *adf.Node {
	text := strings.TrimSpace(cell)
	if text == "" {
		return adf.NewParagraph(adf.NewText(""))
	}
	return adf.NewParagraph(inlineNodes(text)...)
}
