package markdown

import (
	"strings"

	"github.com/tixmd/tixmd/internal/adf"
)

// listLine is one pre-processed line of a list group.
type listLine struct {
	indent  int      // count of leading spaces
	content string   // marker-stripped trimmed text
	kind    lineKind // lineBullet or lineOrdered
}

// buildListGroup reconstructs the indentation hierarchy of a flat list
// group. Returns nil when the group produces no items.
func buildListGroup(g *group) *adf.Node {
	items := make([]listLine, 0, len(g.lines))
	for _, info := range g.lines {
		items = append(items, listLine{
			indent:  leadingSpaces(info.raw),
			content: stripMarker(info),
			kind:    info.kind,
		})
	}
	if len(items) == 0 {
		return nil
	}
	return buildList(items, items[0].indent, items[0].kind)
}

// buildList wraps the listItems built at baseline into the node kind
// declared by the run's first item.
func buildList(items []listLine, baseline int, kind lineKind) *adf.Node {
	children := buildListItems(items, baseline)
	if len(children) == 0 {
		return nil
	}
	if kind == lineOrdered {
		return adf.NewOrderedList(children...)
	}
	return adf.NewBulletList(children...)
}

// buildListItems walks the items left to right. An item at the baseline
// indent becomes a listItem; the maximal contiguous run of strictly
// deeper items that immediately follows it becomes its nested list, with
// the run's minimum indent as the new baseline and the run's first item
// deciding bullet vs ordered. Deeper items that do not follow a baseline
// item are skipped.
func buildListItems(items []listLine, baseline int) []*adf.Node {
	var out []*adf.Node
	for i := 0; i < len(items); {
		if items[i].indent != baseline {
			i++
			continue
		}

		item := adf.NewListItem(adf.NewParagraph(inlineNodes(items[i].content)...))

		j := i + 1
		for j < len(items) && items[j].indent > baseline {
			j++
		}
		if run := items[i+1 : j]; len(run) > 0 {
			if nested := buildList(run, minIndent(run), run[0].kind); nested != nil {
				item.Content = append(item.Content, nested)
			}
		}

		out = append(out, item)
		i = j
	}
	return out
}

func minIndent(items []listLine) int {
	min := items[0].indent
	for _, it := range items[1:] {
		if it.indent < min {
			min = it.indent
		}
	}
	return min
}

func leadingSpaces(s string) int {
	n := 0
	for n < len(s) && s[n] == ' ' {
		n++
	}
	return n
}

// stripMarker removes the list marker ("- " or "1. ") and trims.
func stripMarker(info lineInfo) string {
	if info.kind == lineOrdered {
		if m := orderedRe.FindStringSubmatch(info.raw); m != nil {
			return strings.TrimSpace(m[2])
		}
		return strings.TrimSpace(info.raw)
	}
	if m := bulletRe.FindStringSubmatch(info.raw); m != nil {
		return strings.TrimSpace(m[2])
	}
	return strings.TrimSpace(info.raw)
}
