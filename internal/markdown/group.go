package markdown

import "strings"

// blockKind is the category of a line-group produced by the grouper.
// Bullet and ordered lines share the list category, so a list group can
// mix both kinds across indentation levels; the group's declared kind is
// taken from its first line.
type blockKind int

const (
	blockParagraph blockKind = iota
	blockHeading
	blockList
	blockQuote
	blockRule
	blockTable
	blockCode
)

// group is a run of consecutive same-category lines.
type group struct {
	kind   blockKind
	lines  []lineInfo // classified lines for list/quote/table groups
	text   string     // joined text for paragraph and heading groups
	level  int        // heading level
	lang   string     // code block language tag
	code   []string   // buffered raw lines for code groups
	closed bool       // code fence received its closing delimiter
}

// groupLines runs the grouping state machine over the input lines.
//
// Headers and rules always form single-line groups. List, quote, and
// table lines extend an immediately preceding group of the same
// category; paragraph lines concatenate onto a preceding paragraph group
// with a single separating space. A blank line ends the current group's
// extension eligibility without starting anything. Fence-open pushes a
// code group that buffers raw lines until fence-close; a code group left
// open at end of input stays marked unclosed and is dropped at dispatch.
func groupLines(lines []string) []*group {
	var groups []*group
	var cur *group // extendable group, nil after a blank or single-line group
	inFence := false

	push := func(g *group) *group {
		groups = append(groups, g)
		return g
	}

	for _, raw := range lines {
		info := classify(raw, inFence)

		switch info.kind {
		case lineFenceOpen:
			cur = push(&group{kind: blockCode, lang: info.lang})
			inFence = true

		case lineFenceContent:
			if cur != nil && cur.kind == blockCode {
				cur.code = append(cur.code, info.raw)
			}

		case lineFenceClose:
			if cur != nil && cur.kind == blockCode {
				cur.closed = true
			}
			inFence = false
			cur = nil

		case lineBlank:
			cur = nil

		case lineHeader:
			push(&group{kind: blockHeading, level: info.level, text: headerText(info.raw)})
			cur = nil

		case lineRule:
			push(&group{kind: blockRule})
			cur = nil

		case lineBullet, lineOrdered:
			if cur == nil || cur.kind != blockList {
				cur = push(&group{kind: blockList})
			}
			cur.lines = append(cur.lines, info)

		case lineQuote:
			if cur == nil || cur.kind != blockQuote {
				cur = push(&group{kind: blockQuote})
			}
			cur.lines = append(cur.lines, info)

		case lineTable:
			if cur == nil || cur.kind != blockTable {
				cur = push(&group{kind: blockTable})
			}
			cur.lines = append(cur.lines, info)

		default: // lineParagraph
			text := strings.TrimSpace(info.raw)
			if cur != nil && cur.kind == blockParagraph {
				cur.text += " " + text
			} else {
				cur = push(&group{kind: blockParagraph, text: text})
			}
		}
	}

	return groups
}

// headerText strips the leading # run and its following whitespace.
func headerText(line string) string {
	m := headerRe.FindStringSubmatch(line)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[2])
}
