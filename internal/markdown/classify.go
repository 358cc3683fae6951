package markdown

import (
	"regexp"
	"strings"
)

// lineKind is the block-level category the classifier assigns to a line.
type lineKind int

const (
	lineParagraph lineKind = iota
	lineHeader
	lineBullet
	lineOrdered
	lineQuote
	lineRule
	lineTable
	lineBlank
	lineFenceOpen
	lineFenceContent
	lineFenceClose
)

var (
	headerRe  = regexp.MustCompile(`^(#+)\s+(.*)$`)
	bulletRe  = regexp.MustCompile(`^(\s*)- (.*)$`)
	orderedRe = regexp.MustCompile(`^(\s*)\d+\.\s(.*)$`)
	ruleRe    = regexp.MustCompile(`^-{3,}$`)
)

// lineInfo is a classified input line. raw always holds the original
// line; level and lang are populated for headers and fence openers.
type lineInfo struct {
	kind  lineKind
	raw   string
	level int    // header level (count of leading #, may exceed 6)
	lang  string // fence language tag, "" when none given
}

// classify assigns a block category to one line. inFence reflects the
// grouper's state: inside an open fence every line is fence content
// except a fence delimiter, which closes it.
func classify(line string, inFence bool) lineInfo {
	trimmed := strings.TrimSpace(line)

	if inFence {
		if strings.HasPrefix(trimmed, "```") {
			return lineInfo{kind: lineFenceClose, raw: line}
		}
		return lineInfo{kind: lineFenceContent, raw: line}
	}
	if strings.HasPrefix(trimmed, "```") {
		return lineInfo{
			kind: lineFenceOpen,
			raw:  line,
			lang: strings.TrimSpace(strings.TrimPrefix(trimmed, "```")),
		}
	}
	if m := headerRe.FindStringSubmatch(line); m != nil {
		return lineInfo{kind: lineHeader, raw: line, level: len(m[1])}
	}
	if bulletRe.MatchString(line) {
		return lineInfo{kind: lineBullet, raw: line}
	}
	if orderedRe.MatchString(line) {
		return lineInfo{kind: lineOrdered, raw: line}
	}
	if strings.HasPrefix(line, "> ") {
		return lineInfo{kind: lineQuote, raw: line}
	}
	if ruleRe.MatchString(line) {
		return lineInfo{kind: lineRule, raw: line}
	}
	if strings.Contains(line, "|") && !strings.HasPrefix(line, ">") {
		return lineInfo{kind: lineTable, raw: line}
	}
	if trimmed == "" {
		return lineInfo{kind: lineBlank, raw: line}
	}
	return lineInfo{kind: lineParagraph, raw: line}
}
