package markdown

import (
	"regexp"
	"sort"
	"strings"

	"github.com/tixmd/tixmd/internal/adf"
)

// spanKind enumerates the inline formatting kinds, in precedence order.
// When two spans start at the same offset the earlier kind wins (the
// per-kind match lists are concatenated in this order before a stable
// sort by start offset).
type spanKind int

const (
	spanBold spanKind = iota
	spanCode
	spanLink
	spanURL
	spanStrike
	spanItalic
)

var (
	// Bold stops at the first closing ** (shortest run), so
	// **a*b**c** reads as bold "a*b" followed by plain "c**".
	boldRe   = regexp.MustCompile(`\*\*(.+?)\*\*`)
	codeRe   = regexp.MustCompile("`([^`]+)`")
	linkRe   = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
	urlRe    = regexp.MustCompile(`https?://[^\s]+`)
	strikeRe = regexp.MustCompile(`~~(.+?)~~`)
	italicRe = regexp.MustCompile(`\*([^*]+)\*`)
)

// match describes one recognized formatting span before node assembly.
// Start and end are byte offsets into the scanned fragment; text is the
// content without delimiters; href is set for link and URL spans.
type match struct {
	start, end int
	kind       spanKind
	text       string
	href       string
}

// node converts a match into the text node its kind implies.
func (m match) node() *adf.Node {
	switch m.kind {
	case spanBold:
		return adf.NewTextWithMarks(m.text, adf.NewStrongMark())
	case spanCode:
		return adf.NewTextWithMarks(m.text, adf.NewCodeMark())
	case spanLink, spanURL:
		return adf.NewTextWithMarks(m.text, adf.NewLinkMark(m.href))
	case spanStrike:
		return adf.NewTextWithMarks(m.text, adf.NewStrikeMark())
	default:
		return adf.NewTextWithMarks(m.text, adf.NewEmMark())
	}
}

// findSimple collects every non-overlapping match of re, taking the
// first capture group as the span text.
func findSimple(s string, re *regexp.Regexp, kind spanKind) []match {
	var out []match
	for _, loc := range re.FindAllStringSubmatchIndex(s, -1) {
		out = append(out, match{
			start: loc[0],
			end:   loc[1],
			kind:  kind,
			text:  s[loc[2]:loc[3]],
		})
	}
	return out
}

// findLinks collects [label](target) spans; href is the captured target.
func findLinks(s string) []match {
	var out []match
	for _, loc := range linkRe.FindAllStringSubmatchIndex(s, -1) {
		out = append(out, match{
			start: loc[0],
			end:   loc[1],
			kind:  spanLink,
			text:  s[loc[2]:loc[3]],
			href:  s[loc[4]:loc[5]],
		})
	}
	return out
}

// findURLs collects bare http(s) URLs; href equals the matched text.
func findURLs(s string) []match {
	var out []match
	for _, loc := range urlRe.FindAllStringIndex(s, -1) {
		text := s[loc[0]:loc[1]]
		out = append(out, match{
			start: loc[0],
			end:   loc[1],
			kind:  spanURL,
			text:  text,
			href:  text,
		})
	}
	return out
}

// findItalics collects *text* spans, excluding candidates immediately
// adjacent to another '*' so that bold delimiters are never misread as
// italic. A rejected candidate does not consume input: the scan resumes
// one byte past its opening delimiter, mirroring lookaround semantics.
func findItalics(s string) []match {
	var out []match
	for i := 0; i < len(s); {
		loc := italicRe.FindStringSubmatchIndex(s[i:])
		if loc == nil {
			break
		}
		start, end := i+loc[0], i+loc[1]
		if (start > 0 && s[start-1] == '*') || (end < len(s) && s[end] == '*') {
			i = start + 1
			continue
		}
		out = append(out, match{
			start: start,
			end:   end,
			kind:  spanItalic,
			text:  s[i+loc[2] : i+loc[3]],
		})
		i = end
	}
	return out
}

// extractSpans scans the fragment for every span of every kind and
// resolves overlaps. The six per-kind lists are concatenated in
// precedence order (bold, code, link, url, strike, italic), stable-sorted
// by start offset, then filtered so that a match survives only if it
// begins at or after the end of the previously kept match.
func extractSpans(s string) []match {
	var all []match
	all = append(all, findSimple(s, boldRe, spanBold)...)
	all = append(all, findSimple(s, codeRe, spanCode)...)
	all = append(all, findLinks(s)...)
	all = append(all, findURLs(s)...)
	all = append(all, findSimple(s, strikeRe, spanStrike)...)
	all = append(all, findItalics(s)...)

	sort.SliceStable(all, func(i, j int) bool { return all[i].start < all[j].start })

	var kept []match
	for _, m := range all {
		if len(kept) > 0 && m.start < kept[len(kept)-1].end {
			continue
		}
		kept = append(kept, m)
	}
	return kept
}

// inlineNodes interleaves plain text and formatted spans into an ordered
// sequence of text nodes. A fragment with no spans yields a single plain
// node, or nothing at all when the fragment is blank.
func inlineNodes(s string) []*adf.Node {
	matches := extractSpans(s)
	if len(matches) == 0 {
		if strings.TrimSpace(s) == "" {
			return nil
		}
		return []*adf.Node{adf.NewText(s)}
	}

	var nodes []*adf.Node
	cursor := 0
	for _, m := range matches {
		if m.start > cursor {
			nodes = append(nodes, adf.NewText(s[cursor:m.start]))
		}
		nodes = append(nodes, m.node())
		cursor = m.end
	}
	if cursor < len(s) {
		nodes = append(nodes, adf.NewText(s[cursor:]))
	}
	return nodes
}
