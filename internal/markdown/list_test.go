package markdown

import (
	"testing"

	"github.com/tixmd/tixmd/internal/adf"
)

func TestStripMarker(t *testing.T) {
	tests := []struct {
		line string
		kind lineKind
		want string
	}{
		{"- item", lineBullet, "item"},
		{"  - padded  ", lineBullet, "padded"},
		{"1. first", lineOrdered, "first"},
		{"  12. twelfth", lineOrdered, "twelfth"},
	}
	for _, tt := range tests {
		got := stripMarker(lineInfo{kind: tt.kind, raw: tt.line})
		if got != tt.want {
			t.Errorf("stripMarker(%q) = %q, want %q", tt.line, got, tt.want)
		}
	}
}

func TestLeadingSpaces(t *testing.T) {
	if got := leadingSpaces("    - x"); got != 4 {
		t.Errorf("leadingSpaces = %d, want 4", got)
	}
	if got := leadingSpaces("- x"); got != 0 {
		t.Errorf("leadingSpaces = %d, want 0", got)
	}
}

func TestBuildListThreeLevels(t *testing.T) {
	g := &group{kind: blockList, lines: []lineInfo{
		{kind: lineBullet, raw: "- a"},
		{kind: lineBullet, raw: "  - b"},
		{kind: lineBullet, raw: "    - c"},
		{kind: lineBullet, raw: "- d"},
	}}
	list := buildListGroup(g)
	if list.Type != adf.NodeBulletList || len(list.Content) != 2 {
		t.Fatalf("outer: %v with %d items", list.Type, len(list.Content))
	}
	levelB := list.Content[0].Content[1]
	if len(levelB.Content) != 1 {
		t.Fatalf("level two has %d items, want 1", len(levelB.Content))
	}
	levelC := levelB.Content[0].Content[1]
	if len(levelC.Content) != 1 {
		t.Fatalf("level three has %d items, want 1", len(levelC.Content))
	}
	if got := levelC.Content[0].Content[0].Content[0].Text; got != "c" {
		t.Errorf("deepest item = %q, want c", got)
	}
}

func TestBuildListOrderedGroup(t *testing.T) {
	g := &group{kind: blockList, lines: []lineInfo{
		{kind: lineOrdered, raw: "1. one"},
		{kind: lineOrdered, raw: "2. two"},
	}}
	list := buildListGroup(g)
	if list.Type != adf.NodeOrderedList {
		t.Fatalf("type = %v, want orderedList", list.Type)
	}
	if len(list.Content) != 2 {
		t.Errorf("got %d items, want 2", len(list.Content))
	}
}

func TestBuildListItemFormatting(t *testing.T) {
	g := &group{kind: blockList, lines: []lineInfo{
		{kind: lineBullet, raw: "- has **bold** text"},
	}}
	list := buildListGroup(g)
	para := list.Content[0].Content[0]
	if len(para.Content) != 3 {
		t.Fatalf("got %d inline nodes, want 3", len(para.Content))
	}
	if markOf(para.Content[1]) != adf.MarkStrong {
		t.Errorf("middle node mark = %q, want strong", markOf(para.Content[1]))
	}
}
