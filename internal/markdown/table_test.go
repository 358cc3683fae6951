package markdown

import "testing"

func TestIsSeparatorRow(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"|---|---|", true},
		{"| --- | :--: |", true},
		{"---", true}, // classified as rule before tables, but shape-wise a separator
		{"| a | b |", false},
		{"|  |  |", false}, // no hyphens
	}
	for _, tt := range tests {
		if got := isSeparatorRow(tt.line); got != tt.want {
			t.Errorf("isSeparatorRow(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestSplitCells(t *testing.T) {
	tests := []struct {
		line string
		want []string
	}{
		{"| a | b |", []string{" a ", " b "}},
		{"a | b", []string{"a ", " b"}},
		{"| a | b", []string{" a ", " b"}},
		{"a | b |", []string{"a ", " b "}},
		{"| a |  | c |", []string{" a ", "  ", " c "}},
	}
	for _, tt := range tests {
		got := splitCells(tt.line)
		if len(got) != len(tt.want) {
			t.Fatalf("splitCells(%q) = %q, want %q", tt.line, got, tt.want)
		}
		for i := range tt.want {
			if got[i] != tt.want[i] {
				t.Errorf("splitCells(%q)[%d] = %q, want %q", tt.line, i, got[i], tt.want[i])
			}
		}
	}
}
