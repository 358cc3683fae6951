// Package adf models the Atlassian Document Format (ADF) node tree.
//
// ADF is the JSON document format Jira Cloud and Confluence use for rich
// text fields. A document is a "doc" node (version 1) holding an ordered
// sequence of block nodes; text nodes carry formatting as marks.
// See https://developer.atlassian.com/cloud/jira/platform/apis/document/structure/
//
// Nodes are plain values built once by the constructors below and never
// mutated after assembly, so a finished Document can be marshaled and
// shared freely.
package adf

import "encoding/json"

// NodeType identifies a block or inline node kind.
type NodeType string

const (
	NodeDoc         NodeType = "doc"
	NodeParagraph   NodeType = "paragraph"
	NodeHeading     NodeType = "heading"
	NodeBulletList  NodeType = "bulletList"
	NodeOrderedList NodeType = "orderedList"
	NodeListItem    NodeType = "listItem"
	NodeCodeBlock   NodeType = "codeBlock"
	NodeBlockquote  NodeType = "blockquote"
	NodeRule        NodeType = "rule"
	NodeTable       NodeType = "table"
	NodeTableRow    NodeType = "tableRow"
	NodeTableHeader NodeType = "tableHeader"
	NodeTableCell   NodeType = "tableCell"
	NodeMediaSingle NodeType = "mediaSingle"
	NodeMedia       NodeType = "media"
	NodeText        NodeType = "text"
)

// MarkType identifies a formatting mark on a text node.
type MarkType string

const (
	MarkStrong MarkType = "strong"
	MarkEm     MarkType = "em"
	MarkCode   MarkType = "code"
	MarkStrike MarkType = "strike"
	MarkLink   MarkType = "link"
)

// Document is the root of an ADF tree. Version is always 1 and Type is
// always "doc". Content marshals as an empty array rather than null when
// the document has no blocks.
type Document struct {
	Version int     `json:"version"`
	Type    string  `json:"type"`
	Content []*Node `json:"content"`
}

// NewDocument returns an empty version-1 document.
func NewDocument() *Document {
	return &Document{Version: 1, Type: "doc", Content: []*Node{}}
}

// MarshalJSON guarantees the content field is present even when empty.
func (d *Document) MarshalJSON() ([]byte, error) {
	type alias Document
	out := alias(*d)
	if out.Content == nil {
		out.Content = []*Node{}
	}
	return json.Marshal(&out)
}

// Node is a single ADF node. Which fields are populated depends on Type:
// container nodes carry Content, text nodes carry Text and optionally
// Marks, and attributed nodes (heading, codeBlock, table, media) carry
// Attrs.
type Node struct {
	Type    NodeType
	Attrs   map[string]any
	Content []*Node
	Text    string
	Marks   []*Mark
}

// MarshalJSON emits the text field only for text nodes, so that a blank
// text node serializes as {"type":"text","text":""} while container
// nodes omit the field entirely.
func (n *Node) MarshalJSON() ([]byte, error) {
	type raw struct {
		Type    NodeType       `json:"type"`
		Attrs   map[string]any `json:"attrs,omitempty"`
		Content []*Node        `json:"content,omitempty"`
		Text    *string        `json:"text,omitempty"`
		Marks   []*Mark        `json:"marks,omitempty"`
	}
	r := raw{Type: n.Type, Attrs: n.Attrs, Content: n.Content, Marks: n.Marks}
	if n.Type == NodeText {
		r.Text = &n.Text
	}
	return json.Marshal(&r)
}

// Mark is a formatting annotation attached to a text node.
type Mark struct {
	Type  MarkType       `json:"type"`
	Attrs map[string]any `json:"attrs,omitempty"`
}

// NewText returns a plain text node with no marks.
func NewText(text string) *Node {
	return &Node{Type: NodeText, Text: text}
}

// NewTextWithMarks returns a text node carrying the given marks.
func NewTextWithMarks(text string, marks ...*Mark) *Node {
	return &Node{Type: NodeText, Text: text, Marks: marks}
}

// NewParagraph returns a paragraph wrapping the given inline nodes.
func NewParagraph(content ...*Node) *Node {
	return &Node{Type: NodeParagraph, Content: content}
}

// NewHeading returns a heading at the given level (1-6).
func NewHeading(level int, content ...*Node) *Node {
	return &Node{Type: NodeHeading, Attrs: map[string]any{"level": level}, Content: content}
}

// NewBulletList returns a bulletList of the given list items.
func NewBulletList(items ...*Node) *Node {
	return &Node{Type: NodeBulletList, Content: items}
}

// NewOrderedList returns an orderedList of the given list items.
func NewOrderedList(items ...*Node) *Node {
	return &Node{Type: NodeOrderedList, Content: items}
}

// NewListItem returns a listItem. Content is one paragraph, optionally
// followed by one nested list.
func NewListItem(content ...*Node) *Node {
	return &Node{Type: NodeListItem, Content: content}
}

// NewCodeBlock returns a codeBlock with the given language tag and a
// single text child holding the code payload.
func NewCodeBlock(language, code string) *Node {
	return &Node{
		Type:    NodeCodeBlock,
		Attrs:   map[string]any{"language": language},
		Content: []*Node{NewText(code)},
	}
}

// NewBlockquote returns a blockquote wrapping one paragraph.
func NewBlockquote(paragraph *Node) *Node {
	return &Node{Type: NodeBlockquote, Content: []*Node{paragraph}}
}

// NewRule returns a horizontal rule node.
func NewRule() *Node {
	return &Node{Type: NodeRule}
}

// NewTable returns a table with Jira's default attributes.
func NewTable(rows ...*Node) *Node {
	return &Node{
		Type: NodeTable,
		Attrs: map[string]any{
			"isNumberColumnEnabled": false,
			"layout":                "default",
		},
		Content: rows,
	}
}

// NewTableRow returns a tableRow of header or data cells.
func NewTableRow(cells ...*Node) *Node {
	return &Node{Type: NodeTableRow, Content: cells}
}

// NewTableHeader returns a tableHeader cell wrapping one paragraph.
func NewTableHeader(paragraph *Node) *Node {
	return &Node{Type: NodeTableHeader, Content: []*Node{paragraph}}
}

// NewTableCell returns a tableCell wrapping one paragraph.
func NewTableCell(paragraph *Node) *Node {
	return &Node{Type: NodeTableCell, Content: []*Node{paragraph}}
}

// NewMediaSingle returns a mediaSingle wrapper. The text-parsing path
// never produces one; it exists for programmatic image embedding.
func NewMediaSingle(layout string, media *Node) *Node {
	return &Node{
		Type:    NodeMediaSingle,
		Attrs:   map[string]any{"layout": layout},
		Content: []*Node{media},
	}
}

// NewExternalMedia returns a media node referencing an external URL.
func NewExternalMedia(url string) *Node {
	return &Node{
		Type:  NodeMedia,
		Attrs: map[string]any{"type": "external", "url": url},
	}
}

// NewStrongMark returns a bold mark.
func NewStrongMark() *Mark { return &Mark{Type: MarkStrong} }

// NewEmMark returns an italic mark.
func NewEmMark() *Mark { return &Mark{Type: MarkEm} }

// NewCodeMark returns an inline code mark.
func NewCodeMark() *Mark { return &Mark{Type: MarkCode} }

// NewStrikeMark returns a strikethrough mark.
func NewStrikeMark() *Mark { return &Mark{Type: MarkStrike} }

// NewLinkMark returns a link mark pointing at href.
func NewLinkMark(href string) *Mark {
	return &Mark{Type: MarkLink, Attrs: map[string]any{"href": href}}
}
