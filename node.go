package md2wiki

// Document is an ordered sequence of top-level blocks. It is built once by
// the parser, optionally rewritten by the heading and TOC passes, then
// consumed by a dialect renderer.
type Document struct {
	Blocks []Block
}

// Block is a block-level node in the document tree.
type Block interface {
	block()
}

// Inline is an inline node inside paragraph, heading, or cell text.
type Inline interface {
	inline()
}

// Heading levels representable in both Atlassian dialects.
const (
	MinHeadingLevel = 1
	MaxHeadingLevel = 6
)

// Heading is an ATX or setext heading. ID is the anchor slug derived from the
// heading text at parse time; it does not change when levels are shifted.
type Heading struct {
	Level   int
	ID      string
	Inlines []Inline
}

// Paragraph is a run of inline content.
type Paragraph struct {
	Inlines []Inline
}

// CodeBlock is a fenced or indented code block. Content is kept verbatim,
// including the trailing newline of each line.
type CodeBlock struct {
	Language string // raw fence tag, empty if none
	Content  string
}

// List is an ordered or unordered list. Each item holds a block sequence so
// nested lists and multi-paragraph items keep their structure.
type List struct {
	Ordered bool
	Items   []ListItem
}

// ListItem is one item of a List.
type ListItem struct {
	Blocks []Block
}

// Blockquote is a quoted block sequence.
type Blockquote struct {
	Blocks []Block
}

// Table is a GFM table: one header row plus zero or more body rows.
// Cell alignment is not modeled; neither dialect can express it.
type Table struct {
	Header []TableCell
	Rows   [][]TableCell
}

// TableCell holds the inline content of a single cell.
type TableCell struct {
	Inlines []Inline
}

// HTMLTag classifies a raw HTML block.
type HTMLTag int

// Raw HTML block tags the parser distinguishes.
const (
	TagOther HTMLTag = iota
	TagDetails
	TagSummary
)

// RawHTMLBlock is a raw HTML region. Inner is kept byte-for-byte and is never
// re-parsed as Markdown: Markdown syntax inside details/summary comes out as
// literal text.
type RawHTMLBlock struct {
	Tag   HTMLTag
	Inner string
}

// ThematicBreak is a horizontal rule.
type ThematicBreak struct{}

// TOCMarker is a synthetic node inserted by the TOC pass. The renderer
// replaces it with the dialect's native table-of-contents macro.
type TOCMarker struct{}

func (*Heading) block()       {}
func (*Paragraph) block()     {}
func (*CodeBlock) block()     {}
func (*List) block()          {}
func (*Blockquote) block()    {}
func (*Table) block()         {}
func (*RawHTMLBlock) block()  {}
func (*ThematicBreak) block() {}
func (*TOCMarker) block()     {}

// Text is a literal text run.
type Text struct {
	Value string
}

// LineBreak separates lines inside a paragraph. Hard breaks come from
// trailing double spaces or backslashes; soft breaks are plain newlines.
type LineBreak struct {
	Hard bool
}

// Emphasis is italic text.
type Emphasis struct {
	Inlines []Inline
}

// Strong is bold text.
type Strong struct {
	Inlines []Inline
}

// Strikethrough is struck-through text (GFM).
type Strikethrough struct {
	Inlines []Inline
}

// CodeSpan is inline code. Value is the literal span content.
type CodeSpan struct {
	Value string
}

// Link is a hyperlink with inline link text.
type Link struct {
	Href    string
	Inlines []Inline
}

// Image is an inline image reference.
type Image struct {
	Src string
	Alt string
}

// TaskMarker is a GFM task-list checkbox at the start of a list item.
type TaskMarker struct {
	Checked bool
}

func (*Text) inline()          {}
func (*LineBreak) inline()     {}
func (*Emphasis) inline()      {}
func (*Strong) inline()        {}
func (*Strikethrough) inline() {}
func (*CodeSpan) inline()      {}
func (*Link) inline()          {}
func (*Image) inline()         {}
func (*TaskMarker) inline()    {}
