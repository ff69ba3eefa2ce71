package md2wiki

import (
	"context"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// structuralParser abstracts Markdown structural parsing.
type structuralParser interface {
	Parse(ctx context.Context, content string) (*Document, error)
}

// goldmarkParser parses Markdown into the document tree using goldmark.
type goldmarkParser struct {
	md goldmark.Markdown
}

// newGoldmarkParser creates a goldmarkParser with GFM extensions.
func newGoldmarkParser() *goldmarkParser {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM, // Tables, strikethrough, autolinks, task lists
		),
	)
	return &goldmarkParser{md: md}
}

// Parse converts Markdown content into a Document tree. Raw details/summary
// regions are split out first so their inner Markdown stays verbatim; the
// remaining segments go through goldmark. Supports context cancellation via
// goroutine + select pattern since goldmark doesn't natively support context.
//
// The only hard failure is input that is not valid UTF-8; everything else
// degrades to whatever structure could be recovered.
func (p *goldmarkParser) Parse(ctx context.Context, content string) (*Document, error) {
	// Fast path: check context before starting
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if idx := invalidUTF8Offset(content); idx >= 0 {
		return nil, &ParseError{Offset: idx, Reason: "invalid UTF-8 sequence"}
	}

	type result struct {
		doc *Document
		err error
	}

	done := make(chan result, 1)

	go func() {
		doc := &Document{}
		slugs := newSlugger()

		for _, seg := range splitRawHTML(content) {
			if seg.raw {
				doc.Blocks = append(doc.Blocks, &RawHTMLBlock{Tag: seg.tag, Inner: seg.text})
				continue
			}

			source := []byte(seg.text)
			root := p.md.Parser().Parse(text.NewReader(source))
			b := &treeBuilder{source: source, slugs: slugs}
			doc.Blocks = append(doc.Blocks, b.blocks(root)...)
		}

		done <- result{doc: doc}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-done:
		return r.doc, r.err
	}
}

// invalidUTF8Offset returns the byte offset of the first invalid UTF-8
// sequence, or -1 if the string is valid.
func invalidUTF8Offset(s string) int {
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return -1
}

// treeBuilder converts a goldmark AST into document tree nodes.
type treeBuilder struct {
	source []byte
	slugs  *slugger
}

// blocks converts all child nodes of n into blocks, skipping node kinds the
// tree does not model.
func (b *treeBuilder) blocks(n ast.Node) []Block {
	var out []Block
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		if blk := b.block(child); blk != nil {
			out = append(out, blk)
		}
	}
	return out
}

// block converts a single block-level goldmark node.
func (b *treeBuilder) block(n ast.Node) Block {
	switch n := n.(type) {
	case *ast.Heading:
		level := n.Level
		if level < MinHeadingLevel {
			level = MinHeadingLevel
		}
		if level > MaxHeadingLevel {
			level = MaxHeadingLevel
		}
		return &Heading{
			Level:   level,
			ID:      b.slugs.slug(b.plainText(n)),
			Inlines: b.inlines(n),
		}
	case *ast.Paragraph:
		return &Paragraph{Inlines: b.inlines(n)}
	case *ast.TextBlock:
		// Tight list items wrap their text in a TextBlock.
		return &Paragraph{Inlines: b.inlines(n)}
	case *ast.FencedCodeBlock:
		return &CodeBlock{
			Language: strings.TrimSpace(string(n.Language(b.source))),
			Content:  b.rawLines(n),
		}
	case *ast.CodeBlock:
		return &CodeBlock{Content: b.rawLines(n)}
	case *ast.List:
		list := &List{Ordered: n.IsOrdered()}
		for item := n.FirstChild(); item != nil; item = item.NextSibling() {
			list.Items = append(list.Items, ListItem{Blocks: b.blocks(item)})
		}
		return list
	case *ast.Blockquote:
		return &Blockquote{Blocks: b.blocks(n)}
	case *ast.ThematicBreak:
		return &ThematicBreak{}
	case *ast.HTMLBlock:
		inner := b.rawLines(n)
		if n.HasClosure() {
			inner += string(n.ClosureLine.Value(b.source))
		}
		return &RawHTMLBlock{Tag: TagOther, Inner: strings.TrimRight(inner, "\n")}
	case *east.Table:
		return b.table(n)
	}
	return nil
}

// table converts a GFM table node.
func (b *treeBuilder) table(n *east.Table) *Table {
	t := &Table{}
	for row := n.FirstChild(); row != nil; row = row.NextSibling() {
		var cells []TableCell
		for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
			cells = append(cells, TableCell{Inlines: b.inlines(cell)})
		}
		if _, ok := row.(*east.TableHeader); ok {
			t.Header = cells
		} else {
			t.Rows = append(t.Rows, cells)
		}
	}
	return t
}

// inlines converts the inline children of a node.
func (b *treeBuilder) inlines(n ast.Node) []Inline {
	var out []Inline
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		out = append(out, b.inline(child)...)
	}
	return out
}

// inline converts a single inline goldmark node. A node can expand to more
// than one tree node: a Text with a line break yields Text plus LineBreak.
func (b *treeBuilder) inline(n ast.Node) []Inline {
	switch n := n.(type) {
	case *ast.Text:
		out := []Inline{&Text{Value: string(n.Segment.Value(b.source))}}
		if n.HardLineBreak() {
			out = append(out, &LineBreak{Hard: true})
		} else if n.SoftLineBreak() {
			out = append(out, &LineBreak{})
		}
		return out
	case *ast.String:
		return []Inline{&Text{Value: string(n.Value)}}
	case *ast.Emphasis:
		if n.Level == 2 {
			return []Inline{&Strong{Inlines: b.inlines(n)}}
		}
		return []Inline{&Emphasis{Inlines: b.inlines(n)}}
	case *east.Strikethrough:
		return []Inline{&Strikethrough{Inlines: b.inlines(n)}}
	case *ast.CodeSpan:
		return []Inline{&CodeSpan{Value: b.plainText(n)}}
	case *ast.Link:
		return []Inline{&Link{Href: string(n.Destination), Inlines: b.inlines(n)}}
	case *ast.AutoLink:
		return []Inline{&Link{Href: string(n.URL(b.source))}}
	case *ast.Image:
		return []Inline{&Image{Src: string(n.Destination), Alt: b.plainText(n)}}
	case *east.TaskCheckBox:
		return []Inline{&TaskMarker{Checked: n.IsChecked}}
	case *ast.RawHTML:
		var sb strings.Builder
		for i := 0; i < n.Segments.Len(); i++ {
			seg := n.Segments.At(i)
			sb.Write(seg.Value(b.source))
		}
		return []Inline{&Text{Value: sb.String()}}
	}
	// Unknown inline containers contribute their children.
	return b.inlines(n)
}

// rawLines returns the verbatim source lines of a leaf block node.
func (b *treeBuilder) rawLines(n ast.Node) string {
	var sb strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		sb.Write(seg.Value(b.source))
	}
	return sb.String()
}

// plainText flattens a node's text content, dropping formatting.
func (b *treeBuilder) plainText(n ast.Node) string {
	var sb strings.Builder
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		switch c := child.(type) {
		case *ast.Text:
			sb.Write(c.Segment.Value(b.source))
		case *ast.String:
			sb.Write(c.Value)
		default:
			sb.WriteString(b.plainText(child))
		}
	}
	return sb.String()
}

// slugger derives unique anchor slugs for headings. The first occurrence of
// a slug keeps the base form; later duplicates get -1, -2, ... suffixes,
// matching goldmark's auto-heading-id convention.
type slugger struct {
	seen map[string]int
}

func newSlugger() *slugger {
	return &slugger{seen: make(map[string]int)}
}

// slug turns heading text into a unique anchor id.
func (s *slugger) slug(text string) string {
	base := slugify(text)
	n, dup := s.seen[base]
	s.seen[base] = n + 1
	if !dup {
		return base
	}
	return fmt.Sprintf("%s-%d", base, n)
}

// slugify lowercases text and collapses runs of non-alphanumerics into
// single hyphens.
func slugify(text string) string {
	var sb strings.Builder
	pendingHyphen := false
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingHyphen && sb.Len() > 0 {
				sb.WriteByte('-')
			}
			pendingHyphen = false
			sb.WriteRune(r)
		} else {
			pendingHyphen = true
		}
	}
	if sb.Len() == 0 {
		return "heading"
	}
	return sb.String()
}
