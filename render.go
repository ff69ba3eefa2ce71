package md2wiki

import (
	"strings"
)

// dialectSyntax is the token table one dialect contributes to the renderer.
// The tree walk itself is dialect-agnostic: every piece of punctuation it
// emits comes from here, so neither dialect's markers leak into the other.
type dialectSyntax interface {
	headingPrefix(level int) string
	codeBlockOpen(lang string) string
	codeBlockClose() string
	tocMacro() string
	rule() string
	quoteFence() string
	bulletMarker() byte
	orderedMarker() byte
	emphasisMarker() string
	strongMarker() string
	strikethroughMarker() string
	codeSpanOpen() string
	codeSpanClose() string
	link(text, href string) string
	image(src, alt string) string
	taskMarker(checked bool) string
	headerCellBar() string
	cellBar() string
	escapeText(s string) string
	escapeCodeSpan(s string) string
}

// syntaxFor returns the syntax table for a dialect.
func syntaxFor(d Dialect) (dialectSyntax, error) {
	switch d {
	case DialectJira:
		return jiraSyntax{}, nil
	case DialectConfluence:
		return confluenceSyntax{}, nil
	}
	return nil, ErrInvalidDialect
}

// Render walks a fully transformed document and emits markup text for the
// given dialect, resolving code fence languages through the built-in alias
// table. Rendering is deterministic: the same tree and dialect always
// produce byte-identical output.
func Render(doc *Document, dialect Dialect) (string, error) {
	return render(doc, dialect, DefaultAliasTable())
}

func render(doc *Document, dialect Dialect, aliases *AliasTable) (string, error) {
	syn, err := syntaxFor(dialect)
	if err != nil {
		return "", err
	}
	r := &treeRenderer{syn: syn, aliases: aliases}
	return r.document(doc), nil
}

// treeRenderer drives the node walk for one render call.
type treeRenderer struct {
	syn     dialectSyntax
	aliases *AliasTable

	// bulletStack tracks list nesting; each level contributes one marker
	// character to the item prefix ("*# item" for an ordered list inside an
	// unordered one).
	bulletStack []byte
}

// document renders top-level blocks separated by blank lines, with a single
// trailing newline. An empty document renders as the empty string.
func (r *treeRenderer) document(doc *Document) string {
	parts := r.renderBlocks(doc.Blocks)
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, "\n\n") + "\n"
}

// renderBlocks renders a block sequence into newline-free-tail parts.
func (r *treeRenderer) renderBlocks(blocks []Block) []string {
	parts := make([]string, 0, len(blocks))
	for _, blk := range blocks {
		parts = append(parts, r.renderBlock(blk))
	}
	return parts
}

// renderBlock renders one block without trailing newline.
func (r *treeRenderer) renderBlock(blk Block) string {
	switch b := blk.(type) {
	case *Heading:
		return r.syn.headingPrefix(b.Level) + r.renderInlines(b.Inlines)
	case *Paragraph:
		return r.renderInlines(b.Inlines)
	case *CodeBlock:
		content := b.Content
		if content != "" && !strings.HasSuffix(content, "\n") {
			content += "\n"
		}
		lang := r.aliases.Resolve(b.Language)
		return r.syn.codeBlockOpen(lang) + "\n" + content + r.syn.codeBlockClose()
	case *List:
		return strings.Join(r.renderList(b), "\n")
	case *Blockquote:
		fence := r.syn.quoteFence()
		inner := strings.Join(r.renderBlocks(b.Blocks), "\n\n")
		return fence + "\n" + inner + "\n" + fence
	case *Table:
		return r.renderTable(b)
	case *RawHTMLBlock:
		// Verbatim in both dialects: Atlassian passes literal HTML through,
		// and nothing inside was ever parsed as Markdown.
		return b.Inner
	case *ThematicBreak:
		return r.syn.rule()
	case *TOCMarker:
		return r.syn.tocMacro()
	}
	return ""
}

// renderList renders list items as lines, one marker prefix per nesting
// level.
func (r *treeRenderer) renderList(list *List) []string {
	marker := r.syn.bulletMarker()
	if list.Ordered {
		marker = r.syn.orderedMarker()
	}
	r.bulletStack = append(r.bulletStack, marker)
	defer func() { r.bulletStack = r.bulletStack[:len(r.bulletStack)-1] }()

	prefix := string(r.bulletStack) + " "

	var lines []string
	for _, item := range list.Items {
		first := true
		for _, blk := range item.Blocks {
			switch b := blk.(type) {
			case *List:
				lines = append(lines, r.renderList(b)...)
			default:
				text := r.renderBlock(b)
				if first {
					lines = append(lines, prefix+text)
				} else {
					lines = append(lines, text)
				}
			}
			first = false
		}
	}
	return lines
}

// renderTable renders the header row with header bars and body rows with
// plain bars.
func (r *treeRenderer) renderTable(t *Table) string {
	var lines []string
	if len(t.Header) > 0 {
		lines = append(lines, r.renderRow(t.Header, r.syn.headerCellBar()))
	}
	for _, row := range t.Rows {
		lines = append(lines, r.renderRow(row, r.syn.cellBar()))
	}
	return strings.Join(lines, "\n")
}

func (r *treeRenderer) renderRow(cells []TableCell, bar string) string {
	var sb strings.Builder
	for _, cell := range cells {
		sb.WriteString(bar)
		sb.WriteString(r.renderInlines(cell.Inlines))
	}
	sb.WriteString(bar)
	return sb.String()
}

// renderInlines renders an inline sequence. A space is forced after a code
// span when the following text does not start with one: text glued to the
// closing braces would break the monospace markup.
func (r *treeRenderer) renderInlines(inlines []Inline) string {
	var sb strings.Builder
	afterCodeSpan := false

	for _, in := range inlines {
		if afterCodeSpan {
			if t, ok := in.(*Text); ok && t.Value != "" && !strings.HasPrefix(t.Value, " ") {
				sb.WriteByte(' ')
			}
			afterCodeSpan = false
		}

		switch n := in.(type) {
		case *Text:
			sb.WriteString(r.syn.escapeText(n.Value))
		case *LineBreak:
			if n.Hard {
				sb.WriteByte('\n')
			} else {
				// A soft break in Markdown is not a line break in Atlassian
				// markup.
				sb.WriteByte(' ')
			}
		case *Emphasis:
			m := r.syn.emphasisMarker()
			sb.WriteString(m + r.renderInlines(n.Inlines) + m)
		case *Strong:
			m := r.syn.strongMarker()
			sb.WriteString(m + r.renderInlines(n.Inlines) + m)
		case *Strikethrough:
			m := r.syn.strikethroughMarker()
			sb.WriteString(m + r.renderInlines(n.Inlines) + m)
		case *CodeSpan:
			sb.WriteString(r.syn.codeSpanOpen())
			sb.WriteString(r.syn.escapeCodeSpan(n.Value))
			sb.WriteString(r.syn.codeSpanClose())
			afterCodeSpan = true
		case *Link:
			sb.WriteString(r.syn.link(r.renderInlines(n.Inlines), n.Href))
		case *Image:
			sb.WriteString(r.syn.image(n.Src, n.Alt))
		case *TaskMarker:
			sb.WriteString(r.syn.taskMarker(n.Checked))
		}
	}
	return sb.String()
}
