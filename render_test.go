package md2wiki

import (
	"errors"
	"testing"
)

func TestRender_Blocks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		doc   *Document
		jira  string
		confl string
	}{
		{
			name:  "empty document",
			doc:   &Document{},
			jira:  "",
			confl: "",
		},
		{
			name: "heading",
			doc: &Document{Blocks: []Block{
				&Heading{Level: 3, Inlines: []Inline{&Text{Value: "Title"}}},
			}},
			jira:  "h3. Title\n",
			confl: "h3. Title\n",
		},
		{
			name: "code block language diverges per dialect",
			doc: &Document{Blocks: []Block{
				&CodeBlock{Language: "bash", Content: "echo hi\n"},
			}},
			jira:  "{code:bash}\necho hi\n{code}\n",
			confl: "{code:language=bash}\necho hi\n{code}\n",
		},
		{
			name: "code block without language",
			doc: &Document{Blocks: []Block{
				&CodeBlock{Content: "x\n"},
			}},
			jira:  "{code}\nx\n{code}\n",
			confl: "{code}\nx\n{code}\n",
		},
		{
			name: "code block language resolved through aliases",
			doc: &Document{Blocks: []Block{
				&CodeBlock{Language: "console", Content: "ls\n"},
			}},
			jira:  "{code:bash}\nls\n{code}\n",
			confl: "{code:language=bash}\nls\n{code}\n",
		},
		{
			name: "blocks separated by blank line",
			doc: &Document{Blocks: []Block{
				&Heading{Level: 1, Inlines: []Inline{&Text{Value: "A"}}},
				&Paragraph{Inlines: []Inline{&Text{Value: "body"}}},
			}},
			jira:  "h1. A\n\nbody\n",
			confl: "h1. A\n\nbody\n",
		},
		{
			name: "toc marker",
			doc: &Document{Blocks: []Block{
				&TOCMarker{},
				&Heading{Level: 1, Inlines: []Inline{&Text{Value: "A"}}},
			}},
			jira:  "{toc}\n\nh1. A\n",
			confl: "{toc}\n\nh1. A\n",
		},
		{
			name: "thematic break",
			doc: &Document{Blocks: []Block{
				&ThematicBreak{},
			}},
			jira:  "----\n",
			confl: "----\n",
		},
		{
			name: "blockquote",
			doc: &Document{Blocks: []Block{
				&Blockquote{Blocks: []Block{
					&Paragraph{Inlines: []Inline{&Text{Value: "quoted"}}},
				}},
			}},
			jira:  "{quote}\nquoted\n{quote}\n",
			confl: "{quote}\nquoted\n{quote}\n",
		},
		{
			name: "nested lists grow marker stack",
			doc: &Document{Blocks: []Block{
				&List{Items: []ListItem{
					{Blocks: []Block{
						&Paragraph{Inlines: []Inline{&Text{Value: "a"}}},
						&List{Ordered: true, Items: []ListItem{
							{Blocks: []Block{&Paragraph{Inlines: []Inline{&Text{Value: "b"}}}}},
						}},
					}},
					{Blocks: []Block{&Paragraph{Inlines: []Inline{&Text{Value: "c"}}}}},
				}},
			}},
			jira:  "* a\n*# b\n* c\n",
			confl: "* a\n*# b\n* c\n",
		},
		{
			name: "table",
			doc: &Document{Blocks: []Block{
				&Table{
					Header: []TableCell{
						{Inlines: []Inline{&Text{Value: "A"}}},
						{Inlines: []Inline{&Text{Value: "B"}}},
					},
					Rows: [][]TableCell{{
						{Inlines: []Inline{&Text{Value: "1"}}},
						{Inlines: []Inline{&Text{Value: "2"}}},
					}},
				},
			}},
			jira:  "||A||B||\n|1|2|\n",
			confl: "||A||B||\n|1|2|\n",
		},
		{
			name: "raw html block verbatim",
			doc: &Document{Blocks: []Block{
				&RawHTMLBlock{Tag: TagDetails, Inner: "<details>\n**not parsed**\n</details>"},
			}},
			jira:  "<details>\n**not parsed**\n</details>\n",
			confl: "<details>\n**not parsed**\n</details>\n",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			gotJira, err := Render(tt.doc, DialectJira)
			if err != nil {
				t.Fatalf("Render(jira) unexpected error: %v", err)
			}
			if gotJira != tt.jira {
				t.Errorf("Render(jira) = %q, want %q", gotJira, tt.jira)
			}

			gotConfl, err := Render(tt.doc, DialectConfluence)
			if err != nil {
				t.Fatalf("Render(confluence) unexpected error: %v", err)
			}
			if gotConfl != tt.confl {
				t.Errorf("Render(confluence) = %q, want %q", gotConfl, tt.confl)
			}
		})
	}
}

func TestRender_Inlines(t *testing.T) {
	t.Parallel()

	para := func(inlines ...Inline) *Document {
		return &Document{Blocks: []Block{&Paragraph{Inlines: inlines}}}
	}

	tests := []struct {
		name string
		doc  *Document
		want string
	}{
		{
			name: "emphasis",
			doc:  para(&Emphasis{Inlines: []Inline{&Text{Value: "it"}}}),
			want: "_it_\n",
		},
		{
			name: "strong",
			doc:  para(&Strong{Inlines: []Inline{&Text{Value: "bold"}}}),
			want: "*bold*\n",
		},
		{
			name: "strikethrough",
			doc:  para(&Strikethrough{Inlines: []Inline{&Text{Value: "gone"}}}),
			want: "-gone-\n",
		},
		{
			name: "code span",
			doc:  para(&CodeSpan{Value: "x := 1"}),
			want: "{{x := 1}}\n",
		},
		{
			name: "space forced after code span",
			doc:  para(&CodeSpan{Value: "ls"}, &Text{Value: "lists files"}),
			want: "{{ls}} lists files\n",
		},
		{
			name: "no extra space when text already has one",
			doc:  para(&CodeSpan{Value: "ls"}, &Text{Value: " lists files"}),
			want: "{{ls}} lists files\n",
		},
		{
			name: "link with text",
			doc:  para(&Link{Href: "https://example.com", Inlines: []Inline{&Text{Value: "here"}}}),
			want: "[here|https://example.com]\n",
		},
		{
			name: "autolink collapses to bare form",
			doc:  para(&Link{Href: "https://example.com"}),
			want: "[https://example.com]\n",
		},
		{
			name: "image with alt",
			doc:  para(&Image{Src: "pic.png", Alt: "a pic"}),
			want: "!pic.png|alt=a pic!\n",
		},
		{
			name: "image without alt",
			doc:  para(&Image{Src: "pic.png"}),
			want: "!pic.png!\n",
		},
		{
			name: "soft break becomes space",
			doc:  para(&Text{Value: "a"}, &LineBreak{}, &Text{Value: "b"}),
			want: "a b\n",
		},
		{
			name: "hard break becomes newline",
			doc:  para(&Text{Value: "a"}, &LineBreak{Hard: true}, &Text{Value: "b"}),
			want: "a\nb\n",
		},
		{
			name: "task markers",
			doc:  para(&TaskMarker{Checked: true}, &Text{Value: "done"}),
			want: "(/) done\n",
		},
		{
			name: "braces escaped in text",
			doc:  para(&Text{Value: "a {b} c"}),
			want: "a &#123;b&#125; c\n",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Render(tt.doc, DialectJira)
			if err != nil {
				t.Fatalf("Render() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRender_InvalidDialect(t *testing.T) {
	t.Parallel()

	_, err := Render(&Document{}, Dialect("wiki"))
	if err == nil {
		t.Fatal("expected error for unknown dialect")
	}
	if !errors.Is(err, ErrInvalidDialect) {
		t.Errorf("error should wrap ErrInvalidDialect, got %v", err)
	}
}

func TestRender_Deterministic(t *testing.T) {
	t.Parallel()

	doc := &Document{Blocks: []Block{
		&Heading{Level: 1, Inlines: []Inline{&Text{Value: "A"}}},
		&CodeBlock{Language: "py", Content: "print(1)\n"},
	}}

	first, err := Render(doc, DialectConfluence)
	if err != nil {
		t.Fatalf("Render() unexpected error: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := Render(doc, DialectConfluence)
		if err != nil {
			t.Fatalf("Render() unexpected error: %v", err)
		}
		if again != first {
			t.Fatalf("render %d differs:\n%q\nvs\n%q", i, again, first)
		}
	}
}
