package md2wiki

import "testing"

func heading(level int, text string) *Heading {
	return &Heading{Level: level, Inlines: []Inline{&Text{Value: text}}}
}

func TestShiftHeadings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		levels []int
		delta  int
		want   []int
	}{
		{"no shift", []int{1, 3, 6}, 0, []int{1, 3, 6}},
		{"positive shift", []int{1, 2, 3}, 2, []int{3, 4, 5}},
		{"negative shift", []int{3, 4, 5}, -2, []int{1, 2, 3}},
		{"saturates at max", []int{5, 6}, 3, []int{6, 6}},
		{"saturates at min", []int{1, 2}, -10, []int{1, 1}},
		{"large positive clamps all", []int{1, 6}, 100, []int{6, 6}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc := &Document{}
			for _, lvl := range tt.levels {
				doc.Blocks = append(doc.Blocks, heading(lvl, "x"))
			}

			ShiftHeadings(doc, tt.delta)

			got := Headings(doc)
			for i, h := range got {
				if h.Level != tt.want[i] {
					t.Errorf("heading %d: Level = %d, want %d", i, h.Level, tt.want[i])
				}
			}
		})
	}
}

func TestShiftHeadings_Nested(t *testing.T) {
	t.Parallel()

	doc := &Document{Blocks: []Block{
		&Blockquote{Blocks: []Block{heading(2, "quoted")}},
		&List{Items: []ListItem{{Blocks: []Block{heading(3, "listed")}}}},
	}}

	ShiftHeadings(doc, 1)

	got := Headings(doc)
	if len(got) != 2 {
		t.Fatalf("expected 2 headings, got %d", len(got))
	}
	if got[0].Level != 3 {
		t.Errorf("quoted heading Level = %d, want 3", got[0].Level)
	}
	if got[1].Level != 4 {
		t.Errorf("listed heading Level = %d, want 4", got[1].Level)
	}
}

func TestShiftHeadings_KeepsIDs(t *testing.T) {
	t.Parallel()

	h := heading(2, "Anchor")
	h.ID = "anchor"
	doc := &Document{Blocks: []Block{h}}

	ShiftHeadings(doc, 3)

	if h.ID != "anchor" {
		t.Errorf("ID = %q, want unchanged %q", h.ID, "anchor")
	}
}

func TestInsertTOC(t *testing.T) {
	t.Parallel()

	t.Run("marker goes first", func(t *testing.T) {
		t.Parallel()

		doc := &Document{Blocks: []Block{
			heading(1, "A"),
			&Paragraph{Inlines: []Inline{&Text{Value: "body"}}},
		}}

		InsertTOC(doc)

		if len(doc.Blocks) != 3 {
			t.Fatalf("expected 3 blocks, got %d", len(doc.Blocks))
		}
		if _, ok := doc.Blocks[0].(*TOCMarker); !ok {
			t.Errorf("first block = %T, want *TOCMarker", doc.Blocks[0])
		}
	})

	t.Run("inserted even with zero headings", func(t *testing.T) {
		t.Parallel()

		doc := &Document{}
		InsertTOC(doc)

		if len(doc.Blocks) != 1 {
			t.Fatalf("expected 1 block, got %d", len(doc.Blocks))
		}
		if _, ok := doc.Blocks[0].(*TOCMarker); !ok {
			t.Errorf("block = %T, want *TOCMarker", doc.Blocks[0])
		}
	})
}

func TestHeadings_DocumentOrder(t *testing.T) {
	t.Parallel()

	doc := &Document{Blocks: []Block{
		heading(1, "first"),
		&Blockquote{Blocks: []Block{heading(2, "second")}},
		heading(3, "third"),
	}}

	got := Headings(doc)
	if len(got) != 3 {
		t.Fatalf("expected 3 headings, got %d", len(got))
	}
	wantLevels := []int{1, 2, 3}
	for i, h := range got {
		if h.Level != wantLevels[i] {
			t.Errorf("heading %d: Level = %d, want %d", i, h.Level, wantLevels[i])
		}
	}
}
