package md2wiki

// ShiftHeadings adds delta to every heading level in the document, saturating
// at [1,6]: both Atlassian dialects have no token for level 0 or 7+ headings,
// so out-of-range results clamp instead of failing. Heading ids are computed
// at parse time and stay untouched, so TOC anchors survive any shift.
func ShiftHeadings(doc *Document, delta int) {
	if delta == 0 {
		return
	}
	shiftBlocks(doc.Blocks, delta)
}

// shiftBlocks applies the delta to headings at any nesting depth.
func shiftBlocks(blocks []Block, delta int) {
	for _, blk := range blocks {
		switch b := blk.(type) {
		case *Heading:
			b.Level = clampLevel(b.Level + delta)
		case *Blockquote:
			shiftBlocks(b.Blocks, delta)
		case *List:
			for i := range b.Items {
				shiftBlocks(b.Items[i].Blocks, delta)
			}
		}
	}
}

// clampLevel saturates a heading level to the representable range.
func clampLevel(level int) int {
	if level < MinHeadingLevel {
		return MinHeadingLevel
	}
	if level > MaxHeadingLevel {
		return MaxHeadingLevel
	}
	return level
}

// InsertTOC prepends a single TOC marker to the document. The marker renders
// as the dialect's native TOC macro, which discovers headings inside the
// target system itself, so the pass is unconditional: a document with zero
// headings still gets the marker.
func InsertTOC(doc *Document) {
	doc.Blocks = append([]Block{&TOCMarker{}}, doc.Blocks...)
}

// Headings returns the document's headings in document order, including ones
// nested in blockquotes and list items.
func Headings(doc *Document) []*Heading {
	var out []*Heading
	collectHeadings(doc.Blocks, &out)
	return out
}

func collectHeadings(blocks []Block, out *[]*Heading) {
	for _, blk := range blocks {
		switch b := blk.(type) {
		case *Heading:
			*out = append(*out, b)
		case *Blockquote:
			collectHeadings(b.Blocks, out)
		case *List:
			for i := range b.Items {
				collectHeadings(b.Items[i].Blocks, out)
			}
		}
	}
}
