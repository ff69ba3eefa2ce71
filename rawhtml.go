package md2wiki

import (
	"regexp"
	"strings"
)

// Tag patterns for the raw HTML scanner. The matcher is a tag-balance
// counter, not an HTML parser: it only counts opening and closing tags of
// the region's own tag name.
var (
	detailsOpen  = regexp.MustCompile(`(?i)<details(\s|>|/|$)`)
	detailsClose = regexp.MustCompile(`(?i)</details\s*>`)
	summaryOpen  = regexp.MustCompile(`(?i)<summary(\s|>|/|$)`)
	summaryClose = regexp.MustCompile(`(?i)</summary\s*>`)
)

// segment is a contiguous slice of the source: either a raw HTML region to
// keep verbatim or Markdown text to hand to the structural parser.
type segment struct {
	raw  bool
	tag  HTMLTag
	text string
}

// splitRawHTML splits the source into Markdown segments and raw
// details/summary regions. A region starts at a line whose first non-space
// content is an opening <details> or <summary> tag and ends when the balance
// counter for that same tag returns to zero. End of input is an implicit
// close: an unterminated region is emitted with whatever was captured.
//
// Regions include their delimiting tags, so the renderer can pass the whole
// block through untouched. Tags inside fenced code blocks never start a
// region.
func splitRawHTML(content string) []segment {
	lines := strings.Split(content, "\n")

	var segments []segment
	var md []string  // pending markdown lines
	var raw []string // pending raw region lines

	inCodeBlock := false
	var regionTag HTMLTag
	balance := 0

	flushMarkdown := func() {
		if len(md) > 0 {
			segments = append(segments, segment{text: strings.Join(md, "\n")})
			md = nil
		}
	}
	flushRaw := func() {
		segments = append(segments, segment{raw: true, tag: regionTag, text: strings.Join(raw, "\n")})
		raw = nil
		balance = 0
	}

	for _, line := range lines {
		if balance > 0 {
			raw = append(raw, line)
			open, close := tagPatterns(regionTag)
			balance += len(open.FindAllStringIndex(line, -1))
			balance -= len(close.FindAllStringIndex(line, -1))
			if balance <= 0 {
				flushRaw()
			}
			continue
		}

		if fencedCodeDelimiter.MatchString(line) {
			inCodeBlock = !inCodeBlock
		}

		tag, ok := regionStart(line)
		if !ok || inCodeBlock {
			md = append(md, line)
			continue
		}

		flushMarkdown()
		regionTag = tag
		raw = append(raw, line)
		open, close := tagPatterns(tag)
		balance = len(open.FindAllStringIndex(line, -1)) - len(close.FindAllStringIndex(line, -1))
		if balance <= 0 {
			flushRaw()
		}
	}

	// Implicit close at end of input.
	if balance > 0 {
		flushRaw()
	}
	flushMarkdown()

	return segments
}

// regionStart reports whether a line begins a details or summary region.
func regionStart(line string) (HTMLTag, bool) {
	trimmed := strings.ToLower(strings.TrimSpace(line))
	switch {
	case strings.HasPrefix(trimmed, "<details"):
		return TagDetails, true
	case strings.HasPrefix(trimmed, "<summary"):
		return TagSummary, true
	}
	return TagOther, false
}

// tagPatterns returns the open and close patterns for a region tag.
func tagPatterns(tag HTMLTag) (open, close *regexp.Regexp) {
	if tag == TagSummary {
		return summaryOpen, summaryClose
	}
	return detailsOpen, detailsClose
}
