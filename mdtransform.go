package md2wiki

import (
	"context"
	"regexp"
	"strings"
)

// Precompiled regex patterns for performance.
var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	// Fenced code block delimiter (backticks or tildes)
	fencedCodeDelimiter = regexp.MustCompile("^(```|~~~)")
)

// markdownPreprocessor defines the contract for markdown preprocessing.
type markdownPreprocessor interface {
	PreprocessMarkdown(ctx context.Context, content string) string
}

// commonMarkPreprocessor applies transformations before structural parsing.
type commonMarkPreprocessor struct{}

// PreprocessMarkdown applies all transformations to prepare Markdown for parsing.
func (p *commonMarkPreprocessor) PreprocessMarkdown(ctx context.Context, content string) string {
	// Check for cancellation before processing
	if ctx.Err() != nil {
		return content
	}

	content = normalizeLineEndings(content)
	content = compressBlankLines(content)
	return content
}

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// compressBlankLines limits consecutive blank lines to 2 maximum.
// Lines inside fenced code blocks and raw details/summary regions are left
// untouched: both must survive the pipeline verbatim. Region tracking uses
// the same tag-balance rules as splitRawHTML so the two scanners agree on
// where raw content starts and ends.
func compressBlankLines(content string) string {
	lines := strings.Split(content, "\n")
	result := make([]string, 0, len(lines))

	inCodeBlock := false
	rawBalance := 0
	var rawTag HTMLTag
	blankRun := 0

	for _, line := range lines {
		if rawBalance > 0 {
			open, close := tagPatterns(rawTag)
			rawBalance += len(open.FindAllStringIndex(line, -1))
			rawBalance -= len(close.FindAllStringIndex(line, -1))
			if rawBalance < 0 {
				rawBalance = 0
			}
			result = append(result, line)
			continue
		}

		if fencedCodeDelimiter.MatchString(line) {
			inCodeBlock = !inCodeBlock
		}

		if !inCodeBlock {
			if tag, ok := regionStart(line); ok {
				open, close := tagPatterns(tag)
				rawTag = tag
				rawBalance = len(open.FindAllStringIndex(line, -1)) - len(close.FindAllStringIndex(line, -1))
				if rawBalance < 0 {
					rawBalance = 0
				}
				result = append(result, line)
				blankRun = 0
				continue
			}
		}

		if !inCodeBlock && strings.TrimSpace(line) == "" {
			blankRun++
			if blankRun > 2 {
				continue
			}
		} else {
			blankRun = 0
		}

		result = append(result, line)
	}

	return strings.Join(result, "\n")
}
