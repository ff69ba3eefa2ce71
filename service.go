package md2wiki

import (
	"context"
	"fmt"
)

// Service orchestrates the markdown-to-wiki-markup pipeline.
type Service struct {
	cfg          serviceConfig
	preprocessor markdownPreprocessor
	parser       structuralParser
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithAliasTable).
func New(opts ...Option) *Service {
	s := &Service{
		cfg:          serviceConfig{aliases: DefaultAliasTable()},
		preprocessor: &commonMarkPreprocessor{},
		parser:       newGoldmarkParser(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Convert runs the full pipeline and returns the rendered markup.
// The context is used for cancellation.
//
// The stages run strictly in sequence: preprocess, parse, shift heading
// levels, insert the TOC marker, render. Whitespace-only input is valid and
// yields empty output.
func (s *Service) Convert(ctx context.Context, input Input) (string, error) {
	if _, err := syntaxFor(input.Dialect); err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidDialect, input.Dialect)
	}

	// Preprocess markdown
	mdContent := s.preprocessor.PreprocessMarkdown(ctx, input.Markdown)
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	// Parse into the document tree
	doc, err := s.parser.Parse(ctx, mdContent)
	if err != nil {
		return "", fmt.Errorf("parsing markdown: %w", err)
	}

	// Transformation passes, fixed order: levels first, then the TOC marker,
	// so the marker never takes part in the shift.
	ShiftHeadings(doc, input.HeadingShift)
	if input.TOC {
		InsertTOC(doc)
	}

	// Render
	output, err := render(doc, input.Dialect, s.cfg.aliases)
	if err != nil {
		return "", fmt.Errorf("rendering %s markup: %w", input.Dialect, err)
	}

	return output, nil
}
