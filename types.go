package md2wiki

import (
	"fmt"
	"strings"
)

// Dialect selects the target Atlassian markup syntax.
type Dialect string

// Supported dialects.
const (
	DialectJira       Dialect = "jira"
	DialectConfluence Dialect = "confluence"
)

// ParseDialect maps a user-supplied dialect name to a Dialect.
// Matching is case-insensitive; the empty string means Confluence.
func ParseDialect(s string) (Dialect, error) {
	switch strings.ToLower(s) {
	case "", string(DialectConfluence):
		return DialectConfluence, nil
	case string(DialectJira):
		return DialectJira, nil
	}
	return "", fmt.Errorf("%w: %q (must be jira or confluence)", ErrInvalidDialect, s)
}

// Input contains conversion parameters.
type Input struct {
	Markdown     string  // Markdown content; whitespace-only yields empty output
	Dialect      Dialect // target dialect (required)
	HeadingShift int     // signed delta applied to heading levels, clamped to [1,6]
	TOC          bool    // prepend the dialect's native TOC macro
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	aliases *AliasTable
}

// WithAliasTable replaces the built-in code-language alias table.
// Panics if t is nil (programmer error, similar to time.NewTicker).
func WithAliasTable(t *AliasTable) Option {
	if t == nil {
		panic("md2wiki: WithAliasTable table must not be nil")
	}
	return func(s *Service) {
		s.cfg.aliases = t
	}
}
