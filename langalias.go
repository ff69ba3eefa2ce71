package md2wiki

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/alnah/go-md2wiki/internal/yamlutil"
)

//go:embed assets/aliases.yaml
var aliasesYAML []byte

// AliasTable normalizes free-form code fence language tags into the
// canonical tokens the Atlassian code macro highlights. Immutable after
// construction; safe for concurrent use without locking.
type AliasTable struct {
	canonical map[string]string
}

// aliasFile is the on-disk shape of the embedded alias table.
type aliasFile struct {
	Languages []aliasEntry `yaml:"languages"`
}

type aliasEntry struct {
	Token   string   `yaml:"token"`
	Aliases []string `yaml:"aliases"`
}

// NewAliasTable builds an alias table from canonical tokens and their
// aliases. Every canonical token also maps to itself, which makes Resolve
// idempotent.
func NewAliasTable(entries map[string][]string) *AliasTable {
	m := make(map[string]string, len(entries)*2)
	for token, aliases := range entries {
		m[strings.ToLower(token)] = token
		for _, alias := range aliases {
			m[strings.ToLower(alias)] = token
		}
	}
	return &AliasTable{canonical: m}
}

// Resolve maps a fence language tag to its canonical highlighter token.
// Matching is case-insensitive and exact. Unknown tags come back unchanged:
// the author's intent wins over table completeness, and the macro degrades
// gracefully on tokens it does not highlight.
func (t *AliasTable) Resolve(lang string) string {
	if canonical, ok := t.canonical[strings.ToLower(strings.TrimSpace(lang))]; ok {
		return canonical
	}
	return lang
}

// defaultAliasTable parses the embedded table exactly once.
var defaultAliasTable = sync.OnceValue(func() *AliasTable {
	t, err := parseAliasTable(aliasesYAML)
	if err != nil {
		// The embedded asset is compiled in; failing to parse it is a build
		// defect, not a runtime condition.
		panic(fmt.Sprintf("md2wiki: embedded alias table: %v", err))
	}
	return t
})

// DefaultAliasTable returns the built-in table loaded from the embedded
// asset.
func DefaultAliasTable() *AliasTable {
	return defaultAliasTable()
}

// parseAliasTable decodes the YAML alias table.
func parseAliasTable(data []byte) (*AliasTable, error) {
	var f aliasFile
	if err := yamlutil.UnmarshalStrict(data, &f); err != nil {
		return nil, err
	}
	entries := make(map[string][]string, len(f.Languages))
	for _, e := range f.Languages {
		if e.Token == "" {
			return nil, fmt.Errorf("alias table entry with empty token")
		}
		entries[e.Token] = e.Aliases
	}
	return NewAliasTable(entries), nil
}
