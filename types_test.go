package md2wiki

import (
	"errors"
	"testing"
)

func TestParseDialect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    Dialect
		wantErr bool
	}{
		{"jira", "jira", DialectJira, false},
		{"confluence", "confluence", DialectConfluence, false},
		{"empty defaults to confluence", "", DialectConfluence, false},
		{"case-insensitive", "JIRA", DialectJira, false},
		{"mixed case", "Confluence", DialectConfluence, false},
		{"unknown", "mediawiki", "", true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseDialect(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				if !errors.Is(err, ErrInvalidDialect) {
					t.Errorf("error should wrap ErrInvalidDialect, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDialect(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseDialect(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestWithAliasTable_NilPanics(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for nil alias table")
		}
	}()
	New(WithAliasTable(nil))
}

func TestParseError(t *testing.T) {
	t.Parallel()

	err := &ParseError{Offset: 7, Reason: "invalid UTF-8 sequence"}

	if !errors.Is(err, ErrParse) {
		t.Error("ParseError should unwrap to ErrParse")
	}
	msg := err.Error()
	if msg == "" {
		t.Fatal("empty error message")
	}
}
