package md2wiki

import (
	"context"
	"testing"
)

func TestNormalizeLineEndings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"crlf", "a\r\nb", "a\nb"},
		{"bare cr", "a\rb", "a\nb"},
		{"mixed", "a\r\nb\rc\nd", "a\nb\nc\nd"},
		{"already lf", "a\nb", "a\nb"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := normalizeLineEndings(tt.input); got != tt.want {
				t.Errorf("normalizeLineEndings(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCompressBlankLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "two blanks kept",
			input: "a\n\n\nb",
			want:  "a\n\n\nb",
		},
		{
			name:  "excess blanks compressed",
			input: "a\n\n\n\n\n\nb",
			want:  "a\n\n\nb",
		},
		{
			name:  "blank lines inside fences untouched",
			input: "```\na\n\n\n\n\nb\n```",
			want:  "```\na\n\n\n\n\nb\n```",
		},
		{
			name:  "compression resumes after fence",
			input: "```\nx\n```\n\n\n\n\ny",
			want:  "```\nx\n```\n\n\ny",
		},
		{
			name:  "blank lines inside details untouched",
			input: "<details>\na\n\n\n\n\nb\n</details>",
			want:  "<details>\na\n\n\n\n\nb\n</details>",
		},
		{
			name:  "compression resumes after details",
			input: "<details>\n</details>\n\n\n\n\ny",
			want:  "<details>\n</details>\n\n\ny",
		},
		{
			name:  "unterminated details protects the rest of the input",
			input: "<details>\na\n\n\n\n\nb",
			want:  "<details>\na\n\n\n\n\nb",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := compressBlankLines(tt.input); got != tt.want {
				t.Errorf("compressBlankLines(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCommonMarkPreprocessor(t *testing.T) {
	t.Parallel()

	p := &commonMarkPreprocessor{}

	t.Run("normalizes then compresses", func(t *testing.T) {
		t.Parallel()

		got := p.PreprocessMarkdown(context.Background(), "a\r\n\r\n\r\n\r\nb")
		if got != "a\n\n\nb" {
			t.Errorf("PreprocessMarkdown() = %q, want %q", got, "a\n\n\nb")
		}
	})

	t.Run("cancelled context leaves content untouched", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		input := "a\r\nb"
		if got := p.PreprocessMarkdown(ctx, input); got != input {
			t.Errorf("PreprocessMarkdown() = %q, want unchanged input", got)
		}
	})
}
