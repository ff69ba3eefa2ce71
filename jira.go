package md2wiki

import (
	"fmt"
	"strings"
)

// jiraSyntax emits Jira wiki markup (Jira Text Formatting Notation).
type jiraSyntax struct{}

func (jiraSyntax) headingPrefix(level int) string {
	return fmt.Sprintf("h%d. ", level)
}

// codeBlockOpen wraps code in the Jira code macro. Jira takes the language
// as a bare macro argument: {code:bash}.
func (jiraSyntax) codeBlockOpen(lang string) string {
	if lang == "" {
		return "{code}"
	}
	return "{code:" + lang + "}"
}

func (jiraSyntax) codeBlockClose() string { return "{code}" }

func (jiraSyntax) tocMacro() string { return "{toc}" }

func (jiraSyntax) rule() string { return "----" }

func (jiraSyntax) quoteFence() string { return "{quote}" }

func (jiraSyntax) bulletMarker() byte  { return '*' }
func (jiraSyntax) orderedMarker() byte { return '#' }

func (jiraSyntax) emphasisMarker() string      { return "_" }
func (jiraSyntax) strongMarker() string        { return "*" }
func (jiraSyntax) strikethroughMarker() string { return "-" }

func (jiraSyntax) codeSpanOpen() string  { return "{{" }
func (jiraSyntax) codeSpanClose() string { return "}}" }

func (jiraSyntax) link(text, href string) string {
	if text == "" || text == href {
		return "[" + href + "]"
	}
	return "[" + text + "|" + href + "]"
}

func (jiraSyntax) image(src, alt string) string {
	if alt == "" {
		return "!" + src + "!"
	}
	return "!" + src + "|alt=" + alt + "!"
}

func (jiraSyntax) taskMarker(checked bool) string {
	if checked {
		return "(/) "
	}
	return "( ) "
}

func (jiraSyntax) headerCellBar() string { return "||" }
func (jiraSyntax) cellBar() string       { return "|" }

// escapeText protects plain text runs from being misread as macro markup.
// Curly braces open Jira macros, so they become HTML entities.
func (jiraSyntax) escapeText(s string) string {
	return wikiEscapeText(s)
}

// escapeCodeSpan protects code span content. Braces would close the
// monospace markup early, asterisks would toggle bold, and a leading dash
// breaks rendering.
func (jiraSyntax) escapeCodeSpan(s string) string {
	return wikiEscapeCodeSpan(s)
}

// Both dialects share the Atlassian wiki escape rules; each syntax table
// still owns its entry points so divergence stays a one-line change.

func wikiEscapeText(s string) string {
	s = strings.ReplaceAll(s, "{", "&#123;")
	s = strings.ReplaceAll(s, "}", "&#125;")
	return s
}

func wikiEscapeCodeSpan(s string) string {
	s = strings.ReplaceAll(s, "{", "&#123;")
	s = strings.ReplaceAll(s, "}", "&#125;")
	s = strings.ReplaceAll(s, "*", `\*`)
	// A leading dash breaks rendering; later dashes are harmless, so only
	// the first character needs escaping.
	if strings.HasPrefix(s, "-") {
		s = `\-` + s[1:]
	}
	return s
}
