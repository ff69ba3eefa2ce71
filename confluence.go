package md2wiki

import "fmt"

// confluenceSyntax emits Confluence wiki markup. It diverges from Jira in
// the code macro, which takes the language as a named parameter:
// {code:language=bash}.
type confluenceSyntax struct{}

func (confluenceSyntax) headingPrefix(level int) string {
	return fmt.Sprintf("h%d. ", level)
}

func (confluenceSyntax) codeBlockOpen(lang string) string {
	if lang == "" {
		return "{code}"
	}
	return "{code:language=" + lang + "}"
}

func (confluenceSyntax) codeBlockClose() string { return "{code}" }

func (confluenceSyntax) tocMacro() string { return "{toc}" }

func (confluenceSyntax) rule() string { return "----" }

func (confluenceSyntax) quoteFence() string { return "{quote}" }

func (confluenceSyntax) bulletMarker() byte  { return '*' }
func (confluenceSyntax) orderedMarker() byte { return '#' }

func (confluenceSyntax) emphasisMarker() string      { return "_" }
func (confluenceSyntax) strongMarker() string        { return "*" }
func (confluenceSyntax) strikethroughMarker() string { return "-" }

func (confluenceSyntax) codeSpanOpen() string  { return "{{" }
func (confluenceSyntax) codeSpanClose() string { return "}}" }

func (confluenceSyntax) link(text, href string) string {
	if text == "" || text == href {
		return "[" + href + "]"
	}
	return "[" + text + "|" + href + "]"
}

func (confluenceSyntax) image(src, alt string) string {
	if alt == "" {
		return "!" + src + "!"
	}
	return "!" + src + "|alt=" + alt + "!"
}

func (confluenceSyntax) taskMarker(checked bool) string {
	if checked {
		return "(/) "
	}
	return "( ) "
}

func (confluenceSyntax) headerCellBar() string { return "||" }
func (confluenceSyntax) cellBar() string       { return "|" }

func (confluenceSyntax) escapeText(s string) string {
	return wikiEscapeText(s)
}

func (confluenceSyntax) escapeCodeSpan(s string) string {
	return wikiEscapeCodeSpan(s)
}
