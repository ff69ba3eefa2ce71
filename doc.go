// Package md2wiki converts Markdown documents to Atlassian wiki markup.
//
// # Quick Start
//
// Create a service and convert markdown for a target dialect:
//
//	svc := md2wiki.New()
//	out, err := svc.Convert(ctx, md2wiki.Input{
//	    Markdown: "# Hello\n\nWorld",
//	    Dialect:  md2wiki.DialectConfluence,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(out)
//
// # Conversion Pipeline
//
// The conversion process follows these stages:
//
//  1. Markdown preprocessing (line-ending normalization, blank-line limits)
//  2. Structural parsing into a document tree (goldmark, GFM extensions),
//     with <details>/<summary> regions captured verbatim
//  3. Heading-level adjustment (signed shift, clamped to h1..h6)
//  4. Optional table-of-contents marker insertion
//  5. Dialect rendering (Jira or Confluence wiki markup), with code fence
//     languages normalized through the alias table
//
// # Dialects
//
// Jira and Confluence share most wiki punctuation but differ in how the
// code macro takes its language parameter ({code:bash} versus
// {code:language=bash}). Each dialect carries its own complete token table;
// the tree walk never assumes one dialect's markers are valid in the other.
//
// # Behavior on odd input
//
// The engine prefers resilience over strictness: unterminated code fences
// and unterminated details/summary blocks are closed at end of input,
// unknown fence languages pass through as typed, out-of-range heading
// shifts saturate, and whitespace-only input produces empty output. The
// only hard failure is input that is not valid UTF-8.
//
// Markdown syntax inside <details>/<summary> blocks is emitted as literal
// text, never converted. This is a documented limitation: both dialects
// accept the raw HTML passthrough as-is.
package md2wiki
