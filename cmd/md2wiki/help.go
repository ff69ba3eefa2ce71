package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2wiki [flags] [input [output]]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert Markdown to Jira or Confluence wiki markup.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input     Markdown file (default: stdin)")
	fmt.Fprintln(w, "  output    Output file (default: stdout)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Conversion:")
	fmt.Fprintln(w, "  -l, --language <s>        Target markup: jira, confluence (default: confluence)")
	fmt.Fprintln(w, "  -m, --modify-headers <n>  Shift heading levels by n (result clamped to 1-6)")
	fmt.Fprintln(w, "  -t, --toc                 Prepend a table of contents macro")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input:")
	fmt.Fprintln(w, "  -e, --editor              Compose input in a text editor ($VISUAL/$EDITOR)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Configuration:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "      --version             Show version information")
}
