package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared with any future subcommand.
type commonFlags struct {
	config string
	quiet  bool
}

// convertFlags holds all flags for a conversion run.
type convertFlags struct {
	common        commonFlags
	language      string
	modifyHeaders int
	toc           bool
	editor        bool
	version       bool

	fs *flag.FlagSet // kept for Changed() checks during config merging
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
}

// parseFlags parses command-line flags and returns positional args.
func parseFlags(args []string) (*convertFlags, []string, error) {
	fs := flag.NewFlagSet("md2wiki", flag.ContinueOnError)
	f := &convertFlags{fs: fs}

	fs.StringVarP(&f.language, "language", "l", "", "target markup: jira, confluence")
	fs.IntVarP(&f.modifyHeaders, "modify-headers", "m", 0, "shift heading levels by n (result clamped to 1-6)")
	fs.BoolVarP(&f.toc, "toc", "t", false, "prepend a table of contents macro")
	fs.BoolVarP(&f.editor, "editor", "e", false, "compose input in a text editor")
	addCommonFlags(fs, &f.common)
	fs.BoolVar(&f.version, "version", false, "show version information")

	fs.Usage = func() { printUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}

// changed reports whether the named flag was explicitly set on the command
// line, distinguishing "not given" from "given with the zero value".
func (f *convertFlags) changed(name string) bool {
	return f.fs.Changed(name)
}
