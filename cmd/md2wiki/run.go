package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	md2wiki "github.com/alnah/go-md2wiki"
	"github.com/alnah/go-md2wiki/internal/config"
	flag "github.com/spf13/pflag"
)

// I/O errors for exit-code mapping.
var (
	ErrReadInput   = errors.New("failed to read input")
	ErrWriteOutput = errors.New("failed to write output")
)

// run executes a conversion using parsed arguments and the given
// environment. It returns an error suitable for exitCodeFor.
func run(args []string, env *Environment) error {
	flags, positional, err := parseFlags(args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if flags.version {
		fmt.Fprintf(env.Stdout, "md2wiki version %s\n", Version)
		return nil
	}

	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}
	mergeFlags(flags, cfg)

	// Flag values need no re-validation here: ParseDialect rejects a bad
	// language, and any heading delta is legal (the engine clamps).
	dialect, err := md2wiki.ParseDialect(cfg.Language)
	if err != nil {
		return err
	}

	markdown, err := readInput(positional, flags, cfg, env)
	if err != nil {
		return err
	}

	if !flags.common.quiet && len(positional) > 0 {
		fmt.Fprintf(env.Stderr, "Converting %s to %s markup\n", positional[0], dialect)
	}

	svc := md2wiki.New()
	output, err := svc.Convert(context.Background(), md2wiki.Input{
		Markdown:     markdown,
		Dialect:      dialect,
		HeadingShift: cfg.ModifyHeaders,
		TOC:          cfg.TOC,
	})
	if err != nil {
		return err
	}

	return writeOutput(positional, output, env)
}

// loadConfig loads the named config file, or searches default locations
// when none is named. A missing default config is not an error.
func loadConfig(flags *convertFlags) (*config.Config, error) {
	if flags.common.config != "" {
		cfg, err := config.LoadConfig(flags.common.config)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		return cfg, nil
	}

	cfg, err := config.LoadDefaultConfig()
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return config.DefaultConfig(), nil
		}
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// mergeFlags overlays explicitly-set flags onto the loaded config.
// Changed() distinguishes "-m 0" from an absent flag.
func mergeFlags(flags *convertFlags, cfg *config.Config) {
	if flags.language != "" {
		cfg.Language = flags.language
	}
	if flags.changed("modify-headers") {
		cfg.ModifyHeaders = flags.modifyHeaders
	}
	if flags.changed("toc") {
		cfg.TOC = flags.toc
	}
}

// readInput gathers the Markdown source: from the input file when given,
// otherwise from stdin. With --editor the gathered content seeds an
// editor buffer and the edited result is used instead.
func readInput(positional []string, flags *convertFlags, cfg *config.Config, env *Environment) (string, error) {
	var initial string
	switch {
	case len(positional) > 0:
		data, err := os.ReadFile(positional[0])
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrReadInput, err)
		}
		initial = string(data)
	case !flags.editor:
		data, err := io.ReadAll(env.Stdin)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrReadInput, err)
		}
		initial = string(data)
	}

	if flags.editor {
		return editInput(initial, cfg.Editor, env)
	}
	return initial, nil
}

// writeOutput writes the converted markup to the output file when given,
// otherwise to stdout.
func writeOutput(positional []string, output string, env *Environment) error {
	if len(positional) > 1 {
		if err := os.WriteFile(positional[1], []byte(output), 0o644); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
		return nil
	}
	_, err := io.WriteString(env.Stdout, output)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}
