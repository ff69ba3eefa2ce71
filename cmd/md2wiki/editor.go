package main

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/alnah/go-md2wiki/internal/fileutil"
)

// Editor-related errors.
var (
	ErrEmptyEditor = errors.New("editor command is empty")
	ErrEditorRun   = errors.New("editor exited with an error")
)

// defaultEditor is the fallback when neither config nor environment
// name an editor.
const defaultEditor = "vi"

// resolveEditor picks the editor command: config value first, then the
// conventional $VISUAL and $EDITOR variables, then vi.
func resolveEditor(configured string, getenv func(string) string) string {
	if configured != "" {
		return configured
	}
	if v := getenv("VISUAL"); v != "" {
		return v
	}
	if v := getenv("EDITOR"); v != "" {
		return v
	}
	return defaultEditor
}

// editorCommand builds the exec command for an editor invocation.
// The editor string may carry arguments ("code --wait"); the file path
// is appended last.
func editorCommand(editor, path string) (*exec.Cmd, error) {
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return nil, ErrEmptyEditor
	}
	args := append(parts[1:], path)
	return exec.Command(parts[0], args...), nil
}

// editInput opens a temp file pre-filled with initial content in the
// resolved editor and returns the file contents after the editor exits.
func editInput(initial, configured string, env *Environment) (string, error) {
	editor := resolveEditor(configured, env.Getenv)

	path, cleanup, err := fileutil.WriteTempFile(initial, "md")
	if err != nil {
		return "", fmt.Errorf("creating editor buffer: %w", err)
	}
	defer cleanup()

	cmd, err := editorCommand(editor, path)
	if err != nil {
		return "", err
	}

	// Interactive editors need the real terminal, not the injected
	// environment streams.
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stderr
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrEditorRun, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading editor buffer: %w", err)
	}
	return string(data), nil
}
