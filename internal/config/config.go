// Package config loads CLI defaults from a YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/alnah/go-md2wiki/internal/fileutil"
	"github.com/alnah/go-md2wiki/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
)

// Config holds default conversion settings. CLI flags override these.
type Config struct {
	Language      string `yaml:"language"`      // "jira" or "confluence" (empty = confluence)
	ModifyHeaders int    `yaml:"modifyHeaders"` // signed heading level shift
	TOC           bool   `yaml:"toc"`           // prepend the native TOC macro
	Editor        string `yaml:"editor"`        // editor command for --editor (empty = $VISUAL/$EDITOR)
}

// Validate checks enum fields so a typo in the config file fails loudly
// instead of silently falling back to a default dialect. ModifyHeaders is
// deliberately unconstrained: any delta is valid, the engine saturates the
// resulting levels to 1-6.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Language, validation.In("", "jira", "confluence").
			Error("must be jira or confluence")),
		validation.Field(&c.Editor, validation.Length(0, 200)),
	)
}

// DefaultConfig returns a neutral configuration: Confluence dialect, no
// heading shift, no TOC.
func DefaultConfig() *Config {
	return &Config{}
}

// defaultConfigName is the base name searched when no config is named.
const defaultConfigName = "md2wiki"

// LoadDefaultConfig searches the standard locations for an md2wiki
// config file. Callers treat ErrConfigNotFound as "use defaults".
func LoadDefaultConfig() (*Config, error) {
	path, err := resolveConfigPath(defaultConfigName)
	if err != nil {
		return nil, err
	}
	return LoadConfig(path)
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if isFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-md2wiki/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	// Try current directory first (both extensions)
	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	// Try user config directory (both extensions)
	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "go-md2wiki", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
