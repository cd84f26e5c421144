package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/alnah/go-clientlib/internal/fileutil"
	"github.com/alnah/go-clientlib/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidLibrary  = errors.New("invalid library")
	ErrInvalidPattern  = errors.New("invalid visibility pattern")
)

// appName is the directory under the user config dir searched by LoadConfig.
const appName = "go-clientlib"

// Field length limits.
const (
	MaxPathLength     = 1024
	MaxCategoryLength = 200
	MaxPatternLength  = 1024
	MaxLibraries      = 10000
)

// Config describes a client library catalog and the visibility of its
// content for the requests rendered with it.
type Config struct {
	Minify    bool            `yaml:"minify"`
	Content   ContentConfig   `yaml:"content"`
	Libraries []LibraryConfig `yaml:"libraries"`
}

// ContentConfig defines which library paths a request can see.
// Root takes precedence over Allow/Deny when set.
type ContentConfig struct {
	Root  string   `yaml:"root,omitempty"`  // Directory mirroring the content tree
	Allow []string `yaml:"allow,omitempty"` // Glob patterns of visible paths
	Deny  []string `yaml:"deny,omitempty"`  // Glob patterns hidden even if allowed
}

// LibraryConfig defines one client library.
type LibraryConfig struct {
	Path       string   `yaml:"path"`       // Absolute storage path, without extension
	Categories []string `yaml:"categories"` // Categories the library belongs to
	Types      []string `yaml:"types"`      // "css" and/or "js"
	AllowProxy bool     `yaml:"allowProxy"` // Serve through /etc.clientlibs
}

// DefaultConfig returns an empty catalog where nothing is visible.
func DefaultConfig() *Config {
	return &Config{
		Minify:    false,
		Content:   ContentConfig{},
		Libraries: nil,
	}
}

// Validate checks library definitions and visibility patterns.
// Called automatically by LoadConfig, but available for callers that
// build a Config in code.
func (c *Config) Validate() error {
	if len(c.Libraries) > MaxLibraries {
		return fmt.Errorf("%w: %d libraries (max %d)", ErrInvalidLibrary, len(c.Libraries), MaxLibraries)
	}

	if err := validateFieldLength("content.root", c.Content.Root, MaxPathLength); err != nil {
		return err
	}
	if err := validatePatterns("content.allow", c.Content.Allow); err != nil {
		return err
	}
	if err := validatePatterns("content.deny", c.Content.Deny); err != nil {
		return err
	}

	for i, lib := range c.Libraries {
		if err := lib.validate(fmt.Sprintf("libraries[%d]", i)); err != nil {
			return err
		}
	}

	return nil
}

func (l LibraryConfig) validate(field string) error {
	if err := validateFieldLength(field+".path", l.Path, MaxPathLength); err != nil {
		return err
	}
	if !strings.HasPrefix(l.Path, "/") {
		return fmt.Errorf("%w: %s.path: must be absolute, got %q", ErrInvalidLibrary, field, l.Path)
	}
	if strings.HasSuffix(l.Path, "/") {
		return fmt.Errorf("%w: %s.path: must not end with a slash, got %q", ErrInvalidLibrary, field, l.Path)
	}

	if len(l.Categories) == 0 {
		return fmt.Errorf("%w: %s.categories: at least one category required", ErrInvalidLibrary, field)
	}
	for j, category := range l.Categories {
		name := fmt.Sprintf("%s.categories[%d]", field, j)
		if err := validateFieldLength(name, category, MaxCategoryLength); err != nil {
			return err
		}
		if strings.TrimSpace(category) == "" || strings.Contains(category, ",") {
			return fmt.Errorf("%w: %s: invalid category %q", ErrInvalidLibrary, name, category)
		}
	}

	if len(l.Types) == 0 {
		return fmt.Errorf("%w: %s.types: at least one of css, js required", ErrInvalidLibrary, field)
	}
	for j, typ := range l.Types {
		switch strings.ToLower(typ) {
		case "css", "js":
			// valid
		default:
			return fmt.Errorf("%w: %s.types[%d]: invalid value %q (must be css or js)", ErrInvalidLibrary, field, j, typ)
		}
	}

	return nil
}

func validatePatterns(field string, patterns []string) error {
	for i, p := range patterns {
		name := fmt.Sprintf("%s[%d]", field, i)
		if err := validateFieldLength(name, p, MaxPatternLength); err != nil {
			return err
		}
		if !strings.HasPrefix(p, "/") || !doublestar.ValidatePattern(p) {
			return fmt.Errorf("%w: %s: %q", ErrInvalidPattern, name, p)
		}
	}
	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		if configPath, err = resolveConfigPath(nameOrPath); err != nil {
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

	// Relative content roots are relative to the config file.
	if cfg.Content.Root != "" && !filepath.IsAbs(cfg.Content.Root) {
		cfg.Content.Root = filepath.Join(filepath.Dir(configPath), cfg.Content.Root)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-clientlib/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, appName, name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
