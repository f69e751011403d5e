package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/alnah/go-mailicons/internal/fileutil"
	"github.com/alnah/go-mailicons/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxPatternLength = 1024 // Glob pattern
	MaxPatterns      = 64   // Number of input patterns
	MaxURLLength     = 2048 // Browser limit
	MaxPathLength    = 4096 // PATH_MAX on Linux
	MaxNameLength    = 100  // Table name
	MaxSources       = 16   // Fetch source templates
	MaxWorkers       = 256  // Concurrent files
)

// Built-in deployment settings shared by the presets.
const (
	DefaultIconDir    = "assets/images/icons"
	DefaultSiteURL    = "https://zomo-emails.vercel.app"
	NewsletterPattern = "emails/newsletters/*.html"
	DownloadPattern   = "download-pages/*-template-download.html"
)

// Config holds all configuration for the mailicons commands.
type Config struct {
	Input  InputConfig  `yaml:"input"`
	Icons  IconsConfig  `yaml:"icons"`
	URLs   URLsConfig   `yaml:"urls"`
	Repair RepairConfig `yaml:"repair"`
	Fetch  FetchConfig  `yaml:"fetch"`
	Assets AssetsConfig `yaml:"assets"`
	Batch  BatchConfig  `yaml:"batch"`
}

// InputConfig defines which template files are processed.
type InputConfig struct {
	Patterns []string `yaml:"patterns"` // Glob patterns, used when no paths are given
}

// IconsConfig defines the icon rewrite.
type IconsConfig struct {
	Table    string `yaml:"table"`    // Table name or YAML path (default: "material")
	BaseURL  string `yaml:"baseURL"`  // Prefix for icon paths (empty = relative paths)
	Dialect  string `yaml:"dialect"`  // "plain" or "encoded"
	KeepFont bool   `yaml:"keepFont"` // Skip removal of the icon font directives
}

// URLsConfig defines the src prefix rewrite.
type URLsConfig struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// RepairConfig defines the attribute repair.
type RepairConfig struct {
	Prefix string `yaml:"prefix"` // src prefix identifying icon images
}

// FetchConfig defines SVG downloading.
type FetchConfig struct {
	Dest    string   `yaml:"dest"`    // Destination directory
	Sources []string `yaml:"sources"` // URL templates with {name} (empty = built-in sources)
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = use embedded tables
}

// BatchConfig defines how files are processed.
type BatchConfig struct {
	Workers int `yaml:"workers"` // 0 = one per CPU, 1 = sequential
}

// Validate checks field values and lengths.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	if len(c.Input.Patterns) > MaxPatterns {
		return fmt.Errorf("%w: input.patterns has %d entries (max %d)", ErrInvalidValue, len(c.Input.Patterns), MaxPatterns)
	}
	for i, p := range c.Input.Patterns {
		if p == "" {
			return fmt.Errorf("%w: input.patterns[%d] is empty", ErrInvalidValue, i)
		}
		if err := validateFieldLength(fmt.Sprintf("input.patterns[%d]", i), p, MaxPatternLength); err != nil {
			return err
		}
		if _, err := filepath.Match(p, ""); err != nil {
			return fmt.Errorf("%w: input.patterns[%d]: %v", ErrInvalidValue, i, err)
		}
	}

	if err := validateFieldLength("icons.table", c.Icons.Table, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("icons.baseURL", c.Icons.BaseURL, MaxURLLength); err != nil {
		return err
	}
	if c.Icons.BaseURL != "" && !fileutil.IsURL(c.Icons.BaseURL) {
		return fmt.Errorf("%w: icons.baseURL must start with http:// or https://, got %q", ErrInvalidValue, c.Icons.BaseURL)
	}
	switch strings.ToLower(c.Icons.Dialect) {
	case "", "plain", "encoded":
	default:
		return fmt.Errorf("%w: icons.dialect %q (must be plain or encoded)", ErrInvalidValue, c.Icons.Dialect)
	}

	if err := validateFieldLength("urls.from", c.URLs.From, MaxURLLength); err != nil {
		return err
	}
	if err := validateFieldLength("urls.to", c.URLs.To, MaxURLLength); err != nil {
		return err
	}
	if err := validateFieldLength("repair.prefix", c.Repair.Prefix, MaxURLLength); err != nil {
		return err
	}

	if err := validateFieldLength("fetch.dest", c.Fetch.Dest, MaxPathLength); err != nil {
		return err
	}
	if len(c.Fetch.Sources) > MaxSources {
		return fmt.Errorf("%w: fetch.sources has %d entries (max %d)", ErrInvalidValue, len(c.Fetch.Sources), MaxSources)
	}
	for i, s := range c.Fetch.Sources {
		if err := validateFieldLength(fmt.Sprintf("fetch.sources[%d]", i), s, MaxURLLength); err != nil {
			return err
		}
		if !fileutil.IsURL(s) || !strings.Contains(s, "{name}") {
			return fmt.Errorf("%w: fetch.sources[%d] must be an http(s) URL containing {name}, got %q", ErrInvalidValue, i, s)
		}
	}

	if err := validateFieldLength("assets.basePath", c.Assets.BasePath, MaxPathLength); err != nil {
		return err
	}

	if c.Batch.Workers < 0 || c.Batch.Workers > MaxWorkers {
		return fmt.Errorf("%w: batch.workers must be between 0 and %d, got %d", ErrInvalidValue, MaxWorkers, c.Batch.Workers)
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

// DefaultConfig returns the configuration used when no config file is given:
// newsletter templates, local icon paths, sequential processing.
func DefaultConfig() *Config {
	return &Config{
		Input:  InputConfig{Patterns: []string{NewsletterPattern}},
		Icons:  IconsConfig{Table: "material", Dialect: "plain"},
		URLs:   URLsConfig{From: DefaultIconDir + "/"},
		Repair: RepairConfig{Prefix: DefaultIconDir + "/"},
		Fetch:  FetchConfig{Dest: DefaultIconDir},
		Batch:  BatchConfig{Workers: 1},
	}
}

// presets are complete configurations selectable by name with -c.
var presets = map[string]func() *Config{
	"newsletters": func() *Config {
		cfg := DefaultConfig()
		cfg.URLs.To = DefaultSiteURL + "/" + DefaultIconDir + "/"
		return cfg
	},
	"download-pages": func() *Config {
		cfg := DefaultConfig()
		cfg.Input.Patterns = []string{DownloadPattern}
		cfg.Icons.BaseURL = DefaultSiteURL
		cfg.Icons.Dialect = "encoded"
		return cfg
	},
}

// Preset returns a copy of the named built-in configuration.
func Preset(name string) (*Config, bool) {
	fn, ok := presets[name]
	if !ok {
		return nil, false
	}
	return fn(), true
}

// PresetNames lists the built-in configuration names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's searched in standard locations, then among the presets.
// Fields absent from the file keep their DefaultConfig values.
// Returns error if nothing is found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		path, err := resolveConfigPath(nameOrPath)
		if err != nil {
			if cfg, ok := Preset(nameOrPath); ok {
				return cfg, nil
			}
			return nil, err
		}
		configPath = path
	}

	cfg := DefaultConfig()
	if err := yamlutil.ReadFileStrict(configPath, cfg); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		if errors.Is(err, yamlutil.ErrDecode) || errors.Is(err, yamlutil.ErrNilData) || errors.Is(err, yamlutil.ErrInputTooLarge) {
			return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-mailicons/
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

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "go-mailicons", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
