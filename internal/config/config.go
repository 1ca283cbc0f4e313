// Package config loads the texreport CLI defaults file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-texreport/internal/dateutil"
	"github.com/alnah/go-texreport/internal/fileutil"
	"github.com/alnah/go-texreport/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// AppDir is the directory name under the user config directory.
const AppDir = "go-texreport"

// Field limits.
const (
	MaxAuthorLength   = 200
	MaxDateLength     = 60
	MaxPathLength     = 4096
	MaxStyleLength    = 100
	MaxFileNameLength = 255
	MaxGridSide       = 10 // subfigure widths are tenths of \textwidth
	MaxWorkers        = 32
)

// Config holds the CLI defaults applied to every manifest built.
type Config struct {
	Output    OutputConfig    `yaml:"output"`
	Document  DocumentConfig  `yaml:"document"`
	Style     StyleConfig     `yaml:"style"`
	Assets    AssetsConfig    `yaml:"assets"`
	Figure    FigureConfig    `yaml:"figure"`
	Table     TableConfig     `yaml:"table"`
	Structure StructureConfig `yaml:"structure"`
	Build     BuildConfig     `yaml:"build"`
}

// OutputConfig defines where reports are written.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // empty = next to the manifest
	FileName   string `yaml:"fileName"`   // empty = Report.tex
}

// DocumentConfig holds title block defaults a manifest may override.
type DocumentConfig struct {
	Author string `yaml:"author"`
	Date   string `yaml:"date"` // "", "none", "auto", "auto:FORMAT" or literal
}

// StyleConfig selects the Style.sty written next to the report.
type StyleConfig struct {
	Name     string `yaml:"name"`     // embedded or assets style name
	File     string `yaml:"file"`     // copied verbatim; excludes name
	Template string `yaml:"template"` // preamble template set
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // empty = embedded assets only
}

// FigureConfig holds the default subfigure grid for figure items.
type FigureConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// TableConfig holds default chunk limits; 0 means unlimited.
type TableConfig struct {
	MaxRows int `yaml:"maxRows"`
	MaxCols int `yaml:"maxCols"`
}

// StructureConfig controls section nesting checks.
type StructureConfig struct {
	Strict bool `yaml:"strict"`
}

// BuildConfig controls batch builds.
type BuildConfig struct {
	Workers int `yaml:"workers"` // 0 = GOMAXPROCS
}

// Validate checks lengths and ranges.
// Called by LoadConfig, and available for configs built in code.
func (c *Config) Validate() error {
	lengths := []struct {
		field string
		value string
		max   int
	}{
		{"output.defaultDir", c.Output.DefaultDir, MaxPathLength},
		{"output.fileName", c.Output.FileName, MaxFileNameLength},
		{"document.author", c.Document.Author, MaxAuthorLength},
		{"document.date", c.Document.Date, MaxDateLength},
		{"style.name", c.Style.Name, MaxStyleLength},
		{"style.file", c.Style.File, MaxPathLength},
		{"style.template", c.Style.Template, MaxStyleLength},
		{"assets.basePath", c.Assets.BasePath, MaxPathLength},
	}
	for _, l := range lengths {
		if err := validateFieldLength(l.field, l.value, l.max); err != nil {
			return err
		}
	}

	if c.Output.FileName != "" {
		if err := fileutil.ValidateFileName(c.Output.FileName); err != nil {
			return fmt.Errorf("%w: output.fileName: %v", ErrInvalidValue, err)
		}
	}
	if _, err := dateutil.ParseSpec(c.Document.Date); err != nil {
		return fmt.Errorf("%w: document.date: %v", ErrInvalidValue, err)
	}
	if c.Style.Name != "" && c.Style.File != "" {
		return fmt.Errorf("%w: style.name and style.file are mutually exclusive", ErrInvalidValue)
	}

	if err := validateRange("figure.rows", c.Figure.Rows, 0, MaxGridSide); err != nil {
		return err
	}
	if err := validateRange("figure.cols", c.Figure.Cols, 0, MaxGridSide); err != nil {
		return err
	}
	if err := validateRange("table.maxRows", c.Table.MaxRows, 0, -1); err != nil {
		return err
	}
	if err := validateRange("table.maxCols", c.Table.MaxCols, 0, -1); err != nil {
		return err
	}
	return validateRange("build.workers", c.Build.Workers, 0, MaxWorkers)
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// validateRange checks lo <= v (and v <= hi when hi >= 0).
func validateRange(fieldName string, v, lo, hi int) error {
	if v < lo || (hi >= 0 && v > hi) {
		if hi < 0 {
			return fmt.Errorf("%w: %s must be >= %d, got %d", ErrInvalidValue, fieldName, lo, v)
		}
		return fmt.Errorf("%w: %s must be between %d and %d, got %d", ErrInvalidValue, fieldName, lo, hi, v)
	}
	return nil
}

// DefaultConfig returns a configuration with every default left to the
// library: embedded style, 1x1 figures, unchunked tables.
func DefaultConfig() *Config {
	return &Config{}
}

// userConfigDir is replaced in tests.
var userConfigDir = os.UserConfigDir

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's searched in the current directory and then in
// <user config dir>/go-texreport/, trying .yaml before .yml.
// A missing file is an error (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := yamlutil.DecodeFile(configPath, &cfg); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// SearchPaths returns the files LoadConfig tries for a config name, in order.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)
	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if dir, err := userConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(dir, AppDir, name+ext))
		}
	}
	return paths
}

func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, p := range tried {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
