package main

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/alnah/go-texreport/internal/config"
)

// envPrefix starts every recognized environment variable.
const envPrefix = "TEXREPORT_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // TEXREPORT_CONFIG: config file name or path
	OutputDir  string // TEXREPORT_OUTPUT_DIR: default output directory
	Style      string // TEXREPORT_STYLE: style name
	Author     string // TEXREPORT_AUTHOR: default author
	Date       string // TEXREPORT_DATE: default date spec
	Workers    int    // TEXREPORT_WORKERS: parallel builds
}

// knownEnvVars lists valid TEXREPORT_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"TEXREPORT_CONFIG":     true,
	"TEXREPORT_OUTPUT_DIR": true,
	"TEXREPORT_STYLE":      true,
	"TEXREPORT_AUTHOR":     true,
	"TEXREPORT_DATE":       true,
	"TEXREPORT_WORKERS":    true,
	"TEXREPORT_CONTAINER":  true, // read by doctor
}

// loadEnvConfig reads the recognized variables through getenv.
// A TEXREPORT_WORKERS value that is not a positive integer is ignored.
func loadEnvConfig(getenv func(string) string) *envConfig {
	cfg := &envConfig{
		ConfigPath: getenv("TEXREPORT_CONFIG"),
		OutputDir:  getenv("TEXREPORT_OUTPUT_DIR"),
		Style:      getenv("TEXREPORT_STYLE"),
		Author:     getenv("TEXREPORT_AUTHOR"),
		Date:       getenv("TEXREPORT_DATE"),
	}
	if workers := getenv("TEXREPORT_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}
	return cfg
}

// warnUnknownEnvVars logs a warning for each unrecognized TEXREPORT_*
// variable, e.g. TEXREPORT_AUTHER.
func warnUnknownEnvVars(logger *slog.Logger, environ []string) {
	for _, kv := range environ {
		name, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(name, envPrefix) && !knownEnvVars[name] {
			logger.Warn("unknown environment variable (typo?)", "name", name)
		}
	}
}

// applyEnvConfig copies environment values into cfg where the config file
// left a field empty. Flags are merged afterwards, which gives
// flags > env > config file > defaults.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.OutputDir != "" && cfg.Output.DefaultDir == "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
	if env.Style != "" && cfg.Style.Name == "" && cfg.Style.File == "" {
		cfg.Style.Name = env.Style
	}
	if env.Author != "" && cfg.Document.Author == "" {
		cfg.Document.Author = env.Author
	}
	if env.Date != "" && cfg.Document.Date == "" {
		cfg.Document.Date = env.Date
	}
	if env.Workers > 0 && cfg.Build.Workers == 0 {
		cfg.Build.Workers = env.Workers
	}
}
