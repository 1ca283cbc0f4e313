package main

import (
	"errors"
	"os"

	texreport "github.com/alnah/go-texreport"
	"github.com/alnah/go-texreport/internal/config"
	"github.com/alnah/go-texreport/internal/manifest"
	"github.com/alnah/go-texreport/internal/tabular"
)

// Exit codes for the texreport CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // All reports written
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, manifest or layout
	ExitIO      = 3 // File not found, permission denied, write failure
)

// ErrUsage reports invalid command-line usage.
var ErrUsage = errors.New("invalid usage")

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, texreport.ErrWriteDocument) ||
		errors.Is(err, texreport.ErrWriteStyle) ||
		errors.Is(err, manifest.ErrManifestNotFound) ||
		errors.Is(err, manifest.ErrNoManifests) ||
		errors.Is(err, ErrCreateOutputDir) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrUnsupportedShell) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, manifest.ErrManifestParse) ||
		errors.Is(err, manifest.ErrInvalidManifest) ||
		errors.Is(err, manifest.ErrInvalidItem) ||
		errors.Is(err, tabular.ErrParse) ||
		errors.Is(err, tabular.ErrNoHeader) ||
		errors.Is(err, tabular.ErrInputTooLarge) ||
		errors.Is(err, texreport.ErrInvalidLayout) ||
		errors.Is(err, texreport.ErrLayoutOverflow) ||
		errors.Is(err, texreport.ErrInvalidLevel) ||
		errors.Is(err, texreport.ErrInvalidTable) ||
		errors.Is(err, texreport.ErrInvalidDate) ||
		errors.Is(err, texreport.ErrStructure) ||
		errors.Is(err, texreport.ErrMarkdown) ||
		errors.Is(err, texreport.ErrStyleNotFound) ||
		errors.Is(err, texreport.ErrTemplateSetNotFound) ||
		errors.Is(err, texreport.ErrIncompleteTemplateSet) ||
		errors.Is(err, texreport.ErrInvalidAssetPath) ||
		errors.Is(err, texreport.ErrTemplateRender) {
		return ExitUsage
	}

	return ExitGeneral
}
