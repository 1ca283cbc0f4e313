// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"fmt"
	"os"
	"strings"

	"github.com/alnah/go-texreport/internal/fileutil"
)

// IsInContainer detects if running inside a Docker container or similar.
// Checks for /.dockerenv file which Docker creates automatically.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// ForMissingEngine returns hints when no LaTeX engine is found on PATH.
func ForMissingEngine() string {
	inCI := os.Getenv("CI") != "" ||
		os.Getenv("GITHUB_ACTIONS") != "" ||
		os.Getenv("GITLAB_CI") != ""

	var hints []string
	if inCI || IsInContainer() {
		hints = append(hints, "install texlive-luatex and texlive-latex-extra in the image")
	} else {
		hints = append(hints, "install TeX Live or MiKTeX")
	}
	hints = append(hints, "sources are still written; compile them elsewhere")
	return formatHints(hints)
}

// ForCompile suggests how to compile a saved report. Styles loading fontspec
// need a Unicode engine.
func ForCompile(texPath, styleContent string) string {
	engine := "-pdf"
	if strings.Contains(styleContent, "{fontspec}") {
		engine = "-lualatex"
	}
	return format(fmt.Sprintf("compile with: latexmk %s %s", engine, texPath))
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-texreport/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/go-texreport") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory errors.
func ForOutputDirectory() string {
	return format("check the directory exists and is writable, or pass -o")
}

// ForStyleNotFound returns hints for style not found errors.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", ") + "; or use --style-file")
}

// ForLayoutOverflow returns hints when a figure has more images than its grid.
func ForLayoutOverflow(images, rows, cols int) string {
	return format(fmt.Sprintf("%d images do not fit %dx%d; enlarge the grid or use a \"figures\" item to split them", images, rows, cols))
}

// ForStructure returns hints for content added before any heading in strict mode.
func ForStructure() string {
	return format("add a part, chapter or section item first, or drop strict")
}

// ForManifestItem lists the keys a manifest content item may use.
func ForManifestItem(kinds []string) string {
	return format("each content item sets exactly one of: " + strings.Join(kinds, ", "))
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
