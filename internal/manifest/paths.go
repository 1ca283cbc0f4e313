package manifest

import (
	"path/filepath"
	"strings"
)

// figurePaths returns paths as \includegraphics will resolve them when the
// report is compiled in outDir. Relative paths in a manifest are relative to
// the manifest directory. Absolute paths, and every path when outDir is
// empty, are returned as written.
func (m *Manifest) figurePaths(paths []string, outDir string) []string {
	if outDir == "" {
		return paths
	}
	absOut, err := filepath.Abs(outDir)
	if err != nil {
		return paths
	}
	absDir, err := filepath.Abs(m.Dir())
	if err != nil {
		return paths
	}

	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = rewritePath(p, absDir, absOut)
	}
	return out
}

// rewritePath re-roots one relative path from dir to outDir. LaTeX expects
// forward slashes on every platform.
func rewritePath(p, dir, outDir string) string {
	if !isRelativePath(p) {
		return p
	}
	target := filepath.Join(dir, p)
	rel, err := filepath.Rel(outDir, target)
	if err != nil {
		return filepath.ToSlash(target)
	}
	return filepath.ToSlash(rel)
}

// isRelativePath reports whether p should be re-rooted.
func isRelativePath(p string) bool {
	if p == "" || filepath.IsAbs(p) {
		return false
	}
	// TeX-style absolute paths on Windows hosts, e.g. "C:/img.png".
	if len(p) > 2 && p[1] == ':' && strings.ContainsRune(`/\`, rune(p[2])) {
		return false
	}
	return true
}
