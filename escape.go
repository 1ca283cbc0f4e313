package texreport

import "github.com/alnah/go-texreport/internal/latex"

// Escape makes text safe to place in a LaTeX document body. Each reserved
// character (\ & % $ # _ { } ~ ^) is replaced by its escaped form; other
// characters pass through. Escape is not idempotent: escaping twice escapes
// the backslashes added by the first pass.
func Escape(text string) string {
	return latex.Escape(text)
}
