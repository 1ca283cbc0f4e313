package latex

import "errors"

// Sentinel errors for LaTeX conversion.
var (
	ErrMarkdownConversion = errors.New("markdown conversion failed")
	ErrHighlight          = errors.New("code highlighting failed")
)
