package texreport

import (
	"errors"
	"fmt"
)

// Sentinel errors for library operations.
var (
	// Configuration errors, reported by the call that received the value.
	ErrInvalidLayout = errors.New("invalid layout")
	ErrInvalidLevel  = errors.New("invalid section level")
	ErrInvalidTable  = errors.New("invalid table data")
	ErrInvalidDate   = errors.New("invalid date")

	// ErrLayoutOverflow reports a figure with more images than grid slots.
	ErrLayoutOverflow = errors.New("layout overflow")

	// ErrStructure reports content added outside any section in strict mode.
	ErrStructure = errors.New("content outside any section")

	// ErrDocumentSaved reports a mutation attempted after Save.
	ErrDocumentSaved = errors.New("document already saved")

	// ErrMarkdown reports Markdown prose that could not be converted.
	ErrMarkdown = errors.New("markdown conversion failed")

	// Storage errors. The underlying os error stays in the chain.
	ErrWriteDocument = errors.New("writing document failed")
	ErrWriteStyle    = errors.New("writing style file failed")

	// Asset loading errors.
	ErrStyleNotFound         = errors.New("style not found")
	ErrTemplateSetNotFound   = errors.New("template set not found")
	ErrIncompleteTemplateSet = errors.New("template set missing required template")
	ErrInvalidAssetPath      = errors.New("invalid asset path")
	ErrTemplateRender        = errors.New("template rendering failed")
)

// LayoutError reports images that do not fit a figure grid.
// It matches ErrLayoutOverflow with errors.Is.
type LayoutError struct {
	Images, Rows, Cols int
}

func (e *LayoutError) Error() string {
	return fmt.Sprintf("%v: %d images in a %dx%d grid", ErrLayoutOverflow, e.Images, e.Rows, e.Cols)
}

func (e *LayoutError) Unwrap() error { return ErrLayoutOverflow }
