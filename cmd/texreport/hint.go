package main

import (
	"errors"

	texreport "github.com/alnah/go-texreport"
	"github.com/alnah/go-texreport/internal/hints"
	"github.com/alnah/go-texreport/internal/manifest"
)

// hintFor returns an actionable hint to print after err, or "".
func hintFor(err error) string {
	var layout *texreport.LayoutError
	var batch *batchError
	switch {
	case errors.As(err, &batch):
		return "" // each failure was printed with its own hint
	case errors.As(err, &layout):
		return hints.ForLayoutOverflow(layout.Images, layout.Rows, layout.Cols)
	case errors.Is(err, texreport.ErrStructure):
		return hints.ForStructure()
	case errors.Is(err, manifest.ErrInvalidItem):
		return hints.ForManifestItem(manifest.Kinds())
	case errors.Is(err, texreport.ErrStyleNotFound):
		return hints.ForStyleNotFound(texreport.Styles())
	case errors.Is(err, texreport.ErrWriteDocument),
		errors.Is(err, texreport.ErrWriteStyle),
		errors.Is(err, ErrCreateOutputDir):
		return hints.ForOutputDirectory()
	}
	return ""
}
