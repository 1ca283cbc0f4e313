package texreport

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/alnah/go-texreport/internal/fileutil"
)

// Default output file names.
const (
	DefaultFileName = "Report.tex"
	StyleFileName   = stylePackage + ".sty"
)

// SaveOptions configures Save.
type SaveOptions struct {
	// StyleFile is copied verbatim as Style.sty. When empty, the style
	// selected with WithStyle (default "default") is written instead.
	StyleFile string

	// FileName is the report file name inside the directory.
	// Defaults to Report.tex. Must not contain path separators.
	FileName string
}

// SaveResult describes the files written by Save.
type SaveResult struct {
	TexPath   string
	StylePath string
	TexBytes  int
}

// Save renders the document into dir as Report.tex (or opts.FileName) and
// writes Style.sty next to it. dir must exist. The two files are replaced
// together: a failure leaves any previous report and style as they were. Storage failures wrap ErrWriteDocument or ErrWriteStyle and
// keep the underlying error in the chain.
//
// After a successful Save the document no longer accepts changes; Render and
// Save remain available and produce identical output.
func (d *Document) Save(dir string, opts SaveOptions) (*SaveResult, error) {
	fileName := opts.FileName
	if fileName == "" {
		fileName = DefaultFileName
	}
	if err := fileutil.ValidateFileName(fileName); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWriteDocument, err)
	}
	if err := fileutil.EnsureDir(dir); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWriteDocument, err)
	}

	src, err := d.Render()
	if err != nil {
		return nil, err
	}

	// Resolve the style before writing anything so a missing style leaves
	// the directory untouched.
	var style string
	if opts.StyleFile == "" {
		style, err = d.loader.LoadStyle(d.cfg.style)
		if err != nil {
			return nil, err
		}
	} else if !fileutil.FileExists(opts.StyleFile) {
		return nil, fmt.Errorf("%w: %s", ErrStyleNotFound, opts.StyleFile)
	}

	result := &SaveResult{
		TexPath:   filepath.Join(dir, fileName),
		StylePath: filepath.Join(dir, StyleFileName),
		TexBytes:  len(src),
	}

	// Both files are fully written before either replaces anything, and
	// Commit rolls the report back if the style cannot be moved into place.
	report, err := fileutil.Stage(result.TexPath, []byte(src))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWriteDocument, err)
	}
	var styleFile *fileutil.Staged
	if opts.StyleFile == "" {
		styleFile, err = fileutil.Stage(result.StylePath, []byte(style))
	} else {
		styleFile, err = fileutil.StageCopy(opts.StyleFile, result.StylePath)
	}
	if err != nil {
		report.Discard()
		return nil, fmt.Errorf("%w: %w", ErrWriteStyle, err)
	}

	if err := fileutil.Commit(report, styleFile); err != nil {
		var ce *fileutil.CommitError
		if errors.As(err, &ce) && ce.Path == result.StylePath {
			return nil, fmt.Errorf("%w: %w", ErrWriteStyle, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrWriteDocument, err)
	}

	d.saved = true
	d.cfg.logger.Info("report saved", "path", result.TexPath, "bytes", result.TexBytes, "style", result.StylePath)
	return result, nil
}
