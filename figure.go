package texreport

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/alnah/go-texreport/internal/chunk"
	"github.com/alnah/go-texreport/internal/fileutil"
)

// FigureOption configures AddFigure and AddFigureSeries.
type FigureOption func(*figureConfig)

type figureConfig struct {
	rows, cols int
	gridSet    bool
}

// WithGrid sets the subfigure grid. Both values must be positive.
func WithGrid(rows, cols int) FigureOption {
	return func(c *figureConfig) {
		c.rows, c.cols, c.gridSet = rows, cols, true
	}
}

func newFigureConfig(opts []FigureOption) figureConfig {
	c := figureConfig{rows: 1, cols: 1}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

func validateGrid(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return fmt.Errorf("%w: grid %dx%d, rows and cols must be positive", ErrInvalidLayout, rows, cols)
	}
	return nil
}

// AddFigure adds one figure whose images fill a rows x cols grid row by row
// (1x1 unless WithGrid is given). More images than grid slots fail with a
// *LayoutError, matching ErrLayoutOverflow, and nothing is added; use
// AddFigureSeries to spread images over several figures. An empty caption
// omits \caption.
func (d *Document) AddFigure(paths []string, caption string, opts ...FigureOption) error {
	cfg := newFigureConfig(opts)
	if err := d.checkMutable(); err != nil {
		return err
	}
	if err := validateGrid(cfg.rows, cfg.cols); err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("%w: figure has no images", ErrInvalidLayout)
	}
	if chunk.CeilDiv(len(paths), cfg.cols) > cfg.rows {
		return &LayoutError{Images: len(paths), Rows: cfg.rows, Cols: cfg.cols}
	}
	if err := d.checkAttach(); err != nil {
		return err
	}

	d.appendNode(newFigure(paths, caption, cfg.rows, cfg.cols))
	d.cfg.logger.Debug("figure added", "images", len(paths), "rows", cfg.rows, "cols", cfg.cols)
	return nil
}

// AddFigureSeries spreads images over as many figures as needed, each one a
// rows x cols grid. Without WithGrid all images share a single row.
// When more than one figure results, captions get a " [k]" suffix (1-based)
// and a page break separates consecutive figures.
func (d *Document) AddFigureSeries(paths []string, caption string, opts ...FigureOption) error {
	cfg := newFigureConfig(opts)
	if !cfg.gridSet {
		cfg.cols = max(len(paths), 1)
	}
	if err := d.checkMutable(); err != nil {
		return err
	}
	if err := validateGrid(cfg.rows, cfg.cols); err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("%w: figure series has no images", ErrInvalidLayout)
	}
	if err := d.checkAttach(); err != nil {
		return err
	}

	// Rows beyond what the images can fill never change the grouping, so
	// clamping them keeps the per-figure capacity from overflowing.
	perFigure := min(cfg.rows, chunk.CeilDiv(len(paths), cfg.cols)) * cfg.cols
	groups, err := chunk.Split(len(paths), perFigure)
	if err != nil {
		return err
	}
	for k, g := range groups {
		c := caption
		if len(groups) > 1 && caption != "" {
			c = fmt.Sprintf("%s [%d]", caption, k+1)
		}
		if k > 0 {
			d.appendNode(&PageFlush{})
		}
		d.appendNode(newFigure(paths[g[0]:g[1]], c, cfg.rows, cfg.cols))
	}

	d.cfg.logger.Debug("figure series added", "images", len(paths), "figures", len(groups))
	return nil
}

func newFigure(paths []string, caption string, rows, cols int) *Figure {
	p := make([]string, len(paths))
	copy(p, paths)
	return &Figure{Paths: p, Caption: caption, Rows: rows, Cols: cols}
}

// subfigureWidth returns the \textwidth fraction of one subfigure: tenths
// rounded down, or hundredths past ten columns where tenths reach zero.
func subfigureWidth(cols int) string {
	w := math.Floor(10/float64(cols)) / 10
	if w == 0 {
		w = math.Floor(100/float64(cols)) / 100
	}
	return strconv.FormatFloat(w, 'f', -1, 64)
}

func writeFigure(b *strings.Builder, f *Figure) error {
	rows, err := chunk.FigureRows(len(f.Paths), f.Cols)
	if err != nil {
		return err
	}
	width := subfigureWidth(f.Cols)

	b.WriteString("\\begin{figure}[H]\n\\centering\n")
	for i, r := range rows {
		if i > 0 {
			b.WriteString("\n") // blank line starts a new row
		}
		for _, path := range f.Paths[r[0]:r[1]] {
			fmt.Fprintf(b, "\\begin{subfigure}{%s\\textwidth}\n", width)
			if fileutil.HasExtension(path, ".pgf") {
				fmt.Fprintf(b, "\\resizebox{\\linewidth}{!}{\\input{\"%s\"}}\n", path)
			} else {
				fmt.Fprintf(b, "\\includegraphics[width=\\linewidth]{%s}\n", path)
			}
			b.WriteString("\\end{subfigure}\n")
		}
	}
	if f.Caption != "" {
		fmt.Fprintf(b, "\\caption{%s}\n", Escape(f.Caption))
	}
	b.WriteString("\\end{figure}\n")
	return nil
}
