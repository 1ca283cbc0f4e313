package manifest

import (
	"fmt"
	"path/filepath"

	texreport "github.com/alnah/go-texreport"
	"github.com/alnah/go-texreport/internal/chunk"
	"github.com/alnah/go-texreport/internal/tabular"
)

// Defaults fill figure grids and table limits that an item leaves at zero.
// Zero defaults leave the library defaults in place.
type Defaults struct {
	Rows, Cols       int
	MaxRows, MaxCols int

	// OutputDir is where the report is compiled. Relative figure paths are
	// rewritten to resolve from it; empty leaves them as written.
	OutputDir string
}

// Apply adds every content item to doc in order. Relative table and figure
// paths resolve against the manifest directory. The first failing item stops the
// build; its index and kind are in the error.
func (m *Manifest) Apply(doc *texreport.Document, defaults Defaults) error {
	for i := range m.Content {
		it := &m.Content[i]
		kind, err := it.Kind()
		if err != nil {
			return fmt.Errorf("content[%d]: %w", i, err)
		}
		if err := m.applyItem(doc, it, kind, defaults); err != nil {
			return fmt.Errorf("content[%d] (%s): %w", i, kind, err)
		}
	}
	return nil
}

func (m *Manifest) applyItem(doc *texreport.Document, it *Item, kind string, d Defaults) error {
	switch kind {
	case KindPart:
		return doc.AddPart(*it.Part)
	case KindChapter:
		return doc.AddChapter(*it.Chapter)
	case KindSection:
		return doc.AddSection(*it.Section)
	case KindSubsection:
		return doc.AddSubsection(*it.Subsection)
	case KindSubsubsection:
		return doc.AddSubsubsection(*it.Subsubsection)
	case KindProse:
		return doc.AddProse(*it.Prose)
	case KindMarkdown:
		return doc.AddMarkdown(*it.Markdown)
	case KindFigure:
		return doc.AddFigure(m.figurePaths(it.Figure.Paths, d.OutputDir), it.Figure.Caption, figureOptions(it.Figure, d, true)...)
	case KindFigures:
		return doc.AddFigureSeries(m.figurePaths(it.Figures.Paths, d.OutputDir), it.Figures.Caption, figureOptions(it.Figures, d, false)...)
	case KindTable:
		return m.applyTable(doc, it.Table, d)
	case KindClearPage:
		return doc.ClearPage()
	default:
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidItem, kind)
	}
}

func (m *Manifest) applyTable(doc *texreport.Document, t *TableItem, d Defaults) error {
	path := t.CSV
	if !filepath.IsAbs(path) {
		path = filepath.Join(m.Dir(), path)
	}
	data, err := tabular.ReadFile(path, t.readOptions())
	if err != nil {
		return err
	}

	var opts []texreport.TableOption
	if n := pick(t.MaxRows, d.MaxRows); n != 0 {
		opts = append(opts, texreport.WithMaxRows(n))
	}
	if n := pick(t.MaxCols, d.MaxCols); n != 0 {
		opts = append(opts, texreport.WithMaxCols(n))
	}
	return doc.AddTable(data, t.Caption, opts...)
}

// figureOptions returns the grid for a figure item. The item wins over the
// defaults. When fit is set (single figures) a missing side is sized to hold
// every image, so a figure without any grid is one row; otherwise a missing
// side is 1 and no grid at all keeps the library default.
func figureOptions(f *FigureItem, d Defaults, fit bool) []texreport.FigureOption {
	rows, cols := pick(f.Rows, d.Rows), pick(f.Cols, d.Cols)
	n := max(len(f.Paths), 1)
	switch {
	case rows == 0 && cols == 0:
		if !fit {
			return nil
		}
		rows, cols = 1, n
	case rows == 0:
		rows = 1
		if fit && cols > 0 {
			rows = chunk.CeilDiv(n, cols)
		}
	case cols == 0:
		cols = 1
		if fit && rows > 0 {
			cols = chunk.CeilDiv(n, rows)
		}
	}
	return []texreport.FigureOption{texreport.WithGrid(rows, cols)}
}

func pick(v, fallback int) int {
	if v != 0 {
		return v
	}
	return fallback
}
