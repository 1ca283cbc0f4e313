package texreport

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/alnah/go-texreport/internal/chunk"
)

// DataSource is tabular data: named columns and rows of scalar cells.
// Every row must have one cell per column.
type DataSource interface {
	Columns() []string
	Rows() [][]any
}

// TableData is an in-memory DataSource.
type TableData struct {
	columns []string
	rows    [][]any
}

// NewTableData creates a TableData. The slices are used as given.
func NewTableData(columns []string, rows [][]any) *TableData {
	return &TableData{columns: columns, rows: rows}
}

// Columns implements DataSource.
func (t *TableData) Columns() []string { return t.columns }

// Rows implements DataSource.
func (t *TableData) Rows() [][]any { return t.rows }

// TableOption configures AddTable.
type TableOption func(*tableConfig)

type tableConfig struct {
	maxRows, maxCols int
	rowsSet, colsSet bool
}

// WithMaxRows splits tables with more than n rows. n must be positive.
func WithMaxRows(n int) TableOption {
	return func(c *tableConfig) {
		c.maxRows, c.rowsSet = n, true
	}
}

// WithMaxCols splits tables with more than n columns. n must be positive.
func WithMaxCols(n int) TableOption {
	return func(c *tableConfig) {
		c.maxCols, c.colsSet = n, true
	}
}

// AddTable snapshots src and adds it as a table. Tables larger than the
// WithMaxRows/WithMaxCols limits are emitted as several tables, each
// repeating the header of its columns, in row-major order; their captions
// get a " (part i,j)" suffix. A table without rows or columns emits nothing.
func (d *Document) AddTable(src DataSource, caption string, opts ...TableOption) error {
	var cfg tableConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := d.checkMutable(); err != nil {
		return err
	}
	if cfg.rowsSet && cfg.maxRows <= 0 {
		return fmt.Errorf("%w: max rows %d must be positive", ErrInvalidLayout, cfg.maxRows)
	}
	if cfg.colsSet && cfg.maxCols <= 0 {
		return fmt.Errorf("%w: max cols %d must be positive", ErrInvalidLayout, cfg.maxCols)
	}
	if src == nil {
		return fmt.Errorf("%w: nil data source", ErrInvalidTable)
	}

	t, err := snapshotTable(src)
	if err != nil {
		return err
	}
	if err := d.checkAttach(); err != nil {
		return err
	}

	t.Caption = caption
	t.MaxRows = cfg.maxRows
	t.MaxCols = cfg.maxCols
	d.appendNode(t)

	d.cfg.logger.Debug("table added",
		"rows", len(t.Cells), "cols", len(t.Header),
		"chunks", chunk.Count(len(t.Cells), len(t.Header), limit(t.MaxRows, len(t.Cells)), limit(t.MaxCols, len(t.Header))))
	return nil
}

func snapshotTable(src DataSource) (*Table, error) {
	columns := src.Columns()
	rows := src.Rows()

	t := &Table{
		Header:  append([]string(nil), columns...),
		Cells:   make([][]string, len(rows)),
		Numeric: make([]bool, len(columns)),
	}

	seen := make([]bool, len(columns))
	for j := range t.Numeric {
		t.Numeric[j] = true
	}
	for i, row := range rows {
		if len(row) != len(columns) {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidTable, i, len(row), len(columns))
		}
		t.Cells[i] = make([]string, len(row))
		for j, v := range row {
			t.Cells[i][j] = formatCell(v)
			if v == nil {
				continue
			}
			seen[j] = true
			if !isNumeric(v) {
				t.Numeric[j] = false
			}
		}
	}
	for j := range t.Numeric {
		t.Numeric[j] = t.Numeric[j] && seen[j]
	}
	return t, nil
}

// formatCell converts a scalar cell to text. Floats use the shortest
// representation that round-trips; nil is empty.
func formatCell(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return formatFloat(x, 64)
	case float32:
		return formatFloat(float64(x), 32)
	case int:
		return strconv.Itoa(x)
	case int8, int16, int32, int64:
		return fmt.Sprintf("%d", x)
	case uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", x)
	case bool:
		return strconv.FormatBool(x)
	case time.Time:
		if x.Hour() == 0 && x.Minute() == 0 && x.Second() == 0 && x.Nanosecond() == 0 {
			return x.Format(time.DateOnly)
		}
		return x.Format(time.DateTime)
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}

func formatFloat(f float64, bits int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	return strconv.FormatFloat(f, 'f', -1, bits)
}

func isNumeric(v any) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return true
	}
	return false
}

// limit returns the chunk limit for a dimension of size n: configured, or
// n itself (at least 1) when configured is 0 (unlimited).
func limit(configured, n int) int {
	if configured > 0 {
		return configured
	}
	return max(n, 1)
}

func writeTable(b *strings.Builder, t *Table) error {
	rows, cols := len(t.Cells), len(t.Header)
	chunks, err := chunk.Grid(rows, cols, limit(t.MaxRows, rows), limit(t.MaxCols, cols))
	if err != nil {
		return err
	}

	for k, c := range chunks {
		if k > 0 {
			b.WriteString("\n")
		}
		b.WriteString("\\begin{table}[H]\n\\centering\n")

		var spec strings.Builder
		for j := c.ColStart; j < c.ColEnd; j++ {
			if t.Numeric[j] {
				spec.WriteByte('r')
			} else {
				spec.WriteByte('l')
			}
		}
		fmt.Fprintf(b, "\\begin{tabular}{%s}\n\\toprule\n", spec.String())
		writeTableRow(b, t.Header[c.ColStart:c.ColEnd])
		b.WriteString("\\midrule\n")
		for i := c.RowStart; i < c.RowEnd; i++ {
			writeTableRow(b, t.Cells[i][c.ColStart:c.ColEnd])
		}
		b.WriteString("\\bottomrule\n\\end{tabular}\n")

		if t.Caption != "" {
			caption := t.Caption
			if len(chunks) > 1 {
				caption = fmt.Sprintf("%s (part %d,%d)", caption, c.Row+1, c.Col+1)
			}
			fmt.Fprintf(b, "\\caption{%s}\n", Escape(caption))
		}
		b.WriteString("\\end{table}\n")
	}
	return nil
}

func writeTableRow(b *strings.Builder, cells []string) {
	for j, cell := range cells {
		if j > 0 {
			b.WriteString(" & ")
		}
		b.WriteString(Escape(cell))
	}
	b.WriteString(" \\\\\n")
}
