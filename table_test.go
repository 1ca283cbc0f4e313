package texreport

// Notes:
// - Chunking arithmetic itself is tested in internal/chunk; here we check
//   what AddTable and writeTable make of it.

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"
	"time"
)

func grid(rows, cols int) *TableData {
	columns := make([]string, cols)
	for j := range columns {
		columns[j] = fmt.Sprintf("c%d", j)
	}
	data := make([][]any, rows)
	for i := range data {
		data[i] = make([]any, cols)
		for j := range data[i] {
			data[i][j] = fmt.Sprintf("r%dc%d", i, j)
		}
	}
	return NewTableData(columns, data)
}

func renderTable(t *testing.T, d *Document) string {
	t.Helper()
	tb, ok := d.Nodes()[len(d.Nodes())-1].(*Table)
	if !ok {
		t.Fatalf("last node is not a table")
	}
	var b strings.Builder
	if err := writeTable(&b, tb); err != nil {
		t.Fatal(err)
	}
	return b.String()
}

// ---------------------------------------------------------------------------
// TestAddTable_Chunks - Split counts and cover
// ---------------------------------------------------------------------------

func TestAddTable_Chunks(t *testing.T) {
	t.Parallel()

	for rows := 1; rows <= 7; rows++ {
		for cols := 1; cols <= 5; cols++ {
			for _, maxRows := range []int{1, 2, 3, 10} {
				for _, maxCols := range []int{1, 2, 4} {
					d := New("T", "", "")
					err := d.AddTable(grid(rows, cols), "cap", WithMaxRows(maxRows), WithMaxCols(maxCols))
					if err != nil {
						t.Fatal(err)
					}
					out := renderTable(t, d)

					want := ((rows + maxRows - 1) / maxRows) * ((cols + maxCols - 1) / maxCols)
					if got := strings.Count(out, `\begin{table}`); got != want {
						t.Errorf("%dx%d max %dx%d: %d tables, want %d", rows, cols, maxRows, maxCols, got, want)
					}
					for i := 0; i < rows; i++ {
						for j := 0; j < cols; j++ {
							cell := fmt.Sprintf("r%dc%d ", i, j)
							if n := strings.Count(out, cell); n != 1 {
								t.Fatalf("%dx%d max %dx%d: cell %s appears %d times", rows, cols, maxRows, maxCols, cell, n)
							}
						}
					}
				}
			}
		}
	}
}

func TestAddTable_ChunkCaptions(t *testing.T) {
	t.Parallel()

	d := New("T", "", "")
	if err := d.AddTable(grid(3, 3), "Data", WithMaxRows(2), WithMaxCols(2)); err != nil {
		t.Fatal(err)
	}
	out := renderTable(t, d)

	var got []string
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, `\caption{`) {
			got = append(got, line)
		}
	}
	want := []string{
		`\caption{Data (part 1,1)}`,
		`\caption{Data (part 1,2)}`,
		`\caption{Data (part 2,1)}`,
		`\caption{Data (part 2,2)}`,
	}
	if strings.Join(got, "\n") != strings.Join(want, "\n") {
		t.Errorf("captions = %v, want %v", got, want)
	}

	// Each chunk repeats the header of its own columns.
	if n := strings.Count(out, "c0 & c1 \\\\"); n != 2 {
		t.Errorf("header c0 & c1 appears %d times, want 2", n)
	}
	if n := strings.Count(out, "\\midrule\n"); n != 4 {
		t.Errorf("got %d midrules, want 4", n)
	}
}

func TestAddTable_SingleChunkCaption(t *testing.T) {
	t.Parallel()

	d := New("T", "", "")
	_ = d.AddTable(grid(2, 2), "Data")
	out := renderTable(t, d)
	if !strings.Contains(out, `\caption{Data}`) || strings.Contains(out, "part") {
		t.Errorf("unexpected caption:\n%s", out)
	}
}

func TestAddTable_UnboundedLimits(t *testing.T) {
	t.Parallel()

	d := New("T", "", "")
	if err := d.AddTable(grid(2, 2), "Data", WithMaxRows(math.MaxInt), WithMaxCols(math.MaxInt)); err != nil {
		t.Fatalf("AddTable() error = %v", err)
	}
	out := renderTable(t, d)
	if n := strings.Count(out, `\begin{tabular}`); n != 1 {
		t.Errorf("got %d tabulars, want 1:\n%s", n, out)
	}
	if !strings.Contains(out, `\caption{Data}`) {
		t.Errorf("missing caption:\n%s", out)
	}
}

// ---------------------------------------------------------------------------
// TestAddTable_Errors - Invalid input
// ---------------------------------------------------------------------------

func TestAddTable_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		src     DataSource
		opts    []TableOption
		wantErr error
	}{
		{"nil source", nil, nil, ErrInvalidTable},
		{"ragged row", NewTableData([]string{"a", "b"}, [][]any{{1, 2}, {3}}), nil, ErrInvalidTable},
		{"zero max rows", grid(1, 1), []TableOption{WithMaxRows(0)}, ErrInvalidLayout},
		{"negative max cols", grid(1, 1), []TableOption{WithMaxCols(-2)}, ErrInvalidLayout},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := New("T", "", "")
			if err := d.AddTable(tt.src, "x", tt.opts...); !errors.Is(err, tt.wantErr) {
				t.Errorf("AddTable() error = %v, want %v", err, tt.wantErr)
			}
			if len(d.Nodes()) != 0 {
				t.Error("failed AddTable attached a node")
			}
		})
	}
}

func TestAddTable_Empty(t *testing.T) {
	t.Parallel()

	for _, src := range []*TableData{
		NewTableData(nil, nil),
		NewTableData([]string{"a", "b"}, nil),
	} {
		d := New("T", "", "")
		if err := d.AddTable(src, "Empty"); err != nil {
			t.Fatalf("AddTable() error = %v", err)
		}
		if out := renderTable(t, d); out != "" {
			t.Errorf("empty table rendered %q", out)
		}
	}
}

func TestAddTable_Snapshot(t *testing.T) {
	t.Parallel()

	rows := [][]any{{"a"}}
	d := New("T", "", "")
	_ = d.AddTable(NewTableData([]string{"x"}, rows), "")
	rows[0][0] = "changed"
	if out := renderTable(t, d); !strings.Contains(out, "a \\\\") {
		t.Errorf("table did not keep its snapshot:\n%s", out)
	}
}

// ---------------------------------------------------------------------------
// TestWriteTable - Full output and alignment
// ---------------------------------------------------------------------------

func TestWriteTable(t *testing.T) {
	t.Parallel()

	src := NewTableData(
		[]string{"name", "score", "note"},
		[][]any{
			{"a_1", 1.5, nil},
			{"b", 10, "50%"},
		},
	)
	d := New("T", "", "")
	if err := d.AddTable(src, "Scores"); err != nil {
		t.Fatal(err)
	}

	want := `\begin{table}[H]
\centering
\begin{tabular}{lrl}
\toprule
name & score & note \\
\midrule
a\_1 & 1.5 &  \\
b & 10 & 50\% \\
\bottomrule
\end{tabular}
\caption{Scores}
\end{table}
`
	if got := renderTable(t, d); got != want {
		t.Errorf("writeTable() =\n%s\nwant\n%s", got, want)
	}
}

func TestSnapshotTable_Numeric(t *testing.T) {
	t.Parallel()

	src := NewTableData(
		[]string{"ints", "mixed", "nils", "floats"},
		[][]any{
			{1, 2, nil, float32(1)},
			{int64(3), "x", nil, nil},
		},
	)
	tb, err := snapshotTable(src)
	if err != nil {
		t.Fatal(err)
	}
	want := []bool{true, false, false, true}
	for j := range want {
		if tb.Numeric[j] != want[j] {
			t.Errorf("Numeric[%d] = %v, want %v", j, tb.Numeric[j], want[j])
		}
	}
}

// ---------------------------------------------------------------------------
// TestFormatCell - Scalar conversion
// ---------------------------------------------------------------------------

type stringer struct{}

func (stringer) String() string { return "custom" }

func TestFormatCell(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, ""},
		{"string", "x", "x"},
		{"int", 42, "42"},
		{"negative int64", int64(-7), "-7"},
		{"uint8", uint8(255), "255"},
		{"float short", 0.1, "0.1"},
		{"float whole", 2.0, "2"},
		{"float large", 1e21, "1000000000000000000000"},
		{"float32", float32(0.25), "0.25"},
		{"NaN", math.NaN(), "NaN"},
		{"inf", math.Inf(1), "inf"},
		{"neg inf", math.Inf(-1), "-inf"},
		{"bool", true, "true"},
		{"date", time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), "2024-03-05"},
		{"datetime", time.Date(2024, 3, 5, 14, 30, 0, 0, time.UTC), "2024-03-05 14:30:00"},
		{"stringer", stringer{}, "custom"},
		{"slice", []int{1, 2}, "[1 2]"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := formatCell(tt.in); got != tt.want {
				t.Errorf("formatCell(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
