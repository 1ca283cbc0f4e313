// Package chunk partitions tabular grids and figure image lists into
// rectangular blocks that render on their own.
//
// Grid splits an R×C table into ceil(R/maxRows)·ceil(C/maxCols) chunks in
// row-major order. FigureRows lays a list of images into rows of a fixed
// width. Both are pure: they only compute offsets into the caller's data.
package chunk

import (
	"errors"
	"fmt"
)

// ErrInvalidLimit indicates a non-positive row or column limit.
var ErrInvalidLimit = errors.New("chunk limit must be positive")

// Chunk is a rectangular range of a grid. Ranges are half-open:
// rows [RowStart, RowEnd) and columns [ColStart, ColEnd).
// Row and Col give the chunk's 0-based position in the chunk grid.
type Chunk struct {
	Row, Col         int
	RowStart, RowEnd int
	ColStart, ColEnd int
}

// Rows returns the number of grid rows covered by the chunk.
func (c Chunk) Rows() int { return c.RowEnd - c.RowStart }

// Cols returns the number of grid columns covered by the chunk.
func (c Chunk) Cols() int { return c.ColEnd - c.ColStart }

// Count returns how many chunks Grid produces for the given shape.
// Returns 0 for an empty grid.
func Count(rows, cols, maxRows, maxCols int) int {
	if rows <= 0 || cols <= 0 || maxRows <= 0 || maxCols <= 0 {
		return 0
	}
	return CeilDiv(rows, maxRows) * CeilDiv(cols, maxCols)
}

// Grid partitions a rows×cols grid into chunks of at most maxRows×maxCols.
// Chunks are ordered row-major: chunk (i, j) precedes (i, j+1), and every
// chunk of row i precedes those of row i+1.
// An empty grid (rows or cols zero) yields no chunks and no error.
// Returns ErrInvalidLimit if maxRows or maxCols is not positive.
func Grid(rows, cols, maxRows, maxCols int) ([]Chunk, error) {
	if err := ValidateLimits(maxRows, maxCols); err != nil {
		return nil, err
	}
	if rows <= 0 || cols <= 0 {
		return nil, nil
	}

	rowChunks := CeilDiv(rows, maxRows)
	colChunks := CeilDiv(cols, maxCols)
	chunks := make([]Chunk, 0, rowChunks*colChunks)

	// Ends are computed as start plus the remaining span so huge limits
	// never overflow.
	for i, rs := 0, 0; i < rowChunks; i++ {
		re := rs + min(maxRows, rows-rs)
		for j, cs := 0, 0; j < colChunks; j++ {
			ce := cs + min(maxCols, cols-cs)
			chunks = append(chunks, Chunk{
				Row:      i,
				Col:      j,
				RowStart: rs,
				RowEnd:   re,
				ColStart: cs,
				ColEnd:   ce,
			})
			cs = ce
		}
		rs = re
	}
	return chunks, nil
}

// ValidateLimits reports ErrInvalidLimit for a non-positive limit.
func ValidateLimits(maxRows, maxCols int) error {
	if maxRows <= 0 {
		return fmt.Errorf("%w: max rows %d", ErrInvalidLimit, maxRows)
	}
	if maxCols <= 0 {
		return fmt.Errorf("%w: max cols %d", ErrInvalidLimit, maxCols)
	}
	return nil
}

// FigureRows lays n images into consecutive rows of width cols and returns
// the half-open [start, end) range of each row. The last row may be shorter.
// Returns nil when n is zero. Returns ErrInvalidLimit if cols is not positive.
func FigureRows(n, cols int) ([][2]int, error) {
	if cols <= 0 {
		return nil, fmt.Errorf("%w: cols %d", ErrInvalidLimit, cols)
	}
	return Split(n, cols)
}

// Split cuts n items into consecutive batches of at most size items and
// returns the half-open range of each batch. Returns nil when n is zero.
// Returns ErrInvalidLimit if size is not positive.
func Split(n, size int) ([][2]int, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: batch size %d", ErrInvalidLimit, size)
	}
	if n <= 0 {
		return nil, nil
	}
	batches := make([][2]int, 0, CeilDiv(n, size))
	for start := 0; start < n; {
		end := start + min(size, n-start)
		batches = append(batches, [2]int{start, end})
		start = end
	}
	return batches, nil
}

// CeilDiv returns a/b rounded up for a >= 0 and b > 0 without overflowing
// when b is close to math.MaxInt.
func CeilDiv(a, b int) int {
	q := a / b
	if a%b != 0 {
		q++
	}
	return q
}
