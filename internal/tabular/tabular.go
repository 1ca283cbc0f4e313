// Package tabular reads delimited text files into table data for reports.
package tabular

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	texreport "github.com/alnah/go-texreport"
	"github.com/alnah/go-texreport/internal/fileutil"
)

// MaxInputSize bounds the bytes read from one file (16MB).
const MaxInputSize = 16 << 20

var (
	ErrNoHeader      = errors.New("no header row")
	ErrParse         = errors.New("malformed delimited data")
	ErrInputTooLarge = errors.New("input exceeds maximum size")
)

// Options configures Read.
type Options struct {
	// Delimiter separates fields. Zero means ','.
	Delimiter rune

	// Raw keeps every cell as a string. By default integers and decimals
	// become numbers (so their columns right-align) and empty cells nil.
	Raw bool
}

// Read parses r. The first record is the header; every other record must
// have the same number of fields.
func Read(r io.Reader, opts Options) (*texreport.TableData, error) {
	reader := csv.NewReader(io.LimitReader(r, MaxInputSize+1))
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	if opts.Delimiter != 0 {
		reader.Comma = opts.Delimiter
	}

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, wrapParse(err)
	}

	var rows [][]any
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, wrapParse(err)
		}

		row := make([]any, len(record))
		for j, field := range record {
			row[j] = cell(field, opts.Raw)
		}
		rows = append(rows, row)
	}
	if reader.InputOffset() > MaxInputSize {
		return nil, fmt.Errorf("%w: limit %d bytes", ErrInputTooLarge, MaxInputSize)
	}

	return texreport.NewTableData(header, rows), nil
}

// ReadFile opens and parses path. Files ending in .tsv are tab separated
// unless opts sets a delimiter.
func ReadFile(path string, opts Options) (*texreport.TableData, error) {
	f, err := os.Open(path) // #nosec G304 -- path from the report manifest
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	if opts.Delimiter == 0 && fileutil.HasExtension(path, ".tsv") {
		opts.Delimiter = '\t'
	}

	data, err := Read(f, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return data, nil
}

// cell converts a field to the value placed in the table. Empty fields
// become nil; integers and decimals become int64 and float64.
func cell(field string, raw bool) any {
	if raw {
		return field
	}
	s := strings.TrimSpace(field)
	if s == "" {
		return nil
	}
	// A number is kept only when it renders back to the same text, so
	// leading zeros, exponents and digits past float64 precision survive.
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		if strconv.FormatInt(i, 10) == s {
			return i
		}
		return field
	}
	if looksDecimal(s) {
		if f, err := strconv.ParseFloat(s, 64); err == nil && strconv.FormatFloat(f, 'f', -1, 64) == s {
			return f
		}
	}
	return field
}

// looksDecimal rejects the spellings ParseFloat accepts that are not plain
// numbers in a data file, such as "inf", "NaN" or hex floats.
func looksDecimal(s string) bool {
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r == '.' || r == '-' || r == '+' || r == 'e' || r == 'E':
		default:
			return false
		}
	}
	return true
}

func wrapParse(err error) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return fmt.Errorf("%w: line %d: %v", ErrParse, pe.Line, pe.Err)
	}
	return fmt.Errorf("%w: %v", ErrParse, err)
}
