// Package dateutil parses the date specifications accepted for the
// \date{} line of a report title block.
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDateFormat indicates an invalid date format string.
var ErrInvalidDateFormat = errors.New("invalid date format")

// MaxDateFormatLength limits format string length.
const MaxDateFormatLength = 50

// DefaultDateFormat is used when "auto" is specified without a format.
const DefaultDateFormat = "YYYY-MM-DD"

// Keywords recognized by ParseSpec (case-insensitive).
const (
	KeywordAuto = "auto"
	KeywordNone = "none"
)

// tokens maps user-facing tokens to Go layout components.
// Longer tokens come first so matching is greedy.
var tokens = [...]struct{ token, layout string }{
	{"YYYY", "2006"},
	{"MMMM", "January"},
	{"MMM", "Jan"},
	{"YY", "06"},
	{"MM", "01"},
	{"DD", "02"},
	{"M", "1"},
	{"D", "2"},
}

// Presets are named shortcuts usable after "auto:".
var Presets = map[string]string{
	"iso":      "YYYY-MM-DD",
	"european": "DD/MM/YYYY",
	"us":       "MM/DD/YYYY",
	"long":     "MMMM D, YYYY",
	"report":   "D MMMM YYYY",
}

// Layout converts a token format (e.g. "DD/MM/YYYY") to a Go time layout.
// Text inside brackets is copied literally: "[Week of] D MMM".
func Layout(format string) (string, error) {
	if format == "" {
		return "", fmt.Errorf("%w: format cannot be empty", ErrInvalidDateFormat)
	}
	if len(format) > MaxDateFormatLength {
		return "", fmt.Errorf("%w: format exceeds %d characters", ErrInvalidDateFormat, MaxDateFormatLength)
	}

	var b strings.Builder
	b.Grow(len(format) + 8)

	rest := format
	for rest != "" {
		if rest[0] == '[' {
			end := strings.IndexByte(rest, ']')
			if end < 0 {
				return "", fmt.Errorf("%w: unclosed bracket at position %d", ErrInvalidDateFormat, len(format)-len(rest))
			}
			b.WriteString(rest[1:end])
			rest = rest[end+1:]
			continue
		}
		rest = consumeToken(&b, rest)
	}
	return b.String(), nil
}

func consumeToken(b *strings.Builder, s string) string {
	for _, t := range tokens {
		if strings.HasPrefix(s, t.token) {
			b.WriteString(t.layout)
			return s[len(t.token):]
		}
	}
	b.WriteByte(s[0])
	return s[1:]
}

// Mode selects how a Spec produces its text.
type Mode int

const (
	// ModeDefault leaves the date to the typesetter (no \date line).
	ModeDefault Mode = iota
	// ModeNone prints an empty date.
	ModeNone
	// ModeLiteral prints the given text.
	ModeLiteral
	// ModeAuto formats the build time.
	ModeAuto
)

// Spec is a parsed date specification.
type Spec struct {
	Mode    Mode
	Literal string
	Layout  string // Go layout, ModeAuto only
}

// ParseSpec parses a date specification:
//   - "" leaves the date unset
//   - "none" prints an empty date
//   - "auto" formats the build time as YYYY-MM-DD
//   - "auto:FORMAT" or "auto:PRESET" formats the build time
//   - anything else is printed literally
func ParseSpec(value string) (Spec, error) {
	if value == "" {
		return Spec{Mode: ModeDefault}, nil
	}

	lower := strings.ToLower(value)
	switch {
	case lower == KeywordNone:
		return Spec{Mode: ModeNone}, nil
	case lower == KeywordAuto:
		layout, err := Layout(DefaultDateFormat)
		if err != nil {
			return Spec{}, err
		}
		return Spec{Mode: ModeAuto, Layout: layout}, nil
	case strings.HasPrefix(lower, KeywordAuto+":"):
		format := value[len(KeywordAuto)+1:]
		if format == "" {
			return Spec{}, fmt.Errorf("%w: format cannot be empty after \"auto:\"", ErrInvalidDateFormat)
		}
		if preset, ok := Presets[strings.ToLower(format)]; ok {
			format = preset
		}
		layout, err := Layout(format)
		if err != nil {
			return Spec{}, err
		}
		return Spec{Mode: ModeAuto, Layout: layout}, nil
	case strings.HasPrefix(lower, KeywordAuto):
		return Spec{}, fmt.Errorf("%w: invalid auto syntax %q, use \"auto\" or \"auto:FORMAT\"", ErrInvalidDateFormat, value)
	}
	return Spec{Mode: ModeLiteral, Literal: value}, nil
}

// Text returns the date text for t. The boolean is false for ModeDefault,
// where no date line should be written.
func (s Spec) Text(t time.Time) (string, bool) {
	switch s.Mode {
	case ModeNone:
		return "", true
	case ModeLiteral:
		return s.Literal, true
	case ModeAuto:
		return t.Format(s.Layout), true
	}
	return "", false
}
