package texreport

import (
	"fmt"
	"strings"
)

// Level is a heading depth. Lower values are shallower.
type Level int

// Heading levels, shallow to deep.
const (
	LevelPart Level = iota
	LevelChapter
	LevelSection
	LevelSubsection
	LevelSubsubsection
)

var levelNames = [...]string{"part", "chapter", "section", "subsection", "subsubsection"}

// Valid reports whether l is one of the defined levels.
func (l Level) Valid() bool {
	return l >= LevelPart && l <= LevelSubsubsection
}

// String returns the level name, e.g. "subsection".
func (l Level) String() string {
	if !l.Valid() {
		return fmt.Sprintf("Level(%d)", int(l))
	}
	return levelNames[l]
}

// Command returns the LaTeX heading command, e.g. `\subsection`.
func (l Level) Command() string {
	return `\` + l.String()
}

// ParseLevel parses a level name (case-insensitive).
func ParseLevel(s string) (Level, error) {
	for i, name := range levelNames {
		if strings.EqualFold(s, name) {
			return Level(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidLevel, s)
}

// Levels returns every level, shallow to deep.
func Levels() []Level {
	return []Level{LevelPart, LevelChapter, LevelSection, LevelSubsection, LevelSubsubsection}
}

// MarshalText encodes the level by name.
func (l Level) MarshalText() ([]byte, error) {
	if !l.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLevel, int(l))
	}
	return []byte(l.String()), nil
}

// UnmarshalText decodes a level name.
func (l *Level) UnmarshalText(text []byte) error {
	parsed, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
