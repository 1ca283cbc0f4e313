// Package manifest describes a report in YAML and builds it into a
// texreport.Document.
//
// A manifest carries the title block and an ordered content list. Each
// content item sets exactly one kind key:
//
//	title: Quarterly Results
//	author: Data Team
//	date: auto
//	content:
//	  - chapter: Overview
//	  - prose: Revenue grew 12% over the quarter.
//	  - figure: {paths: [revenue.png, costs.png], caption: Trend, cols: 2}
//	  - table: {csv: data/sales.csv, caption: Sales, maxRows: 30}
//	  - clearpage: true
package manifest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	texreport "github.com/alnah/go-texreport"
	"github.com/alnah/go-texreport/internal/dateutil"
	"github.com/alnah/go-texreport/internal/fileutil"
	"github.com/alnah/go-texreport/internal/tabular"
	"github.com/alnah/go-texreport/internal/yamlutil"
)

// Sentinel errors for manifest operations.
var (
	ErrManifestNotFound = errors.New("manifest not found")
	ErrManifestParse    = errors.New("failed to parse manifest")
	ErrInvalidManifest  = errors.New("invalid manifest")
	ErrInvalidItem      = errors.New("invalid content item")
	ErrNoManifests      = errors.New("no manifests found")
)

// Field limits.
const (
	MaxTitleLength  = 500
	MaxAuthorLength = 200
	MaxDateLength   = 60
	MaxStyleLength  = 100
)

// Item kinds, in the order they are documented.
const (
	KindPart          = "part"
	KindChapter       = "chapter"
	KindSection       = "section"
	KindSubsection    = "subsection"
	KindSubsubsection = "subsubsection"
	KindProse         = "prose"
	KindMarkdown      = "markdown"
	KindFigure        = "figure"
	KindFigures       = "figures"
	KindTable         = "table"
	KindClearPage     = "clearpage"
)

// Kinds lists every content item kind.
func Kinds() []string {
	return []string{
		KindPart, KindChapter, KindSection, KindSubsection, KindSubsubsection,
		KindProse, KindMarkdown, KindFigure, KindFigures, KindTable, KindClearPage,
	}
}

// Manifest is one report description.
type Manifest struct {
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
	Author   string `yaml:"author"`
	Date     string `yaml:"date"`
	Strict   *bool  `yaml:"strict"`   // nil = CLI default
	Style    string `yaml:"style"`    // style name; overrides the config
	Template string `yaml:"template"` // template set name
	Content  []Item `yaml:"content"`

	// Path is the file the manifest was loaded from, if any.
	Path string `yaml:"-"`
}

// Item is one content entry. Exactly one field is set.
type Item struct {
	Part          *string     `yaml:"part"`
	Chapter       *string     `yaml:"chapter"`
	Section       *string     `yaml:"section"`
	Subsection    *string     `yaml:"subsection"`
	Subsubsection *string     `yaml:"subsubsection"`
	Prose         *string     `yaml:"prose"`
	Markdown      *string     `yaml:"markdown"`
	Figure        *FigureItem `yaml:"figure"`
	Figures       *FigureItem `yaml:"figures"`
	Table         *TableItem  `yaml:"table"`
	ClearPage     bool        `yaml:"clearpage"`
}

// FigureItem is a figure, or a series of figures for the "figures" kind.
// Zero rows or cols take the build defaults. A single figure with no grid
// anywhere puts all its images in one row.
type FigureItem struct {
	Paths   []string `yaml:"paths"`
	Caption string   `yaml:"caption"`
	Rows    int      `yaml:"rows"`
	Cols    int      `yaml:"cols"`
}

// TableItem is a table read from a delimited file. A relative CSV path is
// resolved against the manifest directory. Zero limits take the build
// defaults.
type TableItem struct {
	CSV       string `yaml:"csv"`
	Caption   string `yaml:"caption"`
	MaxRows   int    `yaml:"maxRows"`
	MaxCols   int    `yaml:"maxCols"`
	Delimiter string `yaml:"delimiter"` // single character; default "," (tab for .tsv)
	Raw       bool   `yaml:"raw"`       // keep every cell as text
}

// Kind returns the item's kind, or ErrInvalidItem unless exactly one kind
// key is set.
func (it *Item) Kind() (string, error) {
	set := make([]string, 0, 1)
	add := func(ok bool, kind string) {
		if ok {
			set = append(set, kind)
		}
	}
	add(it.Part != nil, KindPart)
	add(it.Chapter != nil, KindChapter)
	add(it.Section != nil, KindSection)
	add(it.Subsection != nil, KindSubsection)
	add(it.Subsubsection != nil, KindSubsubsection)
	add(it.Prose != nil, KindProse)
	add(it.Markdown != nil, KindMarkdown)
	add(it.Figure != nil, KindFigure)
	add(it.Figures != nil, KindFigures)
	add(it.Table != nil, KindTable)
	add(it.ClearPage, KindClearPage)

	switch len(set) {
	case 1:
		return set[0], nil
	case 0:
		return "", fmt.Errorf("%w: no kind set", ErrInvalidItem)
	default:
		return "", fmt.Errorf("%w: several kinds set (%s)", ErrInvalidItem, strings.Join(set, ", "))
	}
}

// Load reads and validates a manifest file.
func Load(path string) (*Manifest, error) {
	var m Manifest
	if err := yamlutil.DecodeFile(path, &m); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrManifestNotFound, path)
		}
		return nil, fmt.Errorf("%w: %w", ErrManifestParse, err)
	}
	m.Path = path

	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &m, nil
}

// Validate checks the title block and that every item has one kind.
func (m *Manifest) Validate() error {
	if strings.TrimSpace(m.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidManifest)
	}
	lengths := []struct {
		field string
		value string
		max   int
	}{
		{"title", m.Title, MaxTitleLength},
		{"subtitle", m.Subtitle, MaxTitleLength},
		{"author", m.Author, MaxAuthorLength},
		{"date", m.Date, MaxDateLength},
		{"style", m.Style, MaxStyleLength},
		{"template", m.Template, MaxStyleLength},
	}
	for _, l := range lengths {
		if len(l.value) > l.max {
			return fmt.Errorf("%w: %s (%d chars, max %d)", ErrInvalidManifest, l.field, len(l.value), l.max)
		}
	}
	if _, err := dateutil.ParseSpec(m.Date); err != nil {
		return fmt.Errorf("%w: date: %v", ErrInvalidManifest, err)
	}

	for i := range m.Content {
		kind, err := m.Content[i].Kind()
		if err != nil {
			return fmt.Errorf("content[%d]: %w", i, err)
		}
		if kind == KindTable {
			if err := m.Content[i].Table.validate(); err != nil {
				return fmt.Errorf("content[%d]: %w", i, err)
			}
		}
	}
	return nil
}

func (t *TableItem) validate() error {
	if t.CSV == "" {
		return fmt.Errorf("%w: table needs a csv path", ErrInvalidItem)
	}
	if len([]rune(t.Delimiter)) > 1 {
		return fmt.Errorf("%w: delimiter %q must be one character", ErrInvalidItem, t.Delimiter)
	}
	return nil
}

// Dir returns the directory relative paths in the manifest resolve against.
func (m *Manifest) Dir() string {
	if m.Path == "" {
		return "."
	}
	return filepath.Dir(m.Path)
}

// Options returns the document options the manifest sets. They are meant to
// follow any defaults so that the manifest wins.
func (m *Manifest) Options() []texreport.Option {
	var opts []texreport.Option
	if m.Date != "" {
		opts = append(opts, texreport.WithDate(m.Date))
	}
	if m.Style != "" {
		opts = append(opts, texreport.WithStyle(m.Style))
	}
	if m.Template != "" {
		opts = append(opts, texreport.WithTemplateSet(m.Template))
	}
	if m.Strict != nil && *m.Strict {
		opts = append(opts, texreport.WithStrictNesting())
	}
	return opts
}

// Discover returns the manifest files (.yaml or .yml) directly inside dir,
// sorted by name.
func Discover(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		if fileutil.HasExtension(e.Name(), ".yaml") || fileutil.HasExtension(e.Name(), ".yml") {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoManifests, dir)
	}
	slices.Sort(files)
	return files, nil
}

// readOptions converts a table item to tabular read options.
func (t *TableItem) readOptions() tabular.Options {
	opts := tabular.Options{Raw: t.Raw}
	if t.Delimiter != "" {
		opts.Delimiter = []rune(t.Delimiter)[0]
	}
	return opts
}
