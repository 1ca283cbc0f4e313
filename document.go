package texreport

import (
	"errors"
	"fmt"
	"text/template"

	"github.com/alnah/go-texreport/internal/latex"
)

// Document is a report under construction: title metadata plus a tree of
// sections and content in reading order.
//
// Headings open sections; content attaches to the deepest open section.
// Opening a heading first closes every open section at the same or a deeper
// level: a subsection that follows a chapter nests under it, while a section
// that follows a subsection closes that subsection and its parent section.
//
// A Document is not safe for concurrent use.
type Document struct {
	title    string
	subtitle string
	author   string
	cfg      documentConfig

	root []Node
	open []*Section // open sections, shallowest first

	saved bool

	markdown *latex.MarkdownConverter

	// Resolved on first render and reused so repeated renders match.
	loader    AssetLoader
	templates *template.Template
	dateText  string
	hasDate   bool
	prepared  bool
}

// New creates an empty Document. Title, subtitle and author are escaped on
// output; an empty subtitle is omitted.
func New(title, subtitle, author string, opts ...Option) *Document {
	d := &Document{
		title:    title,
		subtitle: subtitle,
		author:   author,
		cfg:      defaultDocumentConfig(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Title returns the document title.
func (d *Document) Title() string { return d.title }

// Subtitle returns the document subtitle.
func (d *Document) Subtitle() string { return d.subtitle }

// Author returns the document author.
func (d *Document) Author() string { return d.author }

// Saved reports whether Save has succeeded. A saved document rejects
// further changes.
func (d *Document) Saved() bool { return d.saved }

// AddPart opens a part.
func (d *Document) AddPart(title string) error { return d.Open(LevelPart, title) }

// AddChapter opens a chapter.
func (d *Document) AddChapter(title string) error { return d.Open(LevelChapter, title) }

// AddSection opens a section.
func (d *Document) AddSection(title string) error { return d.Open(LevelSection, title) }

// AddSubsection opens a subsection.
func (d *Document) AddSubsection(title string) error { return d.Open(LevelSubsection, title) }

// AddSubsubsection opens a subsubsection.
func (d *Document) AddSubsubsection(title string) error {
	return d.Open(LevelSubsubsection, title)
}

// Open opens a heading at level. Every open section whose level is not
// strictly shallower than level is closed first; the new section is then
// appended to the deepest remaining open section (or to the document root)
// and becomes the deepest open section.
func (d *Document) Open(level Level, title string) error {
	if !level.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidLevel, int(level))
	}
	if err := d.checkMutable(); err != nil {
		return err
	}

	for len(d.open) > 0 && d.open[len(d.open)-1].Level >= level {
		d.open = d.open[:len(d.open)-1]
	}

	s := &Section{Level: level, Title: title}
	d.appendNode(s)
	d.open = append(d.open, s)

	d.cfg.logger.Debug("section opened", "level", level.String(), "title", title, "depth", len(d.open))
	return nil
}

// AddProse adds plain text, escaped on output.
func (d *Document) AddProse(text string) error {
	if err := d.checkAttach(); err != nil {
		return err
	}
	d.appendNode(&Prose{Text: text})
	return nil
}

// AddMarkdown converts Markdown (CommonMark with GFM tables and
// strikethrough) to LaTeX and adds it. Fenced code blocks are highlighted.
func (d *Document) AddMarkdown(source string) error {
	if err := d.checkAttach(); err != nil {
		return err
	}
	if d.markdown == nil {
		d.markdown = latex.NewMarkdownConverter(d.cfg.highlightStyle)
	}

	body, err := d.markdown.ToLaTeX(source)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMarkdown, err)
	}
	d.appendNode(&Markdown{Source: source, Body: body})
	return nil
}

// ClearPage adds a page break at the current position.
func (d *Document) ClearPage() error {
	if err := d.checkAttach(); err != nil {
		return err
	}
	d.appendNode(&PageFlush{})
	return nil
}

// Nodes returns the top-level nodes in reading order. The slice is a copy;
// the nodes themselves are shared and must not be modified.
func (d *Document) Nodes() []Node {
	out := make([]Node, len(d.root))
	copy(out, d.root)
	return out
}

// SkipChildren may be returned by a Walk callback to skip a section's
// children.
var SkipChildren = errors.New("skip children")

// Walk calls fn for every node depth-first in reading order. depth is 0 for
// top-level nodes. Walk stops at the first error fn returns, other than
// SkipChildren, and returns it.
func (d *Document) Walk(fn func(node Node, depth int) error) error {
	return walkNodes(d.root, 0, fn)
}

func walkNodes(nodes []Node, depth int, fn func(Node, int) error) error {
	for _, n := range nodes {
		err := fn(n, depth)
		if errors.Is(err, SkipChildren) {
			continue
		}
		if err != nil {
			return err
		}
		if s, ok := n.(*Section); ok {
			if err := walkNodes(s.Children, depth+1, fn); err != nil {
				return err
			}
		}
	}
	return nil
}

// checkMutable fails once the document is saved.
func (d *Document) checkMutable() error {
	if d.saved {
		return ErrDocumentSaved
	}
	return nil
}

// checkAttach fails when content cannot be attached now.
func (d *Document) checkAttach() error {
	if err := d.checkMutable(); err != nil {
		return err
	}
	if d.cfg.strict && len(d.open) == 0 {
		return fmt.Errorf("%w: open a part, chapter or section first", ErrStructure)
	}
	return nil
}

// appendNode adds n to the deepest open section, or to the root.
func (d *Document) appendNode(n Node) {
	if len(d.open) == 0 {
		d.root = append(d.root, n)
		return
	}
	top := d.open[len(d.open)-1]
	top.Children = append(top.Children, n)
}
