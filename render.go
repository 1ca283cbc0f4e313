package texreport

import (
	"fmt"
	"io"
	"strings"
	"text/template"
)

// stylePackage is the package name of the style file saved next to a report.
const stylePackage = "Style"

// templateData is passed to the preamble and title templates.
type templateData struct {
	StylePackage string
	Title        string
	Subtitle     string
	Author       string
	Date         string
	HasDate      bool
}

// Render returns the complete LaTeX source: preamble, title block, body in
// reading order and \end{document}. The date, loader and templates are
// resolved on the first call and reused, so repeated calls return identical
// text while the document is unchanged.
func (d *Document) Render() (string, error) {
	if err := d.prepare(); err != nil {
		return "", err
	}

	var b strings.Builder
	data := templateData{
		StylePackage: stylePackage,
		Title:        Escape(d.title),
		Subtitle:     Escape(d.subtitle),
		Author:       Escape(d.author),
		Date:         Escape(d.dateText),
		HasDate:      d.hasDate,
	}
	for _, name := range []string{"preamble", "title"} {
		if err := d.templates.ExecuteTemplate(&b, name, data); err != nil {
			return "", fmt.Errorf("%w: %s: %v", ErrTemplateRender, name, err)
		}
	}
	ensureNewline(&b)

	for _, n := range d.root {
		if err := writeNode(&b, n); err != nil {
			return "", err
		}
	}
	b.WriteString("\\end{document}\n")
	return b.String(), nil
}

// WriteTo writes the rendered source to w.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	src, err := d.Render()
	if err != nil {
		return 0, err
	}
	n, err := io.WriteString(w, src)
	return int64(n), err
}

// prepare resolves the date, the asset loader and the templates once.
func (d *Document) prepare() error {
	if d.prepared {
		return nil
	}

	dateText, hasDate, err := ResolveDate(d.cfg.date, d.cfg.now())
	if err != nil {
		return err
	}

	loader, err := d.assetLoader()
	if err != nil {
		return err
	}
	ts, err := loader.LoadTemplateSet(d.cfg.templateSet)
	if err != nil {
		return err
	}
	tmpl, err := parseTemplateSet(ts)
	if err != nil {
		return err
	}

	d.dateText, d.hasDate = dateText, hasDate
	d.loader = loader
	d.templates = tmpl
	d.prepared = true
	return nil
}

func (d *Document) assetLoader() (AssetLoader, error) {
	if d.loader != nil {
		return d.loader, nil
	}
	if d.cfg.assetLoader != nil {
		return d.cfg.assetLoader, nil
	}
	return NewAssetLoader(d.cfg.assetPath)
}

func parseTemplateSet(ts *TemplateSet) (*template.Template, error) {
	root := template.New(ts.Name).Delims("<<", ">>").Option("missingkey=error")
	if _, err := root.New("preamble").Parse(ts.Preamble); err != nil {
		return nil, fmt.Errorf("%w: %s preamble: %v", ErrTemplateRender, ts.Name, err)
	}
	if _, err := root.New("title").Parse(ts.Title); err != nil {
		return nil, fmt.Errorf("%w: %s title: %v", ErrTemplateRender, ts.Name, err)
	}
	return root, nil
}

// writeNode emits n and, for sections, its children.
func writeNode(b *strings.Builder, n Node) error {
	switch n := n.(type) {
	case *Section:
		fmt.Fprintf(b, "%s{%s}\n", n.Level.Command(), Escape(n.Title))
		for _, c := range n.Children {
			if err := writeNode(b, c); err != nil {
				return err
			}
		}
	case *Figure:
		return writeFigure(b, n)
	case *Table:
		return writeTable(b, n)
	case *Prose:
		b.WriteString(Escape(n.Text))
		b.WriteString("\n\n")
	case *Markdown:
		if n.Body != "" {
			b.WriteString(n.Body)
			b.WriteString("\n")
		}
	case *PageFlush:
		b.WriteString("\\clearpage\n")
	default:
		panic(fmt.Sprintf("texreport: unknown node type %T", n))
	}
	return nil
}

func ensureNewline(b *strings.Builder) {
	if s := b.String(); s != "" && !strings.HasSuffix(s, "\n") {
		b.WriteString("\n")
	}
}
