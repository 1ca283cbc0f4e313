package latex

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownConverter converts CommonMark (plus GFM tables and strikethrough)
// to LaTeX body markup.
type MarkdownConverter struct {
	md          goldmark.Markdown
	highlighter *Highlighter
}

// NewMarkdownConverter creates a MarkdownConverter that highlights fenced
// code blocks with the named chroma style (DefaultHighlightStyle if omitted).
func NewMarkdownConverter(highlightStyle ...string) *MarkdownConverter {
	style := DefaultHighlightStyle
	if len(highlightStyle) > 0 && highlightStyle[0] != "" {
		style = highlightStyle[0]
	}
	return &MarkdownConverter{
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.Table,
				extension.Strikethrough,
			),
		),
		highlighter: NewHighlighter(style),
	}
}

// ToLaTeX parses content and returns the equivalent LaTeX markup.
// Raw HTML is dropped since it has no LaTeX meaning.
func (c *MarkdownConverter) ToLaTeX(content string) (string, error) {
	src := []byte(content)
	doc := c.md.Parser().Parse(text.NewReader(src))

	r := &markdownRenderer{src: src, highlighter: c.highlighter}
	if err := r.render(doc); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMarkdownConversion, err)
	}

	out := strings.TrimRight(r.b.String(), "\n")
	if out == "" {
		return "", nil
	}
	return out + "\n", nil
}

// markdownRenderer walks a goldmark AST and writes LaTeX.
type markdownRenderer struct {
	src         []byte
	highlighter *Highlighter
	b           strings.Builder
}

func (r *markdownRenderer) renderChildren(n ast.Node) error {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if err := r.render(c); err != nil {
			return err
		}
	}
	return nil
}

// wrap renders the children of n between before and after.
func (r *markdownRenderer) wrap(n ast.Node, before, after string) error {
	r.b.WriteString(before)
	if err := r.renderChildren(n); err != nil {
		return err
	}
	r.b.WriteString(after)
	return nil
}

func (r *markdownRenderer) render(n ast.Node) error {
	switch n := n.(type) {
	case *ast.Document:
		return r.renderChildren(n)

	case *ast.Paragraph:
		return r.wrap(n, "", "\n\n")

	case *ast.TextBlock:
		return r.wrap(n, "", "\n")

	case *ast.Heading:
		cmd := `\paragraph{`
		if n.Level > 2 {
			cmd = `\subparagraph{`
		}
		return r.wrap(n, cmd, "}\n\n")

	case *ast.ThematicBreak:
		r.b.WriteString("\\noindent\\rule{\\linewidth}{0.4pt}\n\n")

	case *ast.Blockquote:
		return r.wrap(n, "\\begin{quote}\n", "\\end{quote}\n\n")

	case *ast.List:
		env := "itemize"
		if n.IsOrdered() {
			env = "enumerate"
		}
		return r.wrap(n, `\begin{`+env+"}\n", `\end{`+env+"}\n\n")

	case *ast.ListItem:
		return r.wrap(n, `\item `, "")

	case *ast.FencedCodeBlock:
		return r.code(n, string(n.Language(r.src)))

	case *ast.CodeBlock:
		return r.code(n, "")

	case *ast.HTMLBlock, *ast.RawHTML:
		return nil

	case *ast.Text:
		r.b.WriteString(Escape(string(n.Segment.Value(r.src))))
		switch {
		case n.HardLineBreak():
			r.b.WriteString("\\\\\n")
		case n.SoftLineBreak():
			r.b.WriteByte('\n')
		}

	case *ast.String:
		r.b.WriteString(Escape(string(n.Value)))

	case *ast.CodeSpan:
		r.b.WriteString(`\texttt{` + Escape(r.plainText(n)) + `}`)

	case *ast.Emphasis:
		if n.Level >= 2 {
			return r.wrap(n, `\textbf{`, `}`)
		}
		return r.wrap(n, `\emph{`, `}`)

	case *ast.Link:
		return r.wrap(n, `\href{`+escapeURL(string(n.Destination))+`}{`, `}`)

	case *ast.AutoLink:
		r.b.WriteString(`\url{` + escapeURL(string(n.URL(r.src))) + `}`)

	case *ast.Image:
		r.b.WriteString(`\includegraphics[width=\linewidth]{` + string(n.Destination) + `}`)

	case *east.Strikethrough:
		return r.wrap(n, `\sout{`, `}`)

	case *east.Table:
		return r.table(n)

	default:
		return r.renderChildren(n)
	}
	return nil
}

// code emits a highlighted Verbatim block for an indented or fenced block.
func (r *markdownRenderer) code(n ast.Node, language string) error {
	var code strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		code.Write(seg.Value(r.src))
	}
	out, err := r.highlighter.Highlight(code.String(), language)
	if err != nil {
		return err
	}
	r.b.WriteString(out)
	r.b.WriteByte('\n')
	return nil
}

// table emits a GFM table as a centred booktabs tabular.
func (r *markdownRenderer) table(t *east.Table) error {
	var colspec strings.Builder
	for _, a := range t.Alignments {
		switch a {
		case east.AlignRight:
			colspec.WriteByte('r')
		case east.AlignCenter:
			colspec.WriteByte('c')
		default:
			colspec.WriteByte('l')
		}
	}

	r.b.WriteString("\\begin{center}\n")
	r.b.WriteString(`\begin{tabular}{` + colspec.String() + "}\n")
	r.b.WriteString("\\toprule\n")
	for row := t.FirstChild(); row != nil; row = row.NextSibling() {
		for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
			if cell != row.FirstChild() {
				r.b.WriteString(" & ")
			}
			if err := r.renderChildren(cell); err != nil {
				return err
			}
		}
		r.b.WriteString(" \\\\\n")
		if _, ok := row.(*east.TableHeader); ok {
			r.b.WriteString("\\midrule\n")
		}
	}
	r.b.WriteString("\\bottomrule\n")
	r.b.WriteString("\\end{tabular}\n")
	r.b.WriteString("\\end{center}\n\n")
	return nil
}

// plainText concatenates the literal text below n.
func (r *markdownRenderer) plainText(n ast.Node) string {
	var b strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch c := c.(type) {
		case *ast.Text:
			b.Write(c.Segment.Value(r.src))
		case *ast.String:
			b.Write(c.Value)
		default:
			b.WriteString(r.plainText(c))
		}
	}
	return b.String()
}

// Braces and backslashes are percent-encoded since hyperref has no escape
// for them inside a URL argument.
var urlEscaper = strings.NewReplacer(
	`%`, `\%`,
	`#`, `\#`,
	`{`, `\%7B`,
	`}`, `\%7D`,
	`\`, `\%5C`,
)

// escapeURL escapes the characters hyperref cannot take raw in \href and \url.
func escapeURL(u string) string {
	return urlEscaper.Replace(u)
}
