package texreport

// Node is an element of the document tree. The set of implementations is
// closed: *Section, *Figure, *Table, *Prose, *Markdown and *PageFlush.
type Node interface {
	node()
}

// Section is a heading and the content nested under it.
type Section struct {
	Level    Level
	Title    string
	Children []Node
}

// Figure is one figure environment holding a grid of subfigures.
// Paths are emitted unchanged; a .pgf path is \input, anything else is
// passed to \includegraphics.
type Figure struct {
	Paths   []string
	Caption string
	Rows    int
	Cols    int
}

// Table is a snapshot of a data source taken when it was added.
// Cells are already converted to text but not yet escaped.
type Table struct {
	Caption string
	Header  []string
	Cells   [][]string
	Numeric []bool // per column; numeric columns are right-aligned
	MaxRows int    // 0 = unlimited
	MaxCols int    // 0 = unlimited
}

// Prose is plain text, escaped on output.
type Prose struct {
	Text string
}

// Markdown is prose written in Markdown. Body holds the LaTeX produced when
// it was added.
type Markdown struct {
	Source string
	Body   string
}

// PageFlush forces a page break (\clearpage).
type PageFlush struct{}

func (*Section) node()   {}
func (*Figure) node()    {}
func (*Table) node()     {}
func (*Prose) node()     {}
func (*Markdown) node()  {}
func (*PageFlush) node() {}
