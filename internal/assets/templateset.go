package assets

// Template file names inside a template set directory.
const (
	PreambleFile = "preamble.tex"
	TitleFile    = "title.tex"
)

// TemplateSet holds the templates that open a report: the preamble and the
// title block. Both are text/template sources using << >> delimiters.
type TemplateSet struct {
	Name     string
	Preamble string
	Title    string
}

// DefaultTemplateSetName is the name of the built-in template set.
const DefaultTemplateSetName = "default"

// DefaultStyleName is the name of the built-in style.
const DefaultStyleName = "default"

// StyleExt is the extension of style files.
const StyleExt = ".sty"
