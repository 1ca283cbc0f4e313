package latex

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// DefaultHighlightStyle is the chroma style used for code blocks.
const DefaultHighlightStyle = "github"

// Highlighter renders source code as a colourised fancyvrb Verbatim block.
type Highlighter struct {
	style *chroma.Style
}

// NewHighlighter creates a Highlighter using the named chroma style.
// Unknown names fall back to chroma's default style.
func NewHighlighter(styleName string) *Highlighter {
	return &Highlighter{style: styles.Get(styleName)}
}

// Highlight tokenises code with the lexer registered for language and returns
// a Verbatim environment. An empty or unknown language uses the plain-text
// fallback lexer, so the block is still emitted verbatim.
func (h *Highlighter) Highlight(code, language string) (string, error) {
	lexer := lexers.Get(language)
	if language == "" || lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	it, err := lexer.Tokenise(nil, code)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrHighlight, err)
	}

	var b strings.Builder
	b.WriteString(`\begin{Verbatim}[commandchars=\\\{\}]`)
	b.WriteByte('\n')
	for _, tok := range it.Tokens() {
		h.writeToken(&b, tok)
	}
	if !strings.HasSuffix(b.String(), "\n") {
		b.WriteByte('\n')
	}
	b.WriteString(`\end{Verbatim}`)
	b.WriteByte('\n')
	return b.String(), nil
}

// writeToken writes one token. fancyvrb reads Verbatim content line by line,
// so formatting commands are closed before every newline.
func (h *Highlighter) writeToken(b *strings.Builder, tok chroma.Token) {
	entry := h.style.Get(tok.Type)
	lines := strings.Split(tok.Value, "\n")
	for i, line := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		if line == "" {
			continue
		}
		b.WriteString(wrapStyled(EscapeVerbatim(line), entry))
	}
}

// wrapStyled applies colour, bold and italic commands from a style entry.
func wrapStyled(text string, entry chroma.StyleEntry) string {
	if strings.TrimSpace(text) == "" {
		return text
	}
	if entry.Bold == chroma.Yes {
		text = `\textbf{` + text + `}`
	}
	if entry.Italic == chroma.Yes {
		text = `\textit{` + text + `}`
	}
	if entry.Colour.IsSet() {
		hex := strings.ToUpper(strings.TrimPrefix(entry.Colour.String(), "#"))
		text = `\textcolor[HTML]{` + hex + `}{` + text + `}`
	}
	return text
}
