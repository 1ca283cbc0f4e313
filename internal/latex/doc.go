// Package latex holds the LaTeX emission primitives shared by the report
// builder: text escaping, Markdown-to-LaTeX conversion and syntax-highlighted
// code blocks.
//
// # Escaping
//
// Escape maps every reserved character to its safe form in a single pass.
// It is applied to user text (titles, captions, prose, table cells) right
// before emission and never to markup produced by templates or to file paths.
//
// # Markdown
//
// MarkdownConverter parses CommonMark with goldmark and walks the AST,
// emitting LaTeX for paragraphs, emphasis, code spans, links, images, lists,
// block quotes and headings. Fenced code blocks are tokenised with chroma and
// emitted as fancyvrb Verbatim environments with colour commands.
//
// The emitted markup relies on packages loaded by the default preamble:
// hyperref, xcolor, fancyvrb and graphicx, and on the \TRZbs, \TRZob and
// \TRZcb macros defined there for literal backslash and braces inside
// Verbatim blocks.
package latex
