// Package texreport builds LaTeX report sources from a program's data:
// images, tables and prose organized under parts, chapters and sections.
// It writes the .tex source and a style file; compiling them is left to a
// LaTeX toolchain.
//
// # Quick Start
//
//	doc := texreport.New("Benchmark", "Nightly run", "CI")
//	_ = doc.AddChapter("Results")
//	_ = doc.AddProse("Latency improved by 12% over last week.")
//	_ = doc.AddFigure([]string{"p50.pgf", "p99.pgf"}, "Latency", texreport.WithGrid(1, 2))
//	_ = doc.AddTable(texreport.NewTableData(
//	    []string{"service", "p50_ms"},
//	    [][]any{{"api", 12.5}, {"db", 3.1}},
//	), "Per-service latency")
//	res, err := doc.Save("out", texreport.SaveOptions{})
//
// # Structure
//
// Headings open sections. Opening a heading closes every open section at the
// same or a deeper level, then nests the new one under the deepest section
// still open. Content attaches to the deepest open section. In the default
// mode content may precede the first heading; WithStrictNesting rejects it
// with ErrStructure.
//
// # Layout
//
// A figure is a single grid of subfigures (1x1 by default, see WithGrid).
// More images than slots fail with ErrLayoutOverflow; AddFigureSeries
// spreads a long list over several figures. Tables larger than WithMaxRows
// or WithMaxCols are emitted as several tables covering every cell exactly
// once, in row-major order.
//
// # Escaping
//
// Titles, captions, prose, metadata and table cells are escaped with Escape.
// Image paths and template markup are emitted unchanged.
//
// # Assets
//
// The preamble and title block come from a template set and the style file
// from a named style. Both are embedded; WithAssetPath or WithAssetLoader
// provide overrides, falling back to the embedded assets by name.
package texreport
