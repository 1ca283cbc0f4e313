package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// documentFlags holds title block defaults.
type documentFlags struct {
	author string
	date   string
	strict bool
}

// assetFlags selects styles and templates.
type assetFlags struct {
	style     string // embedded or asset-path style name
	styleFile string // copied verbatim as Style.sty
	template  string // preamble template set
	assetPath string // custom asset directory
}

// layoutFlags holds default figure grids and table limits.
type layoutFlags struct {
	rows    int
	cols    int
	maxRows int
	maxCols int
}

// buildFlags holds all flags for the build command.
type buildFlags struct {
	common   commonFlags
	output   string
	fileName string
	workers  int
	document documentFlags
	assets   assetFlags
	layout   layoutFlags
}

// outlineFlags holds flags for the outline command.
type outlineFlags struct {
	format string
}

// doctorFlags holds flags for the doctor command.
type doctorFlags struct {
	json bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug logs and timing")
}

// addDocumentFlags adds title block flags to a FlagSet.
func addDocumentFlags(fs *flag.FlagSet, f *documentFlags) {
	fs.StringVar(&f.author, "author", "", "author when the manifest has none")
	fs.StringVar(&f.date, "date", "", "date: none, auto, auto:FORMAT or literal")
	fs.BoolVar(&f.strict, "strict", false, "reject content outside any section")
}

// addAssetFlags adds style and template flags to a FlagSet.
func addAssetFlags(fs *flag.FlagSet, f *assetFlags) {
	fs.StringVar(&f.style, "style", "", "style name for Style.sty")
	fs.StringVar(&f.styleFile, "style-file", "", "file copied as Style.sty")
	fs.StringVar(&f.template, "template", "", "preamble template set name")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
}

// addLayoutFlags adds figure and table defaults to a FlagSet.
func addLayoutFlags(fs *flag.FlagSet, f *layoutFlags) {
	fs.IntVar(&f.rows, "rows", 0, "default figure grid rows")
	fs.IntVar(&f.cols, "cols", 0, "default figure grid columns")
	fs.IntVar(&f.maxRows, "max-rows", 0, "split tables after n rows (0 = never)")
	fs.IntVar(&f.maxCols, "max-cols", 0, "split tables after n columns (0 = never)")
}

// newBuildFlagSet registers every build flag on a new FlagSet.
// Shared by parsing and completion generation.
func newBuildFlagSet(f *buildFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("build", flag.ContinueOnError)
	fs.StringVarP(&f.output, "output", "o", "", "output directory (default: next to each manifest)")
	fs.StringVar(&f.fileName, "file-name", "", "report file name (default: Report.tex)")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel builds (0 = auto)")

	addCommonFlags(fs, &f.common)
	addDocumentFlags(fs, &f.document)
	addAssetFlags(fs, &f.assets)
	addLayoutFlags(fs, &f.layout)
	return fs
}

// newOutlineFlagSet registers the outline flags on a new FlagSet.
func newOutlineFlagSet(f *outlineFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("outline", flag.ContinueOnError)
	fs.StringVarP(&f.format, "format", "f", "text", "output format: text, yaml, json")
	return fs
}

// newDoctorFlagSet registers the doctor flags on a new FlagSet.
func newDoctorFlagSet(f *doctorFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("doctor", flag.ContinueOnError)
	fs.BoolVar(&f.json, "json", false, "print results as JSON")
	return fs
}

// parseBuildFlags parses build command flags and returns positional args.
func parseBuildFlags(args []string, stderr io.Writer) (*buildFlags, []string, error) {
	f := &buildFlags{}
	fs := newBuildFlagSet(f)
	fs.SetOutput(stderr)
	fs.Usage = func() { printBuildUsage(stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseOutlineFlags parses outline command flags and returns positional args.
func parseOutlineFlags(args []string, stderr io.Writer) (*outlineFlags, []string, error) {
	f := &outlineFlags{}
	fs := newOutlineFlagSet(f)
	fs.SetOutput(stderr)
	fs.Usage = func() { printOutlineUsage(stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseDoctorFlags parses doctor command flags.
func parseDoctorFlags(args []string, stderr io.Writer) (*doctorFlags, error) {
	f := &doctorFlags{}
	fs := newDoctorFlagSet(f)
	fs.SetOutput(stderr)
	fs.Usage = func() { printDoctorUsage(stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return f, nil
}
