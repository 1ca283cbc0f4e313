package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: texreport <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  build       Build LaTeX reports from manifests")
	fmt.Fprintln(w, "  outline     Show the section tree of a manifest")
	fmt.Fprintln(w, "  doctor      Check for LaTeX engines")
	fmt.Fprintln(w, "  completion  Generate shell completion script")
	fmt.Fprintln(w, "  version     Show version information")
	fmt.Fprintln(w, "  help        Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'texreport help <command>' for details on a specific command.")
}

// printBuildUsage prints usage for the build command.
func printBuildUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: texreport build <manifest.yaml|dir> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Write Report.tex and Style.sty for each manifest. A directory builds every")
	fmt.Fprintln(w, ".yaml/.yml manifest in it, naming each report after its manifest.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <dir>        Output directory (default: next to each manifest)")
	fmt.Fprintln(w, "      --file-name <name>    Report file name (default: Report.tex)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel builds (0 = auto)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Document:")
	fmt.Fprintln(w, "      --author <s>          Author when the manifest has none")
	fmt.Fprintln(w, "      --date <s>            Date: \"none\", \"auto\", \"auto:FORMAT\", or literal")
	fmt.Fprintln(w, "                            Tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D")
	fmt.Fprintln(w, "                            Presets: iso, european, us, long, report")
	fmt.Fprintln(w, "                            Use [text] to escape literals: [Date]: YYYY")
	fmt.Fprintln(w, "      --strict              Reject content outside any section")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Styling:")
	fmt.Fprintln(w, "      --style <name>        Style written as Style.sty (default, minimal, pdflatex)")
	fmt.Fprintln(w, "      --style-file <path>   File copied as Style.sty")
	fmt.Fprintln(w, "      --template <name>     Preamble template set (default, compact)")
	fmt.Fprintln(w, "      --asset-path <dir>    Custom styles/ and templates/ directory")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Layout defaults:")
	fmt.Fprintln(w, "      --rows <n>            Figure grid rows")
	fmt.Fprintln(w, "      --cols <n>            Figure grid columns")
	fmt.Fprintln(w, "      --max-rows <n>        Split tables after n rows (0 = never)")
	fmt.Fprintln(w, "      --max-cols <n>        Split tables after n columns (0 = never)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show debug logs and timing")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  TEXREPORT_CONFIG, TEXREPORT_OUTPUT_DIR, TEXREPORT_STYLE,")
	fmt.Fprintln(w, "  TEXREPORT_AUTHOR, TEXREPORT_DATE, TEXREPORT_WORKERS")
	fmt.Fprintln(w, "  Precedence: flags > environment > config file > defaults")
}

// printOutlineUsage prints usage for the outline command.
func printOutlineUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: texreport outline <manifest.yaml> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Show each section with its figures, tables, text blocks and page breaks.")
	fmt.Fprintln(w, "Table files are read; nothing is written.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -f, --format <s>          Output format: text, yaml, json (default: text)")
}

// printDoctorUsage prints usage for the doctor command.
func printDoctorUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: texreport doctor [--json]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Report latexmk, lualatex, xelatex and pdflatex found on PATH.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --json                Print results as JSON")
}

// runHelp prints help for a specific command and returns the exit code.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "build":
		printBuildUsage(env.Stdout)
	case "outline":
		printOutlineUsage(env.Stdout)
	case "doctor":
		printDoctorUsage(env.Stdout)
	case "completion":
		printCompletionUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: texreport version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: texreport help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
