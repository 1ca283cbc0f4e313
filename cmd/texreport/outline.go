package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	flag "github.com/spf13/pflag"

	texreport "github.com/alnah/go-texreport"
	"github.com/alnah/go-texreport/internal/manifest"
	"github.com/alnah/go-texreport/internal/yamlutil"
)

// runOutline prints the section tree a manifest builds, with the content
// attached to each section. Nothing is written to disk.
func runOutline(args []string, env *Environment) error {
	flags, positional, err := parseOutlineFlags(args, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if len(positional) != 1 {
		return fmt.Errorf("%w: outline takes one manifest file", ErrUsage)
	}

	m, err := manifest.Load(positional[0])
	if err != nil {
		return err
	}
	doc := texreport.New(m.Title, m.Subtitle, m.Author, m.Options()...)
	if err := m.Apply(doc, manifest.Defaults{}); err != nil {
		return err
	}
	entries := doc.Outline()

	switch flags.format {
	case "text":
		printOutline(env.Stdout, m.Title, entries)
		return nil
	case "yaml":
		data, err := yamlutil.Encode(entries)
		if err != nil {
			return err
		}
		_, err = env.Stdout.Write(data)
		return err
	case "json":
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	default:
		return fmt.Errorf("%w: unknown format %q (text, yaml, json)", ErrUsage, flags.format)
	}
}

// printOutline writes an aligned table of sections. Titles are indented by
// depth; widths are measured in terminal cells so wide runes line up.
func printOutline(w io.Writer, title string, entries []texreport.OutlineEntry) {
	fmt.Fprintln(w, title)
	if len(entries) == 0 {
		fmt.Fprintln(w, "  (no sections)")
		return
	}

	labels := make([]string, len(entries))
	width := runewidth.StringWidth("SECTION")
	for i, e := range entries {
		labels[i] = strings.Repeat("  ", e.Depth) + e.Title
		width = max(width, runewidth.StringWidth(labels[i]))
	}

	fmt.Fprintf(w, "  %-13s  %s  %4s %4s %4s %4s\n",
		"LEVEL", runewidth.FillRight("SECTION", width), "FIG", "TAB", "TEXT", "BRK")
	for i, e := range entries {
		fmt.Fprintf(w, "  %-13s  %s  %4d %4d %4d %4d\n",
			e.Level, runewidth.FillRight(labels[i], width), e.Figures, e.Tables, e.Prose, e.Breaks)
	}
}
