// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package help

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"
)

// Option describes one command-line flag for the usage text
type Option struct {
	Name        string // Flag name including dashes (e.g., "-geometry")
	Arg         string // Argument placeholder, empty for boolean flags
	Description string
}

// Options lists the flags in the order they are documented
var Options = []Option{
	{"-geometry", "", "Print the crop box width and height before the text, and normalize whitespace"},
	{"-normalize", "", "Collapse whitespace runs to single spaces in raw mode too"},
	{"-layout", "<plain|rows>", "Text order: content stream (plain) or top-to-bottom rows (default: plain)"},
	{"-validate", "<off|relaxed|strict>", "Validate the PDF structure before reading it (default: off)"},
	{"-save-page", "<dir>", "Also write the selected page as a single-page PDF into <dir>"},
	{"-wrap", "<n>", "Wrap text at n columns; -1 uses the terminal width (default: 0, no wrapping)"},
	{"-page-count", "", "Print the number of pages and exit; <page_number> is not needed"},
	{"-config", "<path>", "Path to configuration file (YAML)"},
	{"-profile", "<name>", "Profile name to use from config file"},
	{"-list-profiles", "", "List available profiles and exit"},
	{"-debug", "", "Log processing steps and timings to stderr"},
	{"-no-color", "", "Disable colored output"},
	{"-version, -v", "", "Show version information"},
	{"-help", "", "Show this help message"},
}

// System renders help content for the application
type System struct {
	out    io.Writer
	colors map[string]*color.Color
}

// NewSystem creates a help system writing to out
func NewSystem(out io.Writer, noColor bool) *System {
	colors := map[string]*color.Color{
		"title":   color.New(color.FgWhite, color.Bold),
		"header":  color.New(color.FgBlue, color.Bold),
		"item":    color.New(color.FgCyan),
		"example": color.New(color.FgMagenta),
	}
	if noColor {
		for _, c := range colors {
			c.DisableColor()
		}
	}

	return &System{out: out, colors: colors}
}

// ShowGeneralHelp displays general help information
func (h *System) ShowGeneralHelp() {
	out := h.out

	h.colors["title"].Fprintln(out, "pagetext - print the text of one PDF page")
	fmt.Fprintln(out, "=========================================")
	fmt.Fprintln(out)
	h.colors["header"].Fprintln(out, "USAGE:")
	fmt.Fprintln(out, "  pagetext [options] <pdf_path> <page_number>")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "  <page_number> is 1-based. Without options the raw page text is printed.")
	fmt.Fprintln(out)

	h.colors["header"].Fprintln(out, "OPTIONS:")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, opt := range Options {
		fmt.Fprintf(w, "  %s\t%s\t%s\n", opt.Name, opt.Arg, opt.Description)
	}
	w.Flush()

	fmt.Fprintln(out)
	h.colors["header"].Fprintln(out, "EXAMPLES:")
	h.colors["example"].Fprintln(out, "  pagetext report.pdf 3")
	h.colors["example"].Fprintln(out, "  pagetext -geometry report.pdf 1")
	h.colors["example"].Fprintln(out, "  pagetext -layout rows -wrap -1 report.pdf 2")
	h.colors["example"].Fprintln(out, "  pagetext -page-count report.pdf")
	h.colors["example"].Fprintln(out, "  pagetext -save-page ./pages report.pdf 5")
	h.colors["example"].Fprintln(out, "  pagetext -profile geometry -config pagetext.yaml report.pdf 1")

	fmt.Fprintln(out)
	h.colors["header"].Fprintln(out, "EXIT STATUS:")
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  0\tsuccess")
	fmt.Fprintln(w, "  1\tmissing file, unreadable PDF, page out of range or bad configuration")
	fmt.Fprintln(w, "  2\tinvalid command line")
	w.Flush()

	fmt.Fprintln(out)
	h.colors["header"].Fprintln(out, "CONFIGURATION:")
	fmt.Fprintln(out, "  Project config: pagetext.yaml or .pagetext.yaml (in current directory)")
	fmt.Fprintln(out, "  User config: ~/.pagetext.yaml or $XDG_CONFIG_HOME/pagetext/config.yaml")
	fmt.Fprintln(out, "  Environment: PAGETEXT_CONFIG_DIR - Directory holding config.yaml")
}

// ShowProfiles lists profile names with their descriptions
func (h *System) ShowProfiles(names []string, descriptions map[string]string) {
	if len(names) == 0 {
		fmt.Fprintln(h.out, "No profiles defined.")
		return
	}

	h.colors["header"].Fprintln(h.out, "Available profiles:")
	w := tabwriter.NewWriter(h.out, 0, 0, 2, ' ', 0)
	for _, name := range names {
		fmt.Fprintf(w, "  %s\t%s\n", h.colors["item"].Sprint(name), descriptions[name])
	}
	w.Flush()
}
