// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/fatih/color"
	"golang.org/x/term"

	"pagetext/internal/config"
	"pagetext/internal/extract"
	"pagetext/internal/help"
	"pagetext/internal/observability"
	"pagetext/internal/pdfdoc"
	"pagetext/internal/version"
)

const usageLine = "usage: pagetext [options] <pdf_path> <page_number>"

// configFlags holds command line flag values
type configFlags struct {
	geometry   bool
	normalize  bool
	layout     string
	validation string
	wrap       int
	debug      bool
	noColor    bool
}

// finalConfiguration holds resolved configuration values
type finalConfiguration struct {
	geometry   bool
	normalize  bool
	layout     string
	validation string
	wrap       int
	debug      bool
	noColor    bool
}

// loadConfiguration loads the explicit config file, or a discovered one.
// Only an explicit file that fails to load is an error.
func loadConfiguration(configFile string, stderr io.Writer) (*config.Config, error) {
	if configFile != "" {
		return config.LoadConfig(configFile)
	}

	cfg, err := config.LoadConfigOrDefault("")
	if err != nil {
		fmt.Fprintf(stderr, "Warning: Error loading config file: %v\n", err)
		fmt.Fprintf(stderr, "Using default configuration\n")
	}
	return cfg, nil
}

// resolveConfiguration resolves final configuration values from config file, profile, and command line flags
func resolveConfiguration(cfg *config.Config, activeProfile *config.Profile, flags *configFlags, isFlagSet func(string) bool) *finalConfiguration {
	final := &finalConfiguration{
		layout:     string(pdfdoc.LayoutPlain),
		validation: string(pdfdoc.ValidationOff),
	}

	if cfg != nil {
		final.geometry = cfg.Defaults.Geometry
		final.normalize = cfg.Defaults.Normalize
		final.wrap = cfg.Defaults.Wrap
		final.debug = cfg.Defaults.Debug
		final.noColor = cfg.Defaults.NoColor
		if cfg.Defaults.Layout != "" {
			final.layout = cfg.Defaults.Layout
		}
		if cfg.Defaults.Validation != "" {
			final.validation = cfg.Defaults.Validation
		}
	}

	if activeProfile != nil {
		final.geometry = activeProfile.Geometry
		final.normalize = activeProfile.Normalize
		final.wrap = activeProfile.Wrap
		final.debug = activeProfile.Debug
		final.noColor = activeProfile.NoColor
		if activeProfile.Layout != "" {
			final.layout = activeProfile.Layout
		}
		if activeProfile.Validation != "" {
			final.validation = activeProfile.Validation
		}
	}

	if isFlagSet("geometry") {
		final.geometry = flags.geometry
	}
	if isFlagSet("normalize") {
		final.normalize = flags.normalize
	}
	if isFlagSet("layout") {
		final.layout = flags.layout
	}
	if isFlagSet("validate") {
		final.validation = flags.validation
	}
	if isFlagSet("wrap") {
		final.wrap = flags.wrap
	}
	if isFlagSet("debug") {
		final.debug = flags.debug
	}
	if isFlagSet("no-color") {
		final.noColor = flags.noColor
	}

	return final
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one invocation and returns the process exit status
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("pagetext", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	flags := &configFlags{}
	fs.BoolVar(&flags.geometry, "geometry", false, "Print crop box width and height, then normalized text")
	fs.BoolVar(&flags.normalize, "normalize", false, "Collapse whitespace runs in raw mode too")
	fs.StringVar(&flags.layout, "layout", "", "Text order: plain or rows")
	fs.StringVar(&flags.validation, "validate", "", "Validation before reading: off, relaxed or strict")
	fs.IntVar(&flags.wrap, "wrap", 0, "Wrap text at n columns; -1 uses the terminal width")
	fs.BoolVar(&flags.debug, "debug", false, "Log processing steps and timings to stderr")
	fs.BoolVar(&flags.noColor, "no-color", false, "Disable colored output")
	savePage := fs.String("save-page", "", "Also write the selected page as a single-page PDF into this directory")
	pageCount := fs.Bool("page-count", false, "Print the number of pages and exit")
	configFile := fs.String("config", "", "Path to configuration file (YAML)")
	profileName := fs.String("profile", "", "Profile name to use from config file")
	listProfiles := fs.Bool("list-profiles", false, "List available profiles")
	showHelp := fs.Bool("help", false, "Show help information")
	showVersion := fs.Bool("version", false, "Show version information")
	showVersionShort := fs.Bool("v", false, "Show version information")

	parseErr := fs.Parse(args)

	errColor := color.New(color.FgRed)
	if flags.noColor || !isTerminal(stderr) {
		errColor.DisableColor()
	}
	fail := func(err error) int {
		errColor.Fprintf(stderr, "Error: %v\n", err)
		if extract.IsType(err, extract.ErrorTypeInvalidArgument) {
			fmt.Fprintln(stderr, usageLine)
		}
		return extract.ExitCode(err)
	}

	if parseErr != nil {
		if errors.Is(parseErr, flag.ErrHelp) {
			help.NewSystem(stdout, !isTerminal(stdout)).ShowGeneralHelp()
			return 0
		}
		return fail(extract.NewError(extract.ErrorTypeInvalidArgument, "", 0, parseErr.Error(), nil))
	}

	if *showHelp {
		help.NewSystem(stdout, flags.noColor || !isTerminal(stdout)).ShowGeneralHelp()
		return 0
	}
	if *showVersion || *showVersionShort {
		fmt.Fprintln(stdout, version.Info())
		return 0
	}

	cfg, err := loadConfiguration(*configFile, stderr)
	if err != nil {
		return fail(err)
	}

	if *listProfiles {
		names := cfg.ListProfiles()
		descriptions := make(map[string]string, len(names))
		for _, name := range names {
			descriptions[name] = cfg.GetProfile(name).Description
		}
		help.NewSystem(stdout, flags.noColor || !isTerminal(stdout)).ShowProfiles(names, descriptions)
		return 0
	}

	var activeProfile *config.Profile
	if *profileName != "" {
		activeProfile = cfg.GetProfile(*profileName)
		if activeProfile == nil {
			return fail(fmt.Errorf("profile '%s' not found (available: %v)", *profileName, cfg.ListProfiles()))
		}
	}

	setFlags := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { setFlags[f.Name] = true })
	final := resolveConfiguration(cfg, activeProfile, flags, func(name string) bool { return setFlags[name] })

	if final.noColor {
		errColor.DisableColor()
	}

	layout, err := pdfdoc.ParseLayout(final.layout)
	if err != nil {
		return fail(extract.NewError(extract.ErrorTypeInvalidArgument, "", 0, "-layout", err))
	}
	validation, err := pdfdoc.ParseValidationMode(final.validation)
	if err != nil {
		return fail(extract.NewError(extract.ErrorTypeInvalidArgument, "", 0, "-validate", err))
	}
	if final.wrap < -1 {
		return fail(extract.NewError(extract.ErrorTypeInvalidArgument, "", 0,
			fmt.Sprintf("-wrap: invalid width %d", final.wrap), nil))
	}

	level := observability.ObservabilityOff
	if final.debug {
		level = observability.ObservabilityDebug
	}
	observer := observability.NewStandardObserver(level, stderr)

	opener := pdfdoc.NewOpener(layout, validation, observer)
	options := extract.Options{
		IncludeGeometry: final.geometry,
		Normalize:       final.normalize,
		WrapWidth:       final.wrap,
	}
	if options.WrapWidth == -1 {
		options.WrapWidth = terminalWidth(stdout)
	}
	extractor := extract.NewExtractor(opener, options, observer)
	observer.LogComponents(opener, extractor)

	positional := fs.Args()

	if *pageCount {
		if len(positional) != 1 {
			return fail(extract.NewError(extract.ErrorTypeInvalidArgument, "", 0,
				fmt.Sprintf("-page-count expects exactly one argument, got %d", len(positional)), nil))
		}
		count, err := extractor.PageCount(positional[0])
		if err != nil {
			return fail(err)
		}
		fmt.Fprintln(stdout, count)
		return 0
	}

	if len(positional) != 2 {
		return fail(extract.NewError(extract.ErrorTypeInvalidArgument, "", 0,
			fmt.Sprintf("expected 2 arguments, got %d", len(positional)), nil))
	}
	path := positional[0]
	pageNumber, err := strconv.Atoi(positional[1])
	if err != nil {
		return fail(extract.NewError(extract.ErrorTypeInvalidArgument, "", 0,
			fmt.Sprintf("invalid page number %q", positional[1]), nil))
	}

	result, err := extractor.Extract(path, pageNumber)
	if err != nil {
		return fail(err)
	}

	if *savePage != "" {
		saved, err := pdfdoc.ExportPage(path, pageNumber, *savePage)
		if err != nil {
			return fail(err)
		}
		fmt.Fprintf(stderr, "Saved page %d to %s\n", pageNumber, saved)
	}

	if err := extract.Write(stdout, result); err != nil {
		return fail(fmt.Errorf("failed to write output: %w", err))
	}
	return 0
}

// isTerminal reports whether w is a terminal
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// terminalWidth returns the column count of w, or 0 when w is not a terminal
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}
