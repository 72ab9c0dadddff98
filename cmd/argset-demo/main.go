// Command argset-demo is a small host program exercising the argset
// library end to end: declarative definitions, parsing, typed access,
// styled diagnostics and paged help.
package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/argset-tools/argset"
	"github.com/argset-tools/argset/internal/log"
	"github.com/argset-tools/argset/internal/style"
	"github.com/argset-tools/argset/internal/ui"
)

const programName = "argset-demo"

func main() {
	initLogging()
	defer func() { _ = log.Close() }()

	// Styling for diagnostics is decided before parsing: flags are not
	// known yet when parsing itself fails.
	style.Init(term.IsTerminal(int(os.Stderr.Fd())))

	parser := buildParser()

	result, err := parser.Parse(os.Args)
	if err != nil {
		exitWithError(parser, err)
	}

	if result.Has("no-color") {
		style.Init(false)
	}
	if result.Has("no-pager") {
		ui.DisablePager()
	}

	log.Info("parsed %d positional argument(s), flags: %s",
		len(result.Positional()), strings.Join(result.FlagNames(), ","))

	if err := run(result); err != nil {
		fmt.Fprintln(os.Stderr, style.Error(programName+": "+err.Error()))
		os.Exit(1)
	}
}

// buildParser declares the demo's argument set.
func buildParser() *argset.Parser {
	p := argset.New(programName)
	p.AddFlag("verbose").Short('v').Help("Print details about each entry")
	p.AddFlag("all").Short('a').Help("Include entries that would normally be skipped")
	p.AddFlag("no-color").Help("Disable colored output")
	p.AddFlag("no-pager").Help("Do not page help output")
	p.AddOption("output").Short('o').Help("Write the report to the given file")
	p.AddOption("limit").Short('n').Help("Maximum number of entries to report")
	p.AddPositional("input").Help("Input file to process").Required()
	return p
}

func exitWithError(parser *argset.Parser, err error) {
	var perr *argset.ParseError
	if !errors.As(err, &perr) {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}

	if perr.Kind == argset.KindHelpRequested {
		ui.Pager(programName, parser.Help())
		os.Exit(0)
	}

	log.Error("argument parsing failed: %v", perr)

	fmt.Fprintln(os.Stderr, style.Error(fmt.Sprintf("%s: %s", programName, perr.Error())))
	for _, name := range perr.Suggestions() {
		fmt.Fprintln(os.Stderr, style.Muted(fmt.Sprintf("  (did you mean '--%s'?)", name)))
	}
	fmt.Fprintln(os.Stderr, style.Muted(fmt.Sprintf("See '%s --help'.", programName)))
	os.Exit(perr.ExitCode())
}

func run(result *argset.ParsedArgs) error {
	limit, _, err := argset.Value[int](result, "limit")
	if err != nil {
		return err
	}

	report := buildReport(result, limit)

	if path, ok := result.Option("output"); ok {
		if err := os.WriteFile(path, []byte(report), 0644); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		log.Info("report written to %s", path)
		return nil
	}

	fmt.Print(report)
	return nil
}

// buildReport renders what was parsed. A zero limit means unlimited.
func buildReport(result *argset.ParsedArgs, limit int) string {
	var b strings.Builder

	entries := result.Positional()
	if !result.Has("all") && len(entries) > 1 {
		entries = entries[:1]
	}
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}

	for _, entry := range entries {
		if result.Has("verbose") {
			fmt.Fprintf(&b, "input: %s (%d bytes name)\n", entry, len(entry))
		} else {
			fmt.Fprintf(&b, "input: %s\n", entry)
		}
	}

	return b.String()
}

func initLogging() {
	path := os.Getenv("ARGSET_DEMO_LOG")
	if path == "" {
		return
	}
	level := log.ParseLevel(os.Getenv("ARGSET_DEMO_LOG_LEVEL"))
	if err := log.Init(path, level); err != nil {
		fmt.Fprintf(os.Stderr, "%s: logging disabled: %v\n", programName, err)
	}
}
