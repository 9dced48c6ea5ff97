package main

import (
	"fmt"
	"os"

	"github.com/jacoelho/jdiff"
	"github.com/jacoelho/jdiff/internal/config"
	"github.com/jacoelho/jdiff/internal/document"
	"github.com/jacoelho/jdiff/internal/exit"
	"github.com/jacoelho/jdiff/internal/selector"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, exitResult := config.Parse(os.Args)
	if exitResult != nil {
		exitResult.Print()
		return exitResult.ExitCode
	}

	expected, err := loadDocument(cfg.ExpectedFile)
	if err != nil {
		return fail("Error: load expected document: %v\n", err)
	}

	actual, err := loadDocument(cfg.ActualFile)
	if err != nil {
		return fail("Error: load actual document: %v\n", err)
	}

	if cfg.Select != "" {
		if expected, err = selector.Select(expected, cfg.Select); err != nil {
			return fail("Error: select in expected document: %v\n", err)
		}
		if actual, err = selector.Select(actual, cfg.Select); err != nil {
			return fail("Error: select in actual document: %v\n", err)
		}
	}

	var opts []jdiff.Option
	if cfg.Placeholders {
		opts = append(opts, jdiff.WithPlaceholders())
	}

	diffs := jdiff.Diff(actual, expected, cfg.Mode, opts...)
	if len(diffs) == 0 {
		return exit.CodeMatch
	}

	if !cfg.Quiet {
		if err := writeReport(cfg.Format, diffs); err != nil {
			return fail("Error: write report: %v\n", err)
		}
	}

	return exit.CodeDifferences
}

func loadDocument(filename string) (any, error) {
	if filename == "-" {
		return document.Decode(os.Stdin, document.FormatJSON)
	}
	return document.Load(filename)
}

func writeReport(format config.OutputFormat, diffs []jdiff.Difference) error {
	switch format {
	case config.FormatJSON:
		return jdiff.WriteJSON(os.Stdout, diffs)
	default:
		return jdiff.WriteText(os.Stdout, diffs)
	}
}

func fail(format string, a ...any) int {
	fmt.Fprintf(os.Stderr, format, a...)
	return exit.CodeError
}
