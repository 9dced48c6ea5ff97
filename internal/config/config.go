package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/jacoelho/jdiff"
	"github.com/jacoelho/jdiff/internal/exit"
)

var (
	ErrNoArguments      = errors.New("no arguments provided")
	ErrMissingDocuments = errors.New("expected and actual documents are required")
	ErrTooManyDocuments = errors.New("only two documents can be compared")
	ErrBothStdin        = errors.New("only one document can be read from stdin")
	ErrUnknownFormat    = errors.New("unknown output format")
	ErrDocumentNotFound = errors.New("document not found")
)

// OutputFormat selects how a non-empty difference report is rendered.
type OutputFormat int

const (
	FormatText OutputFormat = iota
	FormatJSON
)

// ParseOutputFormat parses an output format name as accepted on the
// command line.
func ParseOutputFormat(input string) (OutputFormat, error) {
	switch input {
	case "text":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	default:
		return FormatText, fmt.Errorf("%w: %q", ErrUnknownFormat, input)
	}
}

// Config represents the complete configuration for the jdiff tool.
type Config struct {
	ExpectedFile string
	ActualFile   string

	Mode         jdiff.Mode
	Select       string
	Format       OutputFormat
	Placeholders bool
	Quiet        bool
}

// Parse parses command-line arguments and returns a validated Config.
// If parsing fails or help is requested, returns nil config and an exit
// result.
func Parse(args []string) (*Config, *exit.Result) {
	if len(args) == 0 {
		return nil, exit.Errorf("Error: %v\n\n%s", ErrNoArguments, Usage())
	}

	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	fs.Usage = func() {}
	fs.SetOutput(io.Discard)

	var (
		mode         = fs.String("mode", "exact", "Comparison mode: exact or inclusive")
		selectExpr   = fs.String("select", "", "JSONPath expression selecting the subtree to compare in both documents")
		format       = fs.String("format", "text", "Report format: text or json")
		placeholders = fs.Bool("placeholders", false, "Enable expected-side placeholders such as #uuid# and #present#")
		quiet        = fs.Bool("quiet", false, "Suppress the report, communicate through the exit code only")
	)

	if err := fs.Parse(args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, exit.Success(Usage())
		}
		return nil, exit.Errorf("Error: failed to parse arguments: %v\n\n%s", err, Usage())
	}

	files := fs.Args()
	switch {
	case len(files) < 2:
		return nil, exit.Errorf("Error: %v\n\n%s", ErrMissingDocuments, Usage())
	case len(files) > 2:
		return nil, exit.Errorf("Error: %v\n\n%s", ErrTooManyDocuments, Usage())
	}

	parsedMode, err := jdiff.ParseMode(*mode)
	if err != nil {
		return nil, exit.Errorf("Error: %v\n\n%s", err, Usage())
	}

	parsedFormat, err := ParseOutputFormat(*format)
	if err != nil {
		return nil, exit.Errorf("Error: %v\n\n%s", err, Usage())
	}

	config := &Config{
		ExpectedFile: files[0],
		ActualFile:   files[1],
		Mode:         parsedMode,
		Select:       *selectExpr,
		Format:       parsedFormat,
		Placeholders: *placeholders,
		Quiet:        *quiet,
	}

	if err := config.Validate(); err != nil {
		return nil, exit.Errorf("Error: %v\n\n%s", err, Usage())
	}

	return config, nil
}

// Validate validates the configuration and returns an error if invalid.
func (c *Config) Validate() error {
	if c.ExpectedFile == "-" && c.ActualFile == "-" {
		return ErrBothStdin
	}

	for _, file := range []string{c.ExpectedFile, c.ActualFile} {
		if file == "-" {
			continue
		}
		if _, err := os.Stat(file); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrDocumentNotFound, file, err)
		}
	}

	return nil
}

// Usage returns a usage string for the CLI tool.
func Usage() string {
	return `jdiff - structural JSON/YAML comparison

Usage: jdiff [options] <expected> <actual>

Documents are JSON by default; files ending in .yaml or .yml decode as
YAML. Either document (not both) may be "-" to read JSON from stdin.

Options:
  --mode MODE        Comparison mode: exact or inclusive (default: exact)
  --select PATH      JSONPath expression selecting the subtree to compare
                     in both documents
  --format FORMAT    Report format: text or json (default: text)
  --placeholders     Enable expected-side placeholders such as #uuid#
  --quiet            Suppress the report, exit code only
  -h, --help         Show this help message

Exit codes:
  0  documents match under the selected mode
  1  differences were found
  2  usage or I/O error

Examples:
  jdiff expected.json actual.json              # Exact comparison
  jdiff --mode inclusive want.json got.json    # Actual may carry extras
  jdiff --select '$.data.users' a.json b.json  # Compare one subtree
  curl -s $URL | jdiff expected.json -         # Compare against stdin`
}
