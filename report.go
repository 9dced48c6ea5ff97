package jdiff

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

const valueIndent = 8

// Report renders a difference sequence as the human-readable text used in
// assertion failures: one block per difference, blocks separated by blank
// lines, each tagged with the path at which the difference occurs.
func Report(diffs []Difference) string {
	blocks := make([]string, 0, len(diffs))
	for _, diff := range diffs {
		blocks = append(blocks, formatDifference(diff))
	}
	return strings.Join(blocks, "\n\n")
}

// WriteText writes the text report to w.
func WriteText(w io.Writer, diffs []Difference) error {
	if _, err := io.WriteString(w, Report(diffs)); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func formatDifference(diff Difference) string {
	switch diff.Kind {
	case MissingFromActual:
		return fmt.Sprintf("json atom at path %q is missing from actual", diff.Path)
	case ExtraInActual:
		return fmt.Sprintf("json atom at path %q is missing from expected", diff.Path)
	case TypeMismatch:
		return fmt.Sprintf("json values at path %q are of different types:\n    expected:\n%s\n    actual:\n%s",
			diff.Path, indent(pretty(diff.Expected), valueIndent), indent(pretty(diff.Actual), valueIndent))
	default:
		return fmt.Sprintf("json atoms at path %q are not equal:\n    expected:\n%s\n    actual:\n%s",
			diff.Path, indent(pretty(diff.Expected), valueIndent), indent(pretty(diff.Actual), valueIndent))
	}
}

func pretty(value any) string {
	payload, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", value)
	}
	return string(payload)
}

func indent(text string, width int) string {
	margin := strings.Repeat(" ", width)
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = margin + line
	}
	return strings.Join(lines, "\n")
}

type jsonDifference struct {
	Path     string `json:"path"`
	Kind     string `json:"kind"`
	Actual   any    `json:"actual,omitempty"`
	Expected any    `json:"expected,omitempty"`
}

// WriteJSON writes the difference sequence to w as structured records,
// preserving order and kind names for machine consumption.
func WriteJSON(w io.Writer, diffs []Difference) error {
	records := make([]jsonDifference, 0, len(diffs))
	for _, diff := range diffs {
		records = append(records, jsonDifference{
			Path:     diff.Path.String(),
			Kind:     diff.Kind.String(),
			Actual:   diff.Actual,
			Expected: diff.Expected,
		})
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(records)
}
