package jdiff

import (
	"bytes"
	"testing"

	"github.com/jacoelho/jdiff/internal/document"
)

// Equal fails the test when actual and expected differ under Exact mode,
// reporting every difference with its path.
func Equal(tb testing.TB, actual, expected any, opts ...Option) {
	tb.Helper()
	failIfDifferent(tb, actual, expected, Exact, opts)
}

// Include fails the test when actual does not include expected under
// Inclusive mode: actual may carry extra object keys and extra trailing
// array elements, but everything expected declares must match.
func Include(tb testing.TB, actual, expected any, opts ...Option) {
	tb.Helper()
	failIfDifferent(tb, actual, expected, Inclusive, opts)
}

// EqualJSON is Equal over raw JSON documents.
func EqualJSON(tb testing.TB, actual, expected []byte, opts ...Option) {
	tb.Helper()
	failIfDifferent(tb, decodeJSON(tb, "actual", actual), decodeJSON(tb, "expected", expected), Exact, opts)
}

// IncludeJSON is Include over raw JSON documents.
func IncludeJSON(tb testing.TB, actual, expected []byte, opts ...Option) {
	tb.Helper()
	failIfDifferent(tb, decodeJSON(tb, "actual", actual), decodeJSON(tb, "expected", expected), Inclusive, opts)
}

func decodeJSON(tb testing.TB, side string, payload []byte) any {
	tb.Helper()

	value, err := document.Decode(bytes.NewReader(payload), document.FormatJSON)
	if err != nil {
		tb.Fatalf("decode %s document: %v", side, err)
	}
	return value
}

func failIfDifferent(tb testing.TB, actual, expected any, mode Mode, opts []Option) {
	tb.Helper()

	diffs := Diff(actual, expected, mode, opts...)
	if len(diffs) == 0 {
		return
	}

	tb.Fatalf("json documents do not match:\n\n%s\n", Report(diffs))
}
