package jdiff

import (
	"errors"
	"fmt"
	"maps"
	"reflect"
	"slices"
)

// Mode selects how strictly actual must match expected.
type Mode int

const (
	// Exact requires both values to match completely; any one-sided extra
	// key or element is a difference.
	Exact Mode = iota
	// Inclusive allows actual to carry extra object keys and extra trailing
	// array elements; only what expected declares must match.
	Inclusive
)

// ErrUnknownMode is returned by ParseMode for unrecognized mode names.
var ErrUnknownMode = errors.New("unknown comparison mode")

func (m Mode) String() string {
	switch m {
	case Inclusive:
		return "inclusive"
	default:
		return "exact"
	}
}

// ParseMode parses a mode name as accepted on the command line.
func ParseMode(input string) (Mode, error) {
	switch input {
	case "exact":
		return Exact, nil
	case "inclusive":
		return Inclusive, nil
	default:
		return Exact, fmt.Errorf("%w: %q", ErrUnknownMode, input)
	}
}

// DifferenceKind identifies what kind of disagreement a Difference records.
type DifferenceKind int

const (
	// ValueMismatch means both sides are present with the same JSON kind
	// but unequal values.
	ValueMismatch DifferenceKind = iota
	// TypeMismatch means the two values are of different JSON kinds; the
	// comparator does not recurse beneath it.
	TypeMismatch
	// MissingFromActual means expected has a key or index that actual
	// lacks.
	MissingFromActual
	// ExtraInActual means actual has a key or index that expected lacks;
	// emitted in Exact mode only.
	ExtraInActual
)

func (k DifferenceKind) String() string {
	switch k {
	case TypeMismatch:
		return "type_mismatch"
	case MissingFromActual:
		return "missing_from_actual"
	case ExtraInActual:
		return "extra_in_actual"
	default:
		return "value_mismatch"
	}
}

// Difference is one recorded disagreement between actual and expected.
// Actual is unset for MissingFromActual differences and Expected is unset
// for ExtraInActual differences.
type Difference struct {
	Path     Path
	Kind     DifferenceKind
	Actual   any
	Expected any
}

type options struct {
	placeholders bool
}

// Option adjusts comparison behavior; zero or more Options can be passed
// to Diff and the assertion helpers.
type Option func(*options)

// WithPlaceholders enables expected-side placeholder strings such as
// "#uuid#" and "#present#". See the Placeholder constants.
func WithPlaceholders() Option {
	return func(o *options) {
		o.placeholders = true
	}
}

// Diff recursively compares actual against expected under the given mode
// and returns every difference in a deterministic depth-first order:
// expected's object keys in sorted order first, then (Exact mode only)
// actual's extra keys in sorted order; array elements by index. An empty
// result means the values match under the mode.
func Diff(actual, expected any, mode Mode, opts ...Option) []Difference {
	var cfg options
	for _, opt := range opts {
		opt(&cfg)
	}

	d := &differ{mode: mode, opts: cfg}
	d.compare(actual, expected, Root)
	return d.acc
}

type differ struct {
	mode Mode
	opts options
	acc  []Difference
}

func (d *differ) record(diff Difference) {
	d.acc = append(d.acc, diff)
}

func (d *differ) compare(actual, expected any, path Path) {
	if d.opts.placeholders {
		if matched, handled := matchPlaceholder(actual, expected); handled {
			if !matched {
				d.record(Difference{Path: path, Kind: ValueMismatch, Actual: actual, Expected: expected})
			}
			return
		}
	}

	actualKind := KindOf(actual)
	expectedKind := KindOf(expected)
	if actualKind != expectedKind {
		d.record(Difference{Path: path, Kind: TypeMismatch, Actual: actual, Expected: expected})
		return
	}

	switch expectedKind {
	case KindNull:
		// nothing to compare
	case KindBoolean, KindString:
		if actual != expected {
			d.record(Difference{Path: path, Kind: ValueMismatch, Actual: actual, Expected: expected})
		}
	case KindNumber:
		if !equalNumbers(actual, expected) {
			d.record(Difference{Path: path, Kind: ValueMismatch, Actual: actual, Expected: expected})
		}
	case KindArray:
		d.compareArrays(actual.([]any), expected.([]any), path)
	case KindObject:
		d.compareObjects(actual.(map[string]any), expected.(map[string]any), path)
	default:
		if !reflect.DeepEqual(actual, expected) {
			d.record(Difference{Path: path, Kind: ValueMismatch, Actual: actual, Expected: expected})
		}
	}
}

func (d *differ) compareObjects(actual, expected map[string]any, path Path) {
	for _, key := range slices.Sorted(maps.Keys(expected)) {
		childPath := path.Key(key)

		actualValue, ok := actual[key]
		if !ok {
			d.record(Difference{Path: childPath, Kind: MissingFromActual, Expected: expected[key]})
			continue
		}

		d.compare(actualValue, expected[key], childPath)
	}

	if d.mode != Exact {
		return
	}

	for _, key := range slices.Sorted(maps.Keys(actual)) {
		if _, ok := expected[key]; ok {
			continue
		}
		d.record(Difference{Path: path.Key(key), Kind: ExtraInActual, Actual: actual[key]})
	}
}

func (d *differ) compareArrays(actual, expected []any, path Path) {
	shared := min(len(actual), len(expected))

	for i := range shared {
		d.compare(actual[i], expected[i], path.Index(i))
	}

	for i := shared; i < len(expected); i++ {
		d.record(Difference{Path: path.Index(i), Kind: MissingFromActual, Expected: expected[i]})
	}

	if d.mode != Exact {
		return
	}

	for i := shared; i < len(actual); i++ {
		d.record(Difference{Path: path.Index(i), Kind: ExtraInActual, Actual: actual[i]})
	}
}
