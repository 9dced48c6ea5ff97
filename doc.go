// Package jdiff compares two JSON-like values and reports every location
// where they disagree, with each difference tagged by the exact path at
// which it occurs (e.g. ".data.users[0].country.name").
//
// Two comparison modes are supported. Exact mode requires both values to
// match completely. Inclusive mode allows the actual value to carry extra
// object keys and extra trailing array elements beyond what the expected
// value specifies, so a test can assert on just the part of a document it
// cares about.
//
// Values use Go's generic decoded-JSON representation (nil, bool, string,
// json.Number or the native numeric types, []any, map[string]any). Diff is
// a pure function: it never mutates its inputs, never fails, and returns
// an empty sequence when the values match under the chosen mode.
package jdiff
