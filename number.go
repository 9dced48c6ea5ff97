package jdiff

import (
	"encoding/json"
	"math"
)

type numberClass int

const (
	numberInvalid numberClass = iota
	numberInteger
	numberFloat
)

// classifyNumber splits a numeric value into the integer or float family.
// json.Number values keep the distinction their source text carries: "1" is
// an integer, "1.0" and "1e2" are floats.
func classifyNumber(value any) (numberClass, int64, float64) {
	switch current := value.(type) {
	case int:
		return numberInteger, int64(current), 0
	case int8:
		return numberInteger, int64(current), 0
	case int16:
		return numberInteger, int64(current), 0
	case int32:
		return numberInteger, int64(current), 0
	case int64:
		return numberInteger, current, 0
	case uint:
		return numberInteger, int64(current), 0
	case uint8:
		return numberInteger, int64(current), 0
	case uint16:
		return numberInteger, int64(current), 0
	case uint32:
		return numberInteger, int64(current), 0
	case uint64:
		if current > math.MaxInt64 {
			return numberFloat, 0, float64(current)
		}
		return numberInteger, int64(current), 0
	case float32:
		return numberFloat, 0, float64(current)
	case float64:
		return numberFloat, 0, current
	case json.Number:
		if parsed, err := current.Int64(); err == nil {
			return numberInteger, parsed, 0
		}
		if parsed, err := current.Float64(); err == nil {
			return numberFloat, 0, parsed
		}
		return numberInvalid, 0, 0
	default:
		return numberInvalid, 0, 0
	}
}

// equalNumbers reports representation-faithful numeric equality: integers
// compare with integers, floats with floats, exactly and without epsilon.
// A mixed integer/float pair is unequal, so 1 differs from 1.0.
func equalNumbers(actual, expected any) bool {
	actualClass, actualInt, actualFloat := classifyNumber(actual)
	expectedClass, expectedInt, expectedFloat := classifyNumber(expected)

	if actualClass == numberInvalid || expectedClass == numberInvalid {
		// unparseable json.Number literals compare by raw text
		actualRaw, actualOK := actual.(json.Number)
		expectedRaw, expectedOK := expected.(json.Number)
		return actualOK && expectedOK && actualRaw == expectedRaw
	}

	if actualClass != expectedClass {
		return false
	}

	if actualClass == numberInteger {
		return actualInt == expectedInt
	}
	return actualFloat == expectedFloat
}
