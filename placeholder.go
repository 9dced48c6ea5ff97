package jdiff

import (
	"github.com/google/uuid"
)

// Expected-side placeholder strings, recognized when comparison runs with
// WithPlaceholders. A placeholder matches any actual value of the named
// shape, which keeps assertions stable against server-generated data.
const (
	// PlaceholderPresent matches any actual value of any kind.
	PlaceholderPresent = "#present#"
	// PlaceholderString matches any actual string.
	PlaceholderString = "#string#"
	// PlaceholderNumber matches any actual number.
	PlaceholderNumber = "#number#"
	// PlaceholderBoolean matches any actual boolean.
	PlaceholderBoolean = "#boolean#"
	// PlaceholderUUID matches any actual string that parses as an
	// RFC 4122 UUID.
	PlaceholderUUID = "#uuid#"
)

// matchPlaceholder reports whether expected is a placeholder (handled) and
// whether actual satisfies it (matched). Placeholders run before the kind
// check so "#present#" accepts containers as well as atoms.
func matchPlaceholder(actual, expected any) (matched, handled bool) {
	placeholder, ok := expected.(string)
	if !ok {
		return false, false
	}

	switch placeholder {
	case PlaceholderPresent:
		return true, true
	case PlaceholderString:
		return KindOf(actual) == KindString, true
	case PlaceholderNumber:
		return KindOf(actual) == KindNumber, true
	case PlaceholderBoolean:
		return KindOf(actual) == KindBoolean, true
	case PlaceholderUUID:
		value, ok := actual.(string)
		if !ok {
			return false, true
		}
		_, err := uuid.Parse(value)
		return err == nil, true
	default:
		return false, false
	}
}
