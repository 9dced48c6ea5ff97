// Package selector narrows a decoded document to the subtree selected by a
// JSONPath expression (RFC 9535) before comparison.
package selector

import (
	"errors"
	"fmt"

	"github.com/theory/jsonpath"
)

var (
	ErrInvalidInput = errors.New("invalid selector input")
	ErrNotFound     = errors.New("selector matched nothing")
)

// Select evaluates a JSONPath expression against a decoded document and
// returns the first selected node.
func Select(doc any, pathExpr string) (any, error) {
	if pathExpr == "" {
		return nil, fmt.Errorf("%w: JSONPath expression is empty", ErrInvalidInput)
	}

	path, err := jsonpath.Parse(pathExpr)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid JSONPath %s: %v", ErrInvalidInput, pathExpr, err)
	}

	results := path.Select(doc)
	if len(results) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, pathExpr)
	}

	return results[0], nil
}
