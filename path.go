package jdiff

import (
	"strconv"
	"strings"
)

type segment struct {
	key     string
	index   int
	indexed bool
}

// Path identifies a location inside a JSON tree as an ordered sequence of
// object-key and array-index steps. The zero value is the document root.
//
// Paths are immutable: Key and Index return a new Path one segment longer
// and never share a writable backing array with the receiver, so a parent
// path is never observed to change after a child extends it.
type Path struct {
	segments []segment
}

// Root is the empty path, rendered as "(root)".
var Root = Path{}

// Key returns a new path extended with an object-key segment.
func (p Path) Key(name string) Path {
	return p.extend(segment{key: name})
}

// Index returns a new path extended with an array-index segment.
func (p Path) Index(i int) Path {
	return p.extend(segment{index: i, indexed: true})
}

func (p Path) extend(next segment) Path {
	segments := make([]segment, len(p.segments)+1)
	copy(segments, p.segments)
	segments[len(p.segments)] = next
	return Path{segments: segments}
}

// IsRoot reports whether the path has no segments.
func (p Path) IsRoot() bool {
	return len(p.segments) == 0
}

// String renders the canonical form used in difference reports: key
// segments as ".name", index segments as "[n]". The root path renders
// as "(root)".
func (p Path) String() string {
	if len(p.segments) == 0 {
		return "(root)"
	}

	var builder strings.Builder
	for _, current := range p.segments {
		if current.indexed {
			builder.WriteByte('[')
			builder.WriteString(strconv.Itoa(current.index))
			builder.WriteByte(']')
			continue
		}
		builder.WriteByte('.')
		builder.WriteString(current.key)
	}

	return builder.String()
}

// Equal reports whether two paths have the same segments.
func (p Path) Equal(other Path) bool {
	if len(p.segments) != len(other.segments) {
		return false
	}
	for i, current := range p.segments {
		if current != other.segments[i] {
			return false
		}
	}
	return true
}
