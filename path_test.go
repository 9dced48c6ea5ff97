package jdiff

import (
	"testing"
)

func TestPathString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		path Path
		want string
	}{
		{name: "root", path: Root, want: "(root)"},
		{name: "single_key", path: Root.Key("a"), want: ".a"},
		{name: "single_index", path: Root.Index(0), want: "[0]"},
		{name: "nested", path: Root.Key("data").Key("users").Index(0).Key("country").Key("name"), want: ".data.users[0].country.name"},
		{name: "index_then_key", path: Root.Index(2).Key("id"), want: "[2].id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.path.String(); got != tt.want {
				t.Fatalf("Path.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPathImmutability(t *testing.T) {
	t.Parallel()

	parent := Root.Key("a")
	first := parent.Index(0)
	second := parent.Key("b")

	if got := parent.String(); got != ".a" {
		t.Fatalf("parent path changed after extension: %q", got)
	}
	if got := first.String(); got != ".a[0]" {
		t.Fatalf("first child path = %q, want %q", got, ".a[0]")
	}
	if got := second.String(); got != ".a.b" {
		t.Fatalf("second child path = %q, want %q", got, ".a.b")
	}
}

func TestPathEqual(t *testing.T) {
	t.Parallel()

	if !Root.Key("a").Index(1).Equal(Root.Key("a").Index(1)) {
		t.Fatal("identical paths should be equal")
	}
	if Root.Key("a").Equal(Root.Key("b")) {
		t.Fatal("paths with different keys should not be equal")
	}
	if Root.Key("1").Equal(Root.Index(1)) {
		t.Fatal("key and index segments should not be equal")
	}
	if Root.Equal(Root.Key("a")) {
		t.Fatal("root should not equal a non-empty path")
	}
}

func TestPathIsRoot(t *testing.T) {
	t.Parallel()

	if !Root.IsRoot() {
		t.Fatal("Root.IsRoot() = false, want true")
	}
	if Root.Key("a").IsRoot() {
		t.Fatal("extended path reports IsRoot")
	}
}
