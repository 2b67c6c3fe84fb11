package kind

import (
	"errors"
	"slices"
	"testing"
)

type cornerTag struct{}

type corner = Kind[cornerTag]

func cornerChain(t *testing.T, ids ...string) corner {
	t.Helper()
	k, err := FromHierarchy[cornerTag](ids)
	if err != nil {
		t.Fatalf("hierarchy %v: %v", ids, err)
	}
	return k
}

func TestFromHierarchyRoundTrip(t *testing.T) {
	ids := []string{"upperLeft", "rectCorner", "rect", "general"}
	k, err := FromHierarchy[cornerTag](ids)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := k.Hierarchy(); !slices.Equal(got, ids) {
		t.Fatalf("expected hierarchy %v, got %v", ids, got)
	}
	if k.ID() != "upperLeft" {
		t.Fatalf("expected top id upperLeft, got %q", k.ID())
	}
	if k.Depth() != 4 {
		t.Fatalf("expected depth 4, got %d", k.Depth())
	}
}

func TestFromHierarchyEmpty(t *testing.T) {
	if _, err := FromHierarchy[cornerTag](nil); !errors.Is(err, ErrEmptyHierarchy) {
		t.Fatalf("expected ErrEmptyHierarchy, got %v", err)
	}
	if _, err := FromHierarchy[cornerTag]([]string{}); !errors.Is(err, ErrEmptyHierarchy) {
		t.Fatalf("expected ErrEmptyHierarchy, got %v", err)
	}
}

func TestFromPathSplitsOnFirstSeparator(t *testing.T) {
	cases := []struct {
		path      string
		hierarchy []string
	}{
		{"upperLeft/rectCorner/rect/general", []string{"upperLeft", "rectCorner", "rect", "general"}},
		{"plain", []string{"plain"}},
		{"", []string{""}},
		{"/x", []string{"", "x"}},
		{"x/", []string{"x", ""}},
		{"a//b", []string{"a", "", "b"}},
	}
	for _, tc := range cases {
		k := FromPath[cornerTag](tc.path)
		if got := k.Hierarchy(); !slices.Equal(got, tc.hierarchy) {
			t.Fatalf("path %q: expected hierarchy %v, got %v", tc.path, tc.hierarchy, got)
		}
	}
}

func TestFromPathSeparatorCustom(t *testing.T) {
	k := FromPathSeparator[cornerTag]("a.b.c", ".")
	if got := k.Hierarchy(); !slices.Equal(got, []string{"a", "b", "c"}) {
		t.Fatalf("expected dot-separated hierarchy, got %v", got)
	}
	if got := k.Path("."); got != "a.b.c" {
		t.Fatalf("expected path round trip, got %q", got)
	}
}

func TestFromPathSeparatorEmptySeparator(t *testing.T) {
	k := FromPathSeparator[cornerTag]("a/b", "")
	if k.Depth() != 1 || k.ID() != "a/b" {
		t.Fatalf("expected terminal kind holding whole path, got %v", k.Hierarchy())
	}
}

func TestPathRoundTrip(t *testing.T) {
	k := cornerChain(t, "upperLeft", "rectCorner", "rect", "general")
	parsed := FromPath[cornerTag](k.Path(DefaultSeparator))
	if !slices.Equal(parsed.Hierarchy(), k.Hierarchy()) {
		t.Fatalf("expected parse(path) to reproduce hierarchy, got %v", parsed.Hierarchy())
	}
	if k.String() != "upperLeft/rectCorner/rect/general" {
		t.Fatalf("unexpected string form %q", k.String())
	}
}

func TestFallbackAccessor(t *testing.T) {
	terminal := New[cornerTag]("general")
	if _, ok := terminal.Fallback(); ok {
		t.Fatalf("terminal kind should have no fallback")
	}

	k := NewWithFallback("rect", terminal)
	fb, ok := k.Fallback()
	if !ok {
		t.Fatalf("expected fallback")
	}
	if fb.ID() != "general" || fb.Depth() != 1 {
		t.Fatalf("unexpected fallback %v", fb.Hierarchy())
	}
}

func TestEqualIgnoresFallback(t *testing.T) {
	a := NewWithFallback("x", New[cornerTag]("a"))
	b := NewWithFallback("x", cornerChain(t, "b", "c"))
	if !a.Equal(b) {
		t.Fatalf("kinds with the same top id must be equal regardless of fallback")
	}
	if a.Equal(New[cornerTag]("y")) {
		t.Fatalf("kinds with different top ids must not be equal")
	}
}

func TestZeroValueIsTerminal(t *testing.T) {
	var k corner
	if k.ID() != "" {
		t.Fatalf("zero value should hold an empty id, got %q", k.ID())
	}
	if k.Depth() != 1 {
		t.Fatalf("zero value should be terminal, depth %d", k.Depth())
	}
	if _, ok := k.Fallback(); ok {
		t.Fatalf("zero value should have no fallback")
	}
}

func TestNewWithFallbackOwnsChain(t *testing.T) {
	base := cornerChain(t, "rect", "general")
	k := NewWithFallback("rectCorner", base)
	if got := k.Hierarchy(); !slices.Equal(got, []string{"rectCorner", "rect", "general"}) {
		t.Fatalf("unexpected hierarchy %v", got)
	}
	// The original chain stays untouched.
	if got := base.Hierarchy(); !slices.Equal(got, []string{"rect", "general"}) {
		t.Fatalf("base chain changed: %v", got)
	}
}
