package kind

import (
	"slices"
	"testing"
)

func TestMatchesSelfAndAncestors(t *testing.T) {
	k := cornerChain(t, "upperLeft", "rectCorner", "rect", "general")
	for _, id := range k.Hierarchy() {
		if !k.Matches(id) {
			t.Fatalf("expected %q to match %q", k, id)
		}
	}
	if k.Matches("other") {
		t.Fatalf("unexpected match for unrelated id")
	}
}

func TestMatchesKindAsymmetry(t *testing.T) {
	k := cornerChain(t, "upperLeft", "rectCorner", "rect")
	fb, ok := k.Fallback()
	if !ok {
		t.Fatalf("expected fallback")
	}
	if !k.MatchesKind(fb) {
		t.Fatalf("a kind must match its own fallback")
	}
	if fb.MatchesKind(k) {
		t.Fatalf("a fallback must not match the more specific original")
	}
	if !k.MatchesKind(k) {
		t.Fatalf("a kind must match itself")
	}
}

func TestIndexOfBestMatchPrefersShallowerDepth(t *testing.T) {
	k := cornerChain(t, "a", "b", "c")
	index, ok := k.IndexOfBestMatch([]string{"c", "b"})
	if !ok {
		t.Fatalf("expected a match")
	}
	// "b" sits at fallback depth 1, "c" at depth 2: depth wins over list order.
	if index != 1 {
		t.Fatalf("expected index 1 for %q, got %d", "b", index)
	}
}

func TestIndexOfBestMatchFirstOccurrenceWinsTies(t *testing.T) {
	k := cornerChain(t, "b", "x")
	index, ok := k.IndexOfBestMatch([]string{"b", "b"})
	if !ok || index != 0 {
		t.Fatalf("expected first occurrence at index 0, got %d (ok=%v)", index, ok)
	}
}

func TestIndexOfBestMatchMisses(t *testing.T) {
	k := cornerChain(t, "a", "b")
	if _, ok := k.IndexOfBestMatch(nil); ok {
		t.Fatalf("empty candidate list must not match")
	}
	if _, ok := k.IndexOfBestMatch([]string{"x", "y"}); ok {
		t.Fatalf("disjoint candidates must not match")
	}
}

func TestIndexOfBestMatchKindsDelegatesToTopIDs(t *testing.T) {
	k := cornerChain(t, "a", "b", "c")
	candidates := []corner{
		cornerChain(t, "c", "z"),
		cornerChain(t, "b", "q"),
	}
	index, ok := k.IndexOfBestMatchKinds(candidates)
	if !ok || index != 1 {
		t.Fatalf("expected index 1, got %d (ok=%v)", index, ok)
	}
}

func TestBestMatchReturnsCandidate(t *testing.T) {
	k := cornerChain(t, "a", "b", "c")
	candidates := []corner{
		New[cornerTag]("c"),
		New[cornerTag]("b"),
	}
	match, ok := k.BestMatch(candidates)
	if !ok || match.ID() != "b" {
		t.Fatalf("expected best match b, got %q (ok=%v)", match.ID(), ok)
	}

	if _, ok := k.BestMatch(nil); ok {
		t.Fatalf("empty candidate list must not match")
	}
}

func TestCommonKindSharedFallback(t *testing.T) {
	chain1 := cornerChain(t, "a", "b", "c")
	chain2 := cornerChain(t, "x", "b", "z")

	common, ok := chain1.CommonKind(chain2)
	if !ok {
		t.Fatalf("expected a common kind")
	}
	// The result derives from chain1's suffix, not chain2's structure.
	if got := common.Hierarchy(); !slices.Equal(got, []string{"b", "c"}) {
		t.Fatalf("expected [b c], got %v", got)
	}
}

func TestCommonKindFastPathOnEqualTopIDs(t *testing.T) {
	chain1 := cornerChain(t, "a", "b")
	chain2 := cornerChain(t, "a", "q")

	common, ok := chain1.CommonKind(chain2)
	if !ok {
		t.Fatalf("expected a common kind")
	}
	if got := common.Hierarchy(); !slices.Equal(got, []string{"a", "b"}) {
		t.Fatalf("expected the receiver back, got %v", got)
	}
}

func TestCommonKindNoOverlap(t *testing.T) {
	chain1 := cornerChain(t, "a", "b")
	chain2 := cornerChain(t, "x", "y")
	if _, ok := chain1.CommonKind(chain2); ok {
		t.Fatalf("disjoint chains must have no common kind")
	}
}

func TestCommonKindTerminalReceiver(t *testing.T) {
	chain1 := New[cornerTag]("a")
	chain2 := cornerChain(t, "x", "a")
	if _, ok := chain1.CommonKind(chain2); ok {
		t.Fatalf("a terminal receiver has no fallback hierarchy to share")
	}
}
