package kind

// Set is an ordered candidate collection. Construction deduplicates by
// kind identity keeping the first occurrence, so resolution order stays
// stable no matter how the set was assembled.
type Set[T any] struct {
	ordered []Kind[T]
}

// NewSet constructs a set from kinds, dropping later duplicates of the
// same top-level id.
func NewSet[T any](kinds ...Kind[T]) Set[T] {
	filtered := make([]Kind[T], 0, len(kinds))
	seen := map[string]struct{}{}

	for _, k := range kinds {
		if _, exists := seen[k.id]; exists {
			continue
		}
		seen[k.id] = struct{}{}
		filtered = append(filtered, k.clone())
	}

	return Set[T]{ordered: filtered}
}

// Kinds returns a defensive copy of the members in insertion order.
func (s Set[T]) Kinds() []Kind[T] {
	out := make([]Kind[T], len(s.ordered))
	for i := range s.ordered {
		out[i] = s.ordered[i].clone()
	}
	return out
}

// Len returns the number of members.
func (s Set[T]) Len() int {
	return len(s.ordered)
}

// Contains reports whether the set holds a member with id as its top-level
// id.
func (s Set[T]) Contains(id string) bool {
	for _, k := range s.ordered {
		if k.id == id {
			return true
		}
	}
	return false
}

// Resolve returns the member best matching k, i.e. the one whose top-level
// id sits at the least fallback distance from k.
func (s Set[T]) Resolve(k Kind[T]) (Kind[T], bool) {
	return k.BestMatch(s.ordered)
}
