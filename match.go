package kind

// Matches reports whether id equals this kind's id or the id of any node
// further down the fallback chain, i.e. whether the receiver is that kind
// or a more specific descendant of it.
func (k Kind[T]) Matches(id string) bool {
	for node := &k; node != nil; node = node.fallback {
		if node.id == id {
			return true
		}
	}
	return false
}

// MatchesKind reports whether other's top-level id appears anywhere in the
// receiver's hierarchy. The relation is not symmetric: a kind matches all
// of its own fallbacks, but a fallback does not match the more specific
// original.
func (k Kind[T]) MatchesKind(other Kind[T]) bool {
	return k.Matches(other.id)
}

// IndexOfBestMatch returns the index of the candidate id matching at the
// least fallback distance from the receiver. Candidates are scanned in a
// single linear pass per depth level, so when several candidates match at
// the same depth the one appearing first in the list wins. Reports false
// when candidates is empty or no id along the chain matches.
func (k Kind[T]) IndexOfBestMatch(candidates []string) (int, bool) {
	if len(candidates) == 0 {
		return 0, false
	}
	for node := &k; node != nil; node = node.fallback {
		for i, id := range candidates {
			if id == node.id {
				return i, true
			}
		}
	}
	return 0, false
}

// IndexOfBestMatchKinds is IndexOfBestMatch over the top-level ids of
// candidates.
func (k Kind[T]) IndexOfBestMatchKinds(candidates []Kind[T]) (int, bool) {
	ids := make([]string, len(candidates))
	for i, candidate := range candidates {
		ids[i] = candidate.id
	}
	return k.IndexOfBestMatch(ids)
}

// BestMatch returns the candidate at the best-match index.
func (k Kind[T]) BestMatch(candidates []Kind[T]) (Kind[T], bool) {
	index, ok := k.IndexOfBestMatchKinds(candidates)
	if !ok {
		return Kind[T]{}, false
	}
	return candidates[index], true
}

// CommonKind returns the most specific kind shared between the receiver's
// fallback hierarchy (excluding the receiver itself) and other's full
// chain. When both share a top-level id the receiver is returned directly.
// The result is rebuilt from the receiver's hierarchy suffix starting at
// the matched id; other only supplies the match test, so despite the name
// the operation is not symmetric in receiver and argument.
func (k Kind[T]) CommonKind(other Kind[T]) (Kind[T], bool) {
	if k.id == other.id {
		return k, true
	}
	if k.fallback == nil {
		return Kind[T]{}, false
	}
	hierarchy := k.fallback.Hierarchy()
	index, ok := other.IndexOfBestMatch(hierarchy)
	if !ok {
		return Kind[T]{}, false
	}
	common, err := FromHierarchy[T](hierarchy[index:])
	if err != nil {
		return Kind[T]{}, false
	}
	return common, true
}
