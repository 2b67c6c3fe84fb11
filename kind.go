package kind

import (
	"errors"
	"strings"
)

// DefaultSeparator joins and splits the path representation of a chain.
const DefaultSeparator = "/"

// ErrEmptyHierarchy indicates chain construction received no ids.
var ErrEmptyHierarchy = errors.New("kind: hierarchy must include at least one id")

// Kind is an immutable chain of string identifiers ordered from most to
// least specific. Lookups walk the chain until a match is found, so callers
// can attach values at varying levels of specificity and resolve the most
// specific one available.
//
// The phantom tag T pins a chain to a single taxonomy: kinds with different
// tags cannot be compared or stored together. T carries no runtime data and
// is never instantiated.
//
// The zero value is a terminal kind with an empty id.
type Kind[T any] struct {
	id       string
	fallback *Kind[T]
}

// New returns a terminal kind with no fallback.
func New[T any](id string) Kind[T] {
	return Kind[T]{id: id}
}

// NewWithFallback returns a kind that resolves through fallback when id has
// no match. The fallback chain is copied so the result owns its structure.
func NewWithFallback[T any](id string, fallback Kind[T]) Kind[T] {
	fb := fallback.clone()
	return Kind[T]{id: id, fallback: &fb}
}

// FromHierarchy builds a chain from ids ordered most specific first. The
// first element becomes the top-level id and the rest its fallback chain.
// Returns ErrEmptyHierarchy when ids is empty; callers commonly construct
// chains from external lists, so the empty case is recoverable rather than
// fatal.
func FromHierarchy[T any](ids []string) (Kind[T], error) {
	if len(ids) == 0 {
		return Kind[T]{}, ErrEmptyHierarchy
	}
	k := New[T](ids[len(ids)-1])
	for i := len(ids) - 2; i >= 0; i-- {
		k = NewWithFallback(ids[i], k)
	}
	return k, nil
}

// FromPath parses a DefaultSeparator-joined path into a chain, most specific
// first (e.g. "upperLeft/rectCorner/rect/general").
func FromPath[T any](path string) Kind[T] {
	return FromPathSeparator[T](path, DefaultSeparator)
}

// FromPathSeparator parses path by splitting on the first occurrence of
// separator at each level: the prefix becomes the id and the remainder is
// parsed recursively as the fallback. A path without the separator yields a
// terminal kind, and empty segments are preserved as empty-string ids. An
// empty separator yields a terminal kind holding the whole path.
func FromPathSeparator[T any](path, separator string) Kind[T] {
	if separator == "" {
		return New[T](path)
	}
	id, rest, found := strings.Cut(path, separator)
	if !found {
		return New[T](id)
	}
	return NewWithFallback(id, FromPathSeparator[T](rest, separator))
}

// ID returns the top-level identifier.
func (k Kind[T]) ID() string {
	return k.id
}

// Fallback returns the immediate fallback chain, reporting false for
// terminal kinds.
func (k Kind[T]) Fallback() (Kind[T], bool) {
	if k.fallback == nil {
		return Kind[T]{}, false
	}
	return k.fallback.clone(), true
}

// Hierarchy returns every id in the chain ordered from most to least
// specific.
func (k Kind[T]) Hierarchy() []string {
	ids := make([]string, 0, k.Depth())
	for node := &k; node != nil; node = node.fallback {
		ids = append(ids, node.id)
	}
	return ids
}

// Depth returns the number of ids in the chain.
func (k Kind[T]) Depth() int {
	depth := 0
	for node := &k; node != nil; node = node.fallback {
		depth++
	}
	return depth
}

// Path joins the hierarchy with separator, the inverse of
// FromPathSeparator for ids that do not contain the separator.
func (k Kind[T]) Path(separator string) string {
	return strings.Join(k.Hierarchy(), separator)
}

// String returns the DefaultSeparator path representation.
func (k Kind[T]) String() string {
	return k.Path(DefaultSeparator)
}

// Equal reports whether both kinds share the same top-level id. A kind's
// identity is its most specific label only; the fallback chain is
// resolution metadata and does not participate.
func (k Kind[T]) Equal(other Kind[T]) bool {
	return k.id == other.id
}

// clone deep copies the chain so the result owns its fallback structure.
func (k Kind[T]) clone() Kind[T] {
	if k.fallback == nil {
		return Kind[T]{id: k.id}
	}
	fb := k.fallback.clone()
	return Kind[T]{id: k.id, fallback: &fb}
}
