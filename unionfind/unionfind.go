// Package unionfind provides a disjoint-set (union-find) structure over a
// fixed universe of comparable elements, with full path compression and
// union by rank.
//
// A DisjointSet is owned by exactly one computation (for example one
// spanning-tree pass over one component) and is never shared across calls.
//
// Complexity: Find and Union run in amortized O(α(n)), where α is the
// inverse Ackermann function. Space: O(n).
package unionfind

import (
	"github.com/cockroachdb/errors"
)

// ErrUnknownElement indicates that an element outside the initial universe
// was passed to Find, Union or Connected.
var ErrUnknownElement = errors.New("unionfind: unknown element")

// DisjointSet partitions a fixed universe of elements into disjoint sets.
type DisjointSet[T comparable] struct {
	parent map[T]T
	rank   map[T]int
	count  int // number of disjoint sets remaining
}

// New creates a DisjointSet where every element is its own singleton set
// with rank 0. Duplicate elements are collapsed.
func New[T comparable](elems ...T) *DisjointSet[T] {
	d := &DisjointSet[T]{
		parent: make(map[T]T, len(elems)),
		rank:   make(map[T]int, len(elems)),
	}
	for _, e := range elems {
		if _, ok := d.parent[e]; ok {
			continue
		}
		d.parent[e] = e
		d.rank[e] = 0
		d.count++
	}

	return d
}

// Len returns the size of the universe.
func (d *DisjointSet[T]) Len() int { return len(d.parent) }

// Count returns the number of disjoint sets.
func (d *DisjointSet[T]) Count() int { return d.count }

// Find returns the representative of the set containing x.
//
// Iterative two-pass form: the first pass walks up to the root, the second
// re-parents every visited node directly under it. No recursion, so deep
// chains cannot overflow the stack.
func (d *DisjointSet[T]) Find(x T) (T, error) {
	if _, ok := d.parent[x]; !ok {
		var zero T
		return zero, errors.Wrapf(ErrUnknownElement, "%v", x)
	}

	root := x
	for d.parent[root] != root {
		root = d.parent[root]
	}
	for x != root {
		next := d.parent[x]
		d.parent[x] = root
		x = next
	}

	return root, nil
}

// Union merges the sets containing x and y.
//
// It returns false when x and y are already in the same set (no-op).
// Otherwise the lower-rank root is attached under the higher-rank root;
// on a tie y's root goes under x's root and that root's rank grows by one.
func (d *DisjointSet[T]) Union(x, y T) (bool, error) {
	rx, err := d.Find(x)
	if err != nil {
		return false, err
	}
	ry, err := d.Find(y)
	if err != nil {
		return false, err
	}
	if rx == ry {
		return false, nil
	}

	switch {
	case d.rank[rx] < d.rank[ry]:
		d.parent[rx] = ry
	case d.rank[rx] > d.rank[ry]:
		d.parent[ry] = rx
	default:
		d.parent[ry] = rx
		d.rank[rx]++
	}
	d.count--

	return true, nil
}

// Connected reports whether x and y belong to the same set.
func (d *DisjointSet[T]) Connected(x, y T) (bool, error) {
	rx, err := d.Find(x)
	if err != nil {
		return false, err
	}
	ry, err := d.Find(y)
	if err != nil {
		return false, err
	}

	return rx == ry, nil
}
