// Package set provides primitives for inserting distinct values into ordered sets
// and comparing them.
package set

import (
	"sort"

	"golang.org/x/exp/constraints"
)

// Slice must be sorted in ascending order.
type Slice[T constraints.Ordered] []T

// Of returns the distinct values of xs in ascending order. xs is not modified.
func Of[T constraints.Ordered](xs ...T) Slice[T] {
	if len(xs) == 0 {
		return nil
	}
	a := make([]T, len(xs))
	copy(a, xs)
	sort.Slice(a, func(i, j int) bool { return a[i] < a[j] })
	b := a[:0]
	for i, x := range a {
		if i > 0 && a[i-1] == x {
			continue
		}
		b = append(b, x)
	}
	return Slice[T](b)
}

// Insert x in place if not exists; returns x index and true if inserted.
// The slice must be sorted in ascending order.
func (a *Slice[T]) Insert(x T) (i int, ok bool) {
	i = sort.Search(len(*a), func(i int) bool { return (*a)[i] >= x })
	if ok = i == len(*a) || (*a)[i] != x; ok {
		*a = upsert(*a, x, i, ok)
	}
	return
}

// Search returns the index of x and true if present; otherwise the index x
// would be inserted at and false.
func (a Slice[T]) Search(x T) (int, bool) {
	i := sort.Search(len(a), func(i int) bool { return a[i] >= x })
	return i, i < len(a) && a[i] == x
}

func (a Slice[T]) Has(x T) bool {
	_, ok := a.Search(x)
	return ok
}

// Intersection returns |a ∩ b|.
func Intersection[T constraints.Ordered](a, b Slice[T]) int {
	n := 0
	for i, j := 0, 0; i < len(a) && j < len(b); {
		switch {
		case a[i] < b[j]:
			i++
		case b[j] < a[i]:
			j++
		default:
			n++
			i++
			j++
		}
	}
	return n
}

// Union returns |a ∪ b|.
func Union[T constraints.Ordered](a, b Slice[T]) int {
	return len(a) + len(b) - Intersection(a, b)
}

func upsert[T any](a []T, x T, i int, ok bool) []T {
	if ok {
		a = append(a, *new(T))
		copy(a[i+1:], a[i:])
	}
	a[i] = x
	return a
}

// Simple is always strictly ordered by its indices, given as [0 .. N-1].
type Simple[T any] []T

// Upsert inserts x at i if ok; otherwise, updates i to x.
func (a *Simple[T]) Upsert(x T, i int, ok bool) { *a = upsert(*a, x, i, ok) }

// Chain is always strictly ordered by its indices, given as [0 .. N-1].
type Chain[T constraints.Ordered] []Slice[T]

// Upsert inserts slice{x} at i if ok, and returns 0 and true.
// Otherwise, slice at i attempts insert of distinct x, and returns x index and true if inserted.
func (a *Chain[T]) Upsert(x T, i int, ok bool) (int, bool) {
	if ok {
		*a = upsert(*a, Slice[T]{x}, i, true)
		return 0, true
	}
	return (*a)[i].Insert(x)
}

// Filter without allocating.
func Filter[T constraints.Ordered](a *[]T) {
	b := Slice[T]((*a)[:0])
	for _, x := range *a {
		b.Insert(x)
	}
	*a = b
}
