// Package ngram extracts character n-grams from strings and compares their sets
// by Jaccard similarity.
package ngram

import (
	"errors"
	"fmt"

	"dasa.cc/ngram/set"
)

// DefaultN is the window length used by Bigrams and a zero Index.
const DefaultN = 2

// ErrEmptyUnion is returned when both compared sets are empty and the
// similarity ratio is undefined.
var ErrEmptyUnion = errors.New("ngram: similarity of two empty sets is undefined")

// Parse returns the contiguous substrings of n characters of s, one for each
// offset from 0 to len(s)-n inclusive and in offset order. Characters are runes.
// Result is empty if s has fewer than n characters. Panics if n < 1.
func Parse(s string, n int) []string {
	if n < 1 {
		panic(fmt.Sprintf("ngram: invalid window length %v", n))
	}
	offs := make([]int, 0, len(s)+1)
	for i := range s {
		offs = append(offs, i)
	}
	offs = append(offs, len(s))

	var p []string
	for i := 0; i+n < len(offs); i++ {
		p = append(p, s[offs[i]:offs[i+n]])
	}
	return p
}

// Bigrams is Parse(s, DefaultN).
func Bigrams(s string) []string { return Parse(s, DefaultN) }

// NewSet returns the distinct n-grams of s.
func NewSet(s string, n int) set.Slice[string] {
	p := Parse(s, n)
	set.Filter(&p)
	return p
}

// Jaccard returns |x ∩ y| / |x ∪ y|, or ErrEmptyUnion if x and y are both empty.
func Jaccard(x, y set.Slice[string]) (float64, error) {
	u := set.Union(x, y)
	if u == 0 {
		return 0, ErrEmptyUnion
	}
	return float64(set.Intersection(x, y)) / float64(u), nil
}

// Similarity is the Jaccard similarity of the n-gram sets of a and b.
func Similarity(a, b string, n int) (float64, error) {
	return Jaccard(NewSet(a, n), NewSet(b, n))
}
