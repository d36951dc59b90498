package ngram

import (
	"sort"

	"dasa.cc/ngram/set"
)

// Index of terms by n-gram; zero value is valid and uses DefaultN.
// N must not change once terms are added.
type Index struct {
	N int

	ks set.Slice[string] // distinct n-grams
	vs set.Chain[string] // terms containing ks[i]
	ts set.Slice[string] // terms
	ls set.Simple[int]   // n-gram set size of ts[i]
}

// Match is an indexed term and its similarity to a query.
type Match struct {
	Term  string
	Score float64
}

func (a *Index) n() int {
	if a.N == 0 {
		a.N = DefaultN
	}
	return a.N
}

// Add stores the n-gram set of each distinct term in xs.
func (a *Index) Add(xs ...string) {
	n := a.n()
	for _, t := range xs {
		i, ok := a.ts.Insert(t)
		if !ok {
			continue
		}
		x := NewSet(t, n)
		a.ls.Upsert(len(x), i, true)
		for _, g := range x {
			k, ok := a.ks.Insert(g)
			a.vs.Upsert(t, k, ok)
		}
	}
}

// Len returns the number of indexed terms.
func (a *Index) Len() int { return len(a.ts) }

// Has reports whether t was added.
func (a *Index) Has(t string) bool { return a.ts.Has(t) }

// Match returns the indexed terms sharing at least one n-gram with q whose
// Jaccard similarity to q is at least min, best first and ties by term.
// Returns ErrEmptyUnion if q has no n-grams.
func (a *Index) Match(q string, min float64) ([]Match, error) {
	x := NewSet(q, a.n())
	if len(x) == 0 {
		return nil, ErrEmptyUnion
	}

	var p set.Slice[string]
	var u set.Simple[int]
	for _, g := range x {
		i, ok := a.ks.Search(g)
		if !ok {
			continue
		}
		for _, t := range a.vs[i] {
			j, ok := p.Insert(t)
			if ok {
				u.Upsert(0, j, true)
			}
			u[j]++
		}
	}

	var ms []Match
	for i, t := range p {
		k, _ := a.ts.Search(t)
		w := float64(u[i]) / float64(len(x)+a.ls[k]-u[i])
		if min <= w {
			ms = append(ms, Match{Term: t, Score: w})
		}
	}
	sort.SliceStable(ms, func(i, j int) bool { return ms[i].Score > ms[j].Score })
	return ms, nil
}
