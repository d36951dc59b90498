package set

import (
	"sort"
	"testing"
)

const N = 1000

var uniq, dups []string

func init() {
	uniq, dups = make([]string, N), make([]string, N)
	for i := 0; i < N; i++ {
		var s string
		for j := i; j < i+N; j++ {
			s += string(rune(j))
		}
		uniq[i] = s
		if dupit(i) {
			s = uniq[i-1]
		}
		dups[i] = s
	}
}

func dupit(i int) bool { return i%2 != 0 }

func TestSliceInsert(t *testing.T) {
	var a Slice[string]
	for i, s := range uniq {
		j, ok := a.Insert(s)
		if !ok {
			t.Fatalf("Insert(uniq[%v]) failed", i)
		}
		if i != j {
			t.Fatalf("Insert(uniq[%v]) inserted at %v", i, j)
		}
		if !sort.StringsAreSorted(a) {
			t.Fatal("sort.StringsAreSorted returned false")
		}
	}
	if have, want := len(a), len(uniq); have != want {
		t.Fatalf("Unexpected len after inserts; have %v, want %v.", have, want)
	}

	var b Slice[string]
	for i, s := range dups {
		j, ok := b.Insert(s)
		if dupit(i) && ok {
			t.Fatalf("Inserted at %v when expecting dup at %v.", j, i)
		}
		if !sort.StringsAreSorted(b) {
			t.Fatal("sort.StringsAreSorted returned false")
		}
	}
	if have, want := len(b), N/2; have != want {
		t.Fatalf("Unexpected len after dup inserts; have %v, want %v.", have, want)
	}
}

func TestOf(t *testing.T) {
	a := Of(dups...)
	if have, want := len(a), N/2; have != want {
		t.Fatalf("Unexpected len; have %v, want %v.", have, want)
	}
	if !sort.StringsAreSorted(a) {
		t.Fatal("sort.StringsAreSorted returned false")
	}
	if have := dups[1]; have != uniq[0] {
		t.Fatalf("Of modified its input; have %q at dups[1]", have)
	}
	if a := Of[string](); a != nil {
		t.Fatalf("Of() returned %v, want nil", a)
	}
}

func TestSearch(t *testing.T) {
	a := Of("b", "d", "f")
	for _, tc := range []struct {
		x  string
		i  int
		ok bool
	}{
		{"a", 0, false},
		{"b", 0, true},
		{"c", 1, false},
		{"f", 2, true},
		{"g", 3, false},
	} {
		i, ok := a.Search(tc.x)
		if i != tc.i || ok != tc.ok {
			t.Errorf("Search(%q) have %v %v, want %v %v", tc.x, i, ok, tc.i, tc.ok)
		}
		if have := a.Has(tc.x); have != tc.ok {
			t.Errorf("Has(%q) have %v, want %v", tc.x, have, tc.ok)
		}
	}
}

func TestIntersectionUnion(t *testing.T) {
	for _, tc := range []struct {
		a, b         Slice[string]
		inter, union int
	}{
		{nil, nil, 0, 0},
		{Of("a"), nil, 0, 1},
		{nil, Of("a"), 0, 1},
		{Of("a", "b"), Of("a", "b"), 2, 2},
		{Of("a", "c", "e"), Of("b", "d"), 0, 5},
		{Of("par", "ara", "rap", "apa", "rad", "adi", "dis", "ise"), Of("par", "ara", "rag", "agr", "gra", "rap", "aph"), 3, 12},
	} {
		if have := Intersection(tc.a, tc.b); have != tc.inter {
			t.Errorf("Intersection(%v, %v) have %v, want %v", tc.a, tc.b, have, tc.inter)
		}
		if have := Intersection(tc.b, tc.a); have != tc.inter {
			t.Errorf("Intersection(%v, %v) have %v, want %v", tc.b, tc.a, have, tc.inter)
		}
		if have := Union(tc.a, tc.b); have != tc.union {
			t.Errorf("Union(%v, %v) have %v, want %v", tc.a, tc.b, have, tc.union)
		}
	}
}

func TestChainUpsert(t *testing.T) {
	var ks Slice[string]
	var vs Chain[string]
	for _, kv := range [][2]string{{"b", "x"}, {"a", "y"}, {"b", "z"}, {"b", "x"}, {"c", "x"}} {
		i, ok := ks.Insert(kv[0])
		vs.Upsert(kv[1], i, ok)
	}
	if have, want := len(vs), len(ks); have != want {
		t.Fatalf("Unexpected chain len; have %v, want %v.", have, want)
	}
	want := []Slice[string]{{"y"}, {"x", "z"}, {"x"}}
	for i := range want {
		if len(vs[i]) != len(want[i]) {
			t.Fatalf("vs[%v] have %v, want %v", i, vs[i], want[i])
		}
		for j := range want[i] {
			if vs[i][j] != want[i][j] {
				t.Fatalf("vs[%v] have %v, want %v", i, vs[i], want[i])
			}
		}
	}
}

func TestSimpleUpsert(t *testing.T) {
	var a Simple[int]
	a.Upsert(2, 0, true)
	a.Upsert(1, 0, true)
	a.Upsert(3, 2, true)
	a.Upsert(5, 1, false)
	if have, want := len(a), 3; have != want {
		t.Fatalf("Unexpected len; have %v, want %v.", have, want)
	}
	if a[0] != 1 || a[1] != 5 || a[2] != 3 {
		t.Fatalf("Unexpected values; have %v, want [1 5 3]", a)
	}
}

func TestFilter(t *testing.T) {
	z := make([]string, len(dups))
	copy(z, dups)
	Filter(&z)
	if have, want := len(z), N/2; have != want {
		t.Fatalf("Unexpected len after Filter; have %v, want %v.", have, want)
	}
	if !sort.StringsAreSorted(z) {
		t.Fatal("sort.StringsAreSorted returned false")
	}
}

func BenchmarkSliceFilter(b *testing.B) {
	b.ReportAllocs()
	z := make([]string, len(dups))
	for n := 0; n < b.N; n++ {
		copy(z, dups)
		a := z
		Filter(&a)
		if len(a) != N/2 {
			b.Fail()
		}
	}
}

func BenchmarkOf(b *testing.B) {
	b.ReportAllocs()
	for n := 0; n < b.N; n++ {
		if a := Of(dups...); len(a) != N/2 {
			b.Fail()
		}
	}
}

func BenchmarkSliceInsertUniq(b *testing.B) {
	b.ReportAllocs()
	for n := 0; n < b.N; n++ {
		var a Slice[string]
		for _, s := range uniq {
			a.Insert(s)
		}
	}
}

func BenchmarkIntersection(b *testing.B) {
	x, y := Of(uniq[:N/2+N/4]...), Of(uniq[N/4:]...)
	b.ReportAllocs()
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		if Intersection(x, y) != N/2 {
			b.Fail()
		}
	}
}

func BenchmarkMapStringInsertUniq(b *testing.B) {
	b.ReportAllocs()
	for n := 0; n < b.N; n++ {
		m := make(map[string]struct{})
		for _, s := range uniq {
			m[s] = struct{}{}
		}
	}
}
