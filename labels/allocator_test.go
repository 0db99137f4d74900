package labels

import (
	"strings"
	"testing"
)

func TestIncrement100(t *testing.T) {
	var rows []string
	ctr := ""
	for range 10 {
		var row []string
		for range 10 {
			ctr = Increment(ctr)
			row = append(row, ctr)
		}
		rows = append(rows, strings.Join(row, ", "))
	}
	got := strings.Join(rows, "\n")
	want := `_, a, b, c, d, e, f, g, h, i
j, k, l, m, n, o, p, q, r, s
t, u, v, w, x, y, z, __, _a, _b
_c, _d, _e, _f, _g, _h, _i, _j, _k, _l
_m, _n, _o, _p, _q, _r, _s, _t, _u, _v
_w, _x, _y, _z, a_, aa, ab, ac, ad, ae
af, ag, ah, ai, aj, ak, al, am, an, ao
ap, aq, ar, as, at, au, av, aw, ax, ay
az, b_, ba, bb, bc, bd, be, bf, bg, bh
bi, bj, bk, bl, bm, bn, bo, bp, bq, br`
	if got != want {
		t.Fatalf("got\n%s", got)
	}
}

func TestIncrementExhaustsLength3(t *testing.T) {
	n := 27 + 27*27 + 27*27*27
	seen := make(map[string]bool, n)
	ctr := ""
	for range n {
		ctr = Increment(ctr)
		if seen[ctr] {
			t.Fatalf("duplicated %q", ctr)
		}
		if len(ctr) > 3 {
			t.Fatalf("got %q", ctr)
		}
		seen[ctr] = true
	}
	if ctr = Increment(ctr); ctr != "____" {
		t.Fatalf("got %q", ctr)
	}
}

func TestAllocatorSkipsSeeded(t *testing.T) {
	alloc := NewAllocator("_", "A", "Foo")
	if got := alloc.Anonymous(); got != "b" {
		t.Fatalf("got %s", got)
	}
	if got := alloc.Anonymous(); got != "c" {
		t.Fatalf("got %s", got)
	}
	for _, want := range []string{"foo_", "fooa", "foob"} {
		if got := alloc.Named("foo"); got != want {
			t.Fatalf("got %s, want %s", got, want)
		}
	}
	if got := alloc.Named("TOUCH"); got != "TOUCH_" {
		t.Fatalf("got %s", got)
	}
	if got := alloc.Named("d"); got != "d" {
		t.Fatalf("got %s", got)
	}
	// d was handed out by Named, the counter moves past it
	if got := alloc.Anonymous(); got != "e" {
		t.Fatalf("got %s", got)
	}
}

func TestAllocatorUnique(t *testing.T) {
	alloc := NewAllocator()
	seen := make(map[string]bool)
	for i := range 200 {
		var name string
		if i%3 == 0 {
			name = alloc.Named("loop")
		} else {
			name = alloc.Anonymous()
		}
		key := strings.ToLower(name)
		if seen[key] {
			t.Fatalf("duplicated %s", name)
		}
		seen[key] = true
	}
}

func TestPreferredName(t *testing.T) {
	for in, want := range map[string]string{
		"loop":    "loop",
		"foo1bar": "foo_bar",
		"a__9b":   "a_b",
		"123":     "_",
		"2nd":     "_nd",
	} {
		if got := PreferredName(in); got != want {
			t.Fatalf("%s: got %s", in, got)
		}
	}
}
