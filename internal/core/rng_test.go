package core

import "testing"

func TestRandDeterministic(t *testing.T) {
	a := NewRand(42)
	b := NewRand(42)
	for i := 0; i < 1000; i++ {
		if av, bv := a.Rand16(), b.Rand16(); av != bv {
			t.Fatalf("draw %d diverged: %d vs %d", i, av, bv)
		}
	}

	a.Seed(42)
	first := a.Rand16()
	a.Seed(42)
	if second := a.Rand16(); second != first {
		t.Fatalf("reseeding did not replay the stream: %d vs %d", first, second)
	}
}

func TestRand16Bounds(t *testing.T) {
	r := NewRand(7)
	for i := 0; i < 10000; i++ {
		v := r.Rand16()
		if v < 0 || v > 0xffff {
			t.Fatalf("Rand16 out of range: %d", v)
		}
	}
}

func TestRangeInclusive(t *testing.T) {
	r := NewRand(1)
	seen := map[int]bool{}
	for i := 0; i < 10000; i++ {
		v := r.Range(3)
		if v < 0 || v > 3 {
			t.Fatalf("Range(3) produced %d", v)
		}
		seen[v] = true
	}
	for want := 0; want <= 3; want++ {
		if !seen[want] {
			t.Fatalf("Range(3) never produced %d", want)
		}
	}

	if v := r.Range(0); v != 0 {
		t.Fatalf("Range(0) = %d, want 0", v)
	}
}

func TestERandSkewsLow(t *testing.T) {
	r := NewRand(9)
	var sumE, sumU int
	const n = 20000
	for i := 0; i < n; i++ {
		sumE += r.ERand(100)
		sumU += r.Range(100)
	}
	if sumE >= sumU {
		t.Fatalf("ERand mean %d not below uniform mean %d", sumE/n, sumU/n)
	}
}

func TestStateRoundTrip(t *testing.T) {
	r := NewRand(5)
	r.Rand16()
	state := r.State()
	want := r.Rand16()

	r.SetState(state)
	if got := r.Rand16(); got != want {
		t.Fatalf("restored state drew %d, want %d", got, want)
	}
}
