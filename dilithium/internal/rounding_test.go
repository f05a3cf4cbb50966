package internal

import (
	"math/rand"
	"testing"
)

func TestPower2Round(t *testing.T) {
	for a := uint32(0); a < Q; a += 365 {
		a0Plus, a1 := power2round(a)
		a0 := int32(a0Plus) - Q

		if a0 <= -(1<<(D-1)) || a0 > 1<<(D-1) {
			t.Fatalf("a=%d: low part %d out of range", a, a0)
		}
		if int64(a1)<<D+int64(a0) != int64(a) {
			t.Fatalf("a=%d: %d·2ᴰ + %d != a", a, a1, a0)
		}
	}
}

func TestDecompose(t *testing.T) {
	for a := uint32(0); a < Q; a += 365 {
		a0Plus, a1 := decompose(a)
		a0 := int32(a0Plus) - Q

		recombined := a0 + int32(Alpha*a1)
		if a1 == 0 && a0 < 0 {
			// The topmost interval folds onto zero.
			recombined += Q
		}
		if a1 > 15 {
			t.Fatalf("a=%d: high part %d out of range", a, a1)
		}
		if recombined != int32(a) {
			t.Fatalf("a=%d: recombined to %d", a, recombined)
		}
	}
}

func TestUseHint(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	for i := 0; i < 100000; i++ {
		w := uint32(rnd.Int31n(Q))
		e := rnd.Int31n(2*Gamma2-1) - (Gamma2 - 1)

		// wp = w + e mod Q, kept canonical.
		wp := uint32((int32(w) + e + Q) % Q)

		_, w1 := decompose(w)
		hint := makeHint(w, wp)
		if got := useHint(wp, hint); got != w1 {
			t.Fatalf("w=%d e=%d: recovered %d, want %d", w, e, got, w1)
		}
	}
}

func TestMakeHintCountsDifferences(t *testing.T) {
	var a, b, h Poly
	for i := 0; i < N; i++ {
		a[i] = uint32(i * 1000 % Q)
	}
	b = a
	pop := h.MakeHint(&a, &b)
	if pop != 0 {
		t.Fatalf("identical inputs produced %d hints", pop)
	}
}
