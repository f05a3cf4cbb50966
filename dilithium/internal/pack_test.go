package internal

import (
	"testing"
)

func TestPackLeqEtaRoundTrip(t *testing.T) {
	var p, q Poly
	var seed [SeedSize]byte
	var buf [PolyLeqEtaSize]byte

	for nonce := uint8(0); nonce < 8; nonce++ {
		PolyDeriveUniformLeqEta(&p, &seed, nonce)
		p.PackLeqEta(buf[:])
		q.UnpackLeqEta(buf[:])
		if p != q {
			t.Fatalf("nonce %d: round trip failed", nonce)
		}
	}
}

func TestPackT0T1RoundTrip(t *testing.T) {
	var p, t0, t1, u Poly
	var b0 [PolyT0Size]byte
	var b1 [PolyT1Size]byte

	for seed := uint8(0); seed < 8; seed++ {
		randPoly(&p, seed, 0)
		p.Power2Round(&t0, &t1)

		t0.PackT0(b0[:])
		u.UnpackT0(b0[:])
		if u != t0 {
			t.Fatalf("seed %d: t0 round trip failed", seed)
		}

		t1.PackT1(b1[:])
		u.UnpackT1(b1[:])
		if u != t1 {
			t.Fatalf("seed %d: t1 round trip failed", seed)
		}
	}
}

func TestPackLeGamma1RoundTrip(t *testing.T) {
	var p, q Poly
	var seed [SeedSize]byte
	var mu [CRHSize]byte
	var buf [PolyLeGamma1Size]byte

	for nonce := uint16(0); nonce < 8; nonce++ {
		PolyDeriveUniformLeGamma1(&p, &seed, &mu, nonce)
		p.Freeze()

		p.PackLeGamma1(buf[:])
		q.UnpackLeGamma1(buf[:])
		if p != q {
			t.Fatalf("nonce %d: round trip failed", nonce)
		}
	}
}

func TestPackW1Width(t *testing.T) {
	var p, p0, p1 Poly
	var buf [PolyW1Size]byte

	randPoly(&p, 3, 0)
	p.Decompose(&p0, &p1)
	p1.PackW1(buf[:])

	for i := 0; i < N; i++ {
		got := uint32(buf[i/2]>>(4*uint(i%2))) & 0xf
		if got != p1[i] {
			t.Fatalf("coefficient %d: packed %d, want %d", i, got, p1[i])
		}
	}
}
