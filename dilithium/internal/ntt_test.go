package internal

import (
	"testing"
)

func randPoly(p *Poly, seed uint8, nonce uint8) {
	var rho [SeedSize]byte
	rho[0] = seed
	PolyDeriveUniform(p, &rho, nonce)
}

// mulSchoolbook computes a·b in R_q directly, reducing X²⁵⁶ to -1.
func mulSchoolbook(c, a, b *Poly) {
	var acc [N]int64
	for i := 0; i < N; i++ {
		for j := 0; j < N; j++ {
			t := int64(a[i]) * int64(b[j]) % Q
			if i+j < N {
				acc[i+j] += t
			} else {
				acc[i+j-N] -= t
			}
		}
	}
	for i := 0; i < N; i++ {
		v := acc[i] % Q
		if v < 0 {
			v += Q
		}
		c[i] = uint32(v)
	}
}

func TestNTTIsInvertible(t *testing.T) {
	for seed := uint8(0); seed < 16; seed++ {
		var a, b Poly
		randPoly(&a, seed, 0)

		b = a
		b.NTT()
		b.Reduce()
		b.InvNTT()

		// The round trip carries a factor R which montReduce strips.
		for i := 0; i < N; i++ {
			got := csubq(montReduce(uint64(b[i])))
			if got != a[i] {
				t.Fatalf("seed %d: coefficient %d: %d != %d",
					seed, i, got, a[i])
			}
		}
	}
}

func TestMulHatMatchesSchoolbook(t *testing.T) {
	for seed := uint8(0); seed < 16; seed++ {
		var a, b, want, got Poly
		randPoly(&a, seed, 0)
		randPoly(&b, seed, 1)

		mulSchoolbook(&want, &a, &b)

		ah, bh := a, b
		ah.NTT()
		bh.NTT()
		got.MulHat(&ah, &bh)
		got.Reduce()
		got.InvNTT()
		got.Freeze()

		if got != want {
			t.Fatalf("seed %d: products differ", seed)
		}
	}
}

func BenchmarkNTT(b *testing.B) {
	var p Poly
	randPoly(&p, 1, 0)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.NTT()
		p.Reduce()
	}
}

func BenchmarkInvNTT(b *testing.B) {
	var p Poly
	randPoly(&p, 1, 0)
	p.NTT()
	p.Reduce()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q := p
		q.InvNTT()
	}
}
