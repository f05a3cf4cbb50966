package internal

import (
	"testing"
)

func TestDeriveUniform(t *testing.T) {
	var p, q Poly
	var rho [SeedSize]byte
	rho[3] = 0xa5

	PolyDeriveUniform(&p, &rho, 7)
	for i, v := range p {
		if v >= Q {
			t.Fatalf("coefficient %d out of range: %d", i, v)
		}
	}

	PolyDeriveUniform(&q, &rho, 7)
	if p != q {
		t.Fatal("sampling is not deterministic")
	}

	PolyDeriveUniform(&q, &rho, 8)
	if p == q {
		t.Fatal("nonce does not separate domains")
	}
}

func TestDeriveUniformLeqEta(t *testing.T) {
	var p Poly
	var seed [SeedSize]byte
	seed[1] = 0x3c

	for nonce := uint8(0); nonce < 8; nonce++ {
		PolyDeriveUniformLeqEta(&p, &seed, nonce)
		for i, v := range p {
			if v < Q-Eta || v > Q+Eta {
				t.Fatalf("nonce %d: coefficient %d out of range: %d",
					nonce, i, v)
			}
		}
	}
}

func TestDeriveUniformLeGamma1(t *testing.T) {
	var p Poly
	var seed [SeedSize]byte
	var mu [CRHSize]byte
	seed[0] = 1
	mu[0] = 2

	for nonce := uint16(0); nonce < 8; nonce++ {
		PolyDeriveUniformLeGamma1(&p, &seed, &mu, nonce)
		for i, v := range p {
			if v < Q-Gamma1+1 || v > Q+Gamma1-1 {
				t.Fatalf("nonce %d: coefficient %d out of range: %d",
					nonce, i, v)
			}
		}
	}
}

func TestChallengeWeight(t *testing.T) {
	var mu [CRHSize]byte
	var w1 VecK
	var c Poly

	for seed := 0; seed < 16; seed++ {
		mu[0] = byte(seed)
		for i := 0; i < K; i++ {
			randPoly(&w1[i], byte(seed), uint8(i))
			for j := range w1[i] {
				w1[i][j] &= 0xf
			}
		}

		challenge(&c, &mu, &w1)

		nonzero := 0
		for i, v := range c {
			if v == 0 {
				continue
			}
			if v != 1 && v != Q-1 {
				t.Fatalf("seed %d: coefficient %d is %d", seed, i, v)
			}
			nonzero++
		}
		if nonzero != 60 {
			t.Fatalf("seed %d: challenge weight %d", seed, nonzero)
		}

		var c2 Poly
		challenge(&c2, &mu, &w1)
		if c != c2 {
			t.Fatalf("seed %d: challenge is not deterministic", seed)
		}
	}
}
