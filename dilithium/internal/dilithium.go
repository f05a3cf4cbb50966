package internal

import (
	"encoding/binary"

	"golang.org/x/crypto/sha3"
)

// NewKeyFromSeed derives a key pair deterministically from a 32-byte seed.
// SHAKE256 expands the seed into (ρ, ρ', key); A = ExpandA(ρ); s₁ and s₂ are
// sampled from ρ' with an incrementing nonce; t = A·s₁ + s₂ is split by
// Power2Round into the public t₁ and secret t₀.
func NewKeyFromSeed(seed *[SeedSize]byte) (*PublicKey, *PrivateKey) {
	var pk PublicKey
	var sk PrivateKey
	var sbuf [3 * SeedSize]byte
	var rhop [SeedSize]byte

	h := sha3.NewShake256()
	_, _ = h.Write(seed[:])
	_, _ = h.Read(sbuf[:])
	copy(sk.rho[:], sbuf[:SeedSize])
	copy(rhop[:], sbuf[SeedSize:2*SeedSize])
	copy(sk.key[:], sbuf[2*SeedSize:])
	pk.rho = sk.rho

	sk.A.Derive(&sk.rho)
	pk.A = sk.A

	nonce := uint8(0)
	for i := 0; i < L; i++ {
		PolyDeriveUniformLeqEta(&sk.s1[i], &rhop, nonce)
		nonce++
	}
	for i := 0; i < K; i++ {
		PolyDeriveUniformLeqEta(&sk.s2[i], &rhop, nonce)
		nonce++
	}

	// t = InvNTT(A·NTT(s₁)) + s₂
	sk.s1h = sk.s1
	sk.s1h.NTT()
	var t VecK
	for i := 0; i < K; i++ {
		PolyDotHat(&t[i], &sk.A[i], &sk.s1h)
		t[i].InvNTT()
	}
	t.Add(&t, &sk.s2)
	t.Freeze()

	t.Power2Round(&sk.t0, &pk.t1)
	pk.t1.PackT1(pk.t1p[:])

	// tr = CRH(ρ ‖ t1) = CRH(pk)
	var pkb [PublicKeySize]byte
	pk.Pack(&pkb)
	h.Reset()
	_, _ = h.Write(pkb[:])
	_, _ = h.Read(sk.tr[:])
	pk.tr = sk.tr

	// Remaining signing caches.
	sk.s2h = sk.s2
	sk.s2h.NTT()
	sk.t0h = sk.t0
	sk.t0h.NTT()

	return &pk, &sk
}

// Public computes the public key corresponding to sk.
func (sk *PrivateKey) Public() *PublicKey {
	pk := &PublicKey{rho: sk.rho, A: sk.A, tr: sk.tr}

	var t, t0 VecK
	for i := 0; i < K; i++ {
		PolyDotHat(&t[i], &sk.A[i], &sk.s1h)
		t[i].InvNTT()
	}
	t.Add(&t, &sk.s2)
	t.Freeze()
	t.Power2Round(&t0, &pk.t1)
	pk.t1.PackT1(pk.t1p[:])

	return pk
}

// challenge derives the sparse challenge polynomial with exactly 60 nonzero
// coefficients in {1, Q-1} from μ and the packed w₁, by a Fisher-Yates walk
// over the indices 196..255 driven by a SHAKE256 stream.
func challenge(c *Poly, mu *[CRHSize]byte, w1 *VecK) {
	var buf [shake256Rate]byte
	var w1p [K * PolyW1Size]byte
	w1.PackW1(w1p[:])

	h := sha3.NewShake256()
	_, _ = h.Write(mu[:])
	_, _ = h.Write(w1p[:])
	_, _ = h.Read(buf[:])

	signs := binary.LittleEndian.Uint64(buf[:8])
	pos := 8
	mask := uint64(1)

	*c = Poly{}
	for i := 196; i < 256; i++ {
		var b int
		for {
			if pos >= shake256Rate {
				_, _ = h.Read(buf[:])
				pos = 0
			}
			b = int(buf[pos])
			pos++
			if b <= i {
				break
			}
		}

		c[i] = c[b]
		if signs&mask != 0 {
			c[b] = Q - 1
		} else {
			c[b] = 1
		}
		mask <<= 1
	}
}

// SignTo signs msg with sk and writes the packed signature into sig, which
// must be at least SignatureSize bytes.  Signing is deterministic in
// (key, msg): the rejection loop draws the masking vector from a counter
// nonce, retrying until every norm bound and the hint weight hold.
func SignTo(sk *PrivateKey, msg []byte, sig []byte) {
	if len(sig) < SignatureSize {
		panic("sig must be at least SignatureSize bytes")
	}

	// μ = CRH(tr ‖ msg)
	var mu [CRHSize]byte
	h := sha3.NewShake256()
	_, _ = h.Write(sk.tr[:])
	_, _ = h.Write(msg)
	_, _ = h.Read(mu[:])

	var (
		y, yh, z              VecL
		w, w1                 VecK
		wcs2, wcs20, ct0, tmp VecK
		hint                  VecK
		c, chat               Poly
	)
	nonce := uint16(0)

	for attempt := 0; ; attempt++ {
		if attempt >= 576 {
			// One attempt succeeds with probability between 1/7 and 1/4,
			// so (6/7)⁵⁷⁶ < 2⁻¹²⁸: reaching this is a bug, not bad luck.
			panic("sign: rejection loop did not terminate")
		}

		// y = ExpandMask(key, μ, nonce)
		for i := 0; i < L; i++ {
			PolyDeriveUniformLeGamma1(&y[i], &sk.key, &mu, nonce)
			nonce++
		}

		// w = InvNTT(A·NTT(y))
		yh = y
		yh.NTT()
		for i := 0; i < K; i++ {
			PolyDotHat(&w[i], &sk.A[i], &yh)
			w[i].InvNTT()
		}

		// Decompose w and call the random oracle.
		w.CSubQ()
		w.Decompose(&tmp, &w1)
		challenge(&c, &mu, &w1)

		chat = c
		chat.NTT()

		// z = y + c·s₁; reject if it would leak the secret.
		for i := 0; i < L; i++ {
			z[i].MulHat(&chat, &sk.s1h[i])
			z[i].InvNTT()
		}
		z.Add(&z, &y)
		z.Freeze()
		if z.Exceeds(Gamma1 - Beta) {
			continue
		}

		// r = w - c·s₂; reject if w₁ cannot be recovered from it.
		for i := 0; i < K; i++ {
			wcs20[i].MulHat(&chat, &sk.s2h[i])
			wcs20[i].InvNTT()
		}
		wcs2.Sub(&w, &wcs20)
		wcs2.Freeze()
		wcs2.Decompose(&wcs20, &tmp)
		wcs20.CSubQ()
		if wcs20.Exceeds(Gamma2 - Beta) {
			continue
		}
		if tmp != w1 {
			continue
		}

		// c·t₀ must stay small enough for the hint to fit.
		for i := 0; i < K; i++ {
			ct0[i].MulHat(&chat, &sk.t0h[i])
			ct0[i].InvNTT()
		}
		ct0.CSubQ()
		if ct0.Exceeds(Gamma2) {
			continue
		}

		tmp.Add(&wcs2, &ct0)
		tmp.CSubQ()
		if hint.MakeHint(&wcs2, &tmp) > Omega {
			continue
		}

		us := unpackedSignature{z: z, h: hint, c: c}
		us.Pack(sig)
		return
	}
}

// Verify reports whether sig is a valid signature by pk on msg.  Malformed
// encodings fail closed; nothing here is hardened against timing.
func Verify(pk *PublicKey, msg []byte, sig []byte) bool {
	var us unpackedSignature
	if !us.Unpack(sig) {
		return false
	}
	if us.z.Exceeds(Gamma1 - Beta) {
		return false
	}

	// μ = CRH(CRH(pk) ‖ msg)
	var mu [CRHSize]byte
	h := sha3.NewShake256()
	_, _ = h.Write(pk.tr[:])
	_, _ = h.Write(msg)
	_, _ = h.Read(mu[:])

	// Az - c·2ᴰ·t₁ = w - c·s₂ + c·t₀ when the signature is honest.
	zh := us.z
	zh.NTT()
	var az, ct1 VecK
	for i := 0; i < K; i++ {
		PolyDotHat(&az[i], &pk.A[i], &zh)
	}

	chat := us.c
	chat.NTT()
	t1 := pk.t1
	t1.ShiftLeft(D)
	t1.NTT()
	for i := 0; i < K; i++ {
		ct1[i].MulHat(&chat, &t1[i])
	}

	var r, w1 VecK
	r.Sub(&az, &ct1)
	r.Reduce()
	r.InvNTT()
	r.CSubQ()

	w1.UseHint(&r, &us.h)

	var cp Poly
	challenge(&cp, &mu, &w1)

	diff := uint32(0)
	for i := 0; i < N; i++ {
		diff |= us.c[i] ^ cp[i]
	}
	return diff == 0
}
