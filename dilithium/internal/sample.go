package internal

import (
	"encoding/binary"

	"golang.org/x/crypto/sha3"
)

const (
	shake128Rate = 168
	shake256Rate = 136
)

// PolyDeriveUniform samples p uniformly from [0, Q) out of a SHAKE128 stream
// seeded with ρ and a single domain-separation byte, rejecting 3-byte
// little-endian candidates that land outside the field.
func PolyDeriveUniform(p *Poly, rho *[SeedSize]byte, nonce uint8) {
	var buf [5 * shake128Rate]byte

	h := sha3.NewShake128()
	_, _ = h.Write(rho[:])
	_, _ = h.Write([]byte{nonce})
	_, _ = h.Read(buf[:])

	ctr := rejUniform(p[:], buf[:])
	for ctr < N {
		_, _ = h.Read(buf[:shake128Rate])
		ctr += rejUniform(p[ctr:], buf[:shake128Rate])
	}
}

func rejUniform(a []uint32, buf []byte) int {
	ctr, pos := 0, 0
	for ctr < len(a) && pos+3 <= len(buf) {
		v := uint32(buf[pos]) | uint32(buf[pos+1])<<8 | uint32(buf[pos+2])<<16
		v &= 0x7fffff
		pos += 3

		if v < Q {
			a[ctr] = v
			ctr++
		}
	}
	return ctr
}

// PolyDeriveUniformLeqEta samples p with coefficients in [Q-η, Q+η] from
// SHAKE256(seed ‖ nonce), two nibble candidates per squeezed byte.
func PolyDeriveUniformLeqEta(p *Poly, seed *[SeedSize]byte, nonce uint8) {
	var buf [2 * shake256Rate]byte

	h := sha3.NewShake256()
	_, _ = h.Write(seed[:])
	_, _ = h.Write([]byte{nonce})
	_, _ = h.Read(buf[:])

	ctr := rejEta(p[:], buf[:])
	for ctr < N {
		_, _ = h.Read(buf[:shake256Rate])
		ctr += rejEta(p[ctr:], buf[:shake256Rate])
	}
}

func rejEta(a []uint32, buf []byte) int {
	ctr, pos := 0, 0
	for ctr < len(a) && pos < len(buf) {
		var t0, t1 uint32
		if Eta <= 3 {
			t0 = uint32(buf[pos] & 0x07)
			t1 = uint32(buf[pos] >> 5)
		} else {
			t0 = uint32(buf[pos] & 0x0f)
			t1 = uint32(buf[pos] >> 4)
		}
		pos++

		if t0 <= 2*Eta {
			a[ctr] = Q + Eta - t0
			ctr++
		}
		if t1 <= 2*Eta && ctr < len(a) {
			a[ctr] = Q + Eta - t1
			ctr++
		}
	}
	return ctr
}

// PolyDeriveUniformLeGamma1 samples the masking polynomial with coefficients
// in (Q-γ₁, Q+γ₁) from SHAKE256(seed ‖ μ ‖ nonce), two 20-bit candidates per
// five squeezed bytes.  A trailing byte that cannot complete a group is
// discarded, as in the reference.
func PolyDeriveUniformLeGamma1(p *Poly, seed *[SeedSize]byte, mu *[CRHSize]byte, nonce uint16) {
	var buf [5 * shake256Rate]byte
	var nb [2]byte
	binary.LittleEndian.PutUint16(nb[:], nonce)

	h := sha3.NewShake256()
	_, _ = h.Write(seed[:])
	_, _ = h.Write(mu[:])
	_, _ = h.Write(nb[:])
	_, _ = h.Read(buf[:])

	ctr := rejGamma1(p[:], buf[:])
	for ctr < N {
		_, _ = h.Read(buf[:shake256Rate])
		ctr += rejGamma1(p[ctr:], buf[:shake256Rate])
	}
}

func rejGamma1(a []uint32, buf []byte) int {
	ctr, pos := 0, 0
	for ctr < len(a) && pos+5 <= len(buf) {
		t0 := uint32(buf[pos]) | uint32(buf[pos+1])<<8 | uint32(buf[pos+2])<<16
		t0 &= 0xfffff

		t1 := uint32(buf[pos+2])>>4 | uint32(buf[pos+3])<<4 | uint32(buf[pos+4])<<12

		pos += 5

		if t0 <= 2*Gamma1-2 {
			a[ctr] = Q + Gamma1 - 1 - t0
			ctr++
		}
		if t1 <= 2*Gamma1-2 && ctr < len(a) {
			a[ctr] = Q + Gamma1 - 1 - t1
			ctr++
		}
	}
	return ctr
}
