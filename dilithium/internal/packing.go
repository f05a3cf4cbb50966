package internal

import (
	"encoding/binary"

	"golang.org/x/crypto/sha3"
)

// PublicKey is an expanded Dilithium public key.
type PublicKey struct {
	rho [SeedSize]byte
	t1  VecK

	// Cached values, filled by key generation and Unpack.
	t1p [K * PolyT1Size]byte
	A   Mat           // ExpandA(ρ)
	tr  [CRHSize]byte // CRH(ρ ‖ t1)
}

// PrivateKey is an expanded Dilithium private key.
type PrivateKey struct {
	rho [SeedSize]byte
	key [SeedSize]byte
	tr  [CRHSize]byte
	s1  VecL
	s2  VecK
	t0  VecK

	// Cached values, filled by key generation and Unpack.
	A   Mat  // ExpandA(ρ)
	s1h VecL // NTT(s₁)
	s2h VecK // NTT(s₂)
	t0h VecK // NTT(t₀)
}

// Pack writes the public key in wire format: ρ ‖ t1.
func (pk *PublicKey) Pack(buf *[PublicKeySize]byte) {
	copy(buf[:SeedSize], pk.rho[:])
	copy(buf[SeedSize:], pk.t1p[:])
}

// Unpack sets pk to the public key encoded in buf, rebuilding the cached
// matrix and tr.
func (pk *PublicKey) Unpack(buf *[PublicKeySize]byte) {
	copy(pk.rho[:], buf[:SeedSize])
	copy(pk.t1p[:], buf[SeedSize:])

	pk.t1.UnpackT1(pk.t1p[:])
	pk.A.Derive(&pk.rho)

	// tr = CRH(ρ ‖ t1) = CRH(pk)
	h := sha3.NewShake256()
	_, _ = h.Write(buf[:])
	_, _ = h.Read(pk.tr[:])
}

// Pack writes the private key in wire format: ρ ‖ key ‖ tr ‖ s1 ‖ s2 ‖ t0.
func (sk *PrivateKey) Pack(buf *[PrivateKeySize]byte) {
	copy(buf[:32], sk.rho[:])
	copy(buf[32:64], sk.key[:])
	copy(buf[64:64+CRHSize], sk.tr[:])
	off := 64 + CRHSize
	sk.s1.PackLeqEta(buf[off:])
	off += L * PolyLeqEtaSize
	sk.s2.PackLeqEta(buf[off:])
	off += K * PolyLeqEtaSize
	sk.t0.PackT0(buf[off:])
}

// Unpack sets sk to the private key encoded in buf and rebuilds the cached
// matrix and NTT-domain vectors used during signing.
func (sk *PrivateKey) Unpack(buf *[PrivateKeySize]byte) {
	copy(sk.rho[:], buf[:32])
	copy(sk.key[:], buf[32:64])
	copy(sk.tr[:], buf[64:64+CRHSize])
	off := 64 + CRHSize
	sk.s1.UnpackLeqEta(buf[off:])
	off += L * PolyLeqEtaSize
	sk.s2.UnpackLeqEta(buf[off:])
	off += K * PolyLeqEtaSize
	sk.t0.UnpackT0(buf[off:])

	sk.A.Derive(&sk.rho)
	sk.s1h = sk.s1
	sk.s1h.NTT()
	sk.s2h = sk.s2
	sk.s2h.NTT()
	sk.t0h = sk.t0
	sk.t0h.NTT()
}

// Equal returns whether the two public keys are equal.
func (pk *PublicKey) Equal(other *PublicKey) bool {
	return pk.rho == other.rho && pk.t1 == other.t1
}

// Equal returns whether the two private keys are equal.
func (sk *PrivateKey) Equal(other *PrivateKey) bool {
	acc := uint32(0)
	for i := 0; i < SeedSize; i++ {
		acc |= uint32(sk.rho[i] ^ other.rho[i])
		acc |= uint32(sk.key[i] ^ other.key[i])
	}
	for i := 0; i < CRHSize; i++ {
		acc |= uint32(sk.tr[i] ^ other.tr[i])
	}
	for i := 0; i < L; i++ {
		for j := 0; j < N; j++ {
			acc |= sk.s1[i][j] ^ other.s1[i][j]
		}
	}
	for i := 0; i < K; i++ {
		for j := 0; j < N; j++ {
			acc |= sk.s2[i][j] ^ other.s2[i][j]
			acc |= sk.t0[i][j] ^ other.t0[i][j]
		}
	}
	return acc == 0
}

// unpackedSignature is a decoded signature (z, h, c).
type unpackedSignature struct {
	z VecL
	h VecK
	c Poly
}

// Pack writes the signature in wire format: z ‖ h ‖ c.  The hint vector is
// encoded as per-component sorted index lists with running totals, the
// challenge as a presence bitmap followed by a 64-bit sign mask.
func (sig *unpackedSignature) Pack(buf []byte) {
	sig.z.PackLeGamma1(buf)

	hb := buf[L*PolyLeGamma1Size : L*PolyLeGamma1Size+Omega+K]
	for i := range hb {
		hb[i] = 0
	}
	k := 0
	for i := 0; i < K; i++ {
		for j := 0; j < N; j++ {
			if sig.h[i][j] != 0 {
				hb[k] = byte(j)
				k++
			}
		}
		hb[Omega+i] = byte(k)
	}

	cb := buf[L*PolyLeGamma1Size+Omega+K:]
	for i := 0; i < N/8; i++ {
		cb[i] = 0
	}
	signs := uint64(0)
	mask := uint64(1)
	for i := 0; i < N/8; i++ {
		for j := 0; j < 8; j++ {
			if sig.c[8*i+j] != 0 {
				cb[i] |= 1 << uint(j)
				if sig.c[8*i+j] == Q-1 {
					signs |= mask
				}
				mask <<= 1
			}
		}
	}
	binary.LittleEndian.PutUint64(cb[N/8:], signs)
}

// Unpack sets sig to the signature encoded in buf and reports whether the
// encoding is well formed.  The validity rules on the hint index lists and
// the sign mask are required for strong unforgeability; any violation fails
// the decode.
func (sig *unpackedSignature) Unpack(buf []byte) bool {
	if len(buf) < SignatureSize {
		return false
	}
	sig.z.UnpackLeGamma1(buf)

	hb := buf[L*PolyLeGamma1Size : L*PolyLeGamma1Size+Omega+K]
	sig.h = VecK{}
	k := 0
	for i := 0; i < K; i++ {
		end := int(hb[Omega+i])
		if end < k || end > Omega {
			return false
		}
		for j := k; j < end; j++ {
			// Index lists are strictly increasing within a component.
			if j > k && hb[j] <= hb[j-1] {
				return false
			}
			sig.h[i][hb[j]] = 1
		}
		k = end
	}
	// Index bytes past the final total are zero.
	for j := k; j < Omega; j++ {
		if hb[j] != 0 {
			return false
		}
	}

	cb := buf[L*PolyLeGamma1Size+Omega+K:]
	signs := binary.LittleEndian.Uint64(cb[N/8:])
	// Only τ = 60 sign bits may be set.
	if signs>>60 != 0 {
		return false
	}
	sig.c = Poly{}
	mask := uint64(1)
	for i := 0; i < N/8; i++ {
		for j := 0; j < 8; j++ {
			if (cb[i]>>uint(j))&1 != 0 {
				if signs&mask != 0 {
					sig.c[8*i+j] = Q - 1
				} else {
					sig.c[8*i+j] = 1
				}
				mask <<= 1
			}
		}
	}
	return true
}
