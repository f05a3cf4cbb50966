package internal

import (
	"encoding/binary"
	"testing"
)

func testSeed(i uint64) *[SeedSize]byte {
	var seed [SeedSize]byte
	binary.LittleEndian.PutUint64(seed[:], i)
	return &seed
}

func TestSignThenVerify(t *testing.T) {
	var sig [SignatureSize]byte
	var msg [59]byte

	for i := uint64(0); i < 16; i++ {
		pk, sk := NewKeyFromSeed(testSeed(i))

		binary.LittleEndian.PutUint64(msg[:], i)
		SignTo(sk, msg[:], sig[:])

		if !Verify(pk, msg[:], sig[:]) {
			t.Fatalf("seed %d: signature does not verify", i)
		}

		// Any change to the message must invalidate the signature.
		msg[0] ^= 1
		if Verify(pk, msg[:], sig[:]) {
			t.Fatalf("seed %d: signature verifies altered message", i)
		}
		msg[0] ^= 1

		// As must a change to the signature itself.
		for _, j := range []int{0, L*PolyLeGamma1Size + 1, SignatureSize - 9} {
			sig[j] ^= 0x40
			if Verify(pk, msg[:], sig[:]) {
				t.Fatalf("seed %d: altered signature byte %d verifies", i, j)
			}
			sig[j] ^= 0x40
		}

		// And a different key must reject it.
		pk2, _ := NewKeyFromSeed(testSeed(i + 100))
		if Verify(pk2, msg[:], sig[:]) {
			t.Fatalf("seed %d: signature verifies under wrong key", i)
		}
	}
}

func TestSigningIsDeterministic(t *testing.T) {
	var sig1, sig2 [SignatureSize]byte
	msg := []byte("attack at dawn")

	_, sk := NewKeyFromSeed(testSeed(42))
	SignTo(sk, msg, sig1[:])
	SignTo(sk, msg, sig2[:])
	if sig1 != sig2 {
		t.Fatal("two signatures of the same message differ")
	}

	_, sk2 := NewKeyFromSeed(testSeed(42))
	SignTo(sk2, msg, sig2[:])
	if sig1 != sig2 {
		t.Fatal("regenerated key signs differently")
	}
}

func TestPublicKeyPackUnpack(t *testing.T) {
	var buf [PublicKeySize]byte
	var pk2 PublicKey

	for i := uint64(0); i < 8; i++ {
		pk, _ := NewKeyFromSeed(testSeed(i))
		pk.Pack(&buf)
		pk2.Unpack(&buf)
		if !pk.Equal(&pk2) {
			t.Fatalf("seed %d: public key round trip failed", i)
		}
		if pk.tr != pk2.tr {
			t.Fatalf("seed %d: tr not rebuilt", i)
		}
	}
}

func TestPrivateKeyPackUnpack(t *testing.T) {
	var buf [PrivateKeySize]byte
	var sig1, sig2 [SignatureSize]byte
	var sk2 PrivateKey
	msg := []byte("round trip")

	for i := uint64(0); i < 8; i++ {
		_, sk := NewKeyFromSeed(testSeed(i))
		sk.Pack(&buf)
		sk2.Unpack(&buf)
		if !sk.Equal(&sk2) {
			t.Fatalf("seed %d: private key round trip failed", i)
		}

		// The rebuilt caches must sign identically.
		SignTo(sk, msg, sig1[:])
		SignTo(&sk2, msg, sig2[:])
		if sig1 != sig2 {
			t.Fatalf("seed %d: unpacked key signs differently", i)
		}
	}
}

func TestPublicFromPrivate(t *testing.T) {
	for i := uint64(0); i < 8; i++ {
		pk, sk := NewKeyFromSeed(testSeed(i))
		if !pk.Equal(sk.Public()) {
			t.Fatalf("seed %d: derived public key differs", i)
		}
	}
}

// Signature decoding must reject every malformed hint encoding outright.
func TestSignatureDecodeRejectsMalformedHints(t *testing.T) {
	var us unpackedSignature
	buf := make([]byte, SignatureSize)
	hb := buf[L*PolyLeGamma1Size : L*PolyLeGamma1Size+Omega+K]

	if !us.Unpack(buf) {
		t.Fatal("all-zero hint section must decode")
	}

	// Running totals may not decrease.
	hb[Omega] = 5
	hb[Omega+1] = 3
	if us.Unpack(buf) {
		t.Fatal("decreasing totals accepted")
	}
	hb[Omega], hb[Omega+1] = 0, 0

	// Nor exceed the weight limit.
	hb[Omega] = Omega + 1
	if us.Unpack(buf) {
		t.Fatal("total above limit accepted")
	}
	hb[Omega] = 0

	// Index lists must be strictly increasing.
	for i := 0; i < K; i++ {
		hb[Omega+i] = 2
	}
	hb[0], hb[1] = 5, 5
	if us.Unpack(buf) {
		t.Fatal("repeated index accepted")
	}
	hb[0], hb[1] = 0, 0
	for i := 0; i < K; i++ {
		hb[Omega+i] = 0
	}

	// Unused index bytes must be zero.
	hb[Omega-1] = 1
	if us.Unpack(buf) {
		t.Fatal("nonzero padding accepted")
	}
	hb[Omega-1] = 0

	// Only 60 sign bits exist.
	buf[SignatureSize-1] = 0x80
	if us.Unpack(buf) {
		t.Fatal("stray sign bit accepted")
	}
}

func TestSignatureRoundTrip(t *testing.T) {
	var sig [SignatureSize]byte
	var us unpackedSignature
	var buf2 [SignatureSize]byte
	msg := []byte("re-encode")

	_, sk := NewKeyFromSeed(testSeed(9))
	SignTo(sk, msg, sig[:])

	if !us.Unpack(sig[:]) {
		t.Fatal("honest signature does not decode")
	}
	us.Pack(buf2[:])
	if sig != buf2 {
		t.Fatal("re-encoded signature differs")
	}
}

func BenchmarkKeyGen(b *testing.B) {
	seed := testSeed(1)
	for i := 0; i < b.N; i++ {
		NewKeyFromSeed(seed)
	}
}

func BenchmarkSign(b *testing.B) {
	var sig [SignatureSize]byte
	var msg [8]byte
	_, sk := NewKeyFromSeed(testSeed(1))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		binary.LittleEndian.PutUint64(msg[:], uint64(i))
		SignTo(sk, msg[:], sig[:])
	}
}

func BenchmarkVerify(b *testing.B) {
	var sig [SignatureSize]byte
	msg := []byte("bench")
	pk, sk := NewKeyFromSeed(testSeed(1))
	SignTo(sk, msg, sig[:])
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Verify(pk, msg, sig[:])
	}
}
