// Package dilithium implements the Dilithium signature scheme (round 2 of
// the NIST PQC standardisation effort).
//
// The security level is fixed at compile time.  The default is the
// recommended parameter set, Dilithium-III; the build tags dilithium_mode0,
// dilithium_mode1 and dilithium_mode3 select the weakest through strongest
// of the remaining sets.  Signing is deterministic: the same key and message
// always produce the same signature.
package dilithium

import (
	"crypto"
	cryptoRand "crypto/rand"
	"io"

	"github.com/pkg/errors"

	"github.com/Oxedize/fe2o3-sub000/dilithium/internal"
)

const (
	// ModeName is the name of the parameter set selected at build time.
	ModeName = internal.Name

	// Size of seed for NewKeyFromSeed.
	SeedSize = internal.SeedSize

	// Size of a packed PublicKey.
	PublicKeySize = internal.PublicKeySize

	// Size of a packed PrivateKey.
	PrivateKeySize = internal.PrivateKeySize

	// Size of a signature.
	SignatureSize = internal.SignatureSize
)

// PublicKey is the type of Dilithium public keys.
type PublicKey internal.PublicKey

// PrivateKey is the type of Dilithium private keys.
type PrivateKey internal.PrivateKey

// GenerateKey generates a public/private key pair using entropy from rand.
// If rand is nil, crypto/rand.Reader will be used.
func GenerateKey(rand io.Reader) (*PublicKey, *PrivateKey, error) {
	if rand == nil {
		rand = cryptoRand.Reader
	}

	var seed [SeedSize]byte
	if _, err := io.ReadFull(rand, seed[:]); err != nil {
		return nil, nil, errors.Wrap(err, "reading key seed")
	}

	pk, sk := internal.NewKeyFromSeed(&seed)
	return (*PublicKey)(pk), (*PrivateKey)(sk), nil
}

// NewKeyFromSeed derives a public/private key pair using the given seed.
func NewKeyFromSeed(seed *[SeedSize]byte) (*PublicKey, *PrivateKey) {
	pk, sk := internal.NewKeyFromSeed(seed)
	return (*PublicKey)(pk), (*PrivateKey)(sk)
}

// SignTo signs the given message and writes the signature into sig.
// It will panic if sig is not of length at least SignatureSize.
func SignTo(sk *PrivateKey, msg []byte, sig []byte) {
	internal.SignTo((*internal.PrivateKey)(sk), msg, sig)
}

// Sign signs the given message and returns the signature.
func Sign(sk *PrivateKey, msg []byte) []byte {
	var sig [SignatureSize]byte
	SignTo(sk, msg, sig[:])
	return sig[:]
}

// Verify checks whether the given signature by pk on msg is valid.
func Verify(pk *PublicKey, msg []byte, sig []byte) bool {
	return internal.Verify((*internal.PublicKey)(pk), msg, sig)
}

// Sets pk to the public key encoded in buf.
func (pk *PublicKey) Unpack(buf *[PublicKeySize]byte) {
	(*internal.PublicKey)(pk).Unpack(buf)
}

// Sets sk to the private key encoded in buf.
func (sk *PrivateKey) Unpack(buf *[PrivateKeySize]byte) {
	(*internal.PrivateKey)(sk).Unpack(buf)
}

// Packs the public key into buf.
func (pk *PublicKey) Pack(buf *[PublicKeySize]byte) {
	(*internal.PublicKey)(pk).Pack(buf)
}

// Packs the private key into buf.
func (sk *PrivateKey) Pack(buf *[PrivateKeySize]byte) {
	(*internal.PrivateKey)(sk).Pack(buf)
}

// Packs the public key.
func (pk *PublicKey) Bytes() []byte {
	var buf [PublicKeySize]byte
	pk.Pack(&buf)
	return buf[:]
}

// Packs the private key.
func (sk *PrivateKey) Bytes() []byte {
	var buf [PrivateKeySize]byte
	sk.Pack(&buf)
	return buf[:]
}

// Packs the public key.
func (pk *PublicKey) MarshalBinary() ([]byte, error) {
	return pk.Bytes(), nil
}

// Packs the private key.
func (sk *PrivateKey) MarshalBinary() ([]byte, error) {
	return sk.Bytes(), nil
}

// Unpacks the public key from data.
func (pk *PublicKey) UnmarshalBinary(data []byte) error {
	if len(data) != PublicKeySize {
		return errors.Errorf("packed public key must be of %d bytes", PublicKeySize)
	}
	var buf [PublicKeySize]byte
	copy(buf[:], data)
	pk.Unpack(&buf)
	return nil
}

// Unpacks the private key from data.
func (sk *PrivateKey) UnmarshalBinary(data []byte) error {
	if len(data) != PrivateKeySize {
		return errors.Errorf("packed private key must be of %d bytes", PrivateKeySize)
	}
	var buf [PrivateKeySize]byte
	copy(buf[:], data)
	sk.Unpack(&buf)
	return nil
}

// Sign signs the given message.
//
// opts.HashFunc() must return zero, which can be achieved by passing
// crypto.Hash(0) for opts.  rand is ignored.  Will only return an error
// if opts.HashFunc() is non-zero.
//
// This function is used to make PrivateKey implement the crypto.Signer
// interface.  The package-level SignTo function might be more convenient
// to use.
func (sk *PrivateKey) Sign(rand io.Reader, msg []byte, opts crypto.SignerOpts) (
	sig []byte, err error) {
	var ret [SignatureSize]byte

	if opts.HashFunc() != crypto.Hash(0) {
		return nil, errors.New("dilithium: cannot sign hashed message")
	}

	SignTo(sk, msg, ret[:])
	return ret[:], nil
}

// Computes the public key corresponding to this private key.
//
// Returns a *PublicKey.  The type crypto.PublicKey is used to make
// PrivateKey implement the crypto.Signer interface.
func (sk *PrivateKey) Public() crypto.PublicKey {
	return (*PublicKey)((*internal.PrivateKey)(sk).Public())
}

// Equal returns whether the two private keys equal.
func (sk *PrivateKey) Equal(other crypto.PrivateKey) bool {
	castOther, ok := other.(*PrivateKey)
	if !ok {
		return false
	}
	return (*internal.PrivateKey)(sk).Equal((*internal.PrivateKey)(castOther))
}

// Equal returns whether the two public keys equal.
func (pk *PublicKey) Equal(other crypto.PublicKey) bool {
	castOther, ok := other.(*PublicKey)
	if !ok {
		return false
	}
	return (*internal.PublicKey)(pk).Equal((*internal.PublicKey)(castOther))
}
