package dilithium

import (
	"crypto"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateSignVerify(t *testing.T) {
	pk, sk, err := GenerateKey(nil)
	require.NoError(t, err)

	msg := []byte("hello from " + ModeName)
	sig := Sign(sk, msg)
	require.Len(t, sig, SignatureSize)
	require.True(t, Verify(pk, msg, sig))
	require.False(t, Verify(pk, []byte("another message"), sig))
}

func TestKeyMarshalling(t *testing.T) {
	var seed [SeedSize]byte
	seed[0] = 0x17
	pk, sk := NewKeyFromSeed(&seed)

	pkb, err := pk.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, pkb, PublicKeySize)

	skb, err := sk.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, skb, PrivateKeySize)

	var pk2 PublicKey
	require.NoError(t, pk2.UnmarshalBinary(pkb))
	require.True(t, pk.Equal(&pk2))

	var sk2 PrivateKey
	require.NoError(t, sk2.UnmarshalBinary(skb))
	require.True(t, sk.Equal(&sk2))

	require.Error(t, pk2.UnmarshalBinary(pkb[:len(pkb)-1]))
	require.Error(t, sk2.UnmarshalBinary(skb[:len(skb)-1]))
}

func TestCryptoSigner(t *testing.T) {
	var seed [SeedSize]byte
	pk, sk := NewKeyFromSeed(&seed)

	var signer crypto.Signer = sk
	pk2, ok := signer.Public().(*PublicKey)
	require.True(t, ok)
	require.True(t, pk.Equal(pk2))

	msg := []byte("signer interface")
	sig, err := signer.Sign(nil, msg, crypto.Hash(0))
	require.NoError(t, err)
	require.True(t, Verify(pk, msg, sig))

	_, err = signer.Sign(nil, msg, crypto.SHA256)
	require.Error(t, err)
}

func TestEqualDistinguishesKeys(t *testing.T) {
	var seed [SeedSize]byte
	pk1, sk1 := NewKeyFromSeed(&seed)
	seed[0] = 1
	pk2, sk2 := NewKeyFromSeed(&seed)

	require.False(t, pk1.Equal(pk2))
	require.False(t, sk1.Equal(sk2))
	require.False(t, pk1.Equal(struct{}{}))
	require.False(t, sk1.Equal(struct{}{}))
}
