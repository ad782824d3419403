// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package keypairs

import (
	"bytes"
	"testing"

	"github.com/matryer/is"
)

// TestDeriveScalar_Deterministic checks the search is a pure function of its input.
func TestDeriveScalar_Deterministic(t *testing.T) {
	is := is.New(t)

	a, err := deriveScalar(masterEntropy())
	is.NoErr(err)
	b, err := deriveScalar(masterEntropy())
	is.NoErr(err)
	is.True(a.Equals(b))

	withIndex, err := deriveScalar(masterEntropy(), accountIndex)
	is.NoErr(err)
	is.True(!a.Equals(withIndex))
}

// TestAccountPublicFromPublicGenerator matches the account keypair's public key.
func TestAccountPublicFromPublicGenerator(t *testing.T) {
	is := is.New(t)

	root, err := DeriveKeypair(masterSeed, WithValidator())
	is.NoErr(err)
	account, err := DeriveKeypair(masterSeed)
	is.NoErr(err)

	got, err := accountPublicFromPublicGenerator(mustHex(t, root.PublicKey))
	is.NoErr(err)
	is.True(bytes.Equal(got, mustHex(t, account.PublicKey)))
}

// TestParseSecp256k1PrivateKey_Forms accepts both key forms as the same scalar.
func TestParseSecp256k1PrivateKey_Forms(t *testing.T) {
	is := is.New(t)

	kp, err := DeriveKeypair(masterSeed)
	is.NoErr(err)

	prefixed, err := parseSecp256k1PrivateKey(kp.PrivateKey)
	is.NoErr(err)
	bare, err := parseSecp256k1PrivateKey(kp.PrivateKey[2:])
	is.NoErr(err)
	is.True(prefixed.Key.Equals(&bare.Key))
	is.Equal(upperHex(prefixed.PubKey().SerializeCompressed()), kp.PublicKey)
}
