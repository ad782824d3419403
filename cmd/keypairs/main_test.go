package main

import (
	"testing"

	"github.com/matryer/is"

	"github.com/complex-gh/keypairs"
)

// TestGetWordlist matches language codes and English names.
func TestGetWordlist(t *testing.T) {
	is := is.New(t)

	is.True(getWordlist("en") != nil)
	is.True(getWordlist("english") != nil)
	is.True(getWordlist("japanese") != nil)
}

// TestGenerateSeed_EntropyFlag builds the genesis seed from --entropy.
func TestGenerateSeed_EntropyFlag(t *testing.T) {
	is := is.New(t)

	entropyHex = "00000000000000000000000000000000"
	t.Cleanup(func() { entropyHex = "" })

	seed, err := generateSeed(keypairs.Secp256k1)
	is.NoErr(err)

	want, err := keypairs.GenerateSeed(keypairs.SeedOptions{Entropy: make([]byte, keypairs.EntropyLength)})
	is.NoErr(err)
	is.Equal(seed, want)
}

// TestGenerateSeed_BadEntropyFlag rejects non-hex entropy.
func TestGenerateSeed_BadEntropyFlag(t *testing.T) {
	is := is.New(t)

	entropyHex = "zz"
	t.Cleanup(func() { entropyHex = "" })

	_, err := generateSeed(keypairs.Ed25519)
	is.True(err != nil)
}
