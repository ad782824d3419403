// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package keypairs

import (
	"bytes"
	"crypto/ed25519"
	"crypto/rand"
	"errors"
	"strings"
	"testing"

	"github.com/matryer/is"
)

// TestEntropyFromSSHKey_Deterministic verifies that the same key and
// passphrase always produce the same entropy
func TestEntropyFromSSHKey_Deterministic(t *testing.T) {
	is := is.New(t)

	_, key, err := ed25519.GenerateKey(rand.Reader)
	is.NoErr(err)

	first := EntropyFromSSHKey(&key, "test-passphrase")
	second := EntropyFromSSHKey(&key, "test-passphrase")
	is.Equal(len(first), EntropyLength)
	is.True(bytes.Equal(first, second))
}

// TestEntropyFromSSHKey_Passphrase verifies passphrases change the entropy.
func TestEntropyFromSSHKey_Passphrase(t *testing.T) {
	is := is.New(t)

	_, key, err := ed25519.GenerateKey(rand.Reader)
	is.NoErr(err)

	plain := EntropyFromSSHKey(&key, "")
	withPass := EntropyFromSSHKey(&key, "passphrase1")
	other := EntropyFromSSHKey(&key, "passphrase2")
	is.True(!bytes.Equal(plain, withPass))
	is.True(!bytes.Equal(withPass, other))

	seed, err := GenerateSeed(SeedOptions{Entropy: withPass, Algorithm: Ed25519})
	is.NoErr(err)
	_, err = DeriveKeypair(seed)
	is.NoErr(err)
}

// TestSeedMnemonic_RoundTrip renders a seed as 12 words and back.
func TestSeedMnemonic_RoundTrip(t *testing.T) {
	is := is.New(t)

	words, err := SeedToMnemonic(masterSeed)
	is.NoErr(err)
	is.Equal(len(strings.Fields(words)), 12)

	seed, err := SeedFromMnemonic(words, Secp256k1)
	is.NoErr(err)
	is.Equal(seed, masterSeed)
}

// TestSeedFromMnemonic_ZeroEntropy uses the all-zero BIP39 vector.
func TestSeedFromMnemonic_ZeroEntropy(t *testing.T) {
	is := is.New(t)

	mnemonic := strings.Repeat("abandon ", 11) + "about"
	seed, err := SeedFromMnemonic(mnemonic, Ed25519)
	is.NoErr(err)

	want, err := GenerateSeed(SeedOptions{Entropy: make([]byte, EntropyLength), Algorithm: Ed25519})
	is.NoErr(err)
	is.Equal(seed, want)
}

// TestSeedFromMnemonic_Invalid rejects bad words and 24-word phrases.
func TestSeedFromMnemonic_Invalid(t *testing.T) {
	is := is.New(t)

	_, err := SeedFromMnemonic("not a real mnemonic", Secp256k1)
	is.True(err != nil)

	_, err = SeedFromMnemonic(strings.Repeat("abandon ", 23)+"art", Secp256k1)
	is.True(errors.Is(err, ErrInvalidEntropy))
}
