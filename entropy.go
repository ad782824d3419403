// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package keypairs

import (
	"crypto/ed25519"
	"crypto/sha256"
	"fmt"

	"github.com/tyler-smith/go-bip39"
)

// combineSeedPassphrase XORs the key seed with SHA256(passphrase).
func combineSeedPassphrase(keySeed []byte, seedPassphrase string) []byte {
	passphraseHash := sha256.Sum256([]byte(seedPassphrase))

	combined := make([]byte, len(keySeed))
	for i := range keySeed {
		combined[i] = keySeed[i] ^ passphraseHash[i%len(passphraseHash)]
	}
	return combined
}

// EntropyFromSSHKey derives 16 bytes of seed entropy from an ed25519 SSH
// private key. A non-empty seedPassphrase is mixed into the key seed first,
// so one SSH key can back several independent seeds.
//
// The same key and passphrase always produce the same entropy.
func EntropyFromSSHKey(key *ed25519.PrivateKey, seedPassphrase string) []byte {
	keySeed := key.Seed()
	if seedPassphrase != "" {
		keySeed = combineSeedPassphrase(keySeed, seedPassphrase)
	}
	return sha512Half(keySeed)[:EntropyLength]
}

// SeedToMnemonic renders the entropy of a seed as 12 BIP39 words in the
// current bip39 word list. The algorithm tag is not part of the words.
func SeedToMnemonic(seed string) (string, error) {
	entropy, _, err := DecodeSeed(seed)
	if err != nil {
		return "", err
	}
	words, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", fmt.Errorf("could not create a mnemonic set of words: %w", err)
	}
	return words, nil
}

// SeedFromMnemonic rebuilds a seed from 12 BIP39 words.
func SeedFromMnemonic(mnemonic string, algorithm Algorithm) (string, error) {
	entropy, err := bip39.EntropyFromMnemonic(mnemonic)
	if err != nil {
		return "", fmt.Errorf("invalid mnemonic: %w", err)
	}
	if len(entropy) != EntropyLength {
		return "", fmt.Errorf("%w: mnemonic must be 12 words", ErrInvalidEntropy)
	}
	return GenerateSeed(SeedOptions{Entropy: entropy, Algorithm: algorithm})
}
