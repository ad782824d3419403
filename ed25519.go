// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package keypairs

import (
	"crypto/ed25519"
	"encoding/hex"
	"fmt"
)

// ed25519KeyHexLength is the length of an "ED"-prefixed 33-byte key.
const ed25519KeyHexLength = 66

type ed25519Scheme struct{}

// deriveKeypair uses the digest of the entropy as the ed25519 seed. The
// validator flag has no effect; ed25519 has one key per seed.
func (ed25519Scheme) deriveKeypair(entropy []byte, _ bool) (*Keypair, error) {
	seed := sha512Half(entropy)
	pub := ed25519.NewKeyFromSeed(seed).Public().(ed25519.PublicKey)
	return &Keypair{
		PrivateKey: prefixEd25519(seed),
		PublicKey:  prefixEd25519(pub),
	}, nil
}

// sign signs the message bytes directly; ed25519 hashes internally.
func (ed25519Scheme) sign(message []byte, privateKey string) (string, error) {
	seed, err := stripEd25519Prefix(privateKey, ErrInvalidPrivateKey)
	if err != nil {
		return "", err
	}
	return upperHex(ed25519.Sign(ed25519.NewKeyFromSeed(seed), message)), nil
}

func (ed25519Scheme) verify(message []byte, signature, publicKey string) (bool, error) {
	pub, err := stripEd25519Prefix(publicKey, ErrInvalidPublicKey)
	if err != nil {
		return false, err
	}
	sig, err := hex.DecodeString(signature)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}
	if len(sig) != ed25519.SignatureSize {
		return false, nil
	}
	return ed25519.Verify(pub, message, sig), nil
}

// stripEd25519Prefix decodes a 66 character "ED" key and returns the
// 32 bytes after the prefix.
func stripEd25519Prefix(key string, kind error) ([]byte, error) {
	if len(key) != ed25519KeyHexLength {
		return nil, fmt.Errorf("%w: ed25519 key must be %d hex characters, got %d", kind, ed25519KeyHexLength, len(key))
	}
	raw, err := hex.DecodeString(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", kind, err)
	}
	if raw[0] != ed25519Prefix {
		return nil, fmt.Errorf("%w: ed25519 key must start with ED", kind)
	}
	return raw[1:], nil
}

func prefixEd25519(b []byte) string {
	return upperHex(append([]byte{ed25519Prefix}, b...))
}
