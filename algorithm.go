// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package keypairs

import (
	"fmt"
	"strings"

	"github.com/complex-gh/keypairs/internal/addresscodec"
)

// Algorithm identifies a signing algorithm. The zero value is Secp256k1.
type Algorithm int

const (
	// Secp256k1 is ECDSA over the secp256k1 curve.
	Secp256k1 Algorithm = iota
	// Ed25519 is EdDSA over edwards25519.
	Ed25519
)

// ed25519Prefix marks ed25519 private and public keys.
const ed25519Prefix = 0xED

// String returns the canonical algorithm name.
func (a Algorithm) String() string {
	if a == Ed25519 {
		return "ed25519"
	}
	return "secp256k1"
}

// ParseAlgorithm parses an algorithm name. An empty name means Secp256k1.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "secp256k1", "ecdsa-secp256k1":
		return Secp256k1, nil
	case "ed25519":
		return Ed25519, nil
	default:
		return Secp256k1, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
}

// scheme is the capability set shared by both signing algorithms.
// Keys cross this boundary in their tagged hex form.
type scheme interface {
	deriveKeypair(entropy []byte, validator bool) (*Keypair, error)
	sign(message []byte, privateKey string) (string, error)
	verify(message []byte, signature, publicKey string) (bool, error)
}

var (
	secp256k1Impl scheme = secp256k1Scheme{}
	ed25519Impl   scheme = ed25519Scheme{}
)

// selectScheme returns the scheme for an explicit algorithm.
func selectScheme(a Algorithm) scheme {
	if a == Ed25519 {
		return ed25519Impl
	}
	return secp256k1Impl
}

// inferAlgorithm applies the key shape rule: 33 bytes led by 0xED is
// ed25519, anything else is handed to secp256k1 for validation.
func inferAlgorithm(key []byte) Algorithm {
	if len(key) == addresscodec.PublicKeyLength && key[0] == ed25519Prefix {
		return Ed25519
	}
	return Secp256k1
}

func (a Algorithm) seedType() addresscodec.SeedType {
	if a == Ed25519 {
		return addresscodec.SeedEd25519
	}
	return addresscodec.SeedSecp256k1
}

func algorithmFromSeedType(t addresscodec.SeedType) Algorithm {
	if t == addresscodec.SeedEd25519 {
		return Ed25519
	}
	return Secp256k1
}
