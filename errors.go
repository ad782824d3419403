// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package keypairs

import "errors"

// Validation errors are caused by bad caller input.
var (
	// ErrInvalidEntropy is returned when supplied entropy is shorter than 16 bytes.
	ErrInvalidEntropy = errors.New("entropy must be at least 16 bytes")

	// ErrInvalidPrivateKey is returned for a private key of the wrong length or prefix.
	ErrInvalidPrivateKey = errors.New("invalid private key")

	// ErrInvalidPublicKey is returned for a public key that is not a valid point.
	ErrInvalidPublicKey = errors.New("invalid public key")

	// ErrInvalidMessage is returned when a message is not hex encoded bytes.
	ErrInvalidMessage = errors.New("message must be hex encoded")

	// ErrInvalidSignature is returned for a signature that cannot be parsed.
	ErrInvalidSignature = errors.New("malformed signature")

	// ErrUnknownAlgorithm is returned by ParseAlgorithm for unsupported names.
	ErrUnknownAlgorithm = errors.New("unknown signing algorithm")
)

// Derivation errors indicate a defect, not bad input.
var (
	// ErrKeypairIntegrity is returned when a freshly derived keypair fails
	// to verify its own test signature.
	ErrKeypairIntegrity = errors.New("derived keypair failed self-check")

	// ErrScalarSearchExhausted is returned when no valid secp256k1 scalar was
	// found in the whole 32-bit index space.
	ErrScalarSearchExhausted = errors.New("no valid secp256k1 scalar found")
)
