// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

// Package addresscodec encodes and decodes the base58check strings used by
// the XRP Ledger for seeds, account IDs and node public keys.
//
// Every encoded value is version prefix || payload || checksum, where the
// checksum is the first four bytes of SHA256(SHA256(prefix || payload)),
// rendered with the ledger's own base58 alphabet.
package addresscodec

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/mr-tron/base58"
)

const (
	// EntropyLength is the number of entropy bytes carried by a seed.
	EntropyLength = 16
	// AccountIDLength is the length of a RIPEMD160(SHA256(pub)) account ID.
	AccountIDLength = 20
	// PublicKeyLength is the length of a compressed or ED-prefixed public key.
	PublicKeyLength = 33

	checksumLength = 4
)

// SeedType is the algorithm tag carried by an encoded seed.
type SeedType int

const (
	// SeedSecp256k1 is the default family seed type.
	SeedSecp256k1 SeedType = iota
	// SeedEd25519 marks a seed whose keys are ed25519.
	SeedEd25519
)

var (
	// ErrInvalidEncoding is returned for strings that are not valid base58.
	ErrInvalidEncoding = errors.New("invalid base58 encoding")
	// ErrChecksum is returned when the trailing checksum does not match.
	ErrChecksum = errors.New("checksum mismatch")
	// ErrUnknownVersion is returned when the version prefix or payload
	// length does not match the expected kind.
	ErrUnknownVersion = errors.New("unknown version prefix")
)

var (
	alphabet = base58.NewAlphabet("rpshnaf39wBUDNEGHJKLM4PQRST7VWXYZ2bcdeCg65jkm8oFqi1tuvAxyz")

	prefixSeedSecp256k1 = []byte{0x21}
	prefixSeedEd25519   = []byte{0x01, 0xE1, 0x4B}
	prefixAccountID     = []byte{0x00}
	prefixNodePublic    = []byte{0x1C}
)

// EncodeSeed encodes 16 bytes of entropy together with the seed type.
func EncodeSeed(entropy []byte, typ SeedType) (string, error) {
	if len(entropy) != EntropyLength {
		return "", fmt.Errorf("seed entropy must be %d bytes, got %d", EntropyLength, len(entropy))
	}
	if typ == SeedEd25519 {
		return encode(prefixSeedEd25519, entropy), nil
	}
	return encode(prefixSeedSecp256k1, entropy), nil
}

// DecodeSeed returns the entropy and seed type of an encoded seed.
func DecodeSeed(seed string) ([]byte, SeedType, error) {
	raw, err := decodeChecked(seed)
	if err != nil {
		return nil, SeedSecp256k1, err
	}
	if payload, ok := splitVersion(raw, prefixSeedEd25519, EntropyLength); ok {
		return payload, SeedEd25519, nil
	}
	if payload, ok := splitVersion(raw, prefixSeedSecp256k1, EntropyLength); ok {
		return payload, SeedSecp256k1, nil
	}
	return nil, SeedSecp256k1, fmt.Errorf("could not decode seed: %w", ErrUnknownVersion)
}

// EncodeAccountID encodes a 20-byte account ID as a classic "r..." address.
func EncodeAccountID(accountID []byte) (string, error) {
	if len(accountID) != AccountIDLength {
		return "", fmt.Errorf("account ID must be %d bytes, got %d", AccountIDLength, len(accountID))
	}
	return encode(prefixAccountID, accountID), nil
}

// DecodeAccountID returns the 20-byte account ID of a classic address.
func DecodeAccountID(address string) ([]byte, error) {
	raw, err := decodeChecked(address)
	if err != nil {
		return nil, err
	}
	payload, ok := splitVersion(raw, prefixAccountID, AccountIDLength)
	if !ok {
		return nil, fmt.Errorf("could not decode address: %w", ErrUnknownVersion)
	}
	return payload, nil
}

// EncodeNodePublic encodes a 33-byte public key in its "n..." node form.
func EncodeNodePublic(publicKey []byte) (string, error) {
	if len(publicKey) != PublicKeyLength {
		return "", fmt.Errorf("node public key must be %d bytes, got %d", PublicKeyLength, len(publicKey))
	}
	return encode(prefixNodePublic, publicKey), nil
}

// DecodeNodePublic returns the 33 public key bytes of an "n..." string.
func DecodeNodePublic(nodePublic string) ([]byte, error) {
	raw, err := decodeChecked(nodePublic)
	if err != nil {
		return nil, err
	}
	payload, ok := splitVersion(raw, prefixNodePublic, PublicKeyLength)
	if !ok {
		return nil, fmt.Errorf("could not decode node public key: %w", ErrUnknownVersion)
	}
	return payload, nil
}

func encode(prefix, payload []byte) string {
	buf := make([]byte, 0, len(prefix)+len(payload)+checksumLength)
	buf = append(buf, prefix...)
	buf = append(buf, payload...)
	buf = append(buf, chainhash.DoubleHashB(buf)[:checksumLength]...)
	return base58.EncodeAlphabet(buf, alphabet)
}

// decodeChecked decodes s and strips a verified checksum.
func decodeChecked(s string) ([]byte, error) {
	if s == "" {
		return nil, ErrInvalidEncoding
	}
	raw, err := base58.DecodeAlphabet(s, alphabet)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	if len(raw) <= checksumLength {
		return nil, ErrInvalidEncoding
	}
	body, sum := raw[:len(raw)-checksumLength], raw[len(raw)-checksumLength:]
	if !bytes.Equal(chainhash.DoubleHashB(body)[:checksumLength], sum) {
		return nil, ErrChecksum
	}
	return body, nil
}

func splitVersion(raw, prefix []byte, payloadLen int) ([]byte, bool) {
	if len(raw) != len(prefix)+payloadLen || !bytes.HasPrefix(raw, prefix) {
		return nil, false
	}
	out := make([]byte, payloadLen)
	copy(out, raw[len(prefix):])
	return out, true
}
