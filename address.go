// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package keypairs

import (
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/btcutil"

	"github.com/complex-gh/keypairs/internal/addresscodec"
)

// DeriveAddress returns the classic address of a hex encoded public key of
// either algorithm: the encoded RIPEMD160(SHA256(publicKey)).
func DeriveAddress(publicKey string) (string, error) {
	raw, err := hex.DecodeString(publicKey)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidPublicKey, err)
	}
	return deriveAddressFromBytes(raw)
}

// DeriveNodeAddress returns the address of the first account derived from a
// node public key ("n..."), without the node's private key.
func DeriveNodeAddress(nodePublicKey string) (string, error) {
	generator, err := addresscodec.DecodeNodePublic(nodePublicKey)
	if err != nil {
		return "", fmt.Errorf("could not decode node public key: %w", err)
	}
	account, err := accountPublicFromPublicGenerator(generator)
	if err != nil {
		return "", fmt.Errorf("could not derive account key: %w", err)
	}
	return deriveAddressFromBytes(account)
}

// EncodeNodePublic renders a hex encoded public key in its "n..." form.
func EncodeNodePublic(publicKey string) (string, error) {
	raw, err := hex.DecodeString(publicKey)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidPublicKey, err)
	}
	if len(raw) != addresscodec.PublicKeyLength {
		return "", fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidPublicKey, addresscodec.PublicKeyLength, len(raw))
	}
	return addresscodec.EncodeNodePublic(raw)
}

func deriveAddressFromBytes(publicKey []byte) (string, error) {
	if len(publicKey) != addresscodec.PublicKeyLength {
		return "", fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidPublicKey, addresscodec.PublicKeyLength, len(publicKey))
	}
	address, err := addresscodec.EncodeAccountID(btcutil.Hash160(publicKey))
	if err != nil {
		return "", fmt.Errorf("could not encode address: %w", err)
	}
	return address, nil
}
