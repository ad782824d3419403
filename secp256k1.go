// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package keypairs

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math"
	"strings"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
)

const (
	secp256k1PrivateKeyPrefix = "00"
	secp256k1ScalarHexLength  = 64

	// accountIndex is the only account derived from a secp256k1 generator.
	accountIndex uint32 = 0
)

type secp256k1Scheme struct{}

// deriveKeypair derives the root (generator) scalar from entropy. Validator
// keys are the root itself; account keys add the scalar derived from the
// root public key at accountIndex.
func (secp256k1Scheme) deriveKeypair(entropy []byte, validator bool) (*Keypair, error) {
	root, err := deriveScalar(entropy)
	if err != nil {
		return nil, err
	}
	scalar := root
	if !validator {
		generator := publicKeyFromScalar(root).SerializeCompressed()
		tweak, err := deriveScalar(generator, accountIndex)
		if err != nil {
			return nil, err
		}
		scalar = new(btcec.ModNScalar).Set(root).Add(tweak)
	}

	raw := scalar.Bytes()
	return &Keypair{
		PrivateKey: secp256k1PrivateKeyPrefix + upperHex(raw[:]),
		PublicKey:  upperHex(publicKeyFromScalar(scalar).SerializeCompressed()),
	}, nil
}

func (secp256k1Scheme) sign(message []byte, privateKey string) (string, error) {
	key, err := parseSecp256k1PrivateKey(privateKey)
	if err != nil {
		return "", err
	}
	sig := ecdsa.Sign(key, sha512Half(message))
	return upperHex(sig.Serialize()), nil
}

func (secp256k1Scheme) verify(message []byte, signature, publicKey string) (bool, error) {
	pub, err := parseSecp256k1PublicKey(publicKey)
	if err != nil {
		return false, err
	}
	der, err := hex.DecodeString(signature)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}
	sig, err := ecdsa.ParseDERSignature(der)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}
	return sig.Verify(sha512Half(message), pub), nil
}

// parseSecp256k1PrivateKey accepts the "00"-prefixed 66 character form and
// the bare 64 character scalar, and returns the key for the scalar.
func parseSecp256k1PrivateKey(privateKey string) (*btcec.PrivateKey, error) {
	scalarHex := privateKey
	switch len(privateKey) {
	case secp256k1ScalarHexLength:
	case secp256k1ScalarHexLength + len(secp256k1PrivateKeyPrefix):
		if !strings.HasPrefix(privateKey, secp256k1PrivateKeyPrefix) {
			return nil, fmt.Errorf("%w: secp256k1 key must start with %q", ErrInvalidPrivateKey, secp256k1PrivateKeyPrefix)
		}
		scalarHex = privateKey[len(secp256k1PrivateKeyPrefix):]
	default:
		return nil, fmt.Errorf("%w: secp256k1 key must be 64 or 66 hex characters, got %d", ErrInvalidPrivateKey, len(privateKey))
	}

	raw, err := hex.DecodeString(scalarHex)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPrivateKey, err)
	}
	var k btcec.ModNScalar
	if overflow := k.SetByteSlice(raw); overflow || k.IsZero() {
		return nil, fmt.Errorf("%w: scalar out of range", ErrInvalidPrivateKey)
	}
	key, _ := btcec.PrivKeyFromBytes(raw)
	return key, nil
}

func parseSecp256k1PublicKey(publicKey string) (*btcec.PublicKey, error) {
	raw, err := hex.DecodeString(publicKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPublicKey, err)
	}
	pub, err := btcec.ParsePubKey(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPublicKey, err)
	}
	return pub, nil
}

// deriveScalar hashes data || [discriminator] || index for increasing
// 32-bit indices and returns the first digest that is a valid non-zero
// scalar below the curve order.
func deriveScalar(data []byte, discriminator ...uint32) (*btcec.ModNScalar, error) {
	buf := make([]byte, len(data), len(data)+8)
	copy(buf, data)
	for _, d := range discriminator {
		buf = binary.BigEndian.AppendUint32(buf, d)
	}
	n := len(buf)
	buf = buf[:n+4]

	for i := uint64(0); i <= math.MaxUint32; i++ {
		binary.BigEndian.PutUint32(buf[n:], uint32(i))
		var k btcec.ModNScalar
		if overflow := k.SetByteSlice(sha512Half(buf)); !overflow && !k.IsZero() {
			return &k, nil
		}
	}
	return nil, ErrScalarSearchExhausted
}

// accountPublicFromPublicGenerator returns generator + G*deriveScalar(generator, 0),
// the account public key matching the generator's root private key.
func accountPublicFromPublicGenerator(generator []byte) ([]byte, error) {
	gen, err := btcec.ParsePubKey(generator)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPublicKey, err)
	}
	tweak, err := deriveScalar(generator, accountIndex)
	if err != nil {
		return nil, err
	}

	var genPoint, tweakPoint, sum btcec.JacobianPoint
	gen.AsJacobian(&genPoint)
	btcec.ScalarBaseMultNonConst(tweak, &tweakPoint)
	btcec.AddNonConst(&genPoint, &tweakPoint, &sum)
	if sum.Z.IsZero() {
		return nil, fmt.Errorf("%w: account key is the point at infinity", ErrInvalidPublicKey)
	}
	sum.ToAffine()
	return btcec.NewPublicKey(&sum.X, &sum.Y).SerializeCompressed(), nil
}

func publicKeyFromScalar(k *btcec.ModNScalar) *btcec.PublicKey {
	raw := k.Bytes()
	_, pub := btcec.PrivKeyFromBytes(raw[:])
	return pub
}
