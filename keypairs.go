// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

// Package keypairs derives XRP Ledger keypairs from seeds, signs and
// verifies messages, and derives account addresses from public keys.
//
// Two signing algorithms are supported: ECDSA over secp256k1 (the default)
// and EdDSA over ed25519. Keys are exchanged as upper-case hex strings whose
// shape identifies the algorithm, so Sign and Verify need no algorithm
// argument:
//   - secp256k1 private keys are "00" followed by the 32-byte scalar (the
//     bare 64 character scalar is accepted too), public keys are 33-byte
//     compressed points;
//   - ed25519 private and public keys are "ED" followed by 32 bytes.
//
// Every keypair returned by DeriveKeypair has already signed and verified a
// test message.
package keypairs

import (
	"crypto/rand"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/complex-gh/keypairs/internal/addresscodec"
)

// EntropyLength is the number of entropy bytes a seed carries.
const EntropyLength = addresscodec.EntropyLength

// verificationMessage is signed by every freshly derived keypair.
var verificationMessage = []byte("This test message should verify.")

// Keypair is an algorithm-consistent pair of hex encoded keys.
type Keypair struct {
	PrivateKey string
	PublicKey  string
}

// SeedOptions controls GenerateSeed.
type SeedOptions struct {
	// Entropy, when set, must be at least 16 bytes; only the first 16 are used.
	Entropy []byte
	// Algorithm is recorded in the seed. The zero value is Secp256k1.
	Algorithm Algorithm
	// Random is read when Entropy is nil. Defaults to crypto/rand.Reader.
	Random io.Reader
}

// GenerateSeed encodes entropy and an algorithm tag as a seed string.
func GenerateSeed(opts SeedOptions) (string, error) {
	entropy := opts.Entropy
	if entropy == nil {
		r := opts.Random
		if r == nil {
			r = rand.Reader
		}
		entropy = make([]byte, EntropyLength)
		if _, err := io.ReadFull(r, entropy); err != nil {
			return "", fmt.Errorf("could not read entropy: %w", err)
		}
	} else if len(entropy) < EntropyLength {
		return "", fmt.Errorf("%w: got %d", ErrInvalidEntropy, len(entropy))
	}

	seed, err := addresscodec.EncodeSeed(entropy[:EntropyLength], opts.Algorithm.seedType())
	if err != nil {
		return "", fmt.Errorf("could not encode seed: %w", err)
	}
	return seed, nil
}

// DecodeSeed returns the entropy and algorithm recorded in a seed.
func DecodeSeed(seed string) ([]byte, Algorithm, error) {
	entropy, typ, err := addresscodec.DecodeSeed(seed)
	if err != nil {
		return nil, Secp256k1, fmt.Errorf("could not decode seed: %w", err)
	}
	return entropy, algorithmFromSeedType(typ), nil
}

// DeriveOption configures DeriveKeypair.
type DeriveOption func(*deriveConfig)

type deriveConfig struct {
	validator bool
}

// WithValidator derives the secp256k1 root (validator) keypair instead of
// the account keypair. It has no effect on ed25519 seeds.
func WithValidator() DeriveOption {
	return func(c *deriveConfig) {
		c.validator = true
	}
}

// DeriveKeypair decodes seed and derives its keypair.
func DeriveKeypair(seed string, opts ...DeriveOption) (*Keypair, error) {
	entropy, algorithm, err := DecodeSeed(seed)
	if err != nil {
		return nil, err
	}
	return DeriveKeypairFromEntropy(entropy, algorithm, opts...)
}

// DeriveKeypairFromEntropy derives a keypair from at least 16 bytes of
// entropy; only the first 16 are used.
func DeriveKeypairFromEntropy(entropy []byte, algorithm Algorithm, opts ...DeriveOption) (*Keypair, error) {
	if len(entropy) < EntropyLength {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidEntropy, len(entropy))
	}
	var cfg deriveConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return deriveWith(selectScheme(algorithm), entropy[:EntropyLength], cfg)
}

func deriveWith(s scheme, entropy []byte, cfg deriveConfig) (*Keypair, error) {
	kp, err := s.deriveKeypair(entropy, cfg.validator)
	if err != nil {
		return nil, fmt.Errorf("could not derive keypair: %w", err)
	}
	if err := selfCheck(s, kp); err != nil {
		return nil, err
	}
	return kp, nil
}

// selfCheck signs verificationMessage with the new private key and
// verifies it with the new public key.
func selfCheck(s scheme, kp *Keypair) error {
	sig, err := s.sign(verificationMessage, kp.PrivateKey)
	if err != nil {
		return fmt.Errorf("%w: sign: %v", ErrKeypairIntegrity, err)
	}
	ok, err := s.verify(verificationMessage, sig, kp.PublicKey)
	if err != nil {
		return fmt.Errorf("%w: verify: %v", ErrKeypairIntegrity, err)
	}
	if !ok {
		return ErrKeypairIntegrity
	}
	return nil
}

// Sign signs the hex encoded message with privateKey. The algorithm is
// taken from the shape of the key.
func Sign(messageHex, privateKey string) (string, error) {
	message, err := hex.DecodeString(messageHex)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidMessage, err)
	}
	key, err := hex.DecodeString(privateKey)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidPrivateKey, err)
	}
	return selectScheme(inferAlgorithm(key)).sign(message, privateKey)
}

// Verify reports whether signature is a valid signature of the hex encoded
// message by publicKey. A well formed signature that does not match returns
// false with a nil error.
func Verify(messageHex, signature, publicKey string) (bool, error) {
	message, err := hex.DecodeString(messageHex)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrInvalidMessage, err)
	}
	key, err := hex.DecodeString(publicKey)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrInvalidPublicKey, err)
	}
	return selectScheme(inferAlgorithm(key)).verify(message, signature, publicKey)
}

// sha512Half is the first 256 bits of SHA-512, the ledger's digest.
func sha512Half(data []byte) []byte {
	sum := sha512.Sum512(data)
	return sum[:32]
}

func upperHex(b []byte) string {
	return strings.ToUpper(hex.EncodeToString(b))
}
