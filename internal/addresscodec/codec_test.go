// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package addresscodec

import (
	"bytes"
	"crypto/sha512"
	"errors"
	"strings"
	"testing"

	"github.com/matryer/is"
)

// masterEntropy is the entropy rippled derives from "masterpassphrase".
func masterEntropy() []byte {
	sum := sha512.Sum512([]byte("masterpassphrase"))
	return sum[:EntropyLength]
}

// TestEncodeSeed_RippledVector checks the genesis account seed.
func TestEncodeSeed_RippledVector(t *testing.T) {
	is := is.New(t)

	seed, err := EncodeSeed(masterEntropy(), SeedSecp256k1)
	is.NoErr(err)
	is.Equal(seed, "snoPBrXtMeMyMHUVTgbuqAfg1SUTb")
}

// TestSeed_RoundTrip verifies both seed types decode to what was encoded.
func TestSeed_RoundTrip(t *testing.T) {
	for _, typ := range []SeedType{SeedSecp256k1, SeedEd25519} {
		is := is.New(t)

		seed, err := EncodeSeed(masterEntropy(), typ)
		is.NoErr(err)

		entropy, got, err := DecodeSeed(seed)
		is.NoErr(err)
		is.Equal(got, typ)
		is.True(bytes.Equal(entropy, masterEntropy()))
	}
}

// TestEncodeSeed_Ed25519Prefix checks ed25519 seeds render with "sEd".
func TestEncodeSeed_Ed25519Prefix(t *testing.T) {
	is := is.New(t)

	seed, err := EncodeSeed(make([]byte, EntropyLength), SeedEd25519)
	is.NoErr(err)
	is.True(strings.HasPrefix(seed, "sEd"))
}

// TestEncodeSeed_WrongLength rejects entropy that is not 16 bytes.
func TestEncodeSeed_WrongLength(t *testing.T) {
	is := is.New(t)

	_, err := EncodeSeed(make([]byte, 15), SeedSecp256k1)
	is.True(err != nil)
}

// TestDecodeSeed_Invalid uses the malformed seeds from rippled's Seed_test.cpp.
func TestDecodeSeed_Invalid(t *testing.T) {
	cases := map[string]string{
		"empty":          "",
		"too short":      "sspUXGrmjQhq6mgc24jiRuevZiwK",
		"too long":       "sspUXGrmjQhq6mgc24jiRuevZiwKTT",
		"invalid char O": "sspOXGrmjQhq6mgc24jiRuevZiwKT",
		"invalid char /": "ssp/XGrmjQhq6mgc24jiRuevZiwKT",
		"bad checksum":   "snoPBrXtMeMyMHUVTgbuqAfg1SUTa",
	}
	for name, seed := range cases {
		t.Run(name, func(t *testing.T) {
			is := is.New(t)
			_, _, err := DecodeSeed(seed)
			is.True(err != nil)
		})
	}
}

// TestDecodeSeed_AddressIsNotSeed rejects a valid string of another kind.
func TestDecodeSeed_AddressIsNotSeed(t *testing.T) {
	is := is.New(t)

	_, _, err := DecodeSeed("rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh")
	is.True(errors.Is(err, ErrUnknownVersion))
}

// TestAccountID_RoundTrip decodes a known address and encodes it back.
func TestAccountID_RoundTrip(t *testing.T) {
	is := is.New(t)

	const address = "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh"
	id, err := DecodeAccountID(address)
	is.NoErr(err)
	is.Equal(len(id), AccountIDLength)

	again, err := EncodeAccountID(id)
	is.NoErr(err)
	is.Equal(again, address)
}

// TestDecodeAccountID_Checksum flips the last character of an address.
func TestDecodeAccountID_Checksum(t *testing.T) {
	is := is.New(t)

	_, err := DecodeAccountID("rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTi")
	is.True(errors.Is(err, ErrChecksum))
}

// TestNodePublic_RoundTrip decodes the genesis node public key.
func TestNodePublic_RoundTrip(t *testing.T) {
	is := is.New(t)

	const node = "n94a1u4jAz288pZLtw6yFWVbi89YamiC6JBXPVUj5zmExe5fTVg9"
	pub, err := DecodeNodePublic(node)
	is.NoErr(err)
	is.Equal(len(pub), PublicKeyLength)
	is.True(pub[0] == 0x02 || pub[0] == 0x03)

	again, err := EncodeNodePublic(pub)
	is.NoErr(err)
	is.Equal(again, node)
}

// TestDecodeNodePublic_Invalid rejects a seed passed as a node key.
func TestDecodeNodePublic_Invalid(t *testing.T) {
	is := is.New(t)

	_, err := DecodeNodePublic("snoPBrXtMeMyMHUVTgbuqAfg1SUTb")
	is.True(errors.Is(err, ErrUnknownVersion))
}
