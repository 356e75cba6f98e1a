// Copyright (c) 2025 The zgcd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package addresses provides human-readable display encodings for the
// 20-byte addresses produced by the wallet key-derivation helper. It is
// display-only: an address here is the raw output of a hash-based
// key-derivation function, not a public key, so there is no signature
// scheme for a Taproot- or P2PKH-style script to commit to — only the
// base58check and bech32 framing, applied to a plain 20-byte value instead
// of a script hash or witness program.
package addresses

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/btcsuite/btcd/btcutil/bech32"

	"github.com/zgencoin/zgcd/chaincfg/chainhash"
)

// Bech32HRP is the human-readable part used for bech32-encoded addresses.
const Bech32HRP = "zgc"

// legacyVersion is the single version byte prefixed to base58check-encoded
// addresses. There is only one address kind, so it never varies; it exists
// so a malformed or foreign base58 string is rejected on decode rather than
// silently accepted.
const legacyVersion byte = 0x1c

// ErrChecksumMismatch is returned by DecodeLegacy when the trailing
// checksum does not match the payload.
var ErrChecksumMismatch = errors.New("addresses: checksum mismatch")

// EncodeLegacy renders addr as a base58check string: version byte, the 20
// address bytes, and a 4-byte double-hash checksum.
func EncodeLegacy(addr chainhash.Address) string {
	payload := make([]byte, 0, 1+chainhash.AddressSize+4)
	payload = append(payload, legacyVersion)
	payload = append(payload, addr.Bytes()...)
	payload = append(payload, checksum4(payload)...)
	return base58.Encode(payload)
}

// DecodeLegacy parses a base58check string produced by EncodeLegacy.
func DecodeLegacy(s string) (chainhash.Address, error) {
	decoded := base58.Decode(s)
	wantLen := 1 + chainhash.AddressSize + 4
	if len(decoded) != wantLen {
		return chainhash.Address{}, fmt.Errorf("addresses: decoded length %d, want %d", len(decoded), wantLen)
	}

	payload, sum := decoded[:len(decoded)-4], decoded[len(decoded)-4:]
	want := checksum4(payload)
	for i := range want {
		if sum[i] != want[i] {
			return chainhash.Address{}, ErrChecksumMismatch
		}
	}
	if payload[0] != legacyVersion {
		return chainhash.Address{}, fmt.Errorf("addresses: unknown version byte 0x%02x", payload[0])
	}

	var out chainhash.Address
	copy(out[:], payload[1:])
	return out, nil
}

// checksum4 is the leading 4 bytes of the double hash of payload, following
// the standard base58check convention.
func checksum4(payload []byte) []byte {
	first := chainhash.HashH(payload)
	second := chainhash.HashH(first[:])
	return second[:4]
}

// EncodeBech32 renders addr as a bech32 string with no witness version
// byte — there is no script or witness program here, just the address
// itself regrouped into 5-bit words.
func EncodeBech32(addr chainhash.Address) (string, error) {
	data, err := bech32.ConvertBits(addr.Bytes(), 8, 5, true)
	if err != nil {
		return "", err
	}
	return bech32.Encode(Bech32HRP, data)
}

// DecodeBech32 parses a bech32 string produced by EncodeBech32.
func DecodeBech32(s string) (chainhash.Address, error) {
	hrp, data, err := bech32.Decode(s)
	if err != nil {
		return chainhash.Address{}, err
	}
	if hrp != Bech32HRP {
		return chainhash.Address{}, fmt.Errorf("addresses: unexpected hrp %q, want %q", hrp, Bech32HRP)
	}

	raw, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return chainhash.Address{}, err
	}
	if len(raw) != chainhash.AddressSize {
		return chainhash.Address{}, fmt.Errorf("addresses: decoded length %d, want %d", len(raw), chainhash.AddressSize)
	}

	var out chainhash.Address
	copy(out[:], raw)
	return out, nil
}
