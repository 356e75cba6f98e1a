// Copyright (c) 2025 The zgcd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chainhash implements the fixed-width hash values used throughout
// zgcd: 20-byte Address values and 32-byte Hash256 values. Both are
// immutable byte arrays with lossless lowercase-hex serialization,
// byte-lexicographic ordering, and a Masked factory used for proof-of-work
// difficulty targets.
//
// Go has no const generics over array length, so the two widths are
// concrete types sharing unexported helpers instead of one generic type.
package chainhash

import (
	"bytes"
	"encoding/hex"
	"strings"

	"github.com/zgencoin/zgcd/crypto/sha256x"
)

const (
	// AddressSize is the length in bytes of an Address.
	AddressSize = 20
	// HashSize is the length in bytes of a Hash256.
	HashSize = 32
)

// Address is a 20-byte fixed-width identifier, the sender/recipient of a
// transaction.
type Address [AddressSize]byte

// Hash256 is a 32-byte fixed-width hash value, used for signatures, block
// digests, and proof-of-work comparison.
type Hash256 [HashSize]byte

// ZeroAddress is the all-zero Address, used by the genesis block.
func ZeroAddress() Address { return Address{} }

// ZeroHash is the all-zero Hash256, used by the genesis block.
func ZeroHash() Hash256 { return Hash256{} }

// NewAddress builds an Address from exactly AddressSize bytes.
func NewAddress(b [AddressSize]byte) Address { return Address(b) }

// NewHash256 builds a Hash256 from exactly HashSize bytes.
func NewHash256(b [HashSize]byte) Hash256 { return Hash256(b) }

// MaxHash returns the Hash256 with every byte set to 0xFF. Its use as a
// transaction signature sentinel identifies a self-mint transaction; such a
// signature is never accepted from the network as a normal transaction.
func MaxHash() Hash256 {
	var h Hash256
	for i := range h {
		h[i] = 0xFF
	}
	return h
}

// Masked returns a HashSize-byte value whose leading `difficulty` bytes are
// zero and whose remaining bytes are 0xFF. The proof-of-work condition is
// `hash < Masked(difficulty)` under byte-lexicographic ordering.
func Masked(difficulty uint8) Hash256 {
	var h Hash256
	d := int(difficulty)
	if d > HashSize {
		d = HashSize
	}
	for i := d; i < HashSize; i++ {
		h[i] = 0xFF
	}
	return h
}

// HashH hashes data with the from-scratch SHA-256 primitive and returns it
// as a Hash256.
func HashH(data []byte) Hash256 {
	return Hash256(sha256x.Sum(data))
}

// String returns the lowercase-hex encoding of the address, without a 0x
// prefix.
func (a Address) String() string { return hex.EncodeToString(a[:]) }

// String returns the lowercase-hex encoding of the hash, without a 0x
// prefix.
func (h Hash256) String() string { return hex.EncodeToString(h[:]) }

// IsZero reports whether every byte of the address is zero.
func (a Address) IsZero() bool { return a == Address{} }

// IsZero reports whether every byte of the hash is zero.
func (h Hash256) IsZero() bool { return h == Hash256{} }

// Bytes returns a copy of the address's underlying bytes.
func (a Address) Bytes() []byte {
	b := make([]byte, AddressSize)
	copy(b, a[:])
	return b
}

// Bytes returns a copy of the hash's underlying bytes.
func (h Hash256) Bytes() []byte {
	b := make([]byte, HashSize)
	copy(b, h[:])
	return b
}

// Less reports whether a sorts strictly before other under
// byte-lexicographic ordering.
func (a Address) Less(other Address) bool {
	return bytes.Compare(a[:], other[:]) < 0
}

// Less reports whether h sorts strictly before other under
// byte-lexicographic ordering.
func (h Hash256) Less(other Hash256) bool {
	return bytes.Compare(h[:], other[:]) < 0
}

// AddressFromString parses a lowercase- or uppercase-hex string, with an
// optional leading "0x", into an Address.
func AddressFromString(s string) (Address, error) {
	var a Address
	b, err := decodeFixed(s, AddressSize)
	if err != nil {
		return a, err
	}
	copy(a[:], b)
	return a, nil
}

// Hash256FromString parses a lowercase- or uppercase-hex string, with an
// optional leading "0x", into a Hash256.
func Hash256FromString(s string) (Hash256, error) {
	var h Hash256
	b, err := decodeFixed(s, HashSize)
	if err != nil {
		return h, err
	}
	copy(h[:], b)
	return h, nil
}

func decodeFixed(s string, size int) ([]byte, error) {
	trimmed := strings.TrimPrefix(s, "0x")
	if len(trimmed) != 2*size {
		return nil, &LengthMismatchError{Got: len(trimmed), Want: 2 * size}
	}
	b, err := hex.DecodeString(trimmed)
	if err != nil {
		invalid := firstInvalidHexByte(trimmed)
		return nil, &InvalidHexDigitError{Digit: invalid}
	}
	return b, nil
}

func firstInvalidHexByte(s string) byte {
	for i := 0; i < len(s); i++ {
		c := s[i]
		isHex := (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
		if !isHex {
			return c
		}
	}
	return 0
}

// MarshalJSON renders the address as a lowercase-hex JSON string.
func (a Address) MarshalJSON() ([]byte, error) {
	return marshalHexJSON(a[:])
}

// UnmarshalJSON parses a lowercase- or 0x-prefixed-hex JSON string into the
// address.
func (a *Address) UnmarshalJSON(data []byte) error {
	s, err := unmarshalHexJSON(data)
	if err != nil {
		return err
	}
	parsed, err := AddressFromString(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// MarshalJSON renders the hash as a lowercase-hex JSON string.
func (h Hash256) MarshalJSON() ([]byte, error) {
	return marshalHexJSON(h[:])
}

// UnmarshalJSON parses a lowercase- or 0x-prefixed-hex JSON string into the
// hash.
func (h *Hash256) UnmarshalJSON(data []byte) error {
	s, err := unmarshalHexJSON(data)
	if err != nil {
		return err
	}
	parsed, err := Hash256FromString(s)
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}

func marshalHexJSON(b []byte) ([]byte, error) {
	out := make([]byte, 0, 2*len(b)+2)
	out = append(out, '"')
	out = append(out, []byte(hex.EncodeToString(b))...)
	out = append(out, '"')
	return out, nil
}

func unmarshalHexJSON(data []byte) (string, error) {
	s := strings.Trim(string(data), `"`)
	return s, nil
}
