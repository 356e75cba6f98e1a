// Copyright (c) 2025 The zgcd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package sha256x implements the SHA-256 secure hash algorithm from FIPS
// 180-4, independent of the standard library's crypto/sha256. It exists
// because the rest of this module treats the exact bit behavior of the
// compression function (in particular, rotation by a shift that reduces to
// zero) as a first-class, independently testable invariant rather than an
// implementation detail hidden behind a black-box Sum function.
package sha256x

// initial hash values: the first 32 bits of the fractional parts of the
// square roots of the first 8 primes, 2..19.
var initialHashValues = [8]uint32{
	0x6a09e667, 0xbb67ae85, 0x3c6ef372, 0xa54ff53a,
	0x510e527f, 0x9b05688c, 0x1f83d9ab, 0x5be0cd19,
}

// round constants: the first 32 bits of the fractional parts of the cube
// roots of the first 64 primes, 2..311.
var roundConstants = [64]uint32{
	0x428a2f98, 0x71374491, 0xb5c0fbcf, 0xe9b5dba5,
	0x3956c25b, 0x59f111f1, 0x923f82a4, 0xab1c5ed5,
	0xd807aa98, 0x12835b01, 0x243185be, 0x550c7dc3,
	0x72be5d74, 0x80deb1fe, 0x9bdc06a7, 0xc19bf174,
	0xe49b69c1, 0xefbe4786, 0x0fc19dc6, 0x240ca1cc,
	0x2de92c6f, 0x4a7484aa, 0x5cb0a9dc, 0x76f988da,
	0x983e5152, 0xa831c66d, 0xb00327c8, 0xbf597fc7,
	0xc6e00bf3, 0xd5a79147, 0x06ca6351, 0x14292967,
	0x27b70a85, 0x2e1b2138, 0x4d2c6dfc, 0x53380d13,
	0x650a7354, 0x766a0abb, 0x81c2c92e, 0x92722c85,
	0xa2bfe8a1, 0xa81a664b, 0xc24b8b70, 0xc76c51a3,
	0xd192e819, 0xd6990624, 0xf40e3585, 0x106aa070,
	0x19a4c116, 0x1e376c08, 0x2748774c, 0x34b0bcb5,
	0x391c0cb3, 0x4ed8aa4a, 0x5b9cca4f, 0x682e6ff3,
	0x748f82ee, 0x78a5636f, 0x84c87814, 0x8cc70208,
	0x90befffa, 0xa4506ceb, 0xbef9a3f7, 0xc67178f2,
}

// Rotr right-rotates a 32-bit word by k bits. It is safe for any k,
// including k that is a multiple of 32 (including zero), in which case it
// returns x unchanged rather than evaluating x << 32 (which Go defines as 0
// for a uint32, so the guard makes the zero-shift case explicit).
func Rotr(x uint32, k uint) uint32 {
	k %= 32
	if k == 0 {
		return x
	}
	return (x >> k) | (x << (32 - k))
}

func sigma0(x uint32) uint32 { return Rotr(x, 7) ^ Rotr(x, 18) ^ (x >> 3) }
func sigma1(x uint32) uint32 { return Rotr(x, 17) ^ Rotr(x, 19) ^ (x >> 10) }
func bigSigma0(x uint32) uint32 {
	return Rotr(x, 2) ^ Rotr(x, 13) ^ Rotr(x, 22)
}
func bigSigma1(x uint32) uint32 {
	return Rotr(x, 6) ^ Rotr(x, 11) ^ Rotr(x, 25)
}
func choose(e, f, g uint32) uint32  { return (e & f) ^ (^e & g) }
func majority(a, b, c uint32) uint32 { return (a & b) ^ (a & c) ^ (b & c) }

// pad appends the 0x80 terminator and zero-fills the message to a multiple
// of 64 bytes, then overwrites the final 8 bytes with the original bit
// length in big-endian.
func pad(data []byte) []byte {
	bitLen := uint64(len(data)) * 8

	padded := make([]byte, len(data), len(data)+64)
	copy(padded, data)
	padded = append(padded, 0x80)
	for len(padded)%64 != 56 {
		padded = append(padded, 0x00)
	}

	var lengthBytes [8]byte
	for i := 0; i < 8; i++ {
		lengthBytes[7-i] = byte(bitLen >> (8 * i))
	}
	padded = append(padded, lengthBytes[:]...)

	return padded
}

func schedule(chunk []byte) [64]uint32 {
	var w [64]uint32
	for i := 0; i < 16; i++ {
		w[i] = uint32(chunk[4*i])<<24 | uint32(chunk[4*i+1])<<16 |
			uint32(chunk[4*i+2])<<8 | uint32(chunk[4*i+3])
	}
	for i := 16; i < 64; i++ {
		w[i] = w[i-16] + sigma0(w[i-15]) + w[i-7] + sigma1(w[i-2])
	}
	return w
}

func compress(h *[8]uint32, w *[64]uint32) {
	a, b, c, d, e, f, g, hh := h[0], h[1], h[2], h[3], h[4], h[5], h[6], h[7]

	for i := 0; i < 64; i++ {
		t1 := hh + bigSigma1(e) + choose(e, f, g) + roundConstants[i] + w[i]
		t2 := bigSigma0(a) + majority(a, b, c)
		hh = g
		g = f
		f = e
		e = d + t1
		d = c
		c = b
		b = a
		a = t1 + t2
	}

	h[0] += a
	h[1] += b
	h[2] += c
	h[3] += d
	h[4] += e
	h[5] += f
	h[6] += g
	h[7] += hh
}

// Sum computes the FIPS 180-4 SHA-256 digest of data.
func Sum(data []byte) [32]byte {
	h := initialHashValues
	padded := pad(data)

	for offset := 0; offset < len(padded); offset += 64 {
		w := schedule(padded[offset : offset+64])
		compress(&h, &w)
	}

	var digest [32]byte
	for i, word := range h {
		digest[4*i] = byte(word >> 24)
		digest[4*i+1] = byte(word >> 16)
		digest[4*i+2] = byte(word >> 8)
		digest[4*i+3] = byte(word)
	}
	return digest
}

// SumString is a convenience wrapper for hashing a string, the only input
// shape the rest of this module ever feeds through the digest (addresses,
// signatures, and block-header canonical strings are all produced as
// strings before hashing).
func SumString(s string) [32]byte {
	return Sum([]byte(s))
}
