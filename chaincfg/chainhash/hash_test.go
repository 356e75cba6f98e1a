package chainhash

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestHashRoundTrip(t *testing.T) {
	addrStr := "0123456789abcdeffedcba9876543210aabbccdd"
	addr, err := AddressFromString(addrStr)
	require.NoError(t, err)
	require.Equal(t, addrStr, addr.String())

	with0x := "0x" + addrStr
	addr2, err := AddressFromString(with0x)
	require.NoError(t, err)
	require.Equal(t, addrStr, addr2.String())
	require.Equal(t, addr, addr2)
}

func TestHashInvalidLength(t *testing.T) {
	_, err := Hash256FromString("563fdea")
	require.Error(t, err)
	var lenErr *LengthMismatchError
	require.ErrorAs(t, err, &lenErr)
}

func TestHashInvalidHexDigit(t *testing.T) {
	s := "56" + "3" + "g" + "3fdea0123456789abcdef0123456789abcdef0123456789abcdef01234567"
	_, err := Hash256FromString(s[:64])
	require.Error(t, err)
	var hexErr *InvalidHexDigitError
	require.ErrorAs(t, err, &hexErr)
}

func TestMaskedBoundaries(t *testing.T) {
	m := Masked(0)
	for _, b := range m {
		require.Equal(t, byte(0xFF), b)
	}

	m = Masked(32)
	for _, b := range m {
		require.Zero(t, b)
	}

	m = Masked(2)
	require.Equal(t, byte(0), m[0])
	require.Equal(t, byte(0), m[1])
	require.Equal(t, byte(0xFF), m[2])
}

func TestMaxHashSentinel(t *testing.T) {
	max := MaxHash()
	for _, b := range max {
		require.Equal(t, byte(0xFF), b)
	}
}

func TestZeroValues(t *testing.T) {
	require.True(t, ZeroAddress().IsZero())
	require.True(t, ZeroHash().IsZero())
}

func TestOrderingLiteral(t *testing.T) {
	var lowBytes, highBytes [HashSize]byte
	lowBytes[HashSize-1] = 0x0a
	highBytes[HashSize-1] = 0x10

	low := Hash256(lowBytes)
	high := Hash256(highBytes)

	require.True(t, low.Less(high))
	require.False(t, high.Less(low))
}

// TestHashRoundTripProperty checks the hash round-trip invariant: for all
// hex strings of length 2N, parsing then re-stringifying returns the
// original lowercase string, and the 0x-prefixed form parses identically.
func TestHashRoundTripProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var raw [HashSize]byte
		for i := range raw {
			raw[i] = rapid.Byte().Draw(t, "byte")
		}
		h := Hash256(raw)
		s := h.String()

		parsed, err := Hash256FromString(s)
		require.NoError(t, err)
		require.Equal(t, h, parsed)

		parsedWith0x, err := Hash256FromString("0x" + s)
		require.NoError(t, err)
		require.Equal(t, h, parsedWith0x)
	})
}

func TestOrderingProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var a, b [HashSize]byte
		for i := range a {
			a[i] = rapid.Byte().Draw(t, "a")
			b[i] = rapid.Byte().Draw(t, "b")
		}
		ha, hb := Hash256(a), Hash256(b)
		if ha.Less(hb) {
			require.False(t, hb.Less(ha))
		}
	})
}
