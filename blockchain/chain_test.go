package blockchain

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/zgencoin/zgcd/chaincfg/chainhash"
	"github.com/zgencoin/zgcd/wire"
)

func TestNewGenesis(t *testing.T) {
	c := NewGenesis()
	require.Equal(t, 1, c.Len())

	g := c.LastBlock()
	require.Zero(t, g.Height)
	require.True(t, g.Header.PreviousHash.IsZero())
	require.True(t, g.Header.DataHash.IsZero())
}

func chainOfLength(n int) *Chain {
	c := NewGenesis()
	for h := 1; h < n; h++ {
		prev := c.LastBlockHash()
		block := wire.Block{
			Height: uint64(h),
			Header: wire.BlockHeader{
				Difficulty:   0,
				PreviousHash: prev,
				DataHash:     chainhash.HashH([]byte{byte(h)}),
				Nonce:        uint32(h),
			},
		}
		c.Insert(block)
	}
	return c
}

func TestInsertAndLookup(t *testing.T) {
	c := chainOfLength(5)
	require.Equal(t, 5, c.Len())

	b, ok := c.FindHeight(3)
	require.True(t, ok)
	require.EqualValues(t, 3, b.Height)

	h := b.Hash()
	found, ok := c.FindHash(h)
	require.True(t, ok)
	require.Equal(t, b, found)

	_, ok = c.FindHeight(100)
	require.False(t, ok)
}

func TestChainLinkage(t *testing.T) {
	c := chainOfLength(10)
	require.True(t, c.VerifyLinkage())
}

// TestChainLinkageProperty checks the chain linkage invariant: after any
// sequence of valid Insert calls, every non-genesis block satisfies the
// previous-hash relation to its predecessor.
func TestChainLinkageProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 30).Draw(t, "n")
		c := chainOfLength(n)
		require.True(t, c.VerifyLinkage())
		require.Equal(t, n, c.Len())
	})
}
