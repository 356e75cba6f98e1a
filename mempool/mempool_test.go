package mempool

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/zgencoin/zgcd/chaincfg/chainhash"
	"github.com/zgencoin/zgcd/wire"
)

func txWithAmount(seed byte, amount uint64) wire.TxData {
	return wire.TxData{
		Signature: chainhash.HashH([]byte{seed}),
		Sender:    chainhash.Address{0x01},
		Recipient: chainhash.Address{0x02},
		Amount:    amount,
	}
}

func TestEmptyPool(t *testing.T) {
	p := New()
	require.Zero(t, p.Len())
	_, ok := p.PeekLast()
	require.False(t, ok)
	p.RemoveLast() // no-op, must not panic
	require.True(t, p.ConsistencyCheck())
}

func TestInsertOrdersByAmount(t *testing.T) {
	p := New()
	p.Insert(txWithAmount(1, 30))
	p.Insert(txWithAmount(2, 10))
	p.Insert(txWithAmount(3, 20))
	require.Equal(t, 3, p.Len())

	last, ok := p.PeekLast()
	require.True(t, ok)
	require.EqualValues(t, 30, last.Amount)

	p.RemoveLast()
	last, ok = p.PeekLast()
	require.True(t, ok)
	require.EqualValues(t, 20, last.Amount)

	p.RemoveLast()
	last, ok = p.PeekLast()
	require.True(t, ok)
	require.EqualValues(t, 10, last.Amount)

	p.RemoveLast()
	require.Zero(t, p.Len())
}

// TestDuplicateSignatureFilter checks that inserting a transaction whose
// signature already appears in the pool is a no-op, even if the amount
// differs.
func TestDuplicateSignatureFilter(t *testing.T) {
	p := New()
	tx := txWithAmount(1, 50)
	p.Insert(tx)
	require.True(t, p.Contains(tx.Signature))

	dup := tx
	dup.Amount = 999
	p.Insert(dup)

	require.Equal(t, 1, p.Len())
	last, ok := p.PeekLast()
	require.True(t, ok)
	require.EqualValues(t, 50, last.Amount)
}

func TestContains(t *testing.T) {
	p := New()
	tx := txWithAmount(7, 5)
	require.False(t, p.Contains(tx.Signature))
	p.Insert(tx)
	require.True(t, p.Contains(tx.Signature))
}

// TestMempoolConsistencyProperty checks the mempool consistency invariant:
// after any sequence of Insert/RemoveLast calls, including duplicate
// signatures and interleaved removals, the two internal views never
// diverge, and PeekLast always returns the maximum pending amount.
func TestMempoolConsistencyProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		p := New()
		n := rapid.IntRange(0, 40).Draw(t, "n")

		for i := 0; i < n; i++ {
			seed := byte(rapid.IntRange(0, 255).Draw(t, "seed"))
			amount := uint64(rapid.IntRange(0, 1000).Draw(t, "amount"))
			if rapid.Bool().Draw(t, "remove") {
				p.RemoveLast()
			} else {
				p.Insert(txWithAmount(seed, amount))
			}
			require.True(t, p.ConsistencyCheck())
		}

		// Popping repeatedly must yield a non-increasing amount sequence
		// and drain the pool to empty without panicking.
		seenMax := ^uint64(0)
		for p.Len() > 0 {
			last, ok := p.PeekLast()
			require.True(t, ok)
			require.LessOrEqual(t, last.Amount, seenMax)
			seenMax = last.Amount
			p.RemoveLast()
			require.True(t, p.ConsistencyCheck())
		}
		require.Zero(t, p.Len())
	})
}
