package wallet

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zgencoin/zgcd/chaincfg/chainhash"
)

// TestKeygenVector pins a known-answer keygen vector.
func TestKeygenVector(t *testing.T) {
	addr := keygen("random2private#key")
	require.Equal(t, "4c37a9b5a8f660cb937af4b13310eeaee5b594b5", addr.String())
}

func TestPubkeyMatchesKeygen(t *testing.T) {
	w := New("my-secret-key")
	require.Equal(t, keygen("my-secret-key"), w.Pubkey())
}

func TestNewTransactionWrongKey(t *testing.T) {
	w := New("correct-key")
	recipient := keygen("someone-else")

	_, err := w.NewTransaction(10, recipient, "incorrect-key", 1000)
	require.ErrorIs(t, err, ErrWrongPrivateKey)
}

func TestNewTransactionDeterministic(t *testing.T) {
	w := New("correct-key")
	recipient := keygen("someone-else")

	tx1, err := w.NewTransaction(10, recipient, "correct-key", 1000)
	require.NoError(t, err)
	tx2, err := w.NewTransaction(10, recipient, "correct-key", 1000)
	require.NoError(t, err)
	require.Equal(t, tx1, tx2)

	// A different timestamp must change the signature.
	tx3, err := w.NewTransaction(10, recipient, "correct-key", 1001)
	require.NoError(t, err)
	require.NotEqual(t, tx1.Signature, tx3.Signature)
}

func TestNewSelfMint(t *testing.T) {
	w := New("miner-key")
	tx := w.NewSelfMint(500)

	require.Equal(t, chainhash.MaxHash(), tx.Signature)
	require.True(t, tx.IsSelfMint())
	require.Equal(t, w.Pubkey(), tx.Sender)
	require.Equal(t, w.Pubkey(), tx.Recipient)
	require.EqualValues(t, 500, tx.Amount)
}
