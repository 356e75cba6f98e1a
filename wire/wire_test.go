package wire

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"

	"github.com/zgencoin/zgcd/chaincfg/chainhash"
)

func TestGenesisBlock(t *testing.T) {
	g := Genesis()
	require.Zero(t, g.Height)
	require.True(t, g.Header.PreviousHash.IsZero())
	require.True(t, g.Header.DataHash.IsZero())
	require.Zero(t, g.Header.Nonce)
	require.Zero(t, g.Header.Difficulty)
}

func TestBlockHeaderCanonicalStringFieldOrder(t *testing.T) {
	h := BlockHeader{
		Difficulty:   3,
		PreviousHash: chainhash.MaxHash(),
		DataHash:     chainhash.ZeroHash(),
		Nonce:        7,
	}
	s := h.CanonicalString()

	// no whitespace
	require.NotContains(t, s, " ")
	require.NotContains(t, s, "\n")

	// field order: difficulty, previous_hash, data_hash, nonce
	diffIdx := indexOf(s, `"difficulty"`)
	prevIdx := indexOf(s, `"previous_hash"`)
	dataIdx := indexOf(s, `"data_hash"`)
	nonceIdx := indexOf(s, `"nonce"`)
	require.True(t, diffIdx < prevIdx)
	require.True(t, prevIdx < dataIdx)
	require.True(t, dataIdx < nonceIdx)
}

func indexOf(s, sub string) int {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return i
		}
	}
	return -1
}

func TestMessageRoundTripPing(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, Ping()))
	require.Equal(t, "\"Ping\"\n", buf.String())

	msg, err := Decode(&buf)
	require.NoError(t, err)
	require.Equal(t, KindPing, msg.Kind)
}

func TestMessageRoundTripTransaction(t *testing.T) {
	sender, err := chainhash.AddressFromString("0123456789abcdeffedcba9876543210aabbccdd")
	require.NoError(t, err)
	recipient, err := chainhash.AddressFromString("aabbccdd0123456789abcdeffedcba9876543210")
	require.NoError(t, err)

	tx := TxData{
		Signature: chainhash.HashH([]byte("sig")),
		Sender:    sender,
		Recipient: recipient,
		Amount:    42,
	}

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, NewTransaction(tx)))

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(buf.Bytes(), &raw))
	require.Contains(t, raw, "Transaction")

	msg, err := Decode(&buf)
	require.NoError(t, err)
	require.Equal(t, KindTransaction, msg.Kind)
	require.Equal(t, tx, msg.Transaction)
}

func TestMessageRoundTripBlockRequest(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, NewBlockRequest(17)))

	msg, err := Decode(&buf)
	require.NoError(t, err)
	require.Equal(t, KindBlockRequest, msg.Kind)
	require.EqualValues(t, 17, msg.RequestHeight)
}

func TestMessageRoundTripBlock(t *testing.T) {
	b := Block{
		Height: 1,
		Header: BlockHeader{Difficulty: 1, Nonce: 5},
		Data:   BlockData{Tx: TxData{Amount: 3}, MintTx: TxData{Signature: chainhash.MaxHash(), Amount: 1}},
	}

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, NewBlock(b)))
	t.Log(spew.Sdump(b))

	msg, err := Decode(&buf)
	require.NoError(t, err)
	require.Equal(t, KindBlock, msg.Kind)
	require.Equal(t, b, msg.Block)
}

func TestMessageDecodeRejectsUnknownTag(t *testing.T) {
	_, err := Decode(bytes.NewBufferString(`{"Unknown": 1}`))
	require.Error(t, err)
}

func TestMessageDecodeRejectsMultiKeyObject(t *testing.T) {
	_, err := Decode(bytes.NewBufferString(`{"Ping": 1, "Block": 2}`))
	require.Error(t, err)
}
