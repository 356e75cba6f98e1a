// Copyright (c) 2025 The zgcd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"encoding/json"

	"github.com/zgencoin/zgcd/chaincfg/chainhash"
)

// BlockHeader is the portion of a block that is hashed for proof-of-work
// and chain linkage. Field order is load-bearing: difficulty,
// previous_hash, data_hash, nonce.
type BlockHeader struct {
	Difficulty   uint8             `json:"difficulty"`
	PreviousHash chainhash.Hash256 `json:"previous_hash"`
	DataHash     chainhash.Hash256 `json:"data_hash"`
	Nonce        uint32            `json:"nonce"`
}

// CanonicalString returns the header's canonical, whitespace-free JSON
// serialization, the exact input hashed for proof-of-work and for chain
// linkage. Go's encoding/json marshals struct fields in declaration order
// with no inserted whitespace, so the struct's field order above is load
// bearing: reordering the fields changes every hash in the chain.
func (h BlockHeader) CanonicalString() string {
	// json.Marshal on this type cannot fail: every field is a fixed-width
	// value or an unsigned integer, none of which can produce an
	// unsupported-type or cyclic-reference error.
	b, err := json.Marshal(h)
	if err != nil {
		panic("wire: BlockHeader failed to serialize: " + err.Error())
	}
	return string(b)
}

// BlockData is the payload of a block: the mined user transaction plus the
// miner's self-reward. Field order is load-bearing: tx, mint_tx.
type BlockData struct {
	Tx     TxData `json:"tx"`
	MintTx TxData `json:"mint_tx"`
}

// Block is a single entry in the chain. Field order is load-bearing:
// height, header, data.
type Block struct {
	Height uint64      `json:"height"`
	Header BlockHeader `json:"header"`
	Data   BlockData   `json:"data"`
}

// Genesis returns the all-zero genesis block: height 0, zero previous
// hash, zero data hash, zero nonce, and zero-valued (not self-mint)
// transactions.
func Genesis() Block {
	return Block{}
}

// Hash returns the SHA-256 hash of the block header's canonical string,
// the value by which this block is addressed in the chain store and
// referenced as another block's PreviousHash.
func (b Block) Hash() chainhash.Hash256 {
	return chainhash.HashH([]byte(b.Header.CanonicalString()))
}
