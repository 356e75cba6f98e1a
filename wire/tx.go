// Copyright (c) 2025 The zgcd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package wire defines the on-the-wire data types exchanged between zgcd
// nodes: transactions, blocks, and the gossip message envelope, all encoded
// as JSON.
package wire

import (
	"encoding/json"

	"github.com/zgencoin/zgcd/chaincfg/chainhash"
)

// TxData is a transaction record. Field order is load-bearing: signature,
// sender, recipient, amount.
//
// Equality and ordering are defined solely on Amount (see Less and
// EqualAmount below) — two transactions with equal amounts compare equal for ordering
// purposes even though they remain distinct entries in a signature-keyed
// mempool map.
type TxData struct {
	Signature chainhash.Hash256  `json:"signature"`
	Sender    chainhash.Address  `json:"sender"`
	Recipient chainhash.Address  `json:"recipient"`
	Amount    uint64             `json:"amount"`
}

// IsSelfMint reports whether tx carries the self-mint sentinel signature.
func (tx TxData) IsSelfMint() bool {
	return tx.Signature == chainhash.MaxHash()
}

// Less orders transactions by amount only, ascending.
func (tx TxData) Less(other TxData) bool {
	return tx.Amount < other.Amount
}

// EqualAmount reports whether two transactions carry the same amount. It is
// not full equality: two distinct transactions (different signatures) with
// the same amount are EqualAmount but not the same entry.
func (tx TxData) EqualAmount(other TxData) bool {
	return tx.Amount == other.Amount
}

// CanonicalString returns tx's canonical, whitespace-free JSON
// serialization — the exact input hashed into a block's data_hash. As with
// BlockHeader.CanonicalString, the struct's declared field order is load
// bearing.
func (tx TxData) CanonicalString() string {
	b, err := json.Marshal(tx)
	if err != nil {
		panic("wire: TxData failed to serialize: " + err.Error())
	}
	return string(b)
}
