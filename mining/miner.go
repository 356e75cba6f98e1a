// Copyright (c) 2025 The zgcd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mining

import (
	"github.com/zgencoin/zgcd/blockchain"
	"github.com/zgencoin/zgcd/chaincfg/chainhash"
	"github.com/zgencoin/zgcd/mempool"
	"github.com/zgencoin/zgcd/wallet"
	"github.com/zgencoin/zgcd/wire"
)

// LoopBudget is the nominal number of nonce attempts a single mining round
// makes before giving up.
const LoopBudget = 100

// Round attempts a single bounded mining round: it peeks the highest-amount
// pending transaction, builds a candidate header rooted at the chain's tip,
// and tries up to loops nonces starting at initNonce. On success it mints
// the miner's reward, appends the new block to chain, removes the mined
// transaction from pool, and returns (block, true). If the mempool is empty
// or no nonce in the loop budget satisfies the target, it returns
// (wire.Block{}, false) without mutating chain or pool.
func Round(chain *blockchain.Chain, pool *mempool.TxPool, w *wallet.Wallet, difficulty, decimals uint8, loops int, initNonce uint32) (wire.Block, bool) {
	tx, ok := pool.PeekLast()
	if !ok {
		return wire.Block{}, false
	}

	target := chainhash.Masked(difficulty)
	header := wire.BlockHeader{
		Difficulty:   difficulty,
		PreviousHash: chain.LastBlockHash(),
		DataHash:     chainhash.HashH([]byte(tx.CanonicalString())),
		Nonce:        initNonce,
	}

	for i := 0; i < loops; i++ {
		h := chainhash.HashH([]byte(header.CanonicalString()))
		if h.Less(target) {
			mintTx := w.NewSelfMint(selfMintAmount(tx.Amount, difficulty, decimals))
			block := wire.Block{
				Height: uint64(chain.Len()),
				Header: header,
				Data:   wire.BlockData{Tx: tx, MintTx: mintTx},
			}
			chain.Insert(block)
			pool.RemoveLast()
			log.Debugf("mining: found block height=%d nonce=%d mint=%d", block.Height, header.Nonce, mintTx.Amount)
			return block, true
		}
		header.Nonce++ // wraps on overflow
	}

	return wire.Block{}, false
}

// selfMintAmount computes the miner's reward for mining a transaction of
// the given amount. It is computed in a two-step truncating order —
// multiply by decimals before dividing by 100, then divide back out by
// decimals. Nested truncating division gives the same result as
// amount*difficulty/100 whenever amount*decimals*difficulty does not
// overflow uint64.
func selfMintAmount(amount uint64, difficulty, decimals uint8) uint64 {
	scaled := (amount * uint64(decimals) * uint64(difficulty)) / 100
	return scaled / uint64(decimals)
}
