// Copyright (c) 2025 The zgcd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package mempool implements a dual-indexed pending-transaction set: a
// signature-keyed map for membership/dedup, and an amount-ordered slice
// used as a priority queue for mining.
package mempool

import (
	"sort"
	"sync"

	"github.com/zgencoin/zgcd/chaincfg/chainhash"
	"github.com/zgencoin/zgcd/wire"
)

// TxPool is a set of pending transactions with a signature-keyed
// membership index and an amount-ordered priority view.
type TxPool struct {
	mu          sync.RWMutex
	bySignature map[chainhash.Hash256]wire.TxData
	byAmountAsc []wire.TxData
}

// New creates an empty mempool.
func New() *TxPool {
	return &TxPool{
		bySignature: make(map[chainhash.Hash256]wire.TxData),
	}
}

// Contains reports whether a transaction with the given signature is
// already pending.
func (p *TxPool) Contains(signature chainhash.Hash256) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	_, ok := p.bySignature[signature]
	return ok
}

// Insert adds tx to both views. It is idempotent: if a transaction with
// the same signature is already pending, Insert is a no-op. After
// insertion, the amount view is re-sorted into non-decreasing order;
// transactions with equal amounts are allowed, and their relative order
// among themselves is unspecified.
//
// Insert does not reject the self-mint sentinel signature itself — that
// filter belongs to the node layer, not the mempool.
func (p *TxPool) Insert(tx wire.TxData) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, exists := p.bySignature[tx.Signature]; exists {
		return
	}

	p.bySignature[tx.Signature] = tx
	p.byAmountAsc = append(p.byAmountAsc, tx)
	sort.Slice(p.byAmountAsc, func(i, j int) bool {
		return p.byAmountAsc[i].Less(p.byAmountAsc[j])
	})

	log.Debugf("mempool: inserted tx signature=%s amount=%d size=%d",
		tx.Signature, tx.Amount, len(p.byAmountAsc))
}

// PeekLast returns the highest-amount pending transaction, or false if the
// mempool is empty.
func (p *TxPool) PeekLast() (wire.TxData, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if len(p.byAmountAsc) == 0 {
		return wire.TxData{}, false
	}
	return p.byAmountAsc[len(p.byAmountAsc)-1], true
}

// RemoveLast pops the highest-amount transaction from both views. It is a
// no-op if the mempool is empty.
func (p *TxPool) RemoveLast() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.byAmountAsc) == 0 {
		return
	}
	last := p.byAmountAsc[len(p.byAmountAsc)-1]
	p.byAmountAsc = p.byAmountAsc[:len(p.byAmountAsc)-1]
	delete(p.bySignature, last.Signature)

	log.Debugf("mempool: removed tx signature=%s amount=%d size=%d",
		last.Signature, last.Amount, len(p.byAmountAsc))
}

// Len returns the number of pending transactions.
func (p *TxPool) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.byAmountAsc)
}

// ConsistencyCheck verifies the mempool consistency invariant: the
// signature map and the amount view agree on membership, have equal
// length, and contain no duplicate signatures. It is provided for tests
// and diagnostics.
func (p *TxPool) ConsistencyCheck() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if len(p.bySignature) != len(p.byAmountAsc) {
		return false
	}
	seen := make(map[chainhash.Hash256]struct{}, len(p.byAmountAsc))
	for _, tx := range p.byAmountAsc {
		if _, dup := seen[tx.Signature]; dup {
			return false
		}
		seen[tx.Signature] = struct{}{}
		if _, ok := p.bySignature[tx.Signature]; !ok {
			return false
		}
	}
	return true
}
