// Copyright (c) 2025 The zgcd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package blockchain implements the append-only chain store: blocks
// indexed by both height and header hash.
package blockchain

import (
	"sync"

	"github.com/zgencoin/zgcd/chaincfg/chainhash"
	"github.com/zgencoin/zgcd/wire"
)

// Chain owns a linear, height-ordered sequence of blocks rooted at some
// starting block (the all-zero genesis for a main chain, or an arbitrary
// interior block for a fork), and maintains two lookup views over it: a
// height-indexed slice of hashes and a hash-keyed map of blocks. Both
// views share one canonical hash identity per block — the hash map is
// keyed by the Hash256 value itself, not a pointer, so there is no leaked
// or aliased storage.
//
// A Chain is safe for concurrent read access via FindHash/FindHeight/
// LastBlock/Len, but each node is expected to be the sole owner of its
// chain, so the lock here is a defensive convention rather than a
// requirement this package's callers rely on.
type Chain struct {
	mu         sync.RWMutex
	baseHeight uint64
	byHeight   []chainhash.Hash256
	byHash     map[chainhash.Hash256]wire.Block
}

// New creates a chain store seeded with root. Unlike NewGenesis, root need
// not be at height 0: this is how a tracked fork is rooted at an arbitrary
// interior block, whose tracked chain begins at the incoming block's own
// height rather than at the network genesis.
func New(root wire.Block) *Chain {
	c := &Chain{
		baseHeight: root.Height,
		byHash:     make(map[chainhash.Hash256]wire.Block),
	}
	c.insertLocked(root)
	return c
}

// NewGenesis is a convenience constructor for a chain seeded with the
// canonical all-zero genesis block.
func NewGenesis() *Chain {
	return New(wire.Genesis())
}

// Insert appends block to the chain, computing its header hash and
// indexing it by both height and hash. The caller must ensure
// block.Height is one above the current tip's height (Len() for a chain
// rooted at genesis) before calling; out-of-order inserts are a
// programming error, not a runtime-checked failure — an insert at an
// already-used height overwrites that height's index entry, and an insert
// below the root or beyond the next height panics, rather than returning
// an error.
func (c *Chain) Insert(block wire.Block) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.insertLocked(block)
}

func (c *Chain) insertLocked(block wire.Block) {
	h := block.Hash()
	idx := int(block.Height - c.baseHeight)
	if idx == len(c.byHeight) {
		c.byHeight = append(c.byHeight, h)
	} else {
		c.byHeight[idx] = h
	}
	c.byHash[h] = block
	log.Debugf("chain: inserted block height=%d hash=%s", block.Height, h)
}

// FindHash looks up a block by its header hash.
func (c *Chain) FindHash(h chainhash.Hash256) (wire.Block, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	b, ok := c.byHash[h]
	return b, ok
}

// FindHeight looks up a block by height.
func (c *Chain) FindHeight(height uint64) (wire.Block, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if height < c.baseHeight {
		return wire.Block{}, false
	}
	idx := height - c.baseHeight
	if idx >= uint64(len(c.byHeight)) {
		return wire.Block{}, false
	}
	return c.byHash[c.byHeight[idx]], true
}

// LastBlock returns the tip of the chain. It is always defined because the
// root block (genesis for a main chain) is always present.
func (c *Chain) LastBlock() wire.Block {
	c.mu.RLock()
	defer c.mu.RUnlock()
	lastHash := c.byHeight[len(c.byHeight)-1]
	return c.byHash[lastHash]
}

// LastBlockHash returns the header hash of the tip of the chain.
func (c *Chain) LastBlockHash() chainhash.Hash256 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.byHeight[len(c.byHeight)-1]
}

// Len returns the number of blocks in the chain, always at least 1.
func (c *Chain) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.byHeight)
}

// VerifyLinkage checks the chain linkage invariant: for every non-genesis
// block B at height h, B.header.previous_hash equals
// SHA256(chain[h-1].header.canonical_string()). It is provided for tests
// and diagnostics, not invoked on the hot insert path.
func (c *Chain) VerifyLinkage() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for h := 1; h < len(c.byHeight); h++ {
		prev := c.byHash[c.byHeight[h-1]]
		cur := c.byHash[c.byHeight[h]]
		if cur.Header.PreviousHash != prev.Hash() {
			return false
		}
	}
	return true
}
