// Copyright (c) 2025 The zgcd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package mining implements proof-of-work validation and the miner's
// bounded mining round. The hash primitive is fixed to plain SHA-256 — there
// is exactly one algorithm, so there is no algorithm detection to perform.
package mining

import (
	"github.com/zgencoin/zgcd/chaincfg/chainhash"
	"github.com/zgencoin/zgcd/wire"
)

// ValidateHeader reports whether header satisfies its own proof-of-work
// target: SHA256(header.CanonicalString()) < masked(header.Difficulty).
func ValidateHeader(header wire.BlockHeader) bool {
	target := chainhash.Masked(header.Difficulty)
	h := chainhash.HashH([]byte(header.CanonicalString()))
	return h.Less(target)
}
