// Copyright (c) 2025 The zgcd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import "github.com/btcsuite/btclog"

// log is the package-level logger, disabled until a host process installs
// a real backend via UseLogger, so library code never panics when used
// without a wired logging subsystem.
var log = btclog.Disabled

// UseLogger sets the package-wide logger used by the blockchain package.
func UseLogger(logger btclog.Logger) {
	log = logger
}
