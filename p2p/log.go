// Copyright (c) 2025 The zgcd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package p2p

import "github.com/btcsuite/btclog"

var log = btclog.Disabled

// UseLogger sets the package-wide logger used by the p2p package.
func UseLogger(logger btclog.Logger) {
	log = logger
}
