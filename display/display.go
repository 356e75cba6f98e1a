// Copyright (c) 2025 The zgcd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package display formats raw on-chain amounts for human consumption in
// CLI output and log lines. It never touches the wire-level uint64
// representation a transaction or reward actually carries.
package display

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
)

// Amount renders a raw transaction or reward amount using btcutil's
// fixed-point currency conversion (8 decimal places), so CLI and log
// output get consistent trailing-zero formatting instead of a bare
// integer. The unit suffix is zgc's own rather than btcutil's built-in
// "BTC" label.
func Amount(raw uint64) string {
	return fmt.Sprintf("%.8f ZGC", btcutil.Amount(raw).ToBTC())
}
