// Copyright (c) 2025 The zgcd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wallet

import "errors"

// ErrWrongPrivateKey is returned by NewTransaction when the supplied
// private key does not derive the wallet's own address.
var ErrWrongPrivateKey = errors.New("wrong private key provided, cannot sign transaction")
