// Copyright (c) 2025 The zgcd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/btcsuite/btclog"

	"github.com/zgencoin/zgcd/p2p"
)

var (
	backendLog = btclog.NewBackend(os.Stdout)
	txLog      = backendLog.Logger("ZGCTX")
	p2pLog     = backendLog.Logger("P2P ")
)

func init() {
	p2p.UseLogger(p2pLog)
}

func setLogLevels(levelStr string) {
	level, ok := btclog.LevelFromString(levelStr)
	if !ok {
		level = btclog.LevelInfo
	}
	txLog.SetLevel(level)
	p2pLog.SetLevel(level)
}
