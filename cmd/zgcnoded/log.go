// Copyright (c) 2025 The zgcd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"

	"github.com/btcsuite/btclog"
	"github.com/jrick/logrotate/rotator"

	"github.com/zgencoin/zgcd/blockchain"
	"github.com/zgencoin/zgcd/mempool"
	"github.com/zgencoin/zgcd/mining"
	"github.com/zgencoin/zgcd/p2p"
)

var (
	backendLog = btclog.NewBackend(logWriter{})
	logRotator *rotator.Rotator

	mainLog  = backendLog.Logger("MAIN")
	chainLog = backendLog.Logger("CHAN")
	poolLog  = backendLog.Logger("MMPL")
	minerLog = backendLog.Logger("MINR")
	p2pLog   = backendLog.Logger("P2P ")
)

func init() {
	blockchain.UseLogger(chainLog)
	mempool.UseLogger(poolLog)
	mining.UseLogger(minerLog)
	p2p.UseLogger(p2pLog)
}

// logWriter fans log output out to stdout and, once initialized, to the
// rotating log file.
type logWriter struct{}

func (logWriter) Write(p []byte) (int, error) {
	os.Stdout.Write(p)
	if logRotator != nil {
		logRotator.Write(p)
	}
	return len(p), nil
}

// initLogRotator creates a rotating log file at logFile, 10 MiB per file
// with 3 rolls retained.
func initLogRotator(logFile string) error {
	logDir, _ := filepath.Split(logFile)
	if err := os.MkdirAll(logDir, 0700); err != nil {
		return err
	}
	r, err := rotator.New(logFile, 10*1024, false, 3)
	if err != nil {
		return err
	}
	logRotator = r
	return nil
}

func setLogLevels(levelStr string) {
	level, ok := btclog.LevelFromString(levelStr)
	if !ok {
		level = btclog.LevelInfo
	}
	for _, l := range []btclog.Logger{mainLog, chainLog, poolLog, minerLog, p2pLog} {
		l.SetLevel(level)
	}
}
