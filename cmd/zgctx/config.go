// Copyright (c) 2025 The zgcd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"strings"

	flags "github.com/jessevdk/go-flags"
)

// config holds the command-line configuration of a one-shot transaction
// submission: the thin node's own listen address, its peer set, and the
// transaction to sign and broadcast.
type config struct {
	ListenAddr string   `long:"listen" description:"address:port to bind the thin node's reply listener on" default:"127.0.0.1:0"`
	Peers      []string `long:"peer" description:"address:port of a peer to broadcast the transaction to (may be given multiple times)" required:"true"`
	Recipient  string   `long:"recipient" description:"hex-encoded 20-byte recipient address" required:"true"`
	Amount     uint64   `long:"amount" description:"amount to send" required:"true"`
	DebugLevel string   `long:"debuglevel" description:"logging level: trace, debug, info, warn, error, critical" default:"info"`
}

func loadConfig() (*config, error) {
	cfg := config{DebugLevel: defaultLogLevel}

	parser := flags.NewParser(&cfg, flags.Default)
	if _, err := parser.Parse(); err != nil {
		var flagsErr *flags.Error
		if ok := asFlagsError(err, &flagsErr); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		return nil, err
	}

	for i, p := range cfg.Peers {
		cfg.Peers[i] = strings.TrimSpace(p)
	}
	if cfg.Amount == 0 {
		return nil, fmt.Errorf("--amount must be nonzero")
	}

	return &cfg, nil
}

func asFlagsError(err error, target **flags.Error) bool {
	fe, ok := err.(*flags.Error)
	if ok {
		*target = fe
	}
	return ok
}

const defaultLogLevel = "info"
