// Copyright (c) 2025 The zgcd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	flags "github.com/jessevdk/go-flags"
)

const (
	defaultLogFilename = "zgcnoded.log"
	defaultLogLevel    = "info"
	defaultDifficulty  = 1
	defaultDecimals    = 5
)

// config holds the command-line configuration of a miner node. There is no
// configuration file; every setting comes from flags or their defaults.
type config struct {
	ListenAddr string   `long:"listen" description:"address:port to bind the gossip listener on" default:"127.0.0.1:18555"`
	Peers      []string `long:"peer" description:"address:port of a peer to gossip with (may be given multiple times)"`
	PrivateKey string   `long:"privatekey" description:"private key string this node's wallet derives its address from" required:"true"`
	Difficulty uint8    `long:"difficulty" description:"proof-of-work difficulty (leading zero bytes of the target mask)" default:"1"`
	Decimals   uint8    `long:"decimals" description:"reward decimals parameter used in the self-mint formula" default:"5"`
	LogDir     string   `long:"logdir" description:"directory to write log files to"`
	DebugLevel string   `long:"debuglevel" description:"logging level: trace, debug, info, warn, error, critical" default:"info"`
}

// loadConfig parses command-line flags into a config, applying the same
// defaults a freshly started node would use absent any flags.
func loadConfig() (*config, error) {
	cfg := config{
		Difficulty: defaultDifficulty,
		Decimals:   defaultDecimals,
		DebugLevel: defaultLogLevel,
	}

	parser := flags.NewParser(&cfg, flags.Default)
	if _, err := parser.Parse(); err != nil {
		var flagsErr *flags.Error
		if ok := asFlagsError(err, &flagsErr); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		return nil, err
	}

	if len(cfg.Peers) == 0 {
		return nil, fmt.Errorf("at least one --peer is required")
	}
	for i, p := range cfg.Peers {
		cfg.Peers[i] = strings.TrimSpace(p)
	}

	if cfg.LogDir == "" {
		cfg.LogDir = defaultLogDir()
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

func defaultLogDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".zgcnoded", "logs")
}

func logFilePath(cfg *config) string {
	return filepath.Join(cfg.LogDir, defaultLogFilename)
}
