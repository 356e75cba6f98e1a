// Copyright (c) 2025 The zgcd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Command zgcnoded runs a single miner node: it gossips and mines against
// its configured peers until interrupted.
package main

import (
	"errors"
	"fmt"
	"math/rand"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/zgencoin/zgcd/addresses"
	"github.com/zgencoin/zgcd/p2p"
	"github.com/zgencoin/zgcd/wallet"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if err := initLogRotator(logFilePath(cfg)); err != nil {
		return fmt.Errorf("failed to init log rotator: %w", err)
	}
	setLogLevels(cfg.DebugLevel)

	w := wallet.New(cfg.PrivateKey)
	bech32Addr, err := addresses.EncodeBech32(w.Pubkey())
	if err != nil {
		return fmt.Errorf("failed to encode node address: %w", err)
	}
	mainLog.Infof("derived node address %s (%s)", bech32Addr, w.Pubkey())

	miner, err := p2p.NewMiner(cfg.ListenAddr, cfg.Peers, w, cfg.Difficulty, cfg.Decimals)
	if err != nil {
		return fmt.Errorf("failed to start miner node: %w", err)
	}
	defer miner.Close()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	done := make(chan struct{})
	go driveNode(miner, done)

	<-shutdown
	mainLog.Info("received shutdown signal, closing listener")
	miner.Close()
	<-done
	return nil
}

// driveNode alternates gossip and listen calls forever on a single
// goroutine, closing done when the listener is closed out from under it.
func driveNode(miner *p2p.Miner, done chan<- struct{}) {
	defer close(done)
	rng := rand.New(rand.NewSource(1))

	for {
		if err := miner.Gossip(rng); err != nil {
			minerLog.Warnf("gossip failed: %v", err)
		}

		reply, err := miner.Listen()
		if err != nil {
			minerLog.Warnf("listen failed: %v", err)
			if errors.Is(err, net.ErrClosed) {
				return
			}
			continue
		}
		if err := miner.Reply(reply); err != nil {
			minerLog.Warnf("failed to reply to %s: %v", reply.Peer, err)
		}
	}
}
