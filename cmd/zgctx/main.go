// Copyright (c) 2025 The zgcd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Command zgctx signs and broadcasts a single transaction from a thin
// (non-mining) node, prompting for the private key on the terminal rather
// than accepting it as a flag.
package main

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"
	"time"

	"golang.org/x/crypto/ssh/terminal"

	"github.com/zgencoin/zgcd/addresses"
	"github.com/zgencoin/zgcd/chaincfg/chainhash"
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
	setLogLevels(cfg.DebugLevel)

	recipient, err := chainhash.AddressFromString(cfg.Recipient)
	if err != nil {
		return fmt.Errorf("invalid --recipient: %w", err)
	}

	privateKey, err := readPrivateKey()
	if err != nil {
		return fmt.Errorf("failed to read private key: %w", err)
	}

	w := wallet.New(privateKey)
	bech32Addr, err := addresses.EncodeBech32(w.Pubkey())
	if err != nil {
		return fmt.Errorf("failed to encode sender address: %w", err)
	}
	txLog.Infof("signing as address %s (%s)", bech32Addr, w.Pubkey())

	node, err := p2p.NewThinNode(cfg.ListenAddr, cfg.Peers, w)
	if err != nil {
		return fmt.Errorf("failed to start thin node: %w", err)
	}
	defer node.Close()

	if err := node.NewTransaction(cfg.Amount, recipient, privateKey, uint64(time.Now().UnixMicro())); err != nil {
		return fmt.Errorf("failed to build transaction: %w", err)
	}

	broadcast(node, cfg.Peers)
	awaitConfirmation(node)
	return nil
}

// readPrivateKey reads a private key from the controlling terminal without
// echoing it, falling back to a plain line read when stdin is not a
// terminal (e.g. piped input in scripted use).
func readPrivateKey() (string, error) {
	fd := int(os.Stdin.Fd())
	if !terminal.IsTerminal(fd) {
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil {
			return "", err
		}
		return trimNewline(line), nil
	}

	fmt.Fprint(os.Stderr, "private key: ")
	keyBytes, err := terminal.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", err
	}
	return string(keyBytes), nil
}

func trimNewline(s string) string {
	for len(s) > 0 && (s[len(s)-1] == '\n' || s[len(s)-1] == '\r') {
		s = s[:len(s)-1]
	}
	return s
}

// broadcast calls Gossip once per configured peer. Each call sends the
// pending transaction to a randomly picked peer, so a peer may receive it
// more than once and another peer not at all.
func broadcast(node *p2p.ThinNode, peers []string) {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	for range peers {
		if err := node.Gossip(rng); err != nil {
			txLog.Warnf("gossip failed: %v", err)
		}
	}
}

// awaitConfirmation listens for one inbound reply, giving up after a short
// timeout since a peer may not reply at all.
func awaitConfirmation(node *p2p.ThinNode) {
	result := make(chan struct {
		reply p2p.MessageToPeer
		err   error
	}, 1)

	go func() {
		reply, err := node.Listen()
		result <- struct {
			reply p2p.MessageToPeer
			err   error
		}{reply, err}
	}()

	select {
	case r := <-result:
		if r.err != nil {
			txLog.Warnf("listen failed: %v", r.err)
			return
		}
		if err := node.Reply(r.reply); err != nil {
			txLog.Warnf("failed to acknowledge %s: %v", r.reply.Peer, err)
		}
		if len(node.Pending()) == 0 {
			txLog.Info("transaction confirmed mined")
		}
	case <-time.After(10 * time.Second):
		txLog.Info("no confirmation received, transaction remains broadcast")
	}
}
