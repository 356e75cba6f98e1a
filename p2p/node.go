// Copyright (c) 2025 The zgcd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package p2p implements the gossip-driven node types: the mining node's
// status state machine and message-handling table, the thin
// (transaction-originating) node, and the one-message-per-connection TCP
// transport both run over.
package p2p

import (
	"net"
	"strconv"

	"github.com/zgencoin/zgcd/blockchain"
	"github.com/zgencoin/zgcd/wire"
)

// validateAddr reports whether addr has the "host:port" syntax this
// package's transport requires, without attempting to resolve or dial it.
func validateAddr(addr string) error {
	host, port, err := net.SplitHostPort(addr)
	if err != nil || port == "" {
		return &InvalidPeerAddressError{Addr: addr}
	}
	if _, err := strconv.ParseUint(port, 10, 16); err != nil {
		return &InvalidPeerAddressError{Addr: addr}
	}
	_ = host // a host is optional: ":0" wildcard-binds on every interface
	return nil
}

// StatusKind names a miner's position in the gossip node's state machine.
type StatusKind int

const (
	// StatusSyncing is the initial state: the node has not yet confirmed
	// its chain tip matches the network.
	StatusSyncing StatusKind = iota
	// StatusMining is the steady state: the node attempts proof-of-work
	// rounds on each gossip tick.
	StatusMining
	// StatusForked indicates the node has observed a competing chain and
	// is tracking it alongside its own.
	StatusForked
)

func (k StatusKind) String() string {
	switch k {
	case StatusSyncing:
		return "Syncing"
	case StatusMining:
		return "Mining"
	case StatusForked:
		return "Forked"
	default:
		return "Unknown"
	}
}

// Status is a miner's current state. Forks is populated only when Kind is
// StatusForked; it holds exactly the forks currently being tracked, which
// in this implementation is always at most one (a newly observed fork
// replaces any prior set rather than accumulating).
type Status struct {
	Kind  StatusKind
	Forks []*blockchain.Chain
}

// Syncing builds the initial status of a freshly constructed miner.
func Syncing() Status { return Status{Kind: StatusSyncing} }

// Mining builds the steady-state status.
func Mining() Status { return Status{Kind: StatusMining} }

// ForkedOn builds a forked status tracking exactly one chain, rooted at an
// incoming block whose parent is not the current tip.
func ForkedOn(fork *blockchain.Chain) Status {
	return Status{Kind: StatusForked, Forks: []*blockchain.Chain{fork}}
}

// MessageToPeer pairs an outgoing message with the peer address it is
// directed to.
type MessageToPeer struct {
	Msg  wire.Message
	Peer string
}
