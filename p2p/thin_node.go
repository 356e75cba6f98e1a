// Copyright (c) 2025 The zgcd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package p2p

import (
	"math/rand"
	"net"

	"github.com/zgencoin/zgcd/chaincfg/chainhash"
	"github.com/zgencoin/zgcd/wallet"
	"github.com/zgencoin/zgcd/wire"
)

// ThinNode is a transaction-originating node: it signs and broadcasts
// transactions but does not mine or keep a chain store.
type ThinNode struct {
	listener net.Listener
	peers    []string
	wallet   *wallet.Wallet
	pending  []wire.TxData
}

// NewThinNode binds a listener on ownAddr and constructs a thin node with
// an empty outgoing transaction list.
func NewThinNode(ownAddr string, peers []string, w *wallet.Wallet) (*ThinNode, error) {
	if err := validateAddr(ownAddr); err != nil {
		return nil, err
	}
	for _, p := range peers {
		if err := validateAddr(p); err != nil {
			return nil, err
		}
	}

	l, err := net.Listen("tcp", ownAddr)
	if err != nil {
		return nil, &BindError{Addr: ownAddr, Err: err}
	}
	return &ThinNode{
		listener: l,
		peers:    append([]string(nil), peers...),
		wallet:   w,
	}, nil
}

// Close releases the thin node's listening endpoint.
func (n *ThinNode) Close() error { return n.listener.Close() }

// Reply sends the MessageToPeer returned by Listen back to its originating
// peer.
func (n *ThinNode) Reply(reply MessageToPeer) error {
	return sendMessage(reply.Peer, reply.Msg)
}

// Pending returns the node's unconfirmed outgoing transactions, for
// diagnostics and tests.
func (n *ThinNode) Pending() []wire.TxData { return append([]wire.TxData(nil), n.pending...) }

// NewTransaction signs a transaction via the node's wallet and appends it
// to the local transmit list.
func (n *ThinNode) NewTransaction(amount uint64, recipient chainhash.Address, privateKey string, timestampMicros uint64) error {
	tx, err := n.wallet.NewTransaction(amount, recipient, privateKey, timestampMicros)
	if err != nil {
		return err
	}
	n.pending = append(n.pending, tx)
	return nil
}

// Gossip selects one peer uniformly at random and sends the oldest pending
// transaction, or a Ping if there is nothing to broadcast.
func (n *ThinNode) Gossip(rng *rand.Rand) error {
	if len(n.peers) == 0 {
		return &NoPeersError{}
	}
	peer := n.peers[rng.Intn(len(n.peers))]

	msg := wire.Ping()
	if len(n.pending) > 0 {
		msg = wire.NewTransaction(n.pending[0])
	}
	return sendMessage(peer, msg)
}

// Listen blocks until one inbound connection arrives. On a Block message
// whose mined transaction matches one of the node's pending transactions,
// that transaction is removed from the transmit list. Every inbound
// message is acknowledged with a Ping.
func (n *ThinNode) Listen() (MessageToPeer, error) {
	msg, peerAddr, err := acceptMessage(n.listener)
	if err != nil {
		return MessageToPeer{}, err
	}

	if msg.Kind == wire.KindBlock {
		n.removeMined(msg.Block.Data.Tx.Signature)
	}

	return MessageToPeer{Msg: wire.Ping(), Peer: peerAddr}, nil
}

func (n *ThinNode) removeMined(signature chainhash.Hash256) {
	for i, tx := range n.pending {
		if tx.Signature == signature {
			n.pending = append(n.pending[:i], n.pending[i+1:]...)
			log.Debugf("p2p: thin node confirmed tx signature=%s", signature)
			return
		}
	}
}
