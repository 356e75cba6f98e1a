// Copyright (c) 2025 The zgcd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package p2p

import (
	"math/rand"
	"net"

	"github.com/zgencoin/zgcd/blockchain"
	"github.com/zgencoin/zgcd/display"
	"github.com/zgencoin/zgcd/mempool"
	"github.com/zgencoin/zgcd/mining"
	"github.com/zgencoin/zgcd/wallet"
	"github.com/zgencoin/zgcd/wire"
)

// Miner is a full node that mines blocks and relays gossip. It owns its
// chain, mempool, wallet, and peer set exclusively — nothing here is
// shared with another node in the same process.
type Miner struct {
	listener   net.Listener
	peers      []string
	chain      *blockchain.Chain
	pool       *mempool.TxPool
	wallet     *wallet.Wallet
	difficulty uint8
	decimals   uint8
	status     Status
}

// NewMiner binds a listener on ownAddr and constructs a miner seeded with
// the genesis chain, an empty mempool, and StatusSyncing.
func NewMiner(ownAddr string, peers []string, w *wallet.Wallet, difficulty, decimals uint8) (*Miner, error) {
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
	return &Miner{
		listener:   l,
		peers:      append([]string(nil), peers...),
		chain:      blockchain.NewGenesis(),
		pool:       mempool.New(),
		wallet:     w,
		difficulty: difficulty,
		decimals:   decimals,
		status:     Syncing(),
	}, nil
}

// Close releases the miner's listening endpoint.
func (m *Miner) Close() error { return m.listener.Close() }

// Reply sends the MessageToPeer returned by Listen back to its originating
// peer. It is split out from Listen so a driver can log or retry the send
// independently of the state transition that produced it.
func (m *Miner) Reply(reply MessageToPeer) error {
	return sendMessage(reply.Peer, reply.Msg)
}

// Status returns the miner's current state, for diagnostics and tests.
func (m *Miner) Status() Status { return m.status }

// Chain returns the miner's chain store, for diagnostics and tests.
func (m *Miner) Chain() *blockchain.Chain { return m.chain }

// Pool returns the miner's mempool, for diagnostics and tests.
func (m *Miner) Pool() *mempool.TxPool { return m.pool }

// Gossip selects one peer uniformly at random and builds an outgoing
// message from the miner's current status, then sends it.
func (m *Miner) Gossip(rng *rand.Rand) error {
	if len(m.peers) == 0 {
		return &NoPeersError{}
	}
	peer := m.peers[rng.Intn(len(m.peers))]

	var msg wire.Message
	switch m.status.Kind {
	case StatusMining:
		block, ok := mining.Round(m.chain, m.pool, m.wallet, m.difficulty, m.decimals, mining.LoopBudget, rng.Uint32())
		if ok {
			log.Infof("p2p: mined block height=%d reward=%s", block.Height, display.Amount(block.Data.MintTx.Amount))
			msg = wire.NewBlock(block)
		} else {
			msg = wire.NewBlock(m.chain.LastBlock())
		}
	case StatusForked, StatusSyncing:
		msg = wire.NewBlockRequest(uint64(m.chain.Len()))
	}

	log.Debugf("p2p: miner gossip status=%s peer=%s", m.status.Kind, peer)
	return sendMessage(peer, msg)
}

// Listen blocks until one inbound connection arrives, decodes its message,
// updates internal state according to the message-handling table, and
// returns the reply the caller should send back to the originating peer (a
// Ping when no structured reply applies).
func (m *Miner) Listen() (MessageToPeer, error) {
	msg, peerAddr, err := acceptMessage(m.listener)
	if err != nil {
		return MessageToPeer{}, err
	}

	switch msg.Kind {
	case wire.KindBlock:
		m.handleBlock(msg.Block)
		return MessageToPeer{Msg: wire.Ping(), Peer: peerAddr}, nil

	case wire.KindTransaction:
		tx := msg.Transaction
		if !tx.IsSelfMint() && !m.pool.Contains(tx.Signature) {
			m.pool.Insert(tx)
			log.Debugf("p2p: accepted transaction amount=%s from=%s", display.Amount(tx.Amount), peerAddr)
		}
		return MessageToPeer{Msg: wire.Ping(), Peer: peerAddr}, nil

	case wire.KindBlockRequest:
		block, ok := m.chain.FindHeight(msg.RequestHeight)
		if !ok {
			block = m.chain.LastBlock()
		}
		return MessageToPeer{Msg: wire.NewBlock(block), Peer: peerAddr}, nil

	default: // wire.KindPing
		return MessageToPeer{Msg: wire.Ping(), Peer: peerAddr}, nil
	}
}

// handleBlock implements the Block(incoming) state transition table.
func (m *Miner) handleBlock(incoming wire.Block) {
	switch m.status.Kind {
	case StatusSyncing:
		if incoming.Header.PreviousHash == m.chain.LastBlockHash() {
			m.chain.Insert(incoming)
		} else if incoming.Height == m.chain.LastBlock().Height {
			m.status = Mining()
		}

	case StatusMining:
		if incoming.Header.PreviousHash == m.chain.LastBlockHash() {
			m.chain.Insert(incoming)
		} else if _, found := m.chain.FindHash(incoming.Header.PreviousHash); found {
			fork := blockchain.New(incoming)
			m.status = ForkedOn(fork)
		}

	case StatusForked:
		for _, fork := range m.status.Forks {
			if fork.LastBlockHash() == incoming.Header.PreviousHash {
				fork.Insert(incoming)
				m.status = ForkedOn(fork)
				return
			}
		}
		if m.chain.LastBlockHash() == incoming.Header.PreviousHash {
			m.chain.Insert(incoming)
			m.status = Mining()
		}
	}
}
