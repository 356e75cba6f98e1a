// Copyright (c) 2025 The zgcd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package p2p

import (
	"net"
	"time"

	"github.com/zgencoin/zgcd/wire"
)

// dialTimeout and streamDeadline bound the single-shot TCP connections this
// package uses for gossip. An unbounded dial or read can wedge a node's
// entire gossip loop on one unresponsive peer.
const (
	dialTimeout    = 5 * time.Second
	streamDeadline = 10 * time.Second
)

// sendMessage dials addr, writes msg as a single JSON document, and closes
// the connection. This is the gossip-send half of the
// one-message-per-connection transport model.
func sendMessage(addr string, msg wire.Message) error {
	conn, err := net.DialTimeout("tcp", addr, dialTimeout)
	if err != nil {
		return &ConnectError{Addr: addr, Err: err}
	}
	defer conn.Close()

	if err := conn.SetWriteDeadline(time.Now().Add(streamDeadline)); err != nil {
		return &WriteError{Addr: addr, Err: err}
	}
	if err := wire.Encode(conn, msg); err != nil {
		return &WriteError{Addr: addr, Err: err}
	}
	return nil
}

// acceptMessage accepts exactly one inbound connection on l, decodes a
// single message from it, and returns the message along with the remote
// peer's address. It does not close l.
func acceptMessage(l net.Listener) (wire.Message, string, error) {
	conn, err := l.Accept()
	if err != nil {
		return wire.Message{}, "", &AcceptError{Err: err}
	}
	defer conn.Close()

	peerAddr := conn.RemoteAddr().String()

	if err := conn.SetReadDeadline(time.Now().Add(streamDeadline)); err != nil {
		return wire.Message{}, peerAddr, &DecodeError{Err: err}
	}
	msg, err := wire.Decode(conn)
	if err != nil {
		return wire.Message{}, peerAddr, &DecodeError{Err: err}
	}
	return msg, peerAddr, nil
}
