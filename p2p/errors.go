// Copyright (c) 2025 The zgcd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package p2p

import "fmt"

// BindError is returned when a node fails to bind its listening endpoint.
type BindError struct {
	Addr string
	Err  error
}

func (e *BindError) Error() string {
	return fmt.Sprintf("p2p: failed to bind listener on %s: %v", e.Addr, e.Err)
}
func (e *BindError) Unwrap() error { return e.Err }

// AcceptError is returned when accepting an inbound connection fails.
type AcceptError struct{ Err error }

func (e *AcceptError) Error() string {
	return fmt.Sprintf("p2p: failed to accept incoming stream: %v", e.Err)
}
func (e *AcceptError) Unwrap() error { return e.Err }

// ConnectError is returned when dialing a peer fails.
type ConnectError struct {
	Addr string
	Err  error
}

func (e *ConnectError) Error() string {
	return fmt.Sprintf("p2p: failed to connect to peer %s: %v", e.Addr, e.Err)
}
func (e *ConnectError) Unwrap() error { return e.Err }

// WriteError is returned when writing a gossip message to a peer fails.
type WriteError struct {
	Addr string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("p2p: failed to write message to peer %s: %v", e.Addr, e.Err)
}
func (e *WriteError) Unwrap() error { return e.Err }

// DecodeError is returned when an inbound message fails to decode. A
// decode failure is propagated to the driver without mutating any node
// state.
type DecodeError struct{ Err error }

func (e *DecodeError) Error() string {
	return fmt.Sprintf("p2p: failed to decode inbound message: %v", e.Err)
}
func (e *DecodeError) Unwrap() error { return e.Err }

// InvalidPeerAddressError is returned when a remote address cannot be
// parsed into the peer address format this package tracks.
type InvalidPeerAddressError struct{ Addr string }

func (e *InvalidPeerAddressError) Error() string {
	return fmt.Sprintf("p2p: invalid peer address format: %q", e.Addr)
}

// NoPeersError is returned by gossip when a node has no peers to select
// from.
type NoPeersError struct{}

func (e *NoPeersError) Error() string { return "p2p: no peers to connect to" }
