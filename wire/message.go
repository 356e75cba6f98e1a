// Copyright (c) 2025 The zgcd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"encoding/json"
	"fmt"
)

// MessageKind identifies which of the four gossip message cases a Message
// carries.
type MessageKind int

const (
	// KindPing carries no payload.
	KindPing MessageKind = iota
	// KindTransaction carries a TxData.
	KindTransaction
	// KindBlock carries a Block.
	KindBlock
	// KindBlockRequest carries a requested height.
	KindBlockRequest
)

// Message is the wire-format tagged union with exactly four cases:
//
//	{"Transaction": {<TxData fields>}}
//	{"Block": {<Block fields>}}
//	{"BlockRequest": <u64 height>}
//	"Ping"
//
// Only the field matching Kind is meaningful; the others are the type's
// zero value.
type Message struct {
	Kind          MessageKind
	Transaction   TxData
	Block         Block
	RequestHeight uint64
}

// Ping returns a Ping message.
func Ping() Message { return Message{Kind: KindPing} }

// NewTransaction wraps tx in a Transaction message.
func NewTransaction(tx TxData) Message {
	return Message{Kind: KindTransaction, Transaction: tx}
}

// NewBlock wraps b in a Block message.
func NewBlock(b Block) Message {
	return Message{Kind: KindBlock, Block: b}
}

// NewBlockRequest wraps height in a BlockRequest message.
func NewBlockRequest(height uint64) Message {
	return Message{Kind: KindBlockRequest, RequestHeight: height}
}

// MarshalJSON renders the message in its tagged-union wire form.
func (m Message) MarshalJSON() ([]byte, error) {
	switch m.Kind {
	case KindPing:
		return json.Marshal("Ping")
	case KindTransaction:
		return json.Marshal(map[string]TxData{"Transaction": m.Transaction})
	case KindBlock:
		return json.Marshal(map[string]Block{"Block": m.Block})
	case KindBlockRequest:
		return json.Marshal(map[string]uint64{"BlockRequest": m.RequestHeight})
	default:
		return nil, fmt.Errorf("wire: unknown message kind %d", m.Kind)
	}
}

// UnmarshalJSON parses any of the four wire forms into m.
func (m *Message) UnmarshalJSON(data []byte) error {
	var asString string
	if err := json.Unmarshal(data, &asString); err == nil {
		if asString != "Ping" {
			return fmt.Errorf("wire: unrecognized bare message %q", asString)
		}
		*m = Message{Kind: KindPing}
		return nil
	}

	var asObject map[string]json.RawMessage
	if err := json.Unmarshal(data, &asObject); err != nil {
		return fmt.Errorf("wire: message is neither \"Ping\" nor a tagged object: %w", err)
	}
	if len(asObject) != 1 {
		return fmt.Errorf("wire: tagged message must have exactly one key, got %d", len(asObject))
	}

	for tag, payload := range asObject {
		switch tag {
		case "Transaction":
			var tx TxData
			if err := json.Unmarshal(payload, &tx); err != nil {
				return fmt.Errorf("wire: decoding Transaction payload: %w", err)
			}
			*m = Message{Kind: KindTransaction, Transaction: tx}
			return nil
		case "Block":
			var b Block
			if err := json.Unmarshal(payload, &b); err != nil {
				return fmt.Errorf("wire: decoding Block payload: %w", err)
			}
			*m = Message{Kind: KindBlock, Block: b}
			return nil
		case "BlockRequest":
			var height uint64
			if err := json.Unmarshal(payload, &height); err != nil {
				return fmt.Errorf("wire: decoding BlockRequest payload: %w", err)
			}
			*m = Message{Kind: KindBlockRequest, RequestHeight: height}
			return nil
		default:
			return fmt.Errorf("wire: unrecognized message tag %q", tag)
		}
	}
	return nil // unreachable: len(asObject) == 1 guaranteed one iteration above
}
