// Copyright (c) 2025 The zgcd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"encoding/json"
	"fmt"
	"io"
)

// Encode writes msg to w as a single JSON value, matching the wire format
// a peer writes before closing its outbound connection.
func Encode(w io.Writer, msg Message) error {
	if err := json.NewEncoder(w).Encode(msg); err != nil {
		return fmt.Errorf("wire: encode: %w", err)
	}
	return nil
}

// Decode reads exactly one JSON message from r, matching the
// one-message-per-accepted-connection transport model.
func Decode(r io.Reader) (Message, error) {
	var msg Message
	dec := json.NewDecoder(r)
	if err := dec.Decode(&msg); err != nil {
		return Message{}, fmt.Errorf("wire: decode: %w", err)
	}
	return msg, nil
}
