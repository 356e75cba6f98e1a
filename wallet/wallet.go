// Copyright (c) 2025 The zgcd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package wallet implements key derivation and transaction signing: a
// private-key string deterministically maps to a 20-byte address, and every
// signed transaction recomputes that mapping to authenticate the caller.
package wallet

import (
	"fmt"

	"github.com/zgencoin/zgcd/chaincfg/chainhash"
	"github.com/zgencoin/zgcd/crypto/sha256x"
	"github.com/zgencoin/zgcd/wire"
)

// Wallet derives and remembers a single address from a private-key string.
// It never stores the private key itself; every operation that requires
// authorization is handed the key string again and recomputes the address.
type Wallet struct {
	publicKey chainhash.Address
}

// New derives a wallet's address from privateKey.
func New(privateKey string) *Wallet {
	return &Wallet{publicKey: keygen(privateKey)}
}

// Pubkey returns the wallet's derived address.
func (w *Wallet) Pubkey() chainhash.Address {
	return w.publicKey
}

// NewTransaction signs a transaction sending amount to recipient. privateKey
// must derive the same address as the one this wallet was constructed with,
// or ErrWrongPrivateKey is returned. timestampMicros is supplied by the
// caller; the wallet never reads the clock itself.
func (w *Wallet) NewTransaction(amount uint64, recipient chainhash.Address, privateKey string, timestampMicros uint64) (wire.TxData, error) {
	if keygen(privateKey) != w.publicKey {
		return wire.TxData{}, ErrWrongPrivateKey
	}

	header := fmt.Sprintf("%d,%s,%s,%d", amount, w.publicKey.String(), recipient.String(), timestampMicros)

	return wire.TxData{
		Signature: chainhash.HashH([]byte(header)),
		Sender:    w.publicKey,
		Recipient: recipient,
		Amount:    amount,
	}, nil
}

// NewSelfMint builds the miner's reward transaction, identified by the
// sentinel signature chainhash.MaxHash().
func (w *Wallet) NewSelfMint(amount uint64) wire.TxData {
	return wire.TxData{
		Signature: chainhash.MaxHash(),
		Sender:    w.publicKey,
		Recipient: w.publicKey,
		Amount:    amount,
	}
}

// keygen derives a 20-byte address from a private-key string: SHA-256 the
// UTF-8 bytes of the key, hex-encode the 32-byte digest, and take the last
// 40 hex characters (bytes 12..32 of the digest) as the address.
func keygen(privateKey string) chainhash.Address {
	digest := sha256x.SumString(privateKey)
	hexDigest := fmt.Sprintf("%x", digest)

	// hexDigest is always 64 lowercase hex characters from a fixed-width
	// digest, so the trailing 40-character slice always decodes cleanly.
	addr, _ := chainhash.AddressFromString(hexDigest[24:])
	return addr
}
