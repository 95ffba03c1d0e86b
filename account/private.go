// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"crypto/rand"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/noteprogram/fault"
)

// PrivateKey - ed25519 signing key for an account
type PrivateKey struct {
	key ed25519.PrivateKey
}

// PrivateKeyFromBytes - accepts either the 64 byte private key or
// its 32 byte seed part
func PrivateKeyFromBytes(buffer []byte) (*PrivateKey, error) {
	switch len(buffer) {
	case ed25519.PrivateKeySize:
		key := make(ed25519.PrivateKey, ed25519.PrivateKeySize)
		copy(key, buffer)

		// the embedded public half must match the secret half
		regenerated := ed25519.NewKeyFromSeed(key[:ed25519.SeedSize])
		if string(regenerated) != string(key) {
			return nil, fault.ErrNotPrivateKey
		}
		return &PrivateKey{key: key}, nil

	case ed25519.SeedSize:
		return &PrivateKey{key: ed25519.NewKeyFromSeed(buffer)}, nil

	default:
		return nil, fault.ErrInvalidKeyLength
	}
}

// NewPrivateKey - random key pair
func NewPrivateKey() (*PrivateKey, error) {
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if nil != err {
		return nil, err
	}
	return &PrivateKey{key: key}, nil
}

// PrivateKeyFromBase58 - decode the text form of a private key
func PrivateKeyFromBase58(s string) (*PrivateKey, error) {
	buffer, err := base58.Decode(s)
	if nil != err {
		return nil, fault.ErrCannotDecodePrivateKey
	}
	return PrivateKeyFromBytes(buffer)
}

// PublicKey - the account of this key
func (privateKey *PrivateKey) PublicKey() PublicKey {
	key := PublicKey{}
	copy(key[:], privateKey.key[ed25519.SeedSize:])
	return key
}

// Sign - sign a message
func (privateKey *PrivateKey) Sign(message []byte) Signature {
	return Signature(ed25519.Sign(privateKey.key, message))
}

// Bytes - the full 64 byte key
func (privateKey *PrivateKey) Bytes() []byte {
	return privateKey.key
}

// String - base58 encoding of the full key
func (privateKey *PrivateKey) String() string {
	return base58.Encode(privateKey.key)
}

// MarshalText - convert to base58 JSON form
func (privateKey PrivateKey) MarshalText() ([]byte, error) {
	return []byte(base58.Encode(privateKey.key)), nil
}
