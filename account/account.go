// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/noteprogram/fault"
)

// PublicKeySize - bytes in an account identifier
const PublicKeySize = ed25519.PublicKeySize

// PublicKey - identifies an account on the ledger
//
// the zero value is the system program
type PublicKey [PublicKeySize]byte

// PublicKeyFromBytes - copy a raw 32 byte key
func PublicKeyFromBytes(buffer []byte) (PublicKey, error) {
	key := PublicKey{}
	if PublicKeySize != len(buffer) {
		return key, fault.ErrInvalidKeyLength
	}
	copy(key[:], buffer)
	return key, nil
}

// PublicKeyFromBase58 - decode the text form of a key
func PublicKeyFromBase58(s string) (PublicKey, error) {
	buffer, err := base58.Decode(s)
	if nil != err || 0 == len(buffer) {
		return PublicKey{}, fault.ErrCannotDecodeAccount
	}
	return PublicKeyFromBytes(buffer)
}

// NamedPublicKey - derive a fixed identifier from a name
//
// the result is a SHA3-256 digest, so there is no private key for it
func NamedPublicKey(name string) PublicKey {
	return PublicKey(sha3.Sum256([]byte(name)))
}

// Bytes - key as byte slice
func (key PublicKey) Bytes() []byte {
	return key[:]
}

// IsZero - true for the all zero key
func (key PublicKey) IsZero() bool {
	return key == PublicKey{}
}

// String - base58 encoding of the key
func (key PublicKey) String() string {
	return base58.Encode(key[:])
}

// GoString - for %#v
func (key PublicKey) GoString() string {
	return "<account:" + key.String() + ">"
}

// MarshalText - convert a key to its base58 JSON form
func (key PublicKey) MarshalText() ([]byte, error) {
	return []byte(key.String()), nil
}

// UnmarshalText - convert from base58 JSON form
func (key *PublicKey) UnmarshalText(s []byte) error {
	k, err := PublicKeyFromBase58(string(s))
	if nil != err {
		return err
	}
	*key = k
	return nil
}

// CheckSignature - verify a signature made by the matching private key
func (key PublicKey) CheckSignature(message []byte, signature Signature) error {
	if ed25519.SignatureSize != len(signature) {
		return fault.ErrInvalidSignature
	}
	if !ed25519.Verify(key[:], message, signature) {
		return fault.ErrInvalidSignature
	}
	return nil
}
