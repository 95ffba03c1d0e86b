// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"
	"crypto/rand"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/noteprogram/fault"
)

// seed layout: header ++ ed25519 seed ++ checksum
//
// checksum is the first bytes of SHA3-256(header ++ ed25519 seed)
var seedHeader = []byte{0x5a, 0xfe, 0x03}

const (
	seedChecksumLength = 4
	seedLength         = 3 + ed25519.SeedSize + seedChecksumLength
)

// NewBase58Seed - create a new seed from secure random data
func NewBase58Seed() (string, error) {
	core := make([]byte, ed25519.SeedSize)
	if _, err := rand.Read(core); nil != err {
		return "", err
	}
	return seedFromCore(core), nil
}

func seedFromCore(core []byte) string {
	packed := make([]byte, 0, seedLength)
	packed = append(packed, seedHeader...)
	packed = append(packed, core...)
	checksum := sha3.Sum256(packed)
	packed = append(packed, checksum[:seedChecksumLength]...)
	return base58.Encode(packed)
}

// PrivateKeyFromBase58Seed - convert a base58 seed into its private key
func PrivateKeyFromBase58Seed(seedBase58Encoded string) (*PrivateKey, error) {
	seed, err := base58.Decode(seedBase58Encoded)
	if nil != err || 0 == len(seed) {
		return nil, fault.ErrCannotDecodeSeed
	}
	if seedLength != len(seed) {
		return nil, fault.ErrInvalidSeedLength
	}

	headerLength := len(seedHeader)
	if !bytes.Equal(seedHeader, seed[:headerLength]) {
		return nil, fault.ErrInvalidSeedHeader
	}

	checksumStart := seedLength - seedChecksumLength
	checksum := sha3.Sum256(seed[:checksumStart])
	if !bytes.Equal(checksum[:seedChecksumLength], seed[checksumStart:]) {
		return nil, fault.ErrChecksumMismatch
	}

	return PrivateKeyFromBytes(seed[headerLength:checksumStart])
}
