// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account_test

import (
	"encoding/hex"
	"encoding/json"
	"testing"

	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/noteprogram/account"
	"github.com/bitmark-inc/noteprogram/fault"
)

// RFC 8032 section 7.1 test 1
var (
	rfcSecret    = decodeHex("9d61b19deffd5a60ba844af492ec2cc44449c5697b326919703bac031cae7f60")
	rfcPublicKey = decodeHex("d75a980182b10ab7d54bfed3c964073a0ee172f3daa62325af021a68f707511a")
)

func decodeHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if nil != err {
		panic(err)
	}
	return b
}

func TestZeroKey(t *testing.T) {
	zero := account.PublicKey{}
	assert.True(t, zero.IsZero(), "zero key not detected")
	assert.Equal(t, "11111111111111111111111111111111", zero.String(), "wrong base58 for zero key")

	k, err := account.PublicKeyFromBase58("11111111111111111111111111111111")
	assert.Nil(t, err, "decode error")
	assert.Equal(t, zero, k, "decoded key mismatch")
}

func TestPublicKeyBase58RoundTrip(t *testing.T) {
	key, err := account.PublicKeyFromBytes(rfcPublicKey)
	assert.Nil(t, err, "from bytes error")
	assert.False(t, key.IsZero(), "non zero key reported as zero")

	decoded, err := account.PublicKeyFromBase58(key.String())
	assert.Nil(t, err, "decode error")
	assert.Equal(t, key, decoded, "round trip mismatch")
}

func TestPublicKeyBadInput(t *testing.T) {
	_, err := account.PublicKeyFromBytes([]byte{1, 2, 3})
	assert.Equal(t, fault.ErrInvalidKeyLength, err, "short key accepted")

	_, err = account.PublicKeyFromBase58("0OIl")
	assert.Equal(t, fault.ErrCannotDecodeAccount, err, "invalid base58 accepted")

	_, err = account.PublicKeyFromBase58("")
	assert.Equal(t, fault.ErrCannotDecodeAccount, err, "empty string accepted")

	_, err = account.PublicKeyFromBase58(base58.Encode(make([]byte, 31)))
	assert.Equal(t, fault.ErrInvalidKeyLength, err, "31 byte key accepted")
}

func TestPublicKeyJSON(t *testing.T) {
	key, _ := account.PublicKeyFromBytes(rfcPublicKey)

	type holder struct {
		Owner account.PublicKey `json:"owner"`
	}

	b, err := json.Marshal(holder{Owner: key})
	assert.Nil(t, err, "marshal error")
	assert.Equal(t, `{"owner":"`+key.String()+`"}`, string(b), "wrong JSON")

	var h holder
	err = json.Unmarshal(b, &h)
	assert.Nil(t, err, "unmarshal error")
	assert.Equal(t, key, h.Owner, "JSON round trip mismatch")
}

func TestPrivateKeyFromSeedBytes(t *testing.T) {
	privateKey, err := account.PrivateKeyFromBytes(rfcSecret)
	assert.Nil(t, err, "from bytes error")

	publicKey := privateKey.PublicKey()
	assert.Equal(t, rfcPublicKey, publicKey.Bytes(), "wrong public key")

	again, err := account.PrivateKeyFromBase58(privateKey.String())
	assert.Nil(t, err, "from base58 error")
	assert.Equal(t, privateKey.Bytes(), again.Bytes(), "private key round trip mismatch")
}

func TestPrivateKeyRejectsMismatchedHalves(t *testing.T) {
	privateKey, _ := account.PrivateKeyFromBytes(rfcSecret)

	corrupt := make([]byte, 64)
	copy(corrupt, privateKey.Bytes())
	corrupt[63] ^= 0x01

	_, err := account.PrivateKeyFromBytes(corrupt)
	assert.Equal(t, fault.ErrNotPrivateKey, err, "corrupt key accepted")

	_, err = account.PrivateKeyFromBytes(make([]byte, 40))
	assert.Equal(t, fault.ErrInvalidKeyLength, err, "40 byte key accepted")
}

func TestSignAndCheck(t *testing.T) {
	privateKey, _ := account.PrivateKeyFromBytes(rfcSecret)
	publicKey := privateKey.PublicKey()

	message := []byte("note program message")
	signature := privateKey.Sign(message)

	assert.Nil(t, publicKey.CheckSignature(message, signature), "valid signature rejected")
	assert.Equal(t, fault.ErrInvalidSignature, publicKey.CheckSignature([]byte("other"), signature), "wrong message accepted")
	assert.Equal(t, fault.ErrInvalidSignature, publicKey.CheckSignature(message, signature[:10]), "short signature accepted")

	other := account.NamedPublicKey("someone else")
	assert.Equal(t, fault.ErrInvalidSignature, other.CheckSignature(message, signature), "wrong key accepted")
}

func TestSeed(t *testing.T) {
	seed, err := account.NewBase58Seed()
	assert.Nil(t, err, "new seed error")

	first, err := account.PrivateKeyFromBase58Seed(seed)
	assert.Nil(t, err, "seed decode error")

	second, err := account.PrivateKeyFromBase58Seed(seed)
	assert.Nil(t, err, "seed decode error")
	assert.Equal(t, first.PublicKey(), second.PublicKey(), "seed is not deterministic")

	raw, _ := base58.Decode(seed)
	raw[len(raw)-1] ^= 0xff
	_, err = account.PrivateKeyFromBase58Seed(base58.Encode(raw))
	assert.Equal(t, fault.ErrChecksumMismatch, err, "bad checksum accepted")

	raw, _ = base58.Decode(seed)
	raw[2] = 0x7f
	_, err = account.PrivateKeyFromBase58Seed(base58.Encode(raw))
	assert.Equal(t, fault.ErrInvalidSeedHeader, err, "bad header accepted")

	_, err = account.PrivateKeyFromBase58Seed(base58.Encode(raw[:20]))
	assert.Equal(t, fault.ErrInvalidSeedLength, err, "short seed accepted")
}

func TestNamedPublicKey(t *testing.T) {
	a := account.NamedPublicKey("note-program")
	b := account.NamedPublicKey("note-program")
	c := account.NamedPublicKey("other-program")

	assert.Equal(t, a, b, "named key not deterministic")
	assert.NotEqual(t, a, c, "different names produced same key")
	assert.False(t, a.IsZero(), "named key is zero")
}
