// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/noteprogram/fault"
)

// test encrypt and decrypt one string with various passwords
func TestEncryptDecrypt(t *testing.T) {

	plainText := "The Quick Brown Fox Jumps Over The Lazy Dog"

	passwords := []string{"test", "123", "444", "m,erRGhtk%$33ug62sd al/fajfb.adv"}

	for _, password := range passwords {
		salt, key, err := hashPassword(password)
		if nil != err {
			t.Fatalf("hash error: %s", err)
		}

		encrypted, err := encryptData(plainText, key)
		if nil != err {
			t.Fatalf("encrypt error: %s", err)
		}

		key2, err := generateKey(password, salt)
		if nil != err {
			t.Fatalf("generateKey error: %s", err)
		}

		decrypted, err := decryptData(encrypted, key2)
		if nil != err {
			t.Fatalf("decrypt error: %s", err)
		}

		assert.Equal(t, plainText, decrypted, "password: %q", password)
	}
}

func TestEncryptionNeverRepeats(t *testing.T) {

	plainText := "This is some text for testing 1234567890"

	_, key, err := hashPassword("abcdefghijklmnopqrstuvwxyz")
	if nil != err {
		t.Fatalf("hash error: %s", err)
	}

	first, err := encryptData(plainText, key)
	assert.Nil(t, err, "encrypt error")
	second, err := encryptData(plainText, key)
	assert.Nil(t, err, "encrypt error")

	assert.NotEqual(t, first, second, "encryption produced duplicate result")
}

func TestDecryptWrongPassword(t *testing.T) {

	plainText := "This is some text for testing 1234567890"

	salt, key, err := hashPassword("1234567890")
	if nil != err {
		t.Fatalf("hash error: %s", err)
	}

	encrypted, err := encryptData(plainText, key)
	assert.Nil(t, err, "encrypt error")

	badKey, err := generateKey("A Bad Password", salt)
	if nil != err {
		t.Fatalf("generateKey error: %s", err)
	}

	_, err = decryptData(encrypted, badKey)
	assert.Equal(t, fault.ErrCryptoFailed, err, "unexpected decryption success")
}

func TestEncryptDataLength(t *testing.T) {
	_, key, err := hashPassword("password")
	if nil != err {
		t.Fatalf("hash error: %s", err)
	}

	_, err = encryptData("too short", key)
	assert.Equal(t, fault.ErrCryptoFailed, err, "short data accepted")

	_, err = decryptData("", key)
	assert.Equal(t, fault.ErrCryptoFailed, err, "empty ciphertext accepted")

	_, err = decryptData("0102", key)
	assert.Equal(t, fault.ErrCryptoFailed, err, "ciphertext without message accepted")
}

// test Marshal and Unmarshal
func TestSalt(t *testing.T) {
	salt, err := MakeSalt()
	if nil != err {
		t.Fatalf("makeSalt fail: %s", err)
	}

	marshalSalt, err := salt.MarshalText()
	assert.Nil(t, err, "marshal error")

	salt2 := new(Salt)
	err = salt2.UnmarshalText(marshalSalt)
	assert.Nil(t, err, "unmarshal error")

	assert.Equal(t, salt.String(), salt2.String(), "unmarshal mismatch")

	err = salt2.UnmarshalText([]byte("0102"))
	assert.Equal(t, fault.ErrInvalidSaltLength, err, "short salt accepted")
}
