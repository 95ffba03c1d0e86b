// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package noterecord_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/noteprogram/account"
	"github.com/bitmark-inc/noteprogram/fault"
	"github.com/bitmark-inc/noteprogram/noterecord"
)

func makeAuthority(fill byte) account.PublicKey {
	k := account.PublicKey{}
	for i := range k {
		k[i] = fill
	}
	return k
}

func TestMaxSize(t *testing.T) {
	assert.Equal(t, 142, noterecord.MaxSize, "wrong slot size")
}

func TestPackLayout(t *testing.T) {
	state := &noterecord.State{
		Authority: makeAuthority(0x11),
		Title:     "hi",
		Body:      "abc",
	}
	buffer := bytes.Repeat([]byte{0xff}, noterecord.MaxSize)

	err := state.Pack(buffer)
	assert.Nil(t, err, "pack error")

	expected := append(bytes.Repeat([]byte{0x11}, 32),
		0x02, 0x00, 0x00, 0x00, 'h', 'i',
		0x03, 0x00, 0x00, 0x00, 'a', 'b', 'c',
	)
	assert.Equal(t, expected, buffer[:len(expected)], "wrong packed fields")
	assert.Equal(t, len(expected), state.PackedSize(), "wrong packed size")

	for i := len(expected); i < len(buffer); i += 1 {
		if 0 != buffer[i] {
			t.Fatalf("padding byte %d: %02x", i, buffer[i])
		}
	}
}

func TestRoundTrip(t *testing.T) {
	items := []noterecord.State{
		{Authority: makeAuthority(1), Title: "", Body: ""},
		{Authority: makeAuthority(2), Title: "shopping", Body: "milk, eggs"},
		{Authority: makeAuthority(3), Title: "0123456789", Body: strings.Repeat("b", 92)},
		{Authority: makeAuthority(4), Title: "héllo", Body: "日本語"},
	}

	for i, item := range items {
		buffer := make([]byte, noterecord.MaxSize)
		err := item.Pack(buffer)
		assert.Nil(t, err, "%d: pack error", i)

		state, err := noterecord.Unpack(buffer)
		assert.Nil(t, err, "%d: unpack error", i)
		assert.Equal(t, item, *state, "%d: round trip mismatch", i)
	}
}

func TestZeroSlot(t *testing.T) {
	state, err := noterecord.Unpack(make([]byte, noterecord.MaxSize))
	assert.Nil(t, err, "unpack error")
	assert.True(t, state.Authority.IsZero(), "authority not zero")
	assert.Equal(t, "", state.Title, "title not empty")
	assert.Equal(t, "", state.Body, "body not empty")
}

func TestUnpackIgnoresTrailingBytes(t *testing.T) {
	state := &noterecord.State{Authority: makeAuthority(7), Title: "t", Body: "b"}
	buffer := make([]byte, noterecord.MaxSize)
	assert.Nil(t, state.Pack(buffer), "pack error")

	buffer[noterecord.MaxSize-1] = 0xaa
	decoded, err := noterecord.Unpack(buffer)
	assert.Nil(t, err, "unpack error")
	assert.Equal(t, *state, *decoded, "trailing byte changed result")
}

func TestUnpackInvalid(t *testing.T) {
	good := make([]byte, noterecord.MaxSize)
	state := &noterecord.State{Authority: makeAuthority(9), Title: "title", Body: "body"}
	assert.Nil(t, state.Pack(good), "pack error")

	overrun := make([]byte, noterecord.MaxSize)
	copy(overrun, good)
	overrun[32] = 0xff // title length far beyond the slot

	badUTF8 := make([]byte, noterecord.MaxSize)
	copy(badUTF8, good)
	badUTF8[36] = 0xff // first title byte

	items := [][]byte{
		{},
		good[:31],
		good[:33],
		good[:32+4+5+2],
		overrun,
		badUTF8,
	}

	for i, item := range items {
		_, err := noterecord.Unpack(item)
		assert.Equal(t, fault.ErrInvalidAccountData, err, "%d: expected invalid account data", i)
	}
}

func TestPackDoesNotFit(t *testing.T) {
	state := &noterecord.State{
		Authority: makeAuthority(5),
		Title:     "0123456789",
		Body:      strings.Repeat("x", 100),
	}
	assert.Nil(t, state.Validate(), "within caps")

	buffer := bytes.Repeat([]byte{0x55}, noterecord.MaxSize)
	err := state.Pack(buffer)
	assert.Equal(t, fault.ErrAccountDataTooSmall, err, "oversize record accepted")
	assert.Equal(t, bytes.Repeat([]byte{0x55}, noterecord.MaxSize), buffer, "buffer was modified")
}

func TestValidate(t *testing.T) {
	long := &noterecord.State{Title: strings.Repeat("t", 11), Body: strings.Repeat("b", 101)}
	assert.Equal(t, fault.ErrInvalidNoteTitleLength, long.Validate(), "title must be checked first")

	long.Title = "ok"
	assert.Equal(t, fault.ErrInvalidNoteBodyLength, long.Validate(), "body cap not detected")

	// multi-byte characters count by encoded bytes
	assert.Equal(t, fault.ErrInvalidNoteTitleLength, noterecord.ValidateLengths("ééééééé", ""), "byte length not used")
	assert.Nil(t, noterecord.ValidateLengths("ééééé", strings.Repeat("b", 100)), "exact caps rejected")
}
