// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/noteprogram/fault"
	"github.com/bitmark-inc/noteprogram/util"
)

func TestAppendString(t *testing.T) {
	b := util.AppendString(nil, "hi")
	assert.Equal(t, []byte{0x02, 0x00, 0x00, 0x00, 'h', 'i'}, b, "wrong encoding")
	assert.Equal(t, len(b), util.StringSize("hi"), "wrong size")

	b = util.AppendString(b, "")
	assert.Equal(t, []byte{0x02, 0x00, 0x00, 0x00, 'h', 'i', 0x00, 0x00, 0x00, 0x00}, b, "wrong empty encoding")
}

func TestReaderSequence(t *testing.T) {
	b := []byte{0x07}
	b = util.AppendString(b, "title")
	b = util.AppendBytes(b, []byte{0xaa, 0xbb})
	b = append(b, 0x01, 0x02, 0x03)

	r := util.NewReader(b)

	tag, err := r.ReadUint8()
	assert.Nil(t, err, "tag error")
	assert.Equal(t, uint8(7), tag, "wrong tag")

	s, err := r.ReadString()
	assert.Nil(t, err, "string error")
	assert.Equal(t, "title", s, "wrong string")

	data, err := r.ReadBytes()
	assert.Nil(t, err, "bytes error")
	assert.Equal(t, []byte{0xaa, 0xbb}, data, "wrong bytes")

	fixed, err := r.ReadFixed(3)
	assert.Nil(t, err, "fixed error")
	assert.Equal(t, []byte{1, 2, 3}, fixed, "wrong fixed")

	assert.Equal(t, 0, r.Remaining(), "bytes left over")
	assert.Equal(t, len(b), r.Offset(), "wrong offset")

	_, err = r.ReadUint8()
	assert.Equal(t, fault.ErrRecordTruncated, err, "read past end")
}

func TestReaderTruncated(t *testing.T) {
	items := [][]byte{
		{},
		{0x01, 0x00},
		{0x05, 0x00, 0x00, 0x00, 'a', 'b'},
		{0xff, 0xff, 0xff, 0xff, 'a'},
	}
	for i, item := range items {
		r := util.NewReader(item)
		_, err := r.ReadString()
		assert.Equal(t, fault.ErrRecordTruncated, err, "%d: expected truncation", i)
	}
}

func TestReaderInvalidUTF8(t *testing.T) {
	b := util.AppendBytes(nil, []byte{0xff, 0xfe})
	r := util.NewReader(b)
	_, err := r.ReadString()
	assert.Equal(t, fault.ErrInvalidUTF8, err, "invalid UTF-8 accepted")
	assert.Equal(t, 0, r.Offset(), "failed read consumed input")
}
