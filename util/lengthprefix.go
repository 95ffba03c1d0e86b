// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"encoding/binary"
	"unicode/utf8"

	"github.com/bitmark-inc/noteprogram/fault"
)

// LengthPrefixSize - bytes in the little endian uint32 count that
// precedes every variable length field
const LengthPrefixSize = 4

// StringSize - encoded size of a string field
func StringSize(s string) int {
	return LengthPrefixSize + len(s)
}

// AppendUint32 - little endian
func AppendUint32(buffer []byte, value uint32) []byte {
	var b [LengthPrefixSize]byte
	binary.LittleEndian.PutUint32(b[:], value)
	return append(buffer, b[:]...)
}

// AppendString - count ++ UTF-8 bytes
func AppendString(buffer []byte, s string) []byte {
	buffer = AppendUint32(buffer, uint32(len(s)))
	return append(buffer, s...)
}

// AppendBytes - count ++ bytes
func AppendBytes(buffer []byte, data []byte) []byte {
	buffer = AppendUint32(buffer, uint32(len(data)))
	return append(buffer, data...)
}

// Reader - sequential decoder over a byte slice
//
// never reads past the end of the slice; every failure is one of
// fault.ErrRecordTruncated or fault.ErrInvalidUTF8
type Reader struct {
	buffer []byte
	offset int
}

// NewReader - start decoding at the first byte
func NewReader(buffer []byte) *Reader {
	return &Reader{
		buffer: buffer,
		offset: 0,
	}
}

// Remaining - count of bytes not yet consumed
func (r *Reader) Remaining() int {
	return len(r.buffer) - r.offset
}

// Offset - count of bytes consumed
func (r *Reader) Offset() int {
	return r.offset
}

// ReadFixed - next n bytes, copied
func (r *Reader) ReadFixed(n int) ([]byte, error) {
	if n < 0 || n > r.Remaining() {
		return nil, fault.ErrRecordTruncated
	}
	b := make([]byte, n)
	copy(b, r.buffer[r.offset:r.offset+n])
	r.offset += n
	return b, nil
}

// ReadUint8 - single byte
func (r *Reader) ReadUint8() (uint8, error) {
	if r.Remaining() < 1 {
		return 0, fault.ErrRecordTruncated
	}
	b := r.buffer[r.offset]
	r.offset += 1
	return b, nil
}

// ReadUint32 - little endian
func (r *Reader) ReadUint32() (uint32, error) {
	if r.Remaining() < LengthPrefixSize {
		return 0, fault.ErrRecordTruncated
	}
	n := binary.LittleEndian.Uint32(r.buffer[r.offset:])
	r.offset += LengthPrefixSize
	return n, nil
}

// ReadBytes - count ++ bytes
func (r *Reader) ReadBytes() ([]byte, error) {
	start := r.offset
	n, err := r.ReadUint32()
	if nil != err {
		return nil, err
	}
	if uint64(n) > uint64(r.Remaining()) {
		r.offset = start
		return nil, fault.ErrRecordTruncated
	}
	return r.ReadFixed(int(n))
}

// ReadString - count ++ UTF-8 bytes
func (r *Reader) ReadString() (string, error) {
	start := r.offset
	b, err := r.ReadBytes()
	if nil != err {
		return "", err
	}
	if !utf8.Valid(b) {
		r.offset = start
		return "", fault.ErrInvalidUTF8
	}
	return string(b), nil
}
