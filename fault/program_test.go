// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/noteprogram/fault"
)

func TestCodeOfSuccessIsZero(t *testing.T) {
	assert.Equal(t, uint64(0), fault.Code(nil), "success must be zero")
	assert.Nil(t, fault.FromCode(0), "zero must be success")
}

func TestNoteErrorCodes(t *testing.T) {
	items := []struct {
		err  error
		code uint64
	}{
		{fault.ErrInvalidNoteTitleLength, 1 << 32},
		{fault.ErrInvalidNoteBodyLength, 1},
		{fault.ErrInvalidNoteAuthority, 2},
		{fault.ErrInvalidInstructionData, 3 << 32},
	}

	seen := make(map[uint64]error)
	for i, item := range items {
		code := fault.Code(item.err)
		assert.Equal(t, item.code, code, "%d: wrong code for: %s", i, item.err)

		previous, ok := seen[code]
		assert.False(t, ok, "%d: code: %d shared with: %s", i, code, previous)
		seen[code] = item.err

		assert.Equal(t, item.err, fault.FromCode(code), "%d: wrong error from code", i)
	}
}

func TestBuiltinCodesRoundTrip(t *testing.T) {
	errs := []error{
		fault.ErrInvalidArgument,
		fault.ErrInvalidAccountData,
		fault.ErrAccountDataTooSmall,
		fault.ErrInsufficientFunds,
		fault.ErrIncorrectProgramId,
		fault.ErrMissingRequiredSignature,
		fault.ErrNotEnoughAccountKeys,
		fault.ErrArithmeticOverflow,
		fault.ErrUnbalancedInstruction,
		fault.ErrAccountInUse,
	}

	for _, err := range errs {
		code := fault.Code(err)
		assert.Equal(t, uint64(0), code&0xffffffff, "low bits set for: %s", err)
		assert.Equal(t, err, fault.FromCode(code), "round trip of: %s", err)
		assert.True(t, fault.IsErrBuiltin(err), "not builtin: %s", err)
	}
}

func TestForeignErrorIsInvalidArgument(t *testing.T) {
	code := fault.Code(fault.ErrWrongPassword)
	assert.Equal(t, fault.Code(fault.ErrInvalidArgument), code, "wrong code for foreign error")
}

func TestUnknownCodes(t *testing.T) {
	err := fault.FromCode(77)
	assert.True(t, fault.IsErrCustom(err), "expected custom error")
	assert.Equal(t, uint32(77), err.(fault.CustomError).CustomCode(), "wrong custom code")

	err = fault.FromCode(99 << 32)
	assert.True(t, fault.IsErrBuiltin(err), "expected builtin error")
	assert.Equal(t, uint32(99), err.(fault.BuiltinError).Index(), "wrong index")
}
