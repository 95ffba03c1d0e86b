// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
)

// BuiltinError - failure defined by the ledger runtime
//
// reported to callers as index << 32
type BuiltinError struct {
	index   uint32
	message string
}

// CustomError - failure defined by a program
//
// reported to callers as the code itself, except for code zero
// which would be indistinguishable from success and is reported as
// ErrCustomZero
type CustomError struct {
	code    uint32
	message string
}

const builtinShift = 32

// runtime errors - keep in index order, never renumber
var (
	ErrCustomZero                  = BuiltinError{1, "custom program error: 0x0"}
	ErrInvalidArgument             = BuiltinError{2, "invalid argument"}
	ErrInvalidInstructionData      = BuiltinError{3, "invalid instruction data"}
	ErrInvalidAccountData          = BuiltinError{4, "invalid account data"}
	ErrAccountDataTooSmall         = BuiltinError{5, "account data too small for record"}
	ErrInsufficientFunds           = BuiltinError{6, "insufficient funds"}
	ErrIncorrectProgramId          = BuiltinError{7, "incorrect program id"}
	ErrMissingRequiredSignature    = BuiltinError{8, "missing required signature"}
	ErrAccountAlreadyInitialized   = BuiltinError{9, "account already initialized"}
	ErrUninitializedAccount        = BuiltinError{10, "uninitialized account"}
	ErrNotEnoughAccountKeys        = BuiltinError{11, "not enough account keys"}
	ErrArithmeticOverflow          = BuiltinError{12, "arithmetic overflow"}
	ErrExternalAccountDataModified = BuiltinError{13, "program modified data of an account it does not own"}
	ErrExternalAccountLamportSpend = BuiltinError{14, "program spent lamports of an account it does not own"}
	ErrReadonlyLamportChange       = BuiltinError{15, "lamports changed on a read-only account"}
	ErrReadonlyDataModified        = BuiltinError{16, "data modified on a read-only account"}
	ErrModifiedProgramId           = BuiltinError{17, "program modified the owner of an account"}
	ErrUnbalancedInstruction       = BuiltinError{18, "sum of lamports changed by instruction"}
	ErrAccountInUse                = BuiltinError{19, "account already in use"}
)

// note program errors - codes are part of the public interface
var (
	ErrInvalidNoteTitleLength = CustomError{0, "note title exceeds max length"}
	ErrInvalidNoteBodyLength  = CustomError{1, "note body exceeds max length"}
	ErrInvalidNoteAuthority   = CustomError{2, "invalid update not authority"}
)

var builtinErrors = []BuiltinError{
	ErrCustomZero,
	ErrInvalidArgument,
	ErrInvalidInstructionData,
	ErrInvalidAccountData,
	ErrAccountDataTooSmall,
	ErrInsufficientFunds,
	ErrIncorrectProgramId,
	ErrMissingRequiredSignature,
	ErrAccountAlreadyInitialized,
	ErrUninitializedAccount,
	ErrNotEnoughAccountKeys,
	ErrArithmeticOverflow,
	ErrExternalAccountDataModified,
	ErrExternalAccountLamportSpend,
	ErrReadonlyLamportChange,
	ErrReadonlyDataModified,
	ErrModifiedProgramId,
	ErrUnbalancedInstruction,
	ErrAccountInUse,
}

var customErrors = []CustomError{
	ErrInvalidNoteTitleLength,
	ErrInvalidNoteBodyLength,
	ErrInvalidNoteAuthority,
}

func (e BuiltinError) Error() string { return e.message }

// Index - position of the error in the runtime table
func (e BuiltinError) Index() uint32 { return e.index }

func (e CustomError) Error() string { return e.message }

// CustomCode - the program assigned code
func (e CustomError) CustomCode() uint32 { return e.code }

// IsErrBuiltin - error was raised by the runtime rules
func IsErrBuiltin(e error) bool { _, ok := e.(BuiltinError); return ok }

// IsErrCustom - error was raised by program logic
func IsErrCustom(e error) bool { _, ok := e.(CustomError); return ok }

// Code - convert an invocation result into its caller visible code
//
// nil is success and always zero; errors that do not belong to the
// program error tables are reported as ErrInvalidArgument
func Code(err error) uint64 {
	switch e := err.(type) {
	case nil:
		return 0
	case BuiltinError:
		return uint64(e.index) << builtinShift
	case CustomError:
		if 0 == e.code {
			return Code(ErrCustomZero)
		}
		return uint64(e.code)
	default:
		return Code(ErrInvalidArgument)
	}
}

// FromCode - convert a caller visible code back to its error
func FromCode(code uint64) error {
	if 0 == code {
		return nil
	}

	if code == Code(ErrCustomZero) {
		return customErrors[0]
	}

	if code < 1<<builtinShift {
		for _, e := range customErrors {
			if uint64(e.code) == code {
				return e
			}
		}
		return CustomError{uint32(code), fmt.Sprintf("custom program error: 0x%x", code)}
	}

	index := code >> builtinShift
	for _, e := range builtinErrors {
		if uint64(e.index) == index {
			return e
		}
	}
	return BuiltinError{uint32(index), fmt.Sprintf("unknown runtime error: %d", index)}
}
