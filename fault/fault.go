// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised        = ExistsError("already initialised")
	ErrCannotDecodeAccount       = InvalidError("cannot decode account")
	ErrCannotDecodePrivateKey    = InvalidError("cannot decode private key")
	ErrCannotDecodeSeed          = InvalidError("cannot decode seed")
	ErrChecksumMismatch          = ProcessError("checksum mismatch")
	ErrConfigurationNotTable     = InvalidError("configuration did not return a table")
	ErrCryptoFailed              = ProcessError("crypto failed")
	ErrDatabaseIsNotSet          = ProcessError("database is not set")
	ErrIdentityNameAlreadyExists = ExistsError("identity name already exists")
	ErrIdentityNameNotFound      = NotFoundError("identity name not found")
	ErrInvalidCount              = InvalidError("invalid count")
	ErrInvalidCursor             = InvalidError("invalid cursor")
	ErrInvalidDirectory          = InvalidError("invalid directory")
	ErrInvalidExemptionThreshold = InvalidError("invalid rent exemption threshold")
	ErrInvalidKeyLength          = LengthError("invalid key length")
	ErrInvalidLoggerChannel      = InvalidError("invalid logger channel")
	ErrInvalidProgramName        = InvalidError("invalid program name")
	ErrInvalidPublicKey          = InvalidError("invalid public key")
	ErrInvalidRentSchedule       = InvalidError("invalid rent schedule")
	ErrInvalidSaltLength         = LengthError("invalid salt length")
	ErrInvalidSeedHeader         = InvalidError("invalid seed header")
	ErrInvalidSeedLength         = LengthError("invalid seed length")
	ErrInvalidSignature          = InvalidError("invalid signature")
	ErrInvalidUTF8               = RecordError("string is not valid UTF-8")
	ErrNotInitialised            = NotFoundError("not initialised")
	ErrNoInstructions            = InvalidError("transaction has no instructions")
	ErrNotPlainFileName          = InvalidError("not a plain file name")
	ErrNotPrivateKey             = InvalidError("not a private key")
	ErrProgramAlreadyRegistered  = ExistsError("program already registered")
	ErrRecordTruncated           = RecordError("record is truncated")
	ErrTransactionAlreadyDone    = ExistsError("transaction already processed")
	ErrTransactionInUse          = ProcessError("database transaction already in use")
	ErrUnknownProgram            = NotFoundError("program is not registered")
	ErrWrongPassword             = InvalidError("wrong password")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool   { _, ok := e.(RecordError); return ok }
