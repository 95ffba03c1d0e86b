// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/noteprogram/account"
	"github.com/bitmark-inc/noteprogram/fault"
	"github.com/bitmark-inc/noteprogram/util"
)

// command line errors
var (
	ErrNotNote             = fault.InvalidError("account is not a note")
	ErrNoteDeleted         = fault.NotFoundError("note has been deleted")
	ErrPasswordMismatch    = fault.InvalidError("password mismatch")
	ErrPasswordTooShort    = fault.LengthError("password must be at least 8 characters")
	ErrRequiredConfigFile  = fault.InvalidError("config file is required")
	ErrRequiredDescription = fault.InvalidError("description is required")
	ErrRequiredIdentity    = fault.InvalidError("identity is required")
	ErrRequiredLamports    = fault.InvalidError("lamports is required")
	ErrRequiredLedgerFile  = fault.InvalidError("ledger configuration file is required")
	ErrRequiredNote        = fault.InvalidError("note address is required")
)

// config is required
func checkConfigFile(file string) (string, error) {
	if "" == file {
		return "", ErrRequiredConfigFile
	}

	return filepath.Abs(filepath.Clean(os.ExpandEnv(file)))
}

// identity is required, but not check the config file
func checkName(name string) (string, error) {
	if "" == name {
		return "", ErrRequiredIdentity
	}

	return name, nil
}

// description is required
func checkDescription(description string) (string, error) {
	if "" == description {
		return "", ErrRequiredDescription
	}

	return description, nil
}

// ledger configuration is required and must exist
func checkLedgerFile(file string) (string, error) {
	if "" == file {
		return "", ErrRequiredLedgerFile
	}

	file, err := filepath.Abs(filepath.Clean(os.ExpandEnv(file)))
	if nil != err {
		return "", err
	}
	if !util.EnsureFileExists(file) {
		return "", os.ErrNotExist
	}
	return file, nil
}

// seed is optional, a new one is made if blank
func checkSeed(seed string) (string, error) {
	if "" == seed {
		return account.NewBase58Seed()
	}

	_, err := account.PrivateKeyFromBase58Seed(seed)
	if nil != err {
		return "", err
	}
	return seed, nil
}

// note address is required
func checkNote(note string) (account.PublicKey, error) {
	if "" == note {
		return account.PublicKey{}, ErrRequiredNote
	}

	return account.PublicKeyFromBase58(note)
}

// optional address, blank selects the given default
func checkOptionalAddress(address string, defaultKey account.PublicKey) (account.PublicKey, error) {
	if "" == address {
		return defaultKey, nil
	}

	return account.PublicKeyFromBase58(address)
}

// the identity flag or the default identity
func identityName(c *cli.Context, m *metadata) (string, error) {
	name := c.GlobalString("identity")
	if "" == name {
		name = m.config.DefaultIdentity
	}

	return checkName(name)
}
