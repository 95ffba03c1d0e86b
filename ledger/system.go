// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/noteprogram/account"
	"github.com/bitmark-inc/noteprogram/fault"
)

// MaxPermittedDataLength - largest allocation the system program allows
const MaxPermittedDataLength = 10 * 1024 * 1024

// SystemProgram - allocation of new accounts
type SystemProgram struct {
	log *logger.L
}

// CreateAccount - move lamports from a payer to a new account, size
// its data and assign it to an owner
//
// all checks are made before anything changes; on success both
// accounts are rebased so the calling program is not charged with
// the changes
func (system *SystemProgram) CreateAccount(from *AccountInfo, to *AccountInfo, systemProgram *AccountInfo, lamports uint64, space uint64, owner account.PublicKey) error {

	if systemProgram.Key != SystemProgramID {
		return fault.ErrIncorrectProgramId
	}

	if !from.IsSigner || !to.IsSigner {
		system.log.Warnf("create account: %s missing signature", to.Key)
		return fault.ErrMissingRequiredSignature
	}

	if !from.IsWritable || !to.IsWritable {
		return fault.ErrReadonlyLamportChange
	}

	if from.Key == to.Key {
		return fault.ErrInvalidArgument
	}

	if 0 != to.Lamports || 0 != len(to.Data) || to.Owner != SystemProgramID {
		system.log.Warnf("create account: %s already in use", to.Key)
		return fault.ErrAccountInUse
	}

	if space > MaxPermittedDataLength {
		return fault.ErrInvalidArgument
	}

	if from.Lamports < lamports {
		system.log.Warnf("create account: payer: %s  balance: %d < %d", from.Key, from.Lamports, lamports)
		return fault.ErrInsufficientFunds
	}

	from.Lamports -= lamports
	to.Lamports = lamports
	to.Data = make([]byte, space)
	to.Owner = owner

	from.rebase()
	to.rebase()

	system.log.Debugf("create account: %s  space: %d  lamports: %d  owner: %s", to.Key, space, lamports, owner)
	return nil
}
