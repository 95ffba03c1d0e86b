// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/noteprogram/account"
)

// AccountInfo - an account as seen by an executing program
//
// programs mutate Lamports and Data in place; the ledger compares
// them against the state at the start of the instruction
type AccountInfo struct {
	Key        account.PublicKey
	IsSigner   bool
	IsWritable bool
	Lamports   uint64
	Data       []byte
	Owner      account.PublicKey
	Executable bool

	base *Account
}

// NewAccountInfo - handle for an account
func NewAccountInfo(key account.PublicKey, isSigner bool, isWritable bool, a *Account) *AccountInfo {
	info := &AccountInfo{
		Key:        key,
		IsSigner:   isSigner,
		IsWritable: isWritable,
	}
	info.set(a.clone())
	info.rebase()
	return info
}

// Account - the current state of the handle as a detached account
func (info *AccountInfo) Account() *Account {
	a := &Account{
		Lamports:   info.Lamports,
		Owner:      info.Owner,
		Executable: info.Executable,
		Data:       info.Data,
	}
	return a.clone()
}

func (info *AccountInfo) set(a *Account) {
	info.Lamports = a.Lamports
	info.Owner = a.Owner
	info.Executable = a.Executable
	info.Data = a.Data
}

// record the current state as the start of an instruction
func (info *AccountInfo) rebase() {
	info.base = info.Account()
}
