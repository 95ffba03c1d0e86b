// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"encoding/binary"

	"github.com/bitmark-inc/noteprogram/account"
	"github.com/bitmark-inc/noteprogram/fault"
)

// SystemProgramID - owner of unassigned accounts
var SystemProgramID = account.PublicKey{}

// NativeLoaderID - owner of the accounts that hold programs
var NativeLoaderID = account.NamedPublicKey("native-loader")

// stored layout: lamports ++ owner ++ flags ++ data
const (
	lamportsSize  = 8
	flagsSize     = 1
	accountHeader = lamportsSize + account.PublicKeySize + flagsSize

	flagExecutable = 0x01
)

// Account - the stored state of an address
type Account struct {
	Lamports   uint64            `json:"lamports,string"`
	Owner      account.PublicKey `json:"owner"`
	Executable bool              `json:"executable"`
	Data       []byte            `json:"data"`
}

// IsEmpty - no balance and no data, i.e. never allocated or reclaimable
func (a *Account) IsEmpty() bool {
	return 0 == a.Lamports && 0 == len(a.Data)
}

// IsReclaimable - no balance and nothing but zero bytes of data
func (a *Account) IsReclaimable() bool {
	if 0 != a.Lamports || a.Executable {
		return false
	}
	for _, b := range a.Data {
		if 0 != b {
			return false
		}
	}
	return true
}

// Pack - stored form of the account
func (a *Account) Pack() []byte {
	buffer := make([]byte, accountHeader, accountHeader+len(a.Data))
	binary.BigEndian.PutUint64(buffer[:lamportsSize], a.Lamports)
	copy(buffer[lamportsSize:], a.Owner[:])
	if a.Executable {
		buffer[accountHeader-1] = flagExecutable
	}
	return append(buffer, a.Data...)
}

// UnpackAccount - decode the stored form
func UnpackAccount(buffer []byte) (*Account, error) {
	if len(buffer) < accountHeader {
		return nil, fault.ErrInvalidAccountData
	}
	if 0 != buffer[accountHeader-1]&^flagExecutable {
		return nil, fault.ErrInvalidAccountData
	}

	a := &Account{
		Lamports:   binary.BigEndian.Uint64(buffer[:lamportsSize]),
		Executable: 0 != buffer[accountHeader-1]&flagExecutable,
		Data:       make([]byte, len(buffer)-accountHeader),
	}
	copy(a.Owner[:], buffer[lamportsSize:lamportsSize+account.PublicKeySize])
	copy(a.Data, buffer[accountHeader:])
	return a, nil
}

// copy of the account that shares no memory with it
func (a *Account) clone() *Account {
	data := make([]byte, len(a.Data))
	copy(data, a.Data)
	return &Account{
		Lamports:   a.Lamports,
		Owner:      a.Owner,
		Executable: a.Executable,
		Data:       data,
	}
}
