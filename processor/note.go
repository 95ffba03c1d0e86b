// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package processor

import (
	"math/bits"

	"github.com/bitmark-inc/noteprogram/account"
	"github.com/bitmark-inc/noteprogram/fault"
	"github.com/bitmark-inc/noteprogram/ledger"
	"github.com/bitmark-inc/noteprogram/noterecord"
)

// CreateNote - allocate the note account and write the first record
//
// the note key is not related to the authority, any fresh signer key
// can hold a note
func (p *Processor) CreateNote(programID account.PublicKey, accounts []*ledger.AccountInfo, title string, body string, authority account.PublicKey) error {
	if len(accounts) < 3 {
		return fault.ErrNotEnoughAccountKeys
	}
	payer := accounts[0]
	note := accounts[1]
	systemProgram := accounts[2]

	err := noterecord.ValidateLengths(title, body)
	if nil != err {
		return err
	}

	state := &noterecord.State{
		Authority: authority,
		Title:     title,
		Body:      body,
	}
	record := make([]byte, noterecord.MaxSize)
	err = state.Pack(record)
	if nil != err {
		return err
	}

	if note.Owner == programID {
		p.Log.Warnf("create: note: %s already initialized", note.Key)
		return fault.ErrAccountAlreadyInitialized
	}

	lamports, err := p.Rent.MinimumBalance(noterecord.MaxSize)
	if nil != err {
		return err
	}

	p.Log.Debugf("create: note: %s  payer: %s  authority: %s  lamports: %d", note.Key, payer.Key, authority, lamports)

	err = p.Allocator.CreateAccount(payer, note, systemProgram, lamports, noterecord.MaxSize, programID)
	if nil != err {
		return err
	}

	if len(note.Data) < noterecord.MaxSize {
		return fault.ErrAccountDataTooSmall
	}
	copy(note.Data, record)
	return nil
}

// UpdateNote - replace title and body, keeping the authority
func (p *Processor) UpdateNote(programID account.PublicKey, accounts []*ledger.AccountInfo, title string, body string) error {
	if len(accounts) < 2 {
		return fault.ErrNotEnoughAccountKeys
	}
	authority := accounts[0]
	note := accounts[1]

	err := noterecord.ValidateLengths(title, body)
	if nil != err {
		return err
	}

	if 0 == len(note.Data) {
		return fault.ErrUninitializedAccount
	}

	state, err := noterecord.Unpack(note.Data)
	if nil != err {
		return err
	}

	if authority.Key != state.Authority {
		return fault.ErrInvalidNoteAuthority
	}

	state.Title = title
	state.Body = body

	record := make([]byte, len(note.Data))
	err = state.Pack(record)
	if nil != err {
		return err
	}

	p.Log.Debugf("update: note: %s  title: %q", note.Key, title)

	copy(note.Data, record)
	return nil
}

// DeleteNote - move the note's balance to its authority and zero the record
//
// the account stays allocated with zero balance until the ledger
// reclaims it
func (p *Processor) DeleteNote(programID account.PublicKey, accounts []*ledger.AccountInfo) error {
	if len(accounts) < 2 {
		return fault.ErrNotEnoughAccountKeys
	}
	authority := accounts[0]
	note := accounts[1]

	if 0 == len(note.Data) {
		return fault.ErrUninitializedAccount
	}

	state, err := noterecord.Unpack(note.Data)
	if nil != err {
		return err
	}

	if authority.Key != state.Authority {
		return fault.ErrInvalidNoteAuthority
	}

	balance, carry := bits.Add64(authority.Lamports, note.Lamports, 0)
	if 0 != carry {
		return fault.ErrArithmeticOverflow
	}

	p.Log.Debugf("delete: note: %s  refund: %d  to: %s", note.Key, note.Lamports, authority.Key)

	authority.Lamports = balance
	note.Lamports = 0
	for i := range note.Data {
		note.Data[i] = 0
	}
	return nil
}
