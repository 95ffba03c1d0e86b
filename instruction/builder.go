// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package instruction

import (
	"github.com/bitmark-inc/noteprogram/account"
	"github.com/bitmark-inc/noteprogram/ledger"
)

// NewCreateNote - instruction to allocate a note at the note key
//
// both payer and note must sign: the payer funds the allocation and
// the note key proves the slot is fresh
func NewCreateNote(programID account.PublicKey, payer account.PublicKey, note account.PublicKey, authority account.PublicKey, title string, body string) ledger.Instruction {
	create := &CreateNote{
		Title:     title,
		Body:      body,
		Authority: authority,
	}
	return ledger.Instruction{
		ProgramID: programID,
		Accounts: []ledger.AccountMeta{
			{PublicKey: payer, IsSigner: true, IsWritable: true},
			{PublicKey: note, IsSigner: true, IsWritable: true},
			{PublicKey: ledger.SystemProgramID, IsSigner: false, IsWritable: false},
		},
		Data: create.Pack(),
	}
}

// NewUpdateNote - instruction to rewrite a note's title and body
func NewUpdateNote(programID account.PublicKey, authority account.PublicKey, note account.PublicKey, title string, body string) ledger.Instruction {
	update := &UpdateNote{
		Title: title,
		Body:  body,
	}
	return ledger.Instruction{
		ProgramID: programID,
		Accounts: []ledger.AccountMeta{
			{PublicKey: authority, IsSigner: true, IsWritable: false},
			{PublicKey: note, IsSigner: false, IsWritable: true},
		},
		Data: update.Pack(),
	}
}

// NewDeleteNote - instruction to drain a note's balance to its authority
func NewDeleteNote(programID account.PublicKey, authority account.PublicKey, note account.PublicKey) ledger.Instruction {
	deleteNote := &DeleteNote{}
	return ledger.Instruction{
		ProgramID: programID,
		Accounts: []ledger.AccountMeta{
			{PublicKey: authority, IsSigner: true, IsWritable: true},
			{PublicKey: note, IsSigner: false, IsWritable: true},
		},
		Data: deleteNote.Pack(),
	}
}
