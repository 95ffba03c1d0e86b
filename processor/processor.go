// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package processor

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/noteprogram/account"
	"github.com/bitmark-inc/noteprogram/fault"
	"github.com/bitmark-inc/noteprogram/instruction"
	"github.com/bitmark-inc/noteprogram/ledger"
	"github.com/bitmark-inc/noteprogram/rent"
)

// Allocator - creates a funded account of a fixed size for an owner
type Allocator interface {
	CreateAccount(from *ledger.AccountInfo, to *ledger.AccountInfo, systemProgram *ledger.AccountInfo, lamports uint64, space uint64, owner account.PublicKey) error
}

// RentCalculator - minimum balance for an account of a given size
type RentCalculator interface {
	MinimumBalance(dataLength uint64) (uint64, error)
}

// the host services
var (
	_ Allocator      = &ledger.SystemProgram{}
	_ RentCalculator = rent.Rent{}
	_ ledger.Program = &Processor{}
)

// Processor - the note program with its host services
type Processor struct {
	Log       *logger.L
	Allocator Allocator
	Rent      RentCalculator
}

// New - processor logging on the "processor" channel
func New(allocator Allocator, rent RentCalculator) *Processor {
	return &Processor{
		Log:       logger.New("processor"),
		Allocator: allocator,
		Rent:      rent,
	}
}

// Process - decode an instruction and run it
func (p *Processor) Process(programID account.PublicKey, accounts []*ledger.AccountInfo, data []byte) error {

	cmd, err := instruction.Packed(data).Unpack()
	if nil != err {
		p.Log.Warnf("decode: %d bytes  error: %s", len(data), err)
		return err
	}

	switch tx := cmd.(type) {

	case *instruction.CreateNote:
		err = p.CreateNote(programID, accounts, tx.Title, tx.Body, tx.Authority)

	case *instruction.UpdateNote:
		err = p.UpdateNote(programID, accounts, tx.Title, tx.Body)

	case *instruction.DeleteNote:
		err = p.DeleteNote(programID, accounts)

	default:
		err = fault.ErrInvalidInstructionData
	}

	if nil != err {
		p.Log.Warnf("%s: error: %s  code: 0x%x", instruction.Packed(data).Type(), err, fault.Code(err))
	}
	return err
}

// Install - register the note program on a ledger using the ledger's
// own allocation service and rent schedule
func Install(l *ledger.Ledger, programID account.PublicKey) (*Processor, error) {
	p := New(l.System(), l.Rent())
	if err := l.Register(programID, p); nil != err {
		return nil, err
	}
	return p, nil
}
