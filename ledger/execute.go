// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"bytes"
	"math/bits"

	"github.com/bitmark-inc/noteprogram/account"
	"github.com/bitmark-inc/noteprogram/fault"
	"github.com/bitmark-inc/noteprogram/storage"
)

// Execute - verify and run a transaction
//
// either every instruction succeeds and all writable accounts are
// stored, or nothing is stored and the first error is returned
func (l *Ledger) Execute(tx *Transaction) error {
	l.Lock()
	defer l.Unlock()

	if 0 == len(tx.Instructions) {
		return fault.ErrNoInstructions
	}

	err := verifySignatures(tx)
	if nil != err {
		l.log.Warnf("execute: signature error: %s", err)
		return err
	}

	txKey := []byte(tx.Signatures[0])
	if storage.Pool.Transactions.Has(txKey) {
		return fault.ErrTransactionAlreadyDone
	}

	for _, ins := range tx.Instructions {
		if _, ok := l.programs[ins.ProgramID]; !ok {
			l.log.Warnf("execute: unknown program: %s", ins.ProgramID)
			return fault.ErrUnknownProgram
		}
	}

	infos, order, err := l.load(tx)
	if nil != err {
		return err
	}

	for i, ins := range tx.Instructions {
		handles := make([]*AccountInfo, len(ins.Accounts))
		for j, meta := range ins.Accounts {
			handles[j] = infos[meta.PublicKey]
			handles[j].rebase()
		}

		err := l.programs[ins.ProgramID].Process(ins.ProgramID, handles, ins.Data)
		if nil == err {
			err = verifyInstruction(ins.ProgramID, handles)
		}
		if nil != err {
			l.log.Warnf("execute: instruction[%d] program: %s  error: %s  code: 0x%x", i, ins.ProgramID, err, fault.Code(err))
			return err
		}
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}
	for _, key := range order {
		info := infos[key]
		if info.IsWritable {
			trx.Put(storage.Pool.Accounts, key[:], info.Account().Pack())
		}
	}
	trx.PutN(storage.Pool.Transactions, txKey, uint64(len(tx.Instructions)))

	err = trx.Commit()
	if nil != err {
		l.log.Errorf("execute: commit error: %s", err)
		return err
	}

	l.log.Debugf("execute: %d instructions  accounts: %d", len(tx.Instructions), len(order))
	return nil
}

// every signer must have a valid signature over the message
func verifySignatures(tx *Transaction) error {
	signers := tx.Signers()
	if 0 == len(signers) || len(signers) != len(tx.Signatures) {
		return fault.ErrMissingRequiredSignature
	}

	message := tx.Message()
	for i, signer := range signers {
		signature := tx.Signatures[i]
		if 0 == len(signature) {
			return fault.ErrMissingRequiredSignature
		}
		err := signer.CheckSignature(message, signature)
		if nil != err {
			return err
		}
	}
	return nil
}

// one handle per distinct key, flags merged over all instructions
func (l *Ledger) load(tx *Transaction) (map[account.PublicKey]*AccountInfo, []account.PublicKey, error) {
	infos := make(map[account.PublicKey]*AccountInfo)
	order := make([]account.PublicKey, 0, 4)

	for _, ins := range tx.Instructions {
		for _, meta := range ins.Accounts {
			info, ok := infos[meta.PublicKey]
			if !ok {
				a, err := l.get(meta.PublicKey)
				if nil != err {
					return nil, nil, err
				}
				info = NewAccountInfo(meta.PublicKey, false, false, a)
				infos[meta.PublicKey] = info
				order = append(order, meta.PublicKey)
			}
			info.IsSigner = info.IsSigner || meta.IsSigner
			info.IsWritable = info.IsWritable || meta.IsWritable
		}
	}
	return infos, order, nil
}

// runtime rules: compare each handle against its state at the start
// of the instruction
func verifyInstruction(programID account.PublicKey, handles []*AccountInfo) error {
	seen := make(map[*AccountInfo]struct{})

	before := uint64(0)
	after := uint64(0)
	overflow := uint64(0)

	for _, info := range handles {
		if _, ok := seen[info]; ok {
			continue
		}
		seen[info] = struct{}{}

		base := info.base
		owned := base.Owner == programID

		if info.Owner != base.Owner {
			return fault.ErrModifiedProgramId
		}

		if info.Lamports < base.Lamports && !owned {
			return fault.ErrExternalAccountLamportSpend
		}

		if info.Lamports != base.Lamports && !info.IsWritable {
			return fault.ErrReadonlyLamportChange
		}

		if info.Executable != base.Executable || !bytes.Equal(info.Data, base.Data) {
			if !info.IsWritable {
				return fault.ErrReadonlyDataModified
			}
			if !owned {
				return fault.ErrExternalAccountDataModified
			}
		}

		var carry uint64
		before, carry = bits.Add64(before, base.Lamports, 0)
		overflow |= carry
		after, carry = bits.Add64(after, info.Lamports, 0)
		overflow |= carry
	}

	if 0 != overflow || before != after {
		return fault.ErrUnbalancedInstruction
	}
	return nil
}
