// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"math/bits"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/noteprogram/account"
	"github.com/bitmark-inc/noteprogram/fault"
	"github.com/bitmark-inc/noteprogram/rent"
	"github.com/bitmark-inc/noteprogram/storage"
)

// Program - the entry point of an on-ledger program
type Program interface {
	Process(programID account.PublicKey, accounts []*AccountInfo, data []byte) error
}

// Ledger - accounts held in storage plus the registered programs
type Ledger struct {
	sync.Mutex

	log      *logger.L
	rent     rent.Rent
	system   *SystemProgram
	programs map[account.PublicKey]Program
}

// New - ledger over the already initialised storage pools
//
// the rent schedule must give every account a non-zero minimum
func New(r rent.Rent) (*Ledger, error) {
	if nil == storage.Pool.Accounts {
		return nil, fault.ErrDatabaseIsNotSet
	}

	if minimum, err := r.MinimumBalance(0); nil != err || 0 == minimum {
		return nil, fault.ErrInvalidRentSchedule
	}

	l := &Ledger{
		log:  logger.New("ledger"),
		rent: r,
		system: &SystemProgram{
			log: logger.New("system"),
		},
		programs: make(map[account.PublicKey]Program),
	}
	l.log.Info("starting…")
	return l, nil
}

// Rent - the rate used for rent exemption
func (l *Ledger) Rent() rent.Rent {
	return l.rent
}

// System - the allocation service for programs
func (l *Ledger) System() *SystemProgram {
	return l.system
}

// Register - make a program callable at an address
func (l *Ledger) Register(programID account.PublicKey, program Program) error {
	l.Lock()
	defer l.Unlock()

	if programID == SystemProgramID {
		return fault.ErrProgramAlreadyRegistered
	}
	if _, ok := l.programs[programID]; ok {
		return fault.ErrProgramAlreadyRegistered
	}
	l.programs[programID] = program

	l.log.Infof("registered program: %s", programID)
	return nil
}

// Account - current state of an address
//
// an address never written reads as an empty system account, or as
// an executable loader account if a program is registered there
func (l *Ledger) Account(key account.PublicKey) (*Account, error) {
	l.Lock()
	defer l.Unlock()
	return l.get(key)
}

func (l *Ledger) get(key account.PublicKey) (*Account, error) {
	buffer := storage.Pool.Accounts.Get(key[:])
	if nil == buffer {
		if _, ok := l.programs[key]; ok || key == SystemProgramID {
			return &Account{
				Owner:      NativeLoaderID,
				Executable: true,
				Data:       []byte{},
			}, nil
		}
		return &Account{
			Owner: SystemProgramID,
			Data:  []byte{},
		}, nil
	}
	return UnpackAccount(buffer)
}

// Airdrop - create lamports in an account
func (l *Ledger) Airdrop(key account.PublicKey, lamports uint64) (uint64, error) {
	l.Lock()
	defer l.Unlock()

	a, err := l.get(key)
	if nil != err {
		return 0, err
	}

	balance, carry := bits.Add64(a.Lamports, lamports, 0)
	if 0 != carry {
		return 0, fault.ErrArithmeticOverflow
	}
	a.Lamports = balance

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return 0, err
	}
	trx.Put(storage.Pool.Accounts, key[:], a.Pack())
	err = trx.Commit()
	if nil != err {
		return 0, err
	}

	l.log.Infof("airdrop: %s  lamports: %d  balance: %d", key, lamports, balance)
	return balance, nil
}

// Entry - a stored account and its address
type Entry struct {
	Key     account.PublicKey
	Account *Account
}

// Accounts - up to count stored accounts in key order
//
// the list begins at the first key not less than start, or at the
// lowest key if start is nil
func (l *Ledger) Accounts(start *account.PublicKey, count int) ([]Entry, error) {
	l.Lock()
	defer l.Unlock()

	cursor := storage.Pool.Accounts.NewFetchCursor()
	if nil != start {
		cursor.Seek(start[:])
	}

	elements, err := cursor.Fetch(count)
	if nil != err {
		return nil, err
	}

	entries := make([]Entry, 0, len(elements))
	for _, e := range elements {
		key, err := account.PublicKeyFromBytes(e.Key)
		if nil != err {
			return nil, err
		}
		a, err := UnpackAccount(e.Value)
		if nil != err {
			return nil, err
		}
		entries = append(entries, Entry{Key: key, Account: a})
	}
	return entries, nil
}

// Transaction - instruction count of an executed transaction
//
// looked up by its first signature; second result is false if no
// such transaction was executed
func (l *Ledger) Transaction(signature account.Signature) (uint64, bool) {
	l.Lock()
	defer l.Unlock()

	if 0 == len(signature) {
		return 0, false
	}
	return storage.Pool.Transactions.GetN(signature)
}

// Reclaim - remove every account with a zero balance whose data is
// empty or all zero
//
// returns the number of accounts removed
func (l *Ledger) Reclaim() (int, error) {
	l.Lock()
	defer l.Unlock()

	keys := make([][]byte, 0, 16)
	cursor := storage.Pool.Accounts.NewFetchCursor()
	err := cursor.Map(func(key []byte, value []byte) error {
		a, err := UnpackAccount(value)
		if nil != err {
			return err
		}
		if a.IsReclaimable() {
			keys = append(keys, key)
		}
		return nil
	})
	if nil != err {
		return 0, err
	}

	if 0 == len(keys) {
		return 0, nil
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return 0, err
	}
	for _, key := range keys {
		trx.Delete(storage.Pool.Accounts, key)
	}
	err = trx.Commit()
	if nil != err {
		return 0, err
	}

	l.log.Infof("reclaimed: %d accounts", len(keys))
	return len(keys), nil
}
