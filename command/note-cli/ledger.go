// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/noteprogram/account"
	ledgerconfiguration "github.com/bitmark-inc/noteprogram/configuration"
	"github.com/bitmark-inc/noteprogram/fault"
	"github.com/bitmark-inc/noteprogram/ledger"
	"github.com/bitmark-inc/noteprogram/processor"
	"github.com/bitmark-inc/noteprogram/storage"
)

// logging is started once per process
var loggingStarted bool

// local ledger opened from its Lua configuration
type localLedger struct {
	*ledger.Ledger
	programID account.PublicKey
	log       *logger.L
}

// openLedger - the caller must call close on success
func openLedger(m *metadata) (*localLedger, error) {

	options, err := ledgerconfiguration.GetConfiguration(m.config.Ledger)
	if nil != err {
		return nil, err
	}

	if !loggingStarted {
		err = logger.Initialise(options.Logging)
		if nil != err {
			return nil, err
		}
		loggingStarted = true
	}

	log := logger.New("main")
	log.Infof("database: %q", options.Database.Name)

	err = storage.Initialise(options.Database.Name, storage.ReadWrite)
	if nil != err {
		log.Errorf("storage initialise error: %s", err)
		return nil, err
	}

	l, err := ledger.New(options.RentSchedule())
	if nil != err {
		storage.Finalise()
		return nil, err
	}

	_, err = processor.Install(l, options.ProgramID())
	if nil != err {
		storage.Finalise()
		return nil, err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "program: %s\n", options.ProgramID())
	}

	return &localLedger{
		Ledger:    l,
		programID: options.ProgramID(),
		log:       log,
	}, nil
}

func (l *localLedger) close() {
	storage.Finalise()
}

// submit - sign and execute a single instruction
func (l *localLedger) submit(m *metadata, ins ledger.Instruction, keys ...*account.PrivateKey) error {
	tx := ledger.NewTransaction(uint64(time.Now().UnixNano()), ins)
	tx.Sign(keys...)

	err := l.Execute(tx)
	if nil != err {
		l.log.Errorf("execute error: %s  code: 0x%x", err, fault.Code(err))
		if m.verbose {
			fmt.Fprintf(m.e, "code: 0x%x\n", fault.Code(err))
		}
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "signature: %s\n", tx.Signatures[0])
	}
	return nil
}
