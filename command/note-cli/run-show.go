// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/noteprogram/account"
	"github.com/bitmark-inc/noteprogram/noterecord"
)

func runShow(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	note, err := checkNote(c.String("note"))
	if nil != err {
		return err
	}

	l, err := openLedger(m)
	if nil != err {
		return err
	}
	defer l.close()

	return printNote(m, l, note)
}

// printNote - decode a note account and print it
func printNote(m *metadata, l *localLedger, note account.PublicKey) error {

	a, err := l.Account(note)
	if nil != err {
		return err
	}

	if a.Owner != l.programID {
		return ErrNotNote
	}

	state, err := noterecord.Unpack(a.Data)
	if nil != err {
		return err
	}

	// delete leaves a zeroed slot
	if state.Authority.IsZero() {
		return ErrNoteDeleted
	}

	result := struct {
		Note     account.PublicKey `json:"note"`
		Lamports uint64            `json:"lamports,string"`
		*noterecord.State
	}{
		Note:     note,
		Lamports: a.Lamports,
		State:    state,
	}
	return printJson(m.w, result)
}
