// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/noteprogram/account"
	"github.com/bitmark-inc/noteprogram/instruction"
)

func runDelete(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	note, err := checkNote(c.String("note"))
	if nil != err {
		return err
	}

	private, err := privateIdentity(c, m)
	if nil != err {
		return err
	}
	authority := private.PrivateKey

	if m.verbose {
		fmt.Fprintf(m.e, "note: %s\n", note)
		fmt.Fprintf(m.e, "authority: %s\n", authority.PublicKey())
	}

	l, err := openLedger(m)
	if nil != err {
		return err
	}
	defer l.close()

	ins := instruction.NewDeleteNote(l.programID, authority.PublicKey(), note)
	err = l.submit(m, ins, authority)
	if nil != err {
		return err
	}

	a, err := l.Account(authority.PublicKey())
	if nil != err {
		return err
	}

	result := struct {
		Note      account.PublicKey `json:"note"`
		Authority account.PublicKey `json:"authority"`
		Balance   uint64            `json:"balance,string"`
	}{
		Note:      note,
		Authority: authority.PublicKey(),
		Balance:   a.Lamports,
	}
	return printJson(m.w, result)
}
