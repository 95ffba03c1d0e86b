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

func runCreate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	title := c.String("title")
	body := c.String("body")

	private, err := privateIdentity(c, m)
	if nil != err {
		return err
	}
	payer := private.PrivateKey

	authority, err := checkOptionalAddress(c.String("authority"), payer.PublicKey())
	if nil != err {
		return err
	}

	// every note lives in its own new account
	note, err := account.NewPrivateKey()
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "payer: %s\n", payer.PublicKey())
		fmt.Fprintf(m.e, "note: %s\n", note.PublicKey())
		fmt.Fprintf(m.e, "authority: %s\n", authority)
		fmt.Fprintf(m.e, "title: %q\n", title)
		fmt.Fprintf(m.e, "body: %q\n", body)
	}

	l, err := openLedger(m)
	if nil != err {
		return err
	}
	defer l.close()

	ins := instruction.NewCreateNote(l.programID, payer.PublicKey(), note.PublicKey(), authority, title, body)
	err = l.submit(m, ins, payer, note)
	if nil != err {
		return err
	}

	return printNote(m, l, note.PublicKey())
}
