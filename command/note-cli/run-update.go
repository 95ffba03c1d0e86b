// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/noteprogram/instruction"
)

func runUpdate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	note, err := checkNote(c.String("note"))
	if nil != err {
		return err
	}

	title := c.String("title")
	body := c.String("body")

	private, err := privateIdentity(c, m)
	if nil != err {
		return err
	}
	authority := private.PrivateKey

	if m.verbose {
		fmt.Fprintf(m.e, "note: %s\n", note)
		fmt.Fprintf(m.e, "authority: %s\n", authority.PublicKey())
		fmt.Fprintf(m.e, "title: %q\n", title)
		fmt.Fprintf(m.e, "body: %q\n", body)
	}

	l, err := openLedger(m)
	if nil != err {
		return err
	}
	defer l.close()

	ins := instruction.NewUpdateNote(l.programID, authority.PublicKey(), note, title, body)
	err = l.submit(m, ins, authority)
	if nil != err {
		return err
	}

	return printNote(m, l, note)
}
