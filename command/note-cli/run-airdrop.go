// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/noteprogram/account"
)

func runAirdrop(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	lamports := c.Uint64("lamports")
	if 0 == lamports {
		return ErrRequiredLamports
	}

	name, err := identityName(c, m)
	if nil != err {
		return err
	}

	key, err := m.config.Account(name)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "identity: %s\n", name)
		fmt.Fprintf(m.e, "account: %s\n", key)
		fmt.Fprintf(m.e, "lamports: %d\n", lamports)
	}

	l, err := openLedger(m)
	if nil != err {
		return err
	}
	defer l.close()

	balance, err := l.Airdrop(key, lamports)
	if nil != err {
		return err
	}

	result := struct {
		Account account.PublicKey `json:"account"`
		Balance uint64            `json:"balance,string"`
	}{
		Account: key,
		Balance: balance,
	}
	return printJson(m.w, result)
}
