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

func runBalance(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	key := account.PublicKey{}
	address := c.String("account")
	if "" == address {
		name, err := identityName(c, m)
		if nil != err {
			return err
		}
		key, err = m.config.Account(name)
		if nil != err {
			return err
		}
	} else {
		var err error
		key, err = account.PublicKeyFromBase58(address)
		if nil != err {
			return err
		}
	}

	if m.verbose {
		fmt.Fprintf(m.e, "account: %s\n", key)
	}

	l, err := openLedger(m)
	if nil != err {
		return err
	}
	defer l.close()

	a, err := l.Account(key)
	if nil != err {
		return err
	}

	result := struct {
		Account account.PublicKey `json:"account"`
		Balance uint64            `json:"balance,string"`
		Owner   account.PublicKey `json:"owner"`
	}{
		Account: key,
		Balance: a.Lamports,
		Owner:   a.Owner,
	}
	return printJson(m.w, result)
}
