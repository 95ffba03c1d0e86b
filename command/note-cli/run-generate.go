// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/noteprogram/account"
)

func runGenerate(c *cli.Context) error {

	seed, err := account.NewBase58Seed()
	if nil != err {
		return err
	}

	privateKey, err := account.PrivateKeyFromBase58Seed(seed)
	if nil != err {
		return err
	}

	result := struct {
		Seed       string              `json:"seed"`
		Account    account.PublicKey   `json:"account"`
		PrivateKey *account.PrivateKey `json:"private_key"`
	}{
		Seed:       seed,
		Account:    privateKey.PublicKey(),
		PrivateKey: privateKey,
	}

	return printJson(c.App.Writer, result)
}
