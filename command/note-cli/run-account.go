// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

func runAccount(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	list, err := m.config.List()
	if nil != err {
		return err
	}

	return printJson(m.w, list)
}
