// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"
	"golang.org/x/crypto/ssh/terminal"

	"github.com/bitmark-inc/noteprogram/command/note-cli/configuration"
)

const minimumPasswordLength = 8

func readPassword(m *metadata, prompt string) (string, error) {
	fmt.Fprint(m.e, prompt)
	password, err := terminal.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(m.e)
	if nil != err {
		return "", err
	}
	return string(password), nil
}

// ask twice for a password to protect a new identity
func promptNewPassword(m *metadata) (string, error) {
	password, err := readPassword(m, "Set identity password (length >= 8): ")
	if nil != err {
		return "", err
	}

	if len(password) < minimumPasswordLength {
		return "", ErrPasswordTooShort
	}

	verifyPassword, err := readPassword(m, "Verify password: ")
	if nil != err {
		return "", err
	}

	if password != verifyPassword {
		return "", ErrPasswordMismatch
	}

	return password, nil
}

// password for a new identity from the flag or the terminal
func newPassword(c *cli.Context, m *metadata) (string, error) {
	password := c.GlobalString("password")
	if "" != password {
		return password, nil
	}
	return promptNewPassword(m)
}

// unlock the selected identity
func privateIdentity(c *cli.Context, m *metadata) (*configuration.Private, error) {
	name, err := identityName(c, m)
	if nil != err {
		return nil, err
	}

	password := c.GlobalString("password")
	if "" == password {
		password, err = readPassword(m, "password: ")
		if nil != err {
			return nil, err
		}
	}

	return m.config.Private(password, name)
}
