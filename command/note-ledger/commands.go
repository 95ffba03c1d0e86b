// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/bitmark-inc/noteprogram/account"
	"github.com/bitmark-inc/noteprogram/configuration"
	"github.com/bitmark-inc/noteprogram/fault"
	"github.com/bitmark-inc/noteprogram/ledger"
	"github.com/bitmark-inc/noteprogram/noterecord"
)

// command line errors
var (
	ErrRequiredAddress     = fault.InvalidError("address is required")
	ErrRequiredLamports    = fault.InvalidError("lamports is required")
	ErrRequiredSignature   = fault.InvalidError("signature is required")
	ErrRequiredSize        = fault.InvalidError("size is required")
	ErrTransactionNotFound = fault.NotFoundError("transaction not found")
	ErrUnknownCommand      = fault.NotFoundError("unknown command")
)

// accounts listed when no count is given
const defaultPageSize = 100

const commandHelp = `commands:
  accounts [COUNT [START]]  list stored accounts from START in key order
  show ADDRESS              display one account and its note
  airdrop ADDRESS LAMPORTS  credit an account
  reclaim                   remove zero balance accounts with no data
  transaction SIGNATURE     instruction count of an executed transaction
  rent SIZE                 rent exempt minimum for SIZE data bytes`

// accountView - printable account, the note is only decoded for show
type accountView struct {
	Address    account.PublicKey `json:"address"`
	Lamports   uint64            `json:"lamports,string"`
	Owner      account.PublicKey `json:"owner"`
	Executable bool              `json:"executable"`
	Size       int               `json:"size"`
	RentExempt bool              `json:"rent_exempt"`
	Note       *noterecord.State `json:"note,omitempty"`
}

// configuration command handler
//
// commands that need the configuration but not the database; the
// first result is false if the command was not handled here
func processConfigCommand(w io.Writer, arguments []string, options *configuration.Configuration) (bool, error) {

	command := arguments[0]
	arguments = arguments[1:]

	switch command {
	case "rent":
		if len(arguments) < 1 {
			return true, ErrRequiredSize
		}
		size, err := strconv.ParseUint(arguments[0], 10, 64)
		if nil != err {
			return true, err
		}
		minimum, err := options.RentSchedule().MinimumBalance(size)
		if nil != err {
			return true, err
		}
		result := struct {
			Size           uint64 `json:"size"`
			MinimumBalance uint64 `json:"minimum_balance,string"`
		}{
			Size:           size,
			MinimumBalance: minimum,
		}
		return true, printJson(w, result)

	case "help":
		fmt.Fprintf(w, "%s\n", commandHelp)
		return true, nil

	default:
		return false, nil
	}
}

// data command handler
//
// commands that read or modify the ledger
func processDataCommand(w io.Writer, l *ledger.Ledger, options *configuration.Configuration, arguments []string) error {

	command := arguments[0]
	arguments = arguments[1:]

	switch command {
	case "accounts", "list":
		count := uint64(defaultPageSize)
		if len(arguments) > 0 {
			n, err := strconv.ParseUint(arguments[0], 10, 16)
			if nil != err {
				return err
			}
			if 0 == n {
				return fault.ErrInvalidCount
			}
			count = n
		}
		var start *account.PublicKey
		if len(arguments) > 1 {
			key, err := account.PublicKeyFromBase58(arguments[1])
			if nil != err {
				return err
			}
			start = &key
		}

		// one extra to find the start of the next page
		entries, err := l.Accounts(start, int(count)+1)
		if nil != err {
			return err
		}

		result := struct {
			Accounts []accountView      `json:"accounts"`
			Next     *account.PublicKey `json:"next,omitempty"`
		}{
			Accounts: make([]accountView, 0, len(entries)),
		}
		if uint64(len(entries)) > count {
			result.Next = &entries[count].Key
			entries = entries[:count]
		}
		for _, e := range entries {
			result.Accounts = append(result.Accounts, makeView(e.Key, e.Account, options))
		}
		return printJson(w, result)

	case "show":
		key, err := getAddress(arguments)
		if nil != err {
			return err
		}
		a, err := l.Account(key)
		if nil != err {
			return err
		}
		v := makeView(key, a, options)
		v.Note = noteOf(a, options)
		return printJson(w, v)

	case "airdrop":
		key, err := getAddress(arguments)
		if nil != err {
			return err
		}
		if len(arguments) < 2 {
			return ErrRequiredLamports
		}
		lamports, err := strconv.ParseUint(arguments[1], 10, 64)
		if nil != err {
			return err
		}
		balance, err := l.Airdrop(key, lamports)
		if nil != err {
			return err
		}
		result := struct {
			Address account.PublicKey `json:"address"`
			Balance uint64            `json:"balance,string"`
		}{
			Address: key,
			Balance: balance,
		}
		return printJson(w, result)

	case "reclaim":
		n, err := l.Reclaim()
		if nil != err {
			return err
		}
		result := struct {
			Reclaimed int `json:"reclaimed"`
		}{
			Reclaimed: n,
		}
		return printJson(w, result)

	case "transaction":
		if len(arguments) < 1 {
			return ErrRequiredSignature
		}
		var signature account.Signature
		err := signature.UnmarshalText([]byte(arguments[0]))
		if nil != err {
			return err
		}
		n, found := l.Transaction(signature)
		if !found {
			return ErrTransactionNotFound
		}
		result := struct {
			Signature    account.Signature `json:"signature"`
			Instructions uint64            `json:"instructions"`
		}{
			Signature:    signature,
			Instructions: n,
		}
		return printJson(w, result)

	default:
		return ErrUnknownCommand
	}
}

// first argument as an account address
func getAddress(arguments []string) (account.PublicKey, error) {
	if len(arguments) < 1 {
		return account.PublicKey{}, ErrRequiredAddress
	}
	return account.PublicKeyFromBase58(arguments[0])
}

func makeView(key account.PublicKey, a *ledger.Account, options *configuration.Configuration) accountView {
	return accountView{
		Address:    key,
		Lamports:   a.Lamports,
		Owner:      a.Owner,
		Executable: a.Executable,
		Size:       len(a.Data),
		RentExempt: options.RentSchedule().IsExempt(a.Lamports, uint64(len(a.Data))),
	}
}

// the note held by a program account, nil for a deleted note which
// leaves a zeroed slot with no authority
func noteOf(a *ledger.Account, options *configuration.Configuration) *noterecord.State {
	if a.Owner != options.ProgramID() {
		return nil
	}
	note, err := noterecord.Unpack(a.Data)
	if nil != err || note.Authority.IsZero() {
		return nil
	}
	return note
}

func printJson(w io.Writer, message interface{}) error {
	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}
	fmt.Fprintf(w, "%s\n", b)
	return nil
}
