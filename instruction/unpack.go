// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package instruction

import (
	"github.com/bitmark-inc/noteprogram/account"
	"github.com/bitmark-inc/noteprogram/fault"
	"github.com/bitmark-inc/noteprogram/util"
)

// Unpack - turn a byte slice into a command
//
// must cast result to correct type
//
// e.g.
//   switch cmd := result.(type) {
//   case *instruction.CreateNote:
//
// every failure is fault.ErrInvalidInstructionData
func (record Packed) Unpack() (Command, error) {

	switch record.Type() {

	case CreateNoteTag:
		r := util.NewReader(record[1:])
		title, body, err := readTitleAndBody(r)
		if nil != err {
			return nil, err
		}

		owner, err := r.ReadFixed(account.PublicKeySize)
		if nil != err {
			return nil, fault.ErrInvalidInstructionData
		}
		authority, err := account.PublicKeyFromBytes(owner)
		if nil != err {
			return nil, fault.ErrInvalidInstructionData
		}

		if 0 != r.Remaining() {
			return nil, fault.ErrInvalidInstructionData
		}

		create := &CreateNote{
			Title:     title,
			Body:      body,
			Authority: authority,
		}
		return create, nil

	case UpdateNoteTag:
		r := util.NewReader(record[1:])
		title, body, err := readTitleAndBody(r)
		if nil != err {
			return nil, err
		}

		if 0 != r.Remaining() {
			return nil, fault.ErrInvalidInstructionData
		}

		update := &UpdateNote{
			Title: title,
			Body:  body,
		}
		return update, nil

	case DeleteNoteTag:
		return &DeleteNote{}, nil

	default:
		return nil, fault.ErrInvalidInstructionData
	}
}

func readTitleAndBody(r *util.Reader) (string, string, error) {
	title, err := r.ReadString()
	if nil != err {
		return "", "", fault.ErrInvalidInstructionData
	}
	body, err := r.ReadString()
	if nil != err {
		return "", "", fault.ErrInvalidInstructionData
	}
	return title, body, nil
}
