// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package noterecord

import (
	"github.com/bitmark-inc/noteprogram/account"
	"github.com/bitmark-inc/noteprogram/fault"
	"github.com/bitmark-inc/noteprogram/util"
)

// Unpack - decode the note at the start of an account's data
//
// bytes after the body are padding and are not examined, so a zeroed
// account decodes as a zero authority with empty title and body
func Unpack(buffer []byte) (*State, error) {
	r := util.NewReader(buffer)

	authority, err := r.ReadFixed(AuthoritySize)
	if nil != err {
		return nil, fault.ErrInvalidAccountData
	}

	title, err := r.ReadString()
	if nil != err {
		return nil, fault.ErrInvalidAccountData
	}

	body, err := r.ReadString()
	if nil != err {
		return nil, fault.ErrInvalidAccountData
	}

	state := &State{
		Title: title,
		Body:  body,
	}
	state.Authority, err = account.PublicKeyFromBytes(authority)
	if nil != err {
		return nil, fault.ErrInvalidAccountData
	}
	return state, nil
}
