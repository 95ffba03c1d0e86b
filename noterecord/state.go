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

// byte sizes for the fields
const (
	AuthoritySize  = account.PublicKeySize
	MaxTitleLength = 10
	MaxBodyLength  = 100

	// the account is allocated with this size and never resized
	MaxSize = AuthoritySize + MaxTitleLength + MaxBodyLength
)

// State - the unpacked note
type State struct {
	Authority account.PublicKey `json:"authority"` // base58
	Title     string            `json:"title"`     // utf-8
	Body      string            `json:"body"`      // utf-8
}

// Validate - check the length caps
//
// title is checked before body
func (state *State) Validate() error {
	return ValidateLengths(state.Title, state.Body)
}

// ValidateLengths - check title and body against their caps
func ValidateLengths(title string, body string) error {
	if len(title) > MaxTitleLength {
		return fault.ErrInvalidNoteTitleLength
	}
	if len(body) > MaxBodyLength {
		return fault.ErrInvalidNoteBodyLength
	}
	return nil
}

// PackedSize - bytes used by the encoded fields, excluding padding
func (state *State) PackedSize() int {
	return AuthoritySize + util.StringSize(state.Title) + util.StringSize(state.Body)
}
