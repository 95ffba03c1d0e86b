// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package noterecord

import (
	"github.com/bitmark-inc/noteprogram/fault"
	"github.com/bitmark-inc/noteprogram/util"
)

// Pack - encode into an account's data
//
// the whole buffer is rewritten: fields first, then zero padding.
// if the fields do not fit, the buffer is left untouched
func (state *State) Pack(buffer []byte) error {
	if state.PackedSize() > len(buffer) {
		return fault.ErrAccountDataTooSmall
	}

	packed := make([]byte, 0, len(buffer))
	packed = append(packed, state.Authority[:]...)
	packed = util.AppendString(packed, state.Title)
	packed = util.AppendString(packed, state.Body)

	n := copy(buffer, packed)
	for i := n; i < len(buffer); i += 1 {
		buffer[i] = 0
	}
	return nil
}
