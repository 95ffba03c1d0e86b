// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package instruction

import (
	"github.com/bitmark-inc/noteprogram/util"
)

// Pack - create command
//
// lengths are not checked here so that oversize fields reach the
// program and are rejected there
func (create *CreateNote) Pack() Packed {
	message := make(Packed, 0, 1+util.StringSize(create.Title)+util.StringSize(create.Body)+len(create.Authority))
	message = append(message, byte(CreateNoteTag))
	message = util.AppendString(message, create.Title)
	message = util.AppendString(message, create.Body)
	message = append(message, create.Authority[:]...)
	return message
}

// Pack - update command
func (update *UpdateNote) Pack() Packed {
	message := make(Packed, 0, 1+util.StringSize(update.Title)+util.StringSize(update.Body))
	message = append(message, byte(UpdateNoteTag))
	message = util.AppendString(message, update.Title)
	message = util.AppendString(message, update.Body)
	return message
}

// Pack - delete command
func (deleteNote *DeleteNote) Pack() Packed {
	return Packed{byte(DeleteNoteTag)}
}
