// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package instruction

import (
	"github.com/bitmark-inc/noteprogram/account"
)

// TagType - type code for commands
type TagType uint8

// enumerate the possible command types
// this is the first byte of "Packed"
const (
	CreateNoteTag = TagType(iota) // allocate and write a new note
	UpdateNoteTag = TagType(iota) // rewrite title and body
	DeleteNoteTag = TagType(iota) // drain and zero a note

	// this item must be last
	InvalidTag = TagType(iota)
)

// Packed - packed commands are just a byte slice
type Packed []byte

// Command - generic command interface
type Command interface {
	Pack() Packed
}

// CreateNote - the unpacked create structure
type CreateNote struct {
	Title     string            `json:"title"`     // utf-8
	Body      string            `json:"body"`      // utf-8
	Authority account.PublicKey `json:"authority"` // base58
}

// UpdateNote - the unpacked update structure
type UpdateNote struct {
	Title string `json:"title"` // utf-8
	Body  string `json:"body"`  // utf-8
}

// DeleteNote - the unpacked delete structure
type DeleteNote struct {
}

// String - name of the tag for logging
func (tag TagType) String() string {
	switch tag {
	case CreateNoteTag:
		return "create"
	case UpdateNoteTag:
		return "update"
	case DeleteNoteTag:
		return "delete"
	default:
		return "invalid"
	}
}

// Type - get the type code of a packed command
//
// returns InvalidTag for an empty or unknown packed command
func (record Packed) Type() TagType {
	if 0 == len(record) {
		return InvalidTag
	}
	tag := TagType(record[0])
	if tag >= InvalidTag {
		return InvalidTag
	}
	return tag
}
