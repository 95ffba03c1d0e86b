// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// note-ledger - maintenance of the local note ledger
//
// reads a Lua configuration file to locate the database and then
// lists, shows, funds or reclaims accounts, or prints the rent
// exempt minimum for a data size.
package main
