// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// note-cli - create, update, delete and show notes
//
// identities are kept in a JSON file with their seeds encrypted by a
// password; the ledger is opened directly from its Lua configuration
package main
