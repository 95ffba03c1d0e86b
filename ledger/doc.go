// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - accounts and the execution of signed transactions
//
// A transaction is a list of instructions, each naming a registered
// program, the accounts it may touch and opaque instruction data.
// Execution is serialised: signatures are verified, the accounts are
// loaded into AccountInfo handles, every instruction runs in order and
// the runtime rules are checked after each one. Only when every
// instruction succeeds are the writable accounts stored; any failure
// discards all changes.
//
// The system program owns every account that has not been assigned
// to a program and is the only way to allocate space.
package ledger
