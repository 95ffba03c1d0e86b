// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package processor - the note program
//
// Accounts are positional:
//
//   create: payer, note, system program
//   update: authority, note
//   delete: authority, note
//
// Every check of an operation is made before any account is changed.
// Only the stored authority may update or delete a note; the ledger
// has already verified the signatures of every signer account.
package processor
