// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk ledger data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the avaiable tables.
//
// All writes go through a Transaction: the pending writes are held in
// a batch and mirrored in a cache so that reads made before Commit see
// them; Abort discards both.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. address      = account public key (32 bytes)
// 4. signature    = first signature of a transaction (64 bytes)
// 5. lamports     = big endian uint64 (8 bytes)
//
// Accounts:
//
//   A ++ address               - ledger account
//                                data: lamports ++ owner address ++ flags ++ account data
//
// Transactions:
//
//   T ++ signature             - executed transactions, to reject replays
//                                data: sequence number (big endian uint64)
//
// Testing:
//   Z ++ key                   - testing data
package storage
