// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package noterecord - layout of a note inside its account
//
// A note account holds exactly MaxSize bytes:
//
//   authority  32 bytes raw public key
//   title      uint32 little endian count ++ UTF-8 bytes
//   body       uint32 little endian count ++ UTF-8 bytes
//   padding    zero bytes up to MaxSize
//
// fields are contiguous, there is no version byte
package noterecord
