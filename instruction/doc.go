// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package instruction - binary commands accepted by the note program
//
// layout:
//
//   tag     1 byte: 0 create, 1 update, 2 delete
//   title   uint32 little endian count ++ UTF-8 bytes  (create, update)
//   body    uint32 little endian count ++ UTF-8 bytes  (create, update)
//   owner   32 bytes raw public key                     (create only)
//
// delete has no payload, anything after its tag is ignored
package instruction
