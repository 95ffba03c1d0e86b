// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - parse a Lua configuration file
//
// most of base Lua is available such as reading files to set key data
// and getenv to extract environment supplied items.
//
// the file must end by returning a table, e.g.
//
//   local M = {}
//   M.data_directory = arg[0]:match("(.*/)")
//   M.database = { directory = "data", name = "notes" }
//   M.program = "note-program"
//   M.rent = { lamports_per_byte_year = 3480, exemption_threshold = 2.0 }
//   M.logging = { directory = "log", file = "note-ledger.log", size = 1048576, count = 10, levels = { DEFAULT = "info" } }
//   return M
package configuration
