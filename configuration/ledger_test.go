// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/noteprogram/account"
	"github.com/bitmark-inc/noteprogram/configuration"
	"github.com/bitmark-inc/noteprogram/fault"
	"github.com/bitmark-inc/noteprogram/rent"
)

// write a Lua configuration into a fresh directory
func writeConfiguration(t *testing.T, text string) (string, string) {
	dir, err := ioutil.TempDir("", "configuration")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	fileName := filepath.Join(dir, "note-ledger.conf")
	err = ioutil.WriteFile(fileName, []byte(text), 0600)
	if nil != err {
		os.RemoveAll(dir)
		t.Fatalf("write configuration error: %s", err)
	}
	return dir, fileName
}

func TestGetConfigurationDefaults(t *testing.T) {
	dir, fileName := writeConfiguration(t, `
local M = {}
M.data_directory = "."
return M
`)
	defer os.RemoveAll(dir)

	c, err := configuration.GetConfiguration(fileName)
	assert.Nil(t, err, "wrong error")

	assert.Equal(t, filepath.Clean(dir), filepath.Clean(c.DataDirectory), "wrong data directory")
	assert.Equal(t, filepath.Join(dir, "data"), c.Database.Directory, "wrong database directory")
	assert.Equal(t, filepath.Join(dir, "data", "notes"), c.Database.Name, "wrong database")
	assert.Equal(t, filepath.Join(dir, "log"), c.Logging.Directory, "wrong log directory")
	assert.Equal(t, "note-ledger.log", c.Logging.File, "wrong log file")
	assert.Equal(t, "critical", c.Logging.Levels[logger.DefaultTag], "wrong default level")
	assert.Equal(t, rent.Default(), c.RentSchedule(), "wrong rent")
	assert.Equal(t, account.NamedPublicKey("note-program"), c.ProgramID(), "wrong program id")

	_, err = os.Stat(c.Database.Directory)
	assert.Nil(t, err, "database directory not created")
	_, err = os.Stat(c.Logging.Directory)
	assert.Nil(t, err, "log directory not created")
}

func TestGetConfigurationOverrides(t *testing.T) {
	dir, fileName := writeConfiguration(t, `
local M = {}
M.data_directory = "."
M.database = {
    directory = "ledger",
    name = "testing",
}
M.program = "my-notes"
M.rent = {
    lamports_per_byte_year = 10,
    exemption_threshold = 1.5,
}
M.logging = {
    directory = "/tmp",
    file = "x.log",
    size = 2048,
    count = 3,
    levels = {
        DEFAULT = "info",
        ledger = "debug",
    },
}
return M
`)
	defer os.RemoveAll(dir)

	c, err := configuration.GetConfiguration(fileName)
	assert.Nil(t, err, "wrong error")

	assert.Equal(t, filepath.Join(dir, "ledger", "testing"), c.Database.Name, "wrong database")
	assert.Equal(t, account.NamedPublicKey("my-notes"), c.ProgramID(), "wrong program id")
	assert.Equal(t, rent.Rent{LamportsPerByteYear: 10, ExemptionThreshold: 1.5}, c.RentSchedule(), "wrong rent")
	assert.Equal(t, "/tmp", c.Logging.Directory, "absolute path changed")
	assert.Equal(t, "x.log", c.Logging.File, "wrong log file")
	assert.Equal(t, 2048, c.Logging.Size, "wrong log size")
	assert.Equal(t, 3, c.Logging.Count, "wrong log count")
	assert.Equal(t, "info", c.Logging.Levels["DEFAULT"], "wrong default level")
	assert.Equal(t, "debug", c.Logging.Levels["ledger"], "wrong ledger level")
}

func TestGetConfigurationErrors(t *testing.T) {
	items := []struct {
		title string
		text  string
		err   error
	}{
		{
			title: "missing data directory",
			text:  "return {}",
			err:   fault.ErrInvalidDirectory,
		},
		{
			title: "home data directory",
			text:  `return { data_directory = "~" }`,
			err:   fault.ErrInvalidDirectory,
		},
		{
			title: "empty program",
			text:  `return { data_directory = ".", program = "" }`,
			err:   fault.ErrInvalidProgramName,
		},
		{
			title: "negative threshold",
			text:  `return { data_directory = ".", rent = { exemption_threshold = -1 } }`,
			err:   fault.ErrInvalidExemptionThreshold,
		},
		{
			title: "zero threshold",
			text:  `return { data_directory = ".", rent = { exemption_threshold = 0 } }`,
			err:   fault.ErrInvalidRentSchedule,
		},
		{
			title: "zero rate",
			text:  `return { data_directory = ".", rent = { lamports_per_byte_year = 0 } }`,
			err:   fault.ErrInvalidRentSchedule,
		},
		{
			title: "overflowing rate",
			text:  `return { data_directory = ".", rent = { lamports_per_byte_year = 2^62 } }`,
			err:   fault.ErrInvalidRentSchedule,
		},
		{
			title: "database with path",
			text:  `return { data_directory = ".", database = { name = "a/notes" } }`,
			err:   fault.ErrNotPlainFileName,
		},
		{
			title: "log file with path",
			text:  `return { data_directory = ".", logging = { file = "/var/log/x.log" } }`,
			err:   fault.ErrNotPlainFileName,
		},
		{
			title: "not a table",
			text:  `return 42`,
			err:   fault.ErrConfigurationNotTable,
		},
	}

	for _, item := range items {
		dir, fileName := writeConfiguration(t, item.text)
		_, err := configuration.GetConfiguration(fileName)
		assert.Equal(t, item.err, err, item.title)
		os.RemoveAll(dir)
	}
}

func TestGetConfigurationLuaError(t *testing.T) {
	dir, fileName := writeConfiguration(t, "this is not Lua")
	defer os.RemoveAll(dir)

	_, err := configuration.GetConfiguration(fileName)
	assert.NotNil(t, err, "syntax error not reported")
}

func TestGetConfigurationMissingDataDirectory(t *testing.T) {
	dir, fileName := writeConfiguration(t, `return { data_directory = "does-not-exist" }`)
	defer os.RemoveAll(dir)

	_, err := configuration.GetConfiguration(fileName)
	assert.True(t, os.IsNotExist(err), "wrong error: %v", err)
}

func TestParseConfigurationFileArg(t *testing.T) {
	dir, fileName := writeConfiguration(t, `return { name = arg[0] }`)
	defer os.RemoveAll(dir)

	options := struct {
		Name string `gluamapper:"name"`
	}{}
	err := configuration.ParseConfigurationFile(fileName, &options)
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, fileName, options.Name, "arg[0] is not the file name")
}
