// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/noteprogram/account"
	"github.com/bitmark-inc/noteprogram/fault"
	"github.com/bitmark-inc/noteprogram/noterecord"
	"github.com/bitmark-inc/noteprogram/rent"
	"github.com/bitmark-inc/noteprogram/util"
)

// basic defaults (directories and files are relative to the
// "DataDirectory" from the configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultLevelDBDirectory = "data"
	defaultDatabase         = "notes"
	defaultProgram          = "note-program"

	defaultLogDirectory = "log"
	defaultLogFile      = "note-ledger.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// DatabaseType - location of the ledger database
type DatabaseType struct {
	Directory string `gluamapper:"directory" json:"directory"`
	Name      string `gluamapper:"name" json:"name"`
}

// RentType - rent schedule of the ledger
type RentType struct {
	LamportsPerByteYear uint64  `gluamapper:"lamports_per_byte_year" json:"lamports_per_byte_year"`
	ExemptionThreshold  float64 `gluamapper:"exemption_threshold" json:"exemption_threshold"`
}

// Configuration - ledger settings read from a Lua file
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	Database      DatabaseType         `gluamapper:"database" json:"database"`
	Program       string               `gluamapper:"program" json:"program"`
	Rent          RentType             `gluamapper:"rent" json:"rent"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

// GetConfiguration - read, decode and verify the configuration
func GetConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{
		DataDirectory: defaultDataDirectory,

		Database: DatabaseType{
			Directory: defaultLevelDBDirectory,
			Name:      defaultDatabase,
		},

		Program: defaultProgram,

		Rent: RentType{
			LamportsPerByteYear: rent.DefaultLamportsPerByteYear,
			ExemptionThreshold:  rent.DefaultExemptionThreshold,
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels: map[string]string{
				logger.DefaultTag: "critical",
			},
		},
	}

	if err := ParseConfigurationFile(configurationFileName, options); nil != err {
		return nil, err
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fault.ErrInvalidDirectory
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = util.EnsureAbsolute(dataDirectory, options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fault.ErrInvalidDirectory
	}

	if "" == options.Program {
		return nil, fault.ErrInvalidProgramName
	}

	// a note account must cost something and the cost must be computable
	minimum, err := options.RentSchedule().MinimumBalance(noterecord.MaxSize)
	if fault.ErrInvalidExemptionThreshold == err {
		return nil, err
	} else if nil != err || 0 == minimum {
		return nil, fault.ErrInvalidRentSchedule
	}

	// database and log file names must not contain a path
	for _, name := range []string{options.Database.Name, options.Logging.File} {
		if !util.IsPlainFileName(name) {
			return nil, fault.ErrNotPlainFileName
		}
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&options.Database.Directory,
		&options.Logging.Directory,
	} {
		*d, err = util.EnsureDirectory(options.DataDirectory, *d)
		if nil != err {
			return nil, err
		}
	}

	options.Database.Name = filepath.Join(options.Database.Directory, options.Database.Name)

	return options, nil
}

// ProgramID - account of the note program on this ledger
func (c *Configuration) ProgramID() account.PublicKey {
	return account.NamedPublicKey(c.Program)
}

// RentSchedule - rent parameters for the ledger
func (c *Configuration) RentSchedule() rent.Rent {
	return rent.Rent{
		LamportsPerByteYear: c.Rent.LamportsPerByteYear,
		ExemptionThreshold:  c.Rent.ExemptionThreshold,
	}
}
