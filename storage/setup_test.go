// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/noteprogram/storage"
)

// common test setup routines

type fixture struct {
	dir      string
	database string
}

// configure for testing
func setup(t *testing.T) *fixture {
	dir, err := ioutil.TempDir("", "storage-test")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}

	logging := logger.Configuration{
		Directory: dir,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	_ = logger.Initialise(logging)

	database := filepath.Join(dir, "test")
	err = storage.Initialise(database, storage.ReadWrite)
	if nil != err {
		os.RemoveAll(dir)
		t.Fatalf("storage initialise error: %s", err)
	}

	return &fixture{
		dir:      dir,
		database: database,
	}
}

// post test cleanup
func (f *fixture) teardown() {
	storage.Finalise()
	os.RemoveAll(f.dir)
}

// a string data item
type stringElement struct {
	key   string
	value string
}

// make an element array
func makeElements(input []stringElement) []storage.Element {
	output := make([]storage.Element, 0, len(input))
	for _, e := range input {
		output = append(output, storage.Element{
			Key:   []byte(e.key),
			Value: []byte(e.value),
		})
	}
	return output
}

// write some data and then replace and remove an item
func populate(t *testing.T) {
	trx, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("begin error: %s", err)
	}

	p := storage.Pool.TestData
	trx.Put(p, []byte("key-one"), []byte("data-one"))
	trx.Put(p, []byte("key-two"), []byte("data-two"))
	trx.Put(p, []byte("key-three"), []byte("data-three"))
	trx.Put(p, []byte("key-four"), []byte("data-four"))
	trx.Put(p, []byte("key-five"), []byte("data-five"))
	trx.Put(p, []byte("key-six"), []byte("data-six"))
	trx.Put(p, []byte("key-seven"), []byte("data-seven"))
	trx.Put(p, []byte("key-one"), []byte("data-one(NEW)"))
	trx.Put(p, []byte("key-remove"), []byte("data-remove"))
	trx.Delete(p, []byte("key-remove"))

	err = trx.Commit()
	if nil != err {
		t.Fatalf("commit error: %s", err)
	}
}

// this is the expected order
var expectedElements = makeElements([]stringElement{
	{"key-five", "data-five"},
	{"key-four", "data-four"},
	{"key-one", "data-one(NEW)"},
	{"key-seven", "data-seven"},
	{"key-six", "data-six"},
	{"key-three", "data-three"},
	{"key-two", "data-two"},
})

// a key that must not exist
var nonExistantKey = []byte("/nonexistant")
