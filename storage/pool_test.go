// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/noteprogram/fault"
	"github.com/bitmark-inc/noteprogram/storage"
)

func TestDoubleInitialise(t *testing.T) {
	f := setup(t)
	defer f.teardown()

	err := storage.Initialise(f.database, storage.ReadWrite)
	assert.Equal(t, fault.ErrAlreadyInitialised, err, "second initialise allowed")
}

func TestReopenReadOnly(t *testing.T) {
	f := setup(t)
	defer f.teardown()

	populate(t)
	storage.Finalise()

	err := storage.Initialise(f.database, storage.ReadOnly)
	assert.Nil(t, err, "read only open error")

	value := storage.Pool.TestData.Get([]byte("key-two"))
	assert.Equal(t, []byte("data-two"), value, "data lost over reopen")
}

func TestPoolGet(t *testing.T) {
	f := setup(t)
	defer f.teardown()

	populate(t)
	p := storage.Pool.TestData

	for _, e := range expectedElements {
		assert.Equal(t, e.Value, p.Get(e.Key), "wrong value for: %s", e.Key)
		assert.True(t, p.Has(e.Key), "missing: %s", e.Key)
	}

	assert.Nil(t, p.Get(nonExistantKey), "non existant key found")
	assert.False(t, p.Has(nonExistantKey), "non existant key present")
	assert.False(t, p.Has([]byte("key-remove")), "removed key present")
}

func TestPoolsAreSeparate(t *testing.T) {
	f := setup(t)
	defer f.teardown()

	populate(t)

	assert.Nil(t, storage.Pool.Accounts.Get([]byte("key-one")), "key leaked across pools")

	elements, err := storage.Pool.Accounts.NewFetchCursor().Fetch(1)
	assert.Nil(t, err, "fetch error")
	assert.Equal(t, 0, len(elements), "empty pool has elements")
}

func TestTransactionInUse(t *testing.T) {
	f := setup(t)
	defer f.teardown()

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "first begin error")
	assert.True(t, trx.InUse(), "transaction not in use")

	_, err = storage.NewDBTransaction()
	assert.Equal(t, fault.ErrTransactionInUse, err, "second transaction allowed")

	trx.Abort()
	assert.False(t, trx.InUse(), "abort did not release")

	trx, err = storage.NewDBTransaction()
	assert.Nil(t, err, "begin after abort error")
	trx.Abort()
}

func TestTransactionSeesPendingWrites(t *testing.T) {
	f := setup(t)
	defer f.teardown()

	populate(t)
	p := storage.Pool.TestData

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "begin error")

	trx.PutN(p, []byte("count"), 42)
	trx.Delete(p, []byte("key-two"))

	n, found := p.GetN([]byte("count"))
	assert.True(t, found, "pending put not visible")
	assert.Equal(t, uint64(42), n, "wrong pending value")
	assert.Nil(t, trx.Get(p, []byte("key-two")), "pending delete not visible")
	assert.False(t, trx.Has(p, []byte("key-two")), "pending delete still present")

	trx.Abort()

	_, found = p.GetN([]byte("count"))
	assert.False(t, found, "aborted put persisted")
	assert.Equal(t, []byte("data-two"), p.Get([]byte("key-two")), "aborted delete persisted")
}

func TestPoolGetN(t *testing.T) {
	f := setup(t)
	defer f.teardown()

	p := storage.Pool.TestData

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "begin error")
	trx.PutN(p, []byte("n"), 0x0102)
	trx.Put(p, []byte("short"), []byte{1, 2, 3})
	err = trx.Commit()
	assert.Nil(t, err, "commit error")

	n, found := p.GetN([]byte("n"))
	assert.True(t, found, "number not found")
	assert.Equal(t, uint64(0x0102), n, "wrong number")

	n, found = p.GetN(nonExistantKey)
	assert.False(t, found, "missing key found")
	assert.Equal(t, uint64(0), n, "number for missing key")

	assert.Panics(t, func() { p.GetN([]byte("short")) }, "truncated record accepted")
}

func TestFetchCursor(t *testing.T) {
	f := setup(t)
	defer f.teardown()

	populate(t)

	cursor := storage.Pool.TestData.NewFetchCursor()

	first, err := cursor.Fetch(3)
	assert.Nil(t, err, "fetch error")
	assert.Equal(t, expectedElements[:3], first, "wrong first block")

	rest, err := cursor.Fetch(10)
	assert.Nil(t, err, "fetch error")
	assert.Equal(t, expectedElements[3:], rest, "wrong remainder")

	empty, err := cursor.Fetch(10)
	assert.Nil(t, err, "fetch error")
	assert.Equal(t, 0, len(empty), "elements after end")

	_, err = cursor.Fetch(0)
	assert.Equal(t, fault.ErrInvalidCount, err, "zero count allowed")

	var nilCursor *storage.FetchCursor
	_, err = nilCursor.Fetch(1)
	assert.Equal(t, fault.ErrInvalidCursor, err, "nil cursor allowed")
}

func TestFetchCursorSeek(t *testing.T) {
	f := setup(t)
	defer f.teardown()

	populate(t)

	elements, err := storage.Pool.TestData.NewFetchCursor().Seek([]byte("key-seven")).Fetch(2)
	assert.Nil(t, err, "fetch error")
	assert.Equal(t, expectedElements[3:5], elements, "wrong elements after seek")
}

func TestMap(t *testing.T) {
	f := setup(t)
	defer f.teardown()

	populate(t)

	seen := []storage.Element{}
	err := storage.Pool.TestData.NewFetchCursor().Map(func(key []byte, value []byte) error {
		seen = append(seen, storage.Element{Key: key, Value: value})
		return nil
	})
	assert.Nil(t, err, "map error")
	assert.Equal(t, expectedElements, seen, "wrong map sequence")

	stop := errors.New("stop")
	count := 0
	err = storage.Pool.TestData.NewFetchCursor().Map(func(key []byte, value []byte) error {
		count += 1
		return stop
	})
	assert.Equal(t, stop, err, "map error not returned")
	assert.Equal(t, 1, count, "map did not stop")
}
