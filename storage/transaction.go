// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

// Transaction - atomic group of writes across pools
type Transaction interface {
	Begin() error
	Put(*PoolHandle, []byte, []byte)
	PutN(*PoolHandle, []byte, uint64)
	Delete(*PoolHandle, []byte)
	Get(*PoolHandle, []byte) []byte
	Has(*PoolHandle, []byte) bool
	Commit() error
	Abort()
	InUse() bool
}

// TransactionData - transaction over a single database
type TransactionData struct {
	access Access
}

func newTransaction(access Access) Transaction {
	return &TransactionData{
		access: access,
	}
}

// Begin - start collecting writes
func (t *TransactionData) Begin() error {
	return t.access.Begin()
}

// Put - store a key/value pair
func (t *TransactionData) Put(handle *PoolHandle, key []byte, value []byte) {
	handle.put(key, value)
}

// PutN - store a big endian uint64
func (t *TransactionData) PutN(handle *PoolHandle, key []byte, value uint64) {
	handle.putN(key, value)
}

// Delete - remove a key
func (t *TransactionData) Delete(handle *PoolHandle, key []byte) {
	handle.remove(key)
}

// Get - read including pending writes
func (t *TransactionData) Get(handle *PoolHandle, key []byte) []byte {
	return handle.Get(key)
}

// Has - check a key including pending writes
func (t *TransactionData) Has(handle *PoolHandle, key []byte) bool {
	return handle.Has(key)
}

// Commit - write everything and end the transaction
//
// the transaction ends even if the write fails
func (t *TransactionData) Commit() error {
	err := t.access.Commit()
	t.access.Abort()
	return err
}

// Abort - discard everything and end the transaction
func (t *TransactionData) Abort() {
	t.access.Abort()
}

// InUse - true between Begin and Commit/Abort
func (t *TransactionData) InUse() bool {
	return t.access.InUse()
}
