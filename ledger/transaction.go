// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"encoding/binary"

	"github.com/bitmark-inc/noteprogram/account"
	"github.com/bitmark-inc/noteprogram/util"
)

// AccountMeta - reference to an account within an instruction
type AccountMeta struct {
	PublicKey  account.PublicKey `json:"publicKey"`
	IsSigner   bool              `json:"isSigner"`
	IsWritable bool              `json:"isWritable"`
}

// Instruction - one program invocation
type Instruction struct {
	ProgramID account.PublicKey `json:"programId"`
	Accounts  []AccountMeta     `json:"accounts"`
	Data      []byte            `json:"data"`
}

// Transaction - instructions executed atomically
//
// Signatures are in the order of Signers()
type Transaction struct {
	Nonce        uint64              `json:"nonce,string"`
	Instructions []Instruction       `json:"instructions"`
	Signatures   []account.Signature `json:"signatures"`
}

// meta flag bits in the packed message
const (
	metaSigner   = 0x01
	metaWritable = 0x02
)

// NewTransaction - unsigned transaction
func NewTransaction(nonce uint64, instructions ...Instruction) *Transaction {
	return &Transaction{
		Nonce:        nonce,
		Instructions: instructions,
	}
}

// Signers - keys that must sign, in order of first appearance
func (tx *Transaction) Signers() []account.PublicKey {
	seen := make(map[account.PublicKey]struct{})
	signers := make([]account.PublicKey, 0, 2)
	for _, ins := range tx.Instructions {
		for _, meta := range ins.Accounts {
			if !meta.IsSigner {
				continue
			}
			if _, ok := seen[meta.PublicKey]; ok {
				continue
			}
			seen[meta.PublicKey] = struct{}{}
			signers = append(signers, meta.PublicKey)
		}
	}
	return signers
}

// Message - the bytes covered by the signatures
//
//   nonce(8 LE) ++ count(4 LE) ++ [ program ++ count(4 LE) ++ [ key ++ flags ] ++ data(4 LE count ++ bytes) ]
func (tx *Transaction) Message() []byte {
	message := make([]byte, 8, 256)
	binary.LittleEndian.PutUint64(message, tx.Nonce)
	message = util.AppendUint32(message, uint32(len(tx.Instructions)))
	for _, ins := range tx.Instructions {
		message = append(message, ins.ProgramID[:]...)
		message = util.AppendUint32(message, uint32(len(ins.Accounts)))
		for _, meta := range ins.Accounts {
			flags := byte(0)
			if meta.IsSigner {
				flags |= metaSigner
			}
			if meta.IsWritable {
				flags |= metaWritable
			}
			message = append(message, meta.PublicKey[:]...)
			message = append(message, flags)
		}
		message = util.AppendBytes(message, ins.Data)
	}
	return message
}

// Sign - sign the message with every matching key
//
// keys that are not signers are ignored; signers without a key are
// left unsigned and the transaction will be rejected
func (tx *Transaction) Sign(keys ...*account.PrivateKey) {
	message := tx.Message()
	signers := tx.Signers()

	if len(tx.Signatures) != len(signers) {
		signatures := make([]account.Signature, len(signers))
		copy(signatures, tx.Signatures)
		tx.Signatures = signatures
	}

	for i, signer := range signers {
		for _, key := range keys {
			if key.PublicKey() == signer {
				tx.Signatures[i] = key.Sign(message)
				break
			}
		}
	}
}
