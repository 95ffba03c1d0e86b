// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"github.com/mr-tron/base58"

	"github.com/bitmark-inc/noteprogram/fault"
)

// Signature - ed25519 signature over a transaction message
type Signature []byte

// String - base58 form for the fmt package (for %s)
func (signature Signature) String() string {
	return base58.Encode(signature)
}

// GoString - for %#v
func (signature Signature) GoString() string {
	return "<signature:" + signature.String() + ">"
}

// MarshalText - convert signature to text
func (signature Signature) MarshalText() ([]byte, error) {
	return []byte(signature.String()), nil
}

// UnmarshalText - convert text into a signature
func (signature *Signature) UnmarshalText(s []byte) error {
	sig, err := base58.Decode(string(s))
	if nil != err {
		return fault.ErrInvalidSignature
	}
	*signature = sig
	return nil
}
