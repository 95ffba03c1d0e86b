// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rent - minimum balance that keeps an account alive
package rent

import (
	"math"
	"math/bits"

	"github.com/bitmark-inc/noteprogram/fault"
)

// default rate parameters
const (
	DefaultLamportsPerByteYear = 3480
	DefaultExemptionThreshold  = 2.0

	// bytes charged for every account in addition to its data
	AccountStorageOverhead = 128
)

// the threshold is applied as a fixed point integer with six decimal
// places
const thresholdScale = 1000000

// Rent - rate parameters
type Rent struct {
	LamportsPerByteYear uint64  `json:"lamportsPerByteYear"`
	ExemptionThreshold  float64 `json:"exemptionThreshold"`
}

// Default - the standard rate
func Default() Rent {
	return Rent{
		LamportsPerByteYear: DefaultLamportsPerByteYear,
		ExemptionThreshold:  DefaultExemptionThreshold,
	}
}

// MinimumBalance - lamports needed for an account of dataLength bytes
// to be exempt from rent collection
//
// fails with fault.ErrArithmeticOverflow if the result does not fit
// in a uint64
func (r Rent) MinimumBalance(dataLength uint64) (uint64, error) {
	threshold, err := r.scaledThreshold()
	if nil != err {
		return 0, err
	}

	size, carry := bits.Add64(AccountStorageOverhead, dataLength, 0)
	if 0 != carry {
		return 0, fault.ErrArithmeticOverflow
	}

	hi, perYear := bits.Mul64(size, r.LamportsPerByteYear)
	if 0 != hi {
		return 0, fault.ErrArithmeticOverflow
	}

	hi, lo := bits.Mul64(perYear, threshold)
	if hi >= thresholdScale {
		return 0, fault.ErrArithmeticOverflow
	}
	balance, _ := bits.Div64(hi, lo, thresholdScale)
	return balance, nil
}

// IsExempt - true if the balance covers the minimum for the size
//
// an account whose minimum cannot be computed is never exempt
func (r Rent) IsExempt(lamports uint64, dataLength uint64) bool {
	minimum, err := r.MinimumBalance(dataLength)
	if nil != err {
		return false
	}
	return lamports >= minimum
}

func (r Rent) scaledThreshold() (uint64, error) {
	t := math.Round(r.ExemptionThreshold * thresholdScale)
	if !(t >= 0) || t >= 1<<64 {
		return 0, fault.ErrInvalidExemptionThreshold
	}
	return uint64(t), nil
}
