/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package h2c

import (
	"io"
	"math/big"

	"github.com/cronokirby/safenum"
	"github.com/pkg/errors"
	"golang.org/x/crypto/hkdf"
)

const (
	counterT byte = 0
	counterU byte = 1
)

// deriveFieldElement computes HKDF-Expand(HKDF-Extract(salt=dst, ikm=msg), "H2C" || ctr || 0x00, L)
// and reduces the big-endian output.
func (m *Mapper) deriveFieldElement(msg, dst []byte, ctr byte) (*safenum.Nat, error) {
	prk := hkdf.Extract(m.newHash, msg, dst)
	if len(prk) != m.hashSize {
		return nil, errors.WithMessagef(ErrKDFLengthMismatch, "h2c: extract returned %d bytes, want %d",
			len(prk), m.hashSize)
	}

	info := []byte{'H', '2', 'C', ctr, 0x00}
	okm := make([]byte, m.outLen)

	n, err := io.ReadFull(hkdf.Expand(m.newHash, prk, info), okm)
	if err != nil {
		return nil, errors.WithMessagef(ErrKDFLengthMismatch, "h2c: expand returned %d of %d bytes: %v",
			n, m.outLen, err)
	}

	if m.reduction == ReduceModOrder {
		v := m.group.ModOrder(new(big.Int).SetBytes(okm))

		return m.field.FromBig(v), nil
	}

	return m.field.FromBytes(okm), nil
}
