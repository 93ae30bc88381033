/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package h2c

import (
	"fmt"

	"github.com/hyperledger/aries-h2c-go/pkg/crypto/hashes"
)

// DefaultMargin is the statistical security margin, in bits, added to the bit length of p when
// sizing the HKDF output.
const DefaultMargin = 128

// Reduction selects how the HKDF output integer is reduced to a field element.
type Reduction int

const (
	// ReduceModField reduces the HKDF output modulo the field prime p.
	ReduceModField Reduction = iota
	// ReduceModOrder reduces the HKDF output modulo the group order and then modulo p.
	// The order reduction uses math/big and is variable-time.
	ReduceModOrder
)

func (r Reduction) String() string {
	switch r {
	case ReduceModField:
		return "field"
	case ReduceModOrder:
		return "order"
	default:
		return fmt.Sprintf("Reduction(%d)", int(r))
	}
}

// ParseReduction parses "field" or "order".
func ParseReduction(s string) (Reduction, error) {
	switch s {
	case "field", "":
		return ReduceModField, nil
	case "order":
		return ReduceModOrder, nil
	default:
		return 0, fmt.Errorf("h2c: unknown reduction %q", s)
	}
}

type mapperOpts struct {
	hashID    string
	margin    int
	sqrt      SqrtOracle
	reduction Reduction
}

func defaultOpts() *mapperOpts {
	return &mapperOpts{
		hashID:    hashes.SHA256,
		margin:    DefaultMargin,
		reduction: ReduceModField,
	}
}

// Opt configures a Mapper.
type Opt func(opts *mapperOpts)

// WithHash sets the hash function identifier used for HKDF, see package hashes. Default is "SHA-256".
func WithHash(hashID string) Opt {
	return func(opts *mapperOpts) {
		opts.hashID = hashID
	}
}

// WithMargin sets the security margin k in bits. Default is DefaultMargin.
func WithMargin(k int) Opt {
	return func(opts *mapperOpts) {
		opts.margin = k
	}
}

// WithSqrtOracle replaces the square root oracle. The default is modarith.NewSqrt for the curve's field.
func WithSqrtOracle(oracle SqrtOracle) Opt {
	return func(opts *mapperOpts) {
		opts.sqrt = oracle
	}
}

// WithReduction sets the reduction applied to the HKDF output. Default is ReduceModField.
func WithReduction(r Reduction) Opt {
	return func(opts *mapperOpts) {
		opts.reduction = r
	}
}
