/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package modarith provides fixed-width arithmetic modulo an odd prime.
//
// Elements are *safenum.Nat values already reduced modulo p and announced with the bit length of p,
// so every operation touches the same number of limbs regardless of the element's value. Apart from
// the square root oracle for primes p ≡ 1 (mod 4), see Sqrt, all operations are constant-time in
// their operands.
package modarith

import (
	"math/big"

	"github.com/cronokirby/safenum"
	"github.com/pkg/errors"
)

const primalityRounds = 20

// Field is the prime field GF(p). It is immutable and safe for concurrent use.
type Field struct {
	p       *big.Int
	mod     *safenum.Modulus
	bits    int
	size    int
	pMinus2 *safenum.Nat
}

// NewField creates the field of integers modulo the odd prime p.
func NewField(p *big.Int) (*Field, error) {
	if p == nil {
		return nil, errors.New("modarith: modulus is nil")
	}

	if p.Cmp(big.NewInt(3)) <= 0 || p.Bit(0) == 0 {
		return nil, errors.Errorf("modarith: modulus %s is not an odd prime greater than 3", p)
	}

	if !p.ProbablyPrime(primalityRounds) {
		return nil, errors.Errorf("modarith: modulus %s is not prime", p)
	}

	bits := p.BitLen()
	pMinus2 := new(big.Int).Sub(p, big.NewInt(2))

	return &Field{
		p:       new(big.Int).Set(p),
		mod:     safenum.ModulusFromNat(new(safenum.Nat).SetBig(p, bits)),
		bits:    bits,
		size:    (bits + 7) / 8, //nolint:gomnd
		pMinus2: new(safenum.Nat).SetBig(pMinus2, bits),
	}, nil
}

// P returns a copy of the field prime.
func (f *Field) P() *big.Int {
	return new(big.Int).Set(f.p)
}

// Modulus returns the safenum modulus of the field.
func (f *Field) Modulus() *safenum.Modulus {
	return f.mod
}

// BitLen is the bit length of p.
func (f *Field) BitLen() int {
	return f.bits
}

// ByteLen is the length of the big-endian encoding of an element.
func (f *Field) ByteLen() int {
	return f.size
}

// Zero returns the additive identity.
func (f *Field) Zero() *safenum.Nat {
	return f.FromUint64(0)
}

// One returns the multiplicative identity.
func (f *Field) One() *safenum.Nat {
	return f.FromUint64(1)
}

// FromUint64 returns x mod p.
func (f *Field) FromUint64(x uint64) *safenum.Nat {
	return new(safenum.Nat).Mod(new(safenum.Nat).SetUint64(x), f.mod)
}

// FromBig returns x mod p. Negative values are mapped to their non-negative representative.
func (f *Field) FromBig(x *big.Int) *safenum.Nat {
	v := new(big.Int).Mod(x, f.p)

	return new(safenum.Nat).SetBig(v, f.bits)
}

// FromBytes interprets buf as a big-endian unsigned integer and reduces it mod p.
func (f *Field) FromBytes(buf []byte) *safenum.Nat {
	return new(safenum.Nat).Mod(new(safenum.Nat).SetBytes(buf), f.mod)
}

// Bytes returns the fixed-length big-endian encoding of x.
func (f *Field) Bytes(x *safenum.Nat) []byte {
	return x.FillBytes(make([]byte, f.size))
}

// Big converts x to a big.Int.
func (f *Field) Big(x *safenum.Nat) *big.Int {
	return x.Big()
}

// Add returns x + y mod p.
func (f *Field) Add(x, y *safenum.Nat) *safenum.Nat {
	return new(safenum.Nat).ModAdd(x, y, f.mod)
}

// Sub returns x - y mod p.
func (f *Field) Sub(x, y *safenum.Nat) *safenum.Nat {
	return new(safenum.Nat).ModSub(x, y, f.mod)
}

// Neg returns -x mod p.
func (f *Field) Neg(x *safenum.Nat) *safenum.Nat {
	return new(safenum.Nat).ModNeg(x, f.mod)
}

// Mul returns x * y mod p.
func (f *Field) Mul(x, y *safenum.Nat) *safenum.Nat {
	return new(safenum.Nat).ModMul(x, y, f.mod)
}

// Square returns x^2 mod p.
func (f *Field) Square(x *safenum.Nat) *safenum.Nat {
	return f.Mul(x, x)
}

// Cube returns x^3 mod p.
func (f *Field) Cube(x *safenum.Nat) *safenum.Nat {
	return f.Mul(f.Square(x), x)
}

// Exp returns x^e mod p.
func (f *Field) Exp(x, e *safenum.Nat) *safenum.Nat {
	return new(safenum.Nat).Exp(x, e, f.mod)
}

// Inverse returns x^-1 mod p computed as x^(p-2). The inverse of 0 is 0.
func (f *Field) Inverse(x *safenum.Nat) *safenum.Nat {
	return f.Exp(x, f.pMinus2)
}

// Equal reports whether x == y without branching on the values.
func (f *Field) Equal(x, y *safenum.Nat) safenum.Choice {
	return x.Eq(y)
}

// IsZero reports whether x == 0 without branching on the value.
func (f *Field) IsZero(x *safenum.Nat) safenum.Choice {
	return x.EqZero()
}

// Select returns a fresh copy of x when yes == 1 and of y when yes == 0.
// Both inputs are read in full either way.
func (f *Field) Select(yes safenum.Choice, x, y *safenum.Nat) *safenum.Nat {
	return y.Clone().CondAssign(yes, x)
}

// Canonical returns the smaller of r and p - r, chosen without branching.
func (f *Field) Canonical(r *safenum.Nat) *safenum.Nat {
	neg := f.Neg(r)
	gt, _, _ := r.Cmp(neg)

	return f.Select(gt, neg, r)
}
