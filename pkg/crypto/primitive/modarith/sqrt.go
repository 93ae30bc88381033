/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package modarith

import (
	"math/big"

	"github.com/cronokirby/safenum"
)

// Sqrt computes canonical square roots in a Field.
//
// When p ≡ 3 (mod 4) the root is x^((p+1)/4) and residuosity is decided by squaring the candidate,
// so the running time does not depend on x. For any other prime the computation falls back to
// math/big's Tonelli-Shanks, whose running time depends on whether x is a quadratic residue.
// Callers feeding secret-derived values through the variable-time path leak residuosity through timing.
type Sqrt struct {
	f   *Field
	exp *safenum.Nat
}

// NewSqrt returns the square root oracle for f.
func NewSqrt(f *Field) *Sqrt {
	s := &Sqrt{f: f}

	if f.p.Bit(1) == 1 {
		e := new(big.Int).Add(f.p, big.NewInt(1))
		e.Rsh(e, 2) //nolint:gomnd

		s.exp = new(safenum.Nat).SetBig(e, f.bits)
	}

	return s
}

// ConstantTime reports whether Sqrt runs in time independent of its input.
func (s *Sqrt) ConstantTime() bool {
	return s.exp != nil
}

// Sqrt returns the smaller square root of x and 1, or 0 and 0 when x is not a quadratic residue.
// The root of 0 is 0 and is reported as valid.
func (s *Sqrt) Sqrt(x *safenum.Nat) (*safenum.Nat, safenum.Choice) {
	if s.exp != nil {
		return s.sqrt3Mod4(x)
	}

	return s.sqrtVarTime(x)
}

func (s *Sqrt) sqrt3Mod4(x *safenum.Nat) (*safenum.Nat, safenum.Choice) {
	r := s.f.Exp(x, s.exp)
	ok := s.f.Equal(s.f.Square(r), x)
	r = s.f.Select(ok, r, s.f.Zero())

	return s.f.Canonical(r), ok
}

func (s *Sqrt) sqrtVarTime(x *safenum.Nat) (*safenum.Nat, safenum.Choice) {
	r := new(big.Int).ModSqrt(x.Big(), s.f.p)
	if r == nil {
		return s.f.Zero(), 0
	}

	return s.f.Canonical(s.f.FromBig(r)), 1
}
