/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package h2c

import (
	"github.com/cronokirby/safenum"
	"github.com/pkg/errors"
)

type candidate struct {
	x, gx *safenum.Nat
	root  *safenum.Nat
	ok    safenum.Choice
}

// polynomial returns x^3 + a*x + b.
func (m *Mapper) polynomial(x *safenum.Nat) *safenum.Nat {
	f := m.field

	return f.Add(f.Add(f.Cube(x), f.Mul(m.a, x)), m.b)
}

// generateCandidates computes
//
//	x1 = u
//	x2 = (-b/a) * (1 + inv0(t^4*g(u)^2 + t^2*g(u)))
//	x3 = t^2 * g(u) * x2
//
// where inv0(0) = 0. At least one of g(x1), g(x2), g(x3) is a square.
func (m *Mapper) generateCandidates(t, u *safenum.Nat) [3]candidate {
	f := m.field

	gx1 := m.polynomial(u)
	t2 := f.Square(t)
	t2g1 := f.Mul(t2, gx1)
	d := f.Add(f.Square(t2g1), t2g1)
	x2 := f.Mul(m.negBOverA, f.Add(f.One(), f.Inverse(d)))
	x3 := f.Mul(t2g1, x2)

	return [3]candidate{
		{x: u, gx: gx1},
		{x: x2, gx: m.polynomial(x2)},
		{x: x3, gx: m.polynomial(x3)},
	}
}

// checkCandidates verifies (t^3 * g1^2 * g2)^2 = g1 * g2 * g3. The identity holds for every input
// except t = 0 and t^2*g(u) = -1, where x2 collapses to -b/a.
func (m *Mapper) checkCandidates(t *safenum.Nat, c *[3]candidate) error {
	f := m.field

	lhs := f.Square(f.Mul(f.Mul(f.Cube(t), f.Square(c[0].gx)), c[1].gx))
	rhs := f.Mul(f.Mul(c[0].gx, c[1].gx), c[2].gx)

	if f.Equal(lhs, rhs) != 1 {
		return errors.WithMessage(ErrInternalArithmeticFault, "h2c: candidate consistency check failed")
	}

	return nil
}

// computeRoots queries the oracle for all three candidates, regardless of earlier results.
func (m *Mapper) computeRoots(c *[3]candidate) {
	for i := range c {
		c[i].root, c[i].ok = m.sqrt.Sqrt(c[i].gx)
		if c[i].root == nil {
			c[i].root, c[i].ok = m.field.Zero(), 0
		}
	}
}
