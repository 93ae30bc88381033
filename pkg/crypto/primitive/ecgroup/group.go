/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package ecgroup stores short Weierstrass curve parameters y^2 = x^3 + a*x + b over GF(p) and
// constructs validated affine points on them. Point arithmetic is out of scope.
package ecgroup

import (
	"fmt"
	"math/big"

	"github.com/pkg/errors"
)

const primalityRounds = 20

// ErrNotOnCurve is returned when coordinates do not satisfy the curve equation.
var ErrNotOnCurve = errors.New("point is not on the curve")

// Params holds the domain parameters of a short Weierstrass curve.
type Params struct {
	Name    string
	P       *big.Int // field prime
	A, B    *big.Int // curve coefficients
	N       *big.Int // group order
	BitSize int      // bit length of P
}

// Group is a curve with validated parameters. It is immutable and safe for concurrent use.
type Group struct {
	params *Params
}

// NewGroup validates params and returns the corresponding group.
// BitSize is derived from P when left unset.
func NewGroup(params *Params) (*Group, error) {
	if params == nil {
		return nil, errors.New("ecgroup: params are nil")
	}

	if params.P == nil || params.A == nil || params.B == nil || params.N == nil {
		return nil, errors.Errorf("ecgroup: curve %q has missing parameters", params.Name)
	}

	p := params.P

	if p.Sign() <= 0 || !p.ProbablyPrime(primalityRounds) {
		return nil, errors.Errorf("ecgroup: curve %q field modulus is not prime", params.Name)
	}

	if !inField(params.A, p) || !inField(params.B, p) {
		return nil, errors.Errorf("ecgroup: curve %q coefficients must be in [0, p)", params.Name)
	}

	if params.N.Sign() <= 0 {
		return nil, errors.Errorf("ecgroup: curve %q group order must be positive", params.Name)
	}

	if discriminant(params).Sign() == 0 {
		return nil, errors.Errorf("ecgroup: curve %q is singular", params.Name)
	}

	bitSize := params.BitSize
	if bitSize == 0 {
		bitSize = p.BitLen()
	}

	if bitSize != p.BitLen() {
		return nil, errors.Errorf("ecgroup: curve %q bit size %d does not match modulus bit length %d",
			params.Name, bitSize, p.BitLen())
	}

	cp := params.clone()
	cp.BitSize = bitSize

	return &Group{params: cp}, nil
}

// Params returns a copy of the group parameters.
func (g *Group) Params() *Params {
	return g.params.clone()
}

func (p *Params) clone() *Params {
	return &Params{
		Name:    p.Name,
		P:       new(big.Int).Set(p.P),
		A:       new(big.Int).Set(p.A),
		B:       new(big.Int).Set(p.B),
		N:       new(big.Int).Set(p.N),
		BitSize: p.BitSize,
	}
}

// Name returns the curve name.
func (g *Group) Name() string {
	return g.params.Name
}

// SupportsSWU reports whether both curve coefficients are non-zero, which the simplified SWU map requires.
func (g *Group) SupportsSWU() bool {
	return g.params.A.Sign() != 0 && g.params.B.Sign() != 0
}

// ModOrder returns v reduced modulo the group order.
func (g *Group) ModOrder(v *big.Int) *big.Int {
	return new(big.Int).Mod(v, g.params.N)
}

// IsOnCurve reports whether (x, y) is a coordinate pair in [0, p) satisfying the curve equation.
func (g *Group) IsOnCurve(x, y *big.Int) bool {
	if x == nil || y == nil {
		return false
	}

	p := g.params.P

	if !inField(x, p) || !inField(y, p) {
		return false
	}

	lhs := new(big.Int).Mul(y, y)
	lhs.Mod(lhs, p)

	return lhs.Cmp(g.Polynomial(x)) == 0
}

// Polynomial evaluates x^3 + a*x + b mod p.
func (g *Group) Polynomial(x *big.Int) *big.Int {
	p := g.params.P

	rhs := new(big.Int).Mul(x, x)
	rhs.Mul(rhs, x)

	ax := new(big.Int).Mul(g.params.A, x)
	rhs.Add(rhs, ax)
	rhs.Add(rhs, g.params.B)

	return rhs.Mod(rhs, p)
}

// Point constructs the affine point (x, y) after checking it lies on the curve.
func (g *Group) Point(x, y *big.Int) (*Point, error) {
	if !g.IsOnCurve(x, y) {
		return nil, errors.WithMessagef(ErrNotOnCurve, "ecgroup: curve %q", g.params.Name)
	}

	return &Point{
		X:       new(big.Int).Set(x),
		Y:       new(big.Int).Set(y),
		byteLen: (g.params.BitSize + 7) / 8, //nolint:gomnd
	}, nil
}

func (g *Group) String() string {
	return fmt.Sprintf("%s(p=%d bits)", g.params.Name, g.params.BitSize)
}

func inField(v, p *big.Int) bool {
	return v.Sign() >= 0 && v.Cmp(p) < 0
}

// discriminant returns 4a^3 + 27b^2 mod p.
func discriminant(params *Params) *big.Int {
	a3 := new(big.Int).Exp(params.A, big.NewInt(3), params.P)
	a3.Lsh(a3, 2)

	b2 := new(big.Int).Exp(params.B, big.NewInt(2), params.P)
	b2.Mul(b2, big.NewInt(27))

	d := a3.Add(a3, b2)

	return d.Mod(d, params.P)
}
