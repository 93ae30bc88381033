/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package h2c maps byte strings to points on short Weierstrass curves y^2 = x^3 + a*x + b with
// a != 0 and b != 0, using the simplified Shallue-van de Woestijne map of Brier et al.
//
// A call derives two field elements t and u from the message and domain separation tag with
// HKDF (extract with the tag as salt, expand with the info labels "H2C" || 0x00 || 0x00 and
// "H2C" || 0x01 || 0x00), builds three candidate x-coordinates, checks their algebraic consistency,
// and picks the first candidate whose curve value is a square without branching on which one it is.
//
// Timing caveat: the square root oracle is constant-time only for p ≡ 3 (mod 4). For other primes
// the default oracle's running time depends on whether each candidate is a quadratic residue, which
// can reveal the selected candidate for secret messages. Supply a constant-time oracle with
// WithSqrtOracle if that matters.
//
// Callers must use distinct domain separation tags for distinct protocols.
package h2c

import (
	"hash"
	"math/big"

	"github.com/cronokirby/safenum"
	"github.com/hyperledger/aries-framework-go/component/log"
	"github.com/pkg/errors"

	"github.com/hyperledger/aries-h2c-go/internal/logutil"
	"github.com/hyperledger/aries-h2c-go/pkg/crypto/hashes"
	"github.com/hyperledger/aries-h2c-go/pkg/crypto/primitive/ecgroup"
	"github.com/hyperledger/aries-h2c-go/pkg/crypto/primitive/modarith"
)

var logger = log.New("aries-h2c/h2c")

// Group is the curve the mapping targets.
type Group interface {
	Params() *ecgroup.Params
	Point(x, y *big.Int) (*ecgroup.Point, error)
	ModOrder(v *big.Int) *big.Int
}

// SqrtOracle returns a square root of x modulo p together with ok = 1, or any value with ok = 0 when
// x is not a quadratic residue. Roots should be canonical (the smaller of r and p - r) so that
// independent implementations agree on the output point.
type SqrtOracle interface {
	Sqrt(x *safenum.Nat) (*safenum.Nat, safenum.Choice)
}

// Mapper hashes messages to points of one curve. It holds only values derived from the curve
// parameters and options, and is safe for concurrent use.
type Mapper struct {
	group     Group
	name      string
	field     *modarith.Field
	sqrt      SqrtOracle
	hashID    string
	newHash   func() hash.Hash
	hashSize  int
	outLen    int
	reduction Reduction
	a, b      *safenum.Nat
	negBOverA *safenum.Nat
}

// New creates a Mapper for group. Curves whose a or b is zero modulo p are rejected with
// ErrUnsupportedCurve before the hash function is resolved.
func New(group Group, opts ...Opt) (*Mapper, error) {
	if group == nil {
		return nil, errors.New("h2c: group is nil")
	}

	params := group.Params()
	if params == nil || params.P == nil || params.A == nil || params.B == nil {
		return nil, errors.New("h2c: curve parameters are incomplete")
	}

	field, err := modarith.NewField(params.P)
	if err != nil {
		return nil, errors.Wrapf(err, "h2c: curve %q", params.Name)
	}

	a := field.FromBig(params.A)
	b := field.FromBig(params.B)

	if field.IsZero(a)|field.IsZero(b) == 1 {
		return nil, errors.WithMessagef(ErrUnsupportedCurve, "h2c: curve %q has a zero coefficient", params.Name)
	}

	o := defaultOpts()
	for _, opt := range opts {
		opt(o)
	}

	if o.margin < 0 {
		return nil, errors.Errorf("h2c: negative security margin %d", o.margin)
	}

	if o.reduction != ReduceModField && o.reduction != ReduceModOrder {
		return nil, errors.Errorf("h2c: unsupported reduction %s", o.reduction)
	}

	newHash, err := hashes.Get(o.hashID)
	if err != nil {
		return nil, errors.Wrap(err, "h2c")
	}

	sqrt := o.sqrt
	if sqrt == nil {
		sqrt = modarith.NewSqrt(field)
	}

	m := &Mapper{
		group:     group,
		name:      params.Name,
		field:     field,
		sqrt:      sqrt,
		hashID:    o.hashID,
		newHash:   newHash,
		hashSize:  newHash().Size(),
		outLen:    (field.BitLen() + o.margin + 7) / 8, //nolint:gomnd
		reduction: o.reduction,
		a:         a,
		b:         b,
		negBOverA: field.Mul(field.Neg(b), field.Inverse(a)),
	}

	logutil.LogDebug(logger, "new", "mapper created", logutil.KV("curve", m.name), logutil.KV("hash", m.hashID),
		logutil.KV("outLen", m.outLen))

	return m, nil
}

// HashToCurveSWU is a one-shot helper equivalent to New(group, WithHash(hashID), opts...) followed by HashToCurve.
func HashToCurveSWU(group Group, hashID string, msg, dst []byte, opts ...Opt) (*ecgroup.Point, error) {
	m, err := New(group, append([]Opt{WithHash(hashID)}, opts...)...)
	if err != nil {
		return nil, err
	}

	return m.HashToCurve(msg, dst)
}

// HashToCurve deterministically maps msg under the domain separation tag dst to a curve point.
func (m *Mapper) HashToCurve(msg, dst []byte) (*ecgroup.Point, error) {
	t, err := m.deriveFieldElement(msg, dst, counterT)
	if err != nil {
		return nil, err
	}

	u, err := m.deriveFieldElement(msg, dst, counterU)
	if err != nil {
		return nil, err
	}

	return m.mapToCurve(t, u)
}

// MapToCurve maps the field elements t and u, taken modulo p, to a curve point.
// Inputs with t = 0 or t^2*g(u) = -1 return ErrInternalArithmeticFault.
func (m *Mapper) MapToCurve(t, u *big.Int) (*ecgroup.Point, error) {
	return m.mapToCurve(m.field.FromBig(t), m.field.FromBig(u))
}

// HashToField returns the field element derived from msg and dst for the given counter.
// HashToCurve uses counter 0 for t and counter 1 for u.
func (m *Mapper) HashToField(msg, dst []byte, counter byte) (*big.Int, error) {
	v, err := m.deriveFieldElement(msg, dst, counter)
	if err != nil {
		return nil, err
	}

	return m.field.Big(v), nil
}

// OutputLen is the number of HKDF output bytes consumed per field element.
func (m *Mapper) OutputLen() int {
	return m.outLen
}

// HashID returns the hash function identifier.
func (m *Mapper) HashID() string {
	return m.hashID
}

func (m *Mapper) mapToCurve(t, u *safenum.Nat) (*ecgroup.Point, error) {
	c := m.generateCandidates(t, u)

	if err := m.checkCandidates(t, &c); err != nil {
		logutil.LogError(logger, "mapToCurve", err.Error(), logutil.KV("curve", m.name))

		return nil, err
	}

	m.computeRoots(&c)

	x, y, err := m.selectCandidate(&c)
	if err != nil {
		logutil.LogError(logger, "mapToCurve", err.Error(), logutil.KV("curve", m.name))

		return nil, err
	}

	pt, err := m.group.Point(m.field.Big(x), m.field.Big(y))
	if err != nil {
		return nil, errors.WithMessagef(ErrInternalArithmeticFault, "h2c: curve %q rejected the selected point: %v",
			m.name, err)
	}

	return pt, nil
}
