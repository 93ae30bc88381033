/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package ecgroup

import (
	"fmt"
	"math/big"
)

const (
	uncompressedTag = 0x04
	compressedEven  = 0x02
	compressedOdd   = 0x03
)

// Point is an affine point on a Group. Points are only created by Group.Point, which validates them.
type Point struct {
	X, Y    *big.Int
	byteLen int
}

// Marshal returns the SEC 1 uncompressed encoding 0x04 || X || Y.
func (pt *Point) Marshal() []byte {
	out := make([]byte, 1+2*pt.byteLen)
	out[0] = uncompressedTag

	pt.X.FillBytes(out[1 : 1+pt.byteLen])
	pt.Y.FillBytes(out[1+pt.byteLen:])

	return out
}

// MarshalCompressed returns the SEC 1 compressed encoding (0x02 | y parity) || X.
func (pt *Point) MarshalCompressed() []byte {
	out := make([]byte, 1+pt.byteLen)
	out[0] = byte(compressedEven | pt.Y.Bit(0))

	pt.X.FillBytes(out[1:])

	return out
}

// Equal reports whether both points have the same coordinates.
func (pt *Point) Equal(other *Point) bool {
	if pt == nil || other == nil {
		return pt == other
	}

	return pt.X.Cmp(other.X) == 0 && pt.Y.Cmp(other.Y) == 0
}

func (pt *Point) String() string {
	return fmt.Sprintf("(%x, %x)", pt.X, pt.Y)
}

// Unmarshal decodes a SEC 1 encoded point, compressed or uncompressed, and validates it against g.
func (g *Group) Unmarshal(data []byte) (*Point, error) {
	byteLen := (g.params.BitSize + 7) / 8 //nolint:gomnd

	switch {
	case len(data) == 1+2*byteLen && data[0] == uncompressedTag:
		x := new(big.Int).SetBytes(data[1 : 1+byteLen])
		y := new(big.Int).SetBytes(data[1+byteLen:])

		return g.Point(x, y)
	case len(data) == 1+byteLen && (data[0] == compressedEven || data[0] == compressedOdd):
		x := new(big.Int).SetBytes(data[1:])
		if !inField(x, g.params.P) {
			return nil, fmt.Errorf("ecgroup: compressed x coordinate out of range: %w", ErrNotOnCurve)
		}

		y := new(big.Int).ModSqrt(g.Polynomial(x), g.params.P)
		if y == nil {
			return nil, fmt.Errorf("ecgroup: no point with this x coordinate: %w", ErrNotOnCurve)
		}

		if y.Bit(0) != uint(data[0]&1) {
			y.Sub(g.params.P, y)
		}

		return g.Point(x, y)
	default:
		return nil, fmt.Errorf("ecgroup: invalid point encoding of length %d for curve %q", len(data), g.params.Name)
	}
}
