/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package h2c

import (
	"math/big"
	"testing"

	"github.com/cronokirby/safenum"
	"github.com/stretchr/testify/require"

	"github.com/hyperledger/aries-h2c-go/pkg/crypto/primitive/ecgroup"
)

func newToyMapper(t *testing.T) *Mapper {
	t.Helper()

	g, err := ecgroup.NewGroup(&ecgroup.Params{
		Name: "toy3",
		P:    big.NewInt(1048583),
		A:    big.NewInt(3),
		B:    big.NewInt(7),
		N:    big.NewInt(1049073),
	})
	require.NoError(t, err)

	m, err := New(g)
	require.NoError(t, err)

	return m
}

func TestGenerateCandidates(t *testing.T) {
	m := newToyMapper(t)
	f := m.field

	c := m.generateCandidates(f.FromUint64(2), f.FromUint64(2))

	want := [3][2]int64{{2, 21}, {1003005, 120271}, {365780, 333278}}
	for i := range c {
		require.Equal(t, big.NewInt(want[i][0]).String(), f.Big(c[i].x).String(), "x%d", i+1)
		require.Equal(t, big.NewInt(want[i][1]).String(), f.Big(c[i].gx).String(), "g(x%d)", i+1)
	}

	require.NoError(t, m.checkCandidates(f.FromUint64(2), &c))

	t.Run("inv0 maps a zero denominator to zero", func(t *testing.T) {
		// t = 0 makes the denominator vanish; x2 becomes -b/a.
		c := m.generateCandidates(f.Zero(), f.FromUint64(5))
		require.Equal(t, 1, int(f.Equal(c[1].x, m.negBOverA)))
		require.Equal(t, 1, int(f.IsZero(c[2].x)))
	})
}

func TestCheckCandidates(t *testing.T) {
	m := newToyMapper(t)
	f := m.field

	for _, in := range [][2]uint64{{2, 3}, {5, 7}, {11, 13}, {123456, 654321}} {
		tv, u := f.FromUint64(in[0]), f.FromUint64(in[1])

		c := m.generateCandidates(tv, u)
		require.NoError(t, m.checkCandidates(tv, &c))

		t.Run("corrupted curve value", func(t *testing.T) {
			bad := c
			bad[1].gx = f.Add(bad[1].gx, f.One())

			err := m.checkCandidates(tv, &bad)
			require.ErrorIs(t, err, ErrInternalArithmeticFault)
		})

		t.Run("x3 = t^3 * g(u)^2 * x2 is inconsistent", func(t *testing.T) {
			bad := c
			bad[2].x = f.Mul(f.Mul(f.Cube(tv), f.Square(c[0].gx)), c[1].x)
			bad[2].gx = m.polynomial(bad[2].x)

			err := m.checkCandidates(tv, &bad)
			require.EqualError(t, err, "h2c: candidate consistency check failed: internal arithmetic fault")
		})
	}
}

func TestSelectCandidate(t *testing.T) {
	m := newToyMapper(t)
	f := m.field

	// Curve values are the squares 4, 9, 16 so any subset can be marked valid.
	mk := func(ok [3]safenum.Choice) *[3]candidate {
		c := &[3]candidate{}
		for i := range c {
			r := uint64(i + 2)
			c[i] = candidate{
				x:    f.FromUint64(uint64(100 + i)),
				gx:   f.FromUint64(r * r),
				root: f.FromUint64(r),
				ok:   ok[i],
			}
		}

		return c
	}

	tests := []struct {
		name  string
		ok    [3]safenum.Choice
		wantX uint64
		wantY uint64
	}{
		{name: "all valid", ok: [3]safenum.Choice{1, 1, 1}, wantX: 100, wantY: 2},
		{name: "first only", ok: [3]safenum.Choice{1, 0, 0}, wantX: 100, wantY: 2},
		{name: "second and third", ok: [3]safenum.Choice{0, 1, 1}, wantX: 101, wantY: 3},
		{name: "second only", ok: [3]safenum.Choice{0, 1, 0}, wantX: 101, wantY: 3},
		{name: "third only", ok: [3]safenum.Choice{0, 0, 1}, wantX: 102, wantY: 4},
		{name: "first and third", ok: [3]safenum.Choice{1, 0, 1}, wantX: 100, wantY: 2},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			c := mk(tc.ok)

			x, y, err := m.selectCandidate(c)
			require.NoError(t, err)
			require.Equal(t, tc.wantX, f.Big(x).Uint64())
			require.Equal(t, tc.wantY, f.Big(y).Uint64())

			// Inputs are left untouched.
			require.Equal(t, uint64(102), f.Big(c[2].x).Uint64())
			require.Equal(t, uint64(4), f.Big(c[2].root).Uint64())
		})
	}

	t.Run("same work for every outcome", func(t *testing.T) {
		outcomes := [][3]safenum.Choice{{1, 1, 1}, {0, 1, 0}, {0, 0, 1}}

		allocs := make([]float64, 0, len(outcomes))

		for _, ok := range outcomes {
			c := mk(ok)
			allocs = append(allocs, testing.AllocsPerRun(50, func() {
				_, _, _ = m.selectCandidate(c) //nolint:errcheck
			}))
		}

		require.Equal(t, allocs[0], allocs[1], "candidate 1 vs 2")
		require.Equal(t, allocs[0], allocs[2], "candidate 1 vs 3")
	})

	t.Run("none valid", func(t *testing.T) {
		_, _, err := m.selectCandidate(mk([3]safenum.Choice{0, 0, 0}))
		require.EqualError(t, err, "h2c: no candidate has a square root: internal arithmetic fault")
	})

	t.Run("flag without a matching root", func(t *testing.T) {
		c := mk([3]safenum.Choice{1, 1, 1})
		c[0].root = f.FromUint64(7)
		c[1].root = f.FromUint64(7)

		x, _, err := m.selectCandidate(c)
		require.NoError(t, err)
		require.Equal(t, uint64(102), f.Big(x).Uint64())
	})

	t.Run("zero curve value", func(t *testing.T) {
		c := mk([3]safenum.Choice{0, 0, 0})
		c[1].gx, c[1].root, c[1].ok = f.Zero(), f.Zero(), 1

		x, y, err := m.selectCandidate(c)
		require.NoError(t, err)
		require.Equal(t, uint64(101), f.Big(x).Uint64())
		require.Zero(t, f.Big(y).Sign())
	})
}

func TestDeriveFieldElement(t *testing.T) {
	m := newToyMapper(t)

	a, err := m.deriveFieldElement([]byte("msg"), []byte("dst"), counterT)
	require.NoError(t, err)

	b, err := m.deriveFieldElement([]byte("msg"), []byte("dst"), counterU)
	require.NoError(t, err)

	require.NotEqual(t, 1, int(m.field.Equal(a, b)))
	require.Equal(t, -1, m.field.Big(a).Cmp(m.field.P()))
}
