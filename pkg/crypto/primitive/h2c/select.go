/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package h2c

import (
	"github.com/cronokirby/safenum"
	"github.com/pkg/errors"
)

// selectCandidate returns the lowest indexed candidate whose root squares to its curve value.
// Each root is verified independently of the oracle's flag, and the selection uses masked
// assignments only, starting from candidate 3 and overwriting with candidates 2 and 1.
func (m *Mapper) selectCandidate(c *[3]candidate) (*safenum.Nat, *safenum.Nat, error) {
	f := m.field

	var valid [3]safenum.Choice
	for i := range c {
		valid[i] = c[i].ok & f.Equal(f.Square(c[i].root), c[i].gx)
	}

	x := c[2].x.Clone()
	y := c[2].root.Clone()

	for i := 1; i >= 0; i-- {
		x.CondAssign(valid[i], c[i].x)
		y.CondAssign(valid[i], c[i].root)
	}

	if valid[0]|valid[1]|valid[2] != 1 {
		return nil, nil, errors.WithMessage(ErrInternalArithmeticFault, "h2c: no candidate has a square root")
	}

	return x, y, nil
}
