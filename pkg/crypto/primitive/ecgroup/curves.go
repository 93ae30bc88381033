/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package ecgroup

import (
	"crypto/elliptic"
	"math/big"
	"sync"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

// Curve names understood by ByName.
const (
	P256Name      = "P-256"
	P384Name      = "P-384"
	P521Name      = "P-521"
	Secp256k1Name = "secp256k1"
)

var (
	presetsOnce sync.Once
	presets     map[string]*Group
)

// P256 returns the NIST P-256 group.
func P256() *Group {
	return mustPreset(P256Name)
}

// P384 returns the NIST P-384 group.
func P384() *Group {
	return mustPreset(P384Name)
}

// P521 returns the NIST P-521 group.
func P521() *Group {
	return mustPreset(P521Name)
}

// Secp256k1 returns the secp256k1 group. Its a coefficient is zero, so it cannot be used with
// the simplified SWU map directly.
func Secp256k1() *Group {
	return mustPreset(Secp256k1Name)
}

// ByName returns the preset group with the given name.
func ByName(name string) (*Group, error) {
	presetsOnce.Do(loadPresets)

	g, ok := presets[name]
	if !ok {
		return nil, errors.Errorf("ecgroup: unknown curve %q", name)
	}

	return g, nil
}

// Names lists the preset curve names in sorted order.
func Names() []string {
	presetsOnce.Do(loadPresets)

	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

func mustPreset(name string) *Group {
	g, err := ByName(name)
	if err != nil {
		panic(err)
	}

	return g
}

func loadPresets() {
	presets = make(map[string]*Group)

	for name, c := range map[string]*elliptic.CurveParams{
		P256Name: elliptic.P256().Params(),
		P384Name: elliptic.P384().Params(),
		P521Name: elliptic.P521().Params(),
	} {
		// NIST curves use a = -3.
		a := new(big.Int).Sub(c.P, big.NewInt(3)) //nolint:gomnd
		presets[name] = mustGroup(fromCurveParams(name, c, a))
	}

	k := secp256k1.S256().Params()
	presets[Secp256k1Name] = mustGroup(fromCurveParams(Secp256k1Name, k, new(big.Int)))
}

func fromCurveParams(name string, c *elliptic.CurveParams, a *big.Int) *Params {
	return &Params{
		Name:    name,
		P:       c.P,
		A:       a,
		B:       c.B,
		N:       c.N,
		BitSize: c.BitSize,
	}
}

func mustGroup(params *Params) *Group {
	g, err := NewGroup(params)
	if err != nil {
		panic(err)
	}

	return g
}
