/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package aries enables Go developers to hash arbitrary byte strings to points of short Weierstrass
// curves, following the simplified Shallue-van de Woestijne map of Brier et al.
//
// Packages for end developer usage
//
// pkg/crypto/primitive/h2c: The hash-to-curve mapper. It derives field elements with HKDF, builds the
// three SWU candidates, and selects the first valid one in constant time.
// Reference: https://pkg.go.dev/github.com/hyperledger/aries-h2c-go/pkg/crypto/primitive/h2c
//
// pkg/crypto/primitive/ecgroup: Curve parameters, the NIST P-256, P-384 and P-521 presets, and point encoding.
// Reference: https://pkg.go.dev/github.com/hyperledger/aries-h2c-go/pkg/crypto/primitive/ecgroup
//
// pkg/crypto/hashes: Registry of hash functions addressable by identifier.
// Reference: https://pkg.go.dev/github.com/hyperledger/aries-h2c-go/pkg/crypto/hashes
//
// Basic workflow
//
//	1) Pick a group, for example ecgroup.P256().
//	2) Create a mapper with h2c.New, passing options such as h2c.WithHash.
//	3) Call HashToCurve with the message and a protocol specific domain separation tag.
//	4) Reuse the mapper; it is safe for concurrent use.
package aries
