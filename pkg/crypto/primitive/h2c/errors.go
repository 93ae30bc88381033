/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package h2c

import "github.com/pkg/errors"

var (
	// ErrUnsupportedCurve is returned for curves with a = 0 or b = 0. It is raised before any hashing.
	ErrUnsupportedCurve = errors.New("curve not supported by simplified SWU")

	// ErrKDFLengthMismatch means HKDF produced fewer bytes than requested. This is an integration
	// fault, typically a security margin too large for the hash output.
	ErrKDFLengthMismatch = errors.New("kdf output length mismatch")

	// ErrInternalArithmeticFault means the candidate consistency check failed or no candidate had a
	// square root. No point is returned in either case.
	ErrInternalArithmeticFault = errors.New("internal arithmetic fault")
)
