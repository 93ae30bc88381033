/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package main

import (
	"os"
	"testing"
)

// Without arguments main prints the help text and returns.
func TestWithoutUserArgs(t *testing.T) { //nolint: unparam
	setUpArgs()
	main()
}

// Strips out the extra args that the unit test framework adds.
func setUpArgs() {
	os.Args = os.Args[:1]
}
