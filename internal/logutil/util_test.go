/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package logutil

import (
	"testing"

	"github.com/hyperledger/aries-framework-go/component/log"
	"github.com/stretchr/testify/require"
)

func TestKV(t *testing.T) {
	require.Equal(t, "curve=[P-256]", KV("curve", "P-256"))
	require.Equal(t, "len=[48]", KV("len", 48))
}

func TestLog(t *testing.T) {
	logger := log.New("aries-h2c/logutil-test")

	require.NotPanics(t, func() {
		LogError(logger, "map", "boom", KV("curve", "P-256"))
		LogDebug(logger, "map", "done")
	})
}
