/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package hashes

import (
	"hash"
	"sync/atomic"
)

// CountingHash mocks a hash constructor and records how many hash instances were created.
type CountingHash struct {
	New   func() hash.Hash
	count int64
}

// Func returns a constructor that delegates to New and counts each invocation.
func (c *CountingHash) Func() func() hash.Hash {
	return func() hash.Hash {
		atomic.AddInt64(&c.count, 1)

		return c.New()
	}
}

// Count returns the number of hash instances created so far.
func (c *CountingHash) Count() int {
	return int(atomic.LoadInt64(&c.count))
}

// Reset sets the counter back to zero.
func (c *CountingHash) Reset() {
	atomic.StoreInt64(&c.count, 0)
}
