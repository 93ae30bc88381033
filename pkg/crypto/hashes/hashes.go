/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package hashes resolves hash function identifiers to hash constructors usable with HMAC and HKDF.
//
// SHA-1 and SHA-2 identifiers are accepted both in the dashed form ("SHA-256") and in Tink's form
// ("SHA256"). SHA-3 and BLAKE2b identifiers are built in, and further identifiers can be added with Register.
package hashes

import (
	"hash"
	"strings"
	"sync"

	"github.com/google/tink/go/subtle"
	"github.com/pkg/errors"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
	"golang.org/x/exp/slices"
)

// Built-in identifiers.
const (
	SHA256     = "SHA-256"
	SHA384     = "SHA-384"
	SHA512     = "SHA-512"
	SHA3x256   = "SHA3-256"
	SHA3x384   = "SHA3-384"
	SHA3x512   = "SHA3-512"
	BLAKE2b256 = "BLAKE2b-256"
	BLAKE2b512 = "BLAKE2b-512"
)

// ErrUnknownHash is returned for identifiers that are neither registered nor known to Tink.
var ErrUnknownHash = errors.New("unknown hash function")

// tinkNames are the identifiers subtle.GetHashFunc understands.
var tinkNames = []string{"SHA1", "SHA224", "SHA256", "SHA384", "SHA512"}

var (
	mu       sync.RWMutex
	registry = map[string]func() hash.Hash{
		SHA3x256:   sha3.New256,
		SHA3x384:   sha3.New384,
		SHA3x512:   sha3.New512,
		BLAKE2b256: blake2bFunc(blake2b.New256),
		BLAKE2b512: blake2bFunc(blake2b.New512),
	}
)

// Get returns the constructor for the named hash function.
func Get(name string) (func() hash.Hash, error) {
	mu.RLock()
	h, ok := registry[name]
	mu.RUnlock()

	if ok {
		return h, nil
	}

	if h = subtle.GetHashFunc(tinkName(name)); h != nil {
		return h, nil
	}

	return nil, errors.Wrapf(ErrUnknownHash, "hashes: %q", name)
}

// Register adds or replaces a named hash constructor.
func Register(name string, h func() hash.Hash) error {
	if name == "" {
		return errors.New("hashes: empty hash name")
	}

	if h == nil {
		return errors.Errorf("hashes: nil constructor for %q", name)
	}

	mu.Lock()
	defer mu.Unlock()

	registry[name] = h

	return nil
}

// Unregister removes a hash previously added with Register.
func Unregister(name string) {
	mu.Lock()
	defer mu.Unlock()

	delete(registry, name)
}

// Names lists the dashed SHA identifiers and every registered identifier, sorted.
func Names() []string {
	mu.RLock()
	names := make([]string, 0, len(registry)+len(tinkNames))

	for name := range registry {
		names = append(names, name)
	}
	mu.RUnlock()

	for _, name := range tinkNames {
		names = append(names, dashed(name))
	}

	slices.Sort(names)

	return slices.Compact(names)
}

// tinkName maps "SHA-256" and "sha256" to Tink's "SHA256".
func tinkName(name string) string {
	return strings.ReplaceAll(strings.ToUpper(name), "-", "")
}

func dashed(name string) string {
	return name[:3] + "-" + name[3:]
}

func blake2bFunc(newFn func(key []byte) (hash.Hash, error)) func() hash.Hash {
	return func() hash.Hash {
		// An unkeyed BLAKE2b instance cannot fail.
		h, _ := newFn(nil) //nolint:errcheck

		return h
	}
}
