// Copyright (c) 2024 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sm2

import (
	"crypto/rand"
	"io"
	"math/big"
)

// RandomUint draws 32 bytes from a cryptographically secure OS entropy
// source, interprets them as a big-endian integer, and retries until the
// result lies in [1, n-2]. Outputs are uniform over {1, ..., n-2}.
//
// Failure to obtain entropy is fatal: it indicates the process's CSPRNG is
// unavailable, a condition no caller can meaningfully recover from.
func (c *EccCtx) RandomUint() *big.Int {
	return c.randomUint(rand.Reader)
}

// randomUint is RandomUint parameterized over the entropy source so tests
// can exercise the rejection-sampling loop deterministically.
func (c *EccCtx) randomUint(entropy io.Reader) *big.Int {
	var buf [32]byte
	nMinus1 := new(big.Int).Sub(c.n, big.NewInt(1))
	for {
		if _, err := io.ReadFull(entropy, buf[:]); err != nil {
			fatal("sm2: entropy source failed: %v", err)
		}
		r := new(big.Int).SetBytes(buf[:])
		if r.Sign() != 0 && r.Cmp(nMinus1) < 0 {
			return r
		}
	}
}
