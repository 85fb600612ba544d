// Copyright (c) 2024 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sm2

import "math/big"

// words is the eight-limb big-endian representation of a scalar in
// [0, 2^256): words[0] is the most significant 32-bit word, words[7] the
// least significant.
type words [8]uint32

// toWords reduces v modulo n and returns its eight-limb big-endian
// representation.
func (c *EccCtx) toWords(v *big.Int) words {
	r := new(big.Int).Mod(v, c.n)
	if r.Sign() < 0 {
		r.Add(r, c.n)
	}
	var buf [32]byte
	r.FillBytes(buf[:])
	var w words
	for i := 0; i < 8; i++ {
		w[i] = be32(buf[i*4 : i*4+4])
	}
	return w
}

func be32(b []byte) uint32 {
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
}

// Mul computes k*P for an arbitrary point P. k is reduced modulo n before
// the double-and-add loop runs.
func (c *EccCtx) Mul(k *big.Int, p Point) Point {
	return c.mulRaw(c.toWords(k), p)
}

// mulRaw performs left-to-right double-and-add scalar multiplication over
// the 256 bits of k, most significant bit first. It is not constant-time:
// the conditional add branches on each scalar bit, exactly as spec.md
// describes. Callers multiplying by a secret scalar must apply their own
// blinding; none is performed here.
func (c *EccCtx) mulRaw(k words, p Point) Point {
	q := c.Identity()
	for i := 0; i < 256; i++ {
		q = c.Double(q)
		word := k[i/32]
		bit := (word >> uint(31-i%32)) & 1
		if bit == 1 {
			q = c.Add(q, p)
		}
	}
	return q
}
