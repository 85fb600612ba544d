// Copyright (c) 2024 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sm2

import (
	"math/big"
	"sync"
)

// GMul computes k*G using two precomputed 256-entry tables, interleaving
// two 8-bit windows of k that are 16 bits apart so that all 256 bits are
// consumed in 16 doublings.
//
// TABLE_1[w] = sum_j bit_j(w) * 2^(32j) * G
// TABLE_2[w] = sum_j bit_j(w) * 2^(32j+16) * G
//
// for j in 0..8, where bit_j(w) is bit j of the 8-bit window w (bit 0 is
// the low bit). The tables are built lazily on first use and are
// thereafter immutable and safe for concurrent readers.
//
// Open question carried from spec.md: Add does not detect equal operands,
// so a caller feeding it P == Q would silently get the wrong answer
// instead of 2P. This driver composes Add(Add(Q, TABLE_1[k1]), TABLE_2[k2])
// every iteration; TABLE_1 and TABLE_2 encode disjoint bit positions of
// k*G (bits {0,32,...,224} versus {16,48,...,240}), so the partial sum Q
// accumulated so far can never equal either table entry being added in the
// same iteration. This is verified empirically in basemult_test.go rather
// than proven structurally, matching the reference implementation's own
// treatment of the invariant.
func (c *EccCtx) GMul(k *big.Int) Point {
	w := c.toWords(k)
	q := c.Identity()
	for i := 15; i >= 0; i-- {
		q = c.Double(q)
		k1 := composeWindow(w, i)
		k2 := composeWindow(w, i+16)
		q = c.Add(c.Add(q, table1()[k1]), table2()[k2])
	}
	return q
}

// composeWindow builds the 8-bit window value at bit position i of w: bit
// j of the result (j = 0..7) is bit i of word w[7-j], so the high bit of
// the window comes from w[0] and the low bit from w[7].
func composeWindow(w words, i int) uint8 {
	var v uint8
	for j := 0; j < 8; j++ {
		bit := (w[7-j] >> uint(i)) & 1
		v |= uint8(bit) << uint(j)
	}
	return v
}

// selVec1 returns the eight-limb selector vector for window w used to
// build TABLE_1: limb (7-j) has bit j of w placed at bit position 0, all
// other bits zero.
func selVec1(w uint16) words {
	var v words
	for j := 0; j < 8; j++ {
		v[7-j] = uint32(w>>uint(j)) & 1
	}
	return v
}

// selVec2 is selVec1 shifted left by 16 bits within each limb, used to
// build TABLE_2.
func selVec2(w uint16) words {
	var v words
	for j := 0; j < 8; j++ {
		v[7-j] = (uint32(w>>uint(j)) & 1) << 16
	}
	return v
}

const baseTableSize = 256

var (
	table1Once sync.Once
	table1Val  [baseTableSize]Point

	table2Once sync.Once
	table2Val  [baseTableSize]Point
)

// table1 returns TABLE_1, building it on first access. The build uses a
// private EccCtx so it never races with a caller's own curve context.
func table1() *[baseTableSize]Point {
	table1Once.Do(func() {
		ctx := NewEccCtx()
		g := ctx.Generator()
		for w := 0; w < baseTableSize; w++ {
			table1Val[w] = ctx.mulRaw(selVec1(uint16(w)), g)
		}
	})
	return &table1Val
}

// table2 returns TABLE_2, building it on first access.
func table2() *[baseTableSize]Point {
	table2Once.Do(func() {
		ctx := NewEccCtx()
		g := ctx.Generator()
		for w := 0; w < baseTableSize; w++ {
			table2Val[w] = ctx.mulRaw(selVec2(uint16(w)), g)
		}
	})
	return &table2Val
}
