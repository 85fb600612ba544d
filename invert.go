// Copyright (c) 2024 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sm2

// References:
//   [GECC]: Guide to Elliptic Curve Cryptography (Hankerson, Menezes,
//     Vanstone), Algorithm 2.21 ("Binary inversion in Z_n").

import "math/big"

// InvN computes x^-1 mod n using the binary extended Euclidean algorithm.
// It panics if x is zero, which has no inverse; callers must ensure x is
// non-zero before calling.
func (c *EccCtx) InvN(x *big.Int) *big.Int {
	if x.Sign() == 0 {
		fatal("sm2: zero has no inversion mod n")
	}

	u := new(big.Int).Mod(x, c.n)
	if u.Sign() == 0 {
		fatal("sm2: zero has no inversion mod n")
	}
	v := new(big.Int).Set(c.n)
	a := big.NewInt(1)
	cc := big.NewInt(0)

	two := big.NewInt(2)
	tmp := new(big.Int)

	for u.Sign() != 0 {
		for u.Bit(0) == 0 {
			u.Div(u, two)
			if a.Bit(0) == 0 {
				a.Div(a, two)
			} else {
				a.Div(tmp.Add(a, c.n), two)
			}
		}
		for v.Bit(0) == 0 {
			v.Div(v, two)
			if cc.Bit(0) == 0 {
				cc.Div(cc, two)
			} else {
				cc.Div(tmp.Add(cc, c.n), two)
			}
		}
		if u.Cmp(v) >= 0 {
			u.Sub(u, v)
			if a.Cmp(cc) >= 0 {
				a.Sub(a, cc)
			} else {
				a.Sub(tmp.Add(a, c.n), cc)
			}
		} else {
			v.Sub(v, u)
			if cc.Cmp(a) >= 0 {
				cc.Sub(cc, a)
			} else {
				cc.Sub(tmp.Add(cc, c.n), a)
			}
		}
	}
	return cc
}
