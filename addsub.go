// Copyright (c) 2024 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sm2

// References:
//   [GM/T 0003]: Public Key Cryptographic Algorithm SM2 Based on Elliptic
//     Curves, Part 1, Annex A.1.2.3.2 (Jacobian additive projective
//     coordinates).

import "github.com/ModChain/sm2/field"

// Add computes P1 + P2 using the GM/T 0003 A.1.2.3.2 Jacobian addition
// formulas. Either operand may be the point at infinity, in which case the
// other is returned unchanged.
//
// Add does not detect P1 == P2 internally: the fixed-base driver in
// basemult.go and the generic scalar multiplier in scalarmult.go never
// feed it equal non-identity operands (doubling always goes through
// Double), which is the invariant the GM/T 0003 formulas rely on for this
// entry point. See basemult.go's doc comment for why the two-table comb
// specifically can't trip over that invariant.
func (c *EccCtx) Add(p1, p2 Point) Point {
	if p1.IsZero() {
		return p2
	}
	if p2.IsZero() {
		return p1
	}

	fc := c.fctx
	lam1 := fc.Mul(p1.x, fc.Square(p2.z)) // λ1 = x1 * z2^2
	lam2 := fc.Mul(p2.x, fc.Square(p1.z)) // λ2 = x2 * z1^2
	lam3 := fc.Sub(lam1, lam2)            // λ3 = λ1 - λ2
	lam4 := fc.Mul(p1.y, fc.Cubic(p2.z))  // λ4 = y1 * z2^3
	lam5 := fc.Mul(p2.y, fc.Cubic(p1.z))  // λ5 = y2 * z1^3
	lam6 := fc.Sub(lam4, lam5)            // λ6 = λ4 - λ5
	lam7 := fc.Add(lam1, lam2)            // λ7 = λ1 + λ2
	lam8 := fc.Add(lam4, lam5)            // λ8 = λ4 + λ5

	lam3sq := fc.Square(lam3)
	x3 := fc.Sub(fc.Square(lam6), fc.Mul(lam7, lam3sq)) // X3 = λ6^2 - λ7*λ3^2

	two := field.FromUint32(2)
	lam9 := fc.Sub(fc.Mul(lam7, lam3sq), fc.Mul(two, x3)) // λ9 = λ7*λ3^2 - 2*X3
	y3 := fc.Mul(c.inv2, fc.Sub(fc.Mul(lam9, lam6), fc.Mul(lam8, fc.Cubic(lam3))))
	z3 := fc.Mul(p1.z, fc.Mul(p2.z, lam3)) // Z3 = z1*z2*λ3

	return Point{x: x3, y: y3, z: z3}
}

// Double computes 2*P using the GM/T 0003 A.1.2.3.2 Jacobian doubling
// formulas. Doubling the point at infinity, or a point with Y == 0,
// correctly produces the identity (Z3 == 0).
func (c *EccCtx) Double(p Point) Point {
	if p.IsZero() {
		return c.Identity()
	}

	fc := c.fctx
	three := field.FromUint32(3)
	four := field.FromUint32(4)
	eight := field.FromUint32(8)
	two := field.FromUint32(2)

	z4 := fc.Square(fc.Square(p.z))
	lam1 := fc.Add(fc.Mul(three, fc.Square(p.x)), fc.Mul(c.a, z4)) // λ1 = 3*x1^2 + a*z1^4
	lam2 := fc.Mul(four, fc.Mul(p.x, fc.Square(p.y)))              // λ2 = 4*x1*y1^2
	lam3 := fc.Mul(eight, fc.Square(fc.Square(p.y)))               // λ3 = 8*y1^4

	x3 := fc.Sub(fc.Square(lam1), fc.Mul(two, lam2))    // X3 = λ1^2 - 2*λ2
	y3 := fc.Sub(fc.Mul(lam1, fc.Sub(lam2, x3)), lam3)  // Y3 = λ1*(λ2-X3) - λ3
	z3 := fc.Mul(two, fc.Mul(p.y, p.z))                 // Z3 = 2*y1*z1

	return Point{x: x3, y: y3, z: z3}
}
