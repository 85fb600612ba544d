// Copyright (c) 2024 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sm2

import (
	"fmt"

	"github.com/ModChain/sm2/field"
)

// Point is an elliptic-curve point in Jacobian projective coordinates
// (X, Y, Z). The affine point it represents is (X/Z^2, Y/Z^3) when Z != 0;
// Z == 0 denotes the point at infinity, the identity of the group.
//
// Point is an immutable value type: every operation that produces a point
// returns a fresh value rather than mutating its receiver or arguments, so
// Points are safe to share across goroutines without synchronization.
type Point struct {
	x, y, z field.Elem
}

// NewAffine returns the point (x, y, 1) iff y^2 = x^3 + a*x + b in GF(p).
// Otherwise it returns ErrInvalidPoint.
func (c *EccCtx) NewAffine(x, y field.Elem) (Point, error) {
	fc := c.fctx
	lhs := fc.Square(y)
	x3 := fc.Cubic(x)
	ax := fc.Mul(c.a, x)
	rhs := fc.Add(c.b, fc.Add(x3, ax))
	if !lhs.Equal(rhs) {
		return Point{}, newError(ErrInvalidPoint, "sm2: point is not on the curve")
	}
	return Point{x: x, y: y, z: field.FromUint32(1)}, nil
}

// NewJacobian returns (x, y, z) iff y^2 = x^3 + a*x*z^4 + b*z^6 in GF(p).
// Otherwise it returns ErrInvalidPoint. This also validates the canonical
// identity (1, 1, 0).
func (c *EccCtx) NewJacobian(x, y, z field.Elem) (Point, error) {
	fc := c.fctx
	lhs := fc.Square(y)
	r1 := fc.Cubic(x)
	r2 := fc.Mul(fc.Mul(fc.Mul(x, c.a), z), fc.Cubic(z))
	r3 := fc.Mul(fc.Square(fc.Cubic(z)), c.b)
	rhs := fc.Add(r1, fc.Add(r2, r3))
	if !lhs.Equal(rhs) {
		return Point{}, newError(ErrInvalidPoint, "sm2: jacobian point is not on the curve")
	}
	return Point{x: x, y: y, z: z}, nil
}

// IsZero reports whether P is the point at infinity.
func (p Point) IsZero() bool {
	return p.z.IsZero()
}

// X returns the point's Jacobian X coordinate.
func (p Point) X() field.Elem { return p.x }

// Y returns the point's Jacobian Y coordinate.
func (p Point) Y() field.Elem { return p.y }

// Z returns the point's Jacobian Z coordinate.
func (p Point) Z() field.Elem { return p.z }

// ToAffine converts P to affine coordinates (x, y) where
// x = X*zinv^2, y = Y*zinv^3 and zinv = inv(Z). It requires P.Z != 0;
// converting the point at infinity is a programming error and is fatal,
// per spec.
func (c *EccCtx) ToAffine(p Point) (field.Elem, field.Elem) {
	if p.z.IsZero() {
		fatal("sm2: cannot convert the point at infinity to affine coordinates")
	}
	fc := c.fctx
	zinv := fc.Inv(p.z)
	zinv2 := fc.Square(zinv)
	zinv3 := fc.Mul(zinv2, zinv)
	x := fc.Mul(p.x, zinv2)
	y := fc.Mul(p.y, zinv3)
	return x, y
}

// Neg returns the additive inverse of P: (X, -Y, Z).
func (c *EccCtx) Neg(p Point) Point {
	negY := c.fctx.Neg(p.y)
	np, err := c.NewJacobian(p.x, negY, p.z)
	if err != nil {
		// p was a valid point, so (x, -y, z) always satisfies the same
		// curve equation; this cannot fail.
		panic("sm2: negation produced an invalid point: " + err.Error())
	}
	return np
}

// Eq reports whether P and Q represent the same point of the group: both
// are at infinity, or their affine projections coincide.
func (c *EccCtx) Eq(p, q Point) bool {
	if p.z.IsZero() {
		return q.z.IsZero()
	}
	if q.z.IsZero() {
		return false
	}
	px, py := c.ToAffine(p)
	qx, qy := c.ToAffine(q)
	return px.Equal(qx) && py.Equal(qy)
}

// String renders P using a process-wide default curve context, mirroring
// the original reference implementation's Display impl: "(O)" for the
// point at infinity, "(x = .., y = ..)" otherwise.
func (p Point) String() string {
	if p.IsZero() {
		return "(O)"
	}
	x, y := defaultCtx().ToAffine(p)
	return fmt.Sprintf("(x = %s, y = %s)", x.BigInt().String(), y.BigInt().String())
}
