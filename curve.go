// Copyright (c) 2024 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sm2

// References:
//   [GM/T 0003]: Public Key Cryptographic Algorithm SM2 Based on Elliptic
//     Curves, sections covering the recommended 256-bit prime field curve
//     and its domain parameters.

import (
	"math/big"
	"sync"

	"github.com/ModChain/sm2/field"
)

// EccCtx holds the SM2 curve domain parameters (a, b, n and the field
// constant 1/2 = inv(2)) plus the GF(p) arithmetic context the point
// algebra consumes. It is immutable once constructed via NewEccCtx and
// safe to share across goroutines without synchronization.
type EccCtx struct {
	fctx *field.Ctx
	a    field.Elem
	b    field.Elem
	n    *big.Int
	inv2 field.Elem
	gx   field.Elem
	gy   field.Elem
}

// aHex, bHex, nHex, gxHex, gyHex are the SM2 domain parameters from
// GM/T 0003, reproduced exactly as spec'd.
const (
	aHex  = "FFFFFFFEFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF00000000FFFFFFFFFFFFFFFC"
	bHex  = "28E9FA9E9D9F5E344D5A9E4BCF6509A7F39789F515AB8F92DDBCBD414D940E93"
	nHex  = "FFFFFFFEFFFFFFFFFFFFFFFFFFFFFFFF7203DF6B21C6052B53BBF40939D54123"
	gxHex = "32C4AE2C1F1981195F9904466A39C9948FE30BBFF2660BE1715A4589334C74C7"
	gyHex = "BC3736A2F4F6779C59BDCEE36B692153D0A9877CC62A474002DF32E52139F0A0"
)

func mustHexBig(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("sm2: invalid hex in source file: " + s)
	}
	return v
}

// NewEccCtx materializes the SM2 curve context. Construction cannot fail:
// every parameter is a compile-time constant.
func NewEccCtx() *EccCtx {
	fctx := field.NewCtx()
	c := &EccCtx{
		fctx: fctx,
		a:    fctx.FromBigInt(mustHexBig(aHex)),
		b:    fctx.FromBigInt(mustHexBig(bHex)),
		n:    mustHexBig(nHex),
		gx:   fctx.FromBigInt(mustHexBig(gxHex)),
		gy:   fctx.FromBigInt(mustHexBig(gyHex)),
	}
	c.inv2 = fctx.Inv(field.FromUint32(2))
	return c
}

var (
	defaultCtxOnce sync.Once
	defaultCtxVal  *EccCtx
)

// defaultCtx returns a process-wide EccCtx, constructing it on first use.
// It exists purely for the convenience of Point's Stringer implementation,
// which needs a curve context but isn't handed one explicitly; there is,
// after all, only one SM2 curve.
func defaultCtx() *EccCtx {
	defaultCtxOnce.Do(func() {
		defaultCtxVal = NewEccCtx()
	})
	return defaultCtxVal
}

// N returns the order of the base-point subgroup.
func (c *EccCtx) N() *big.Int {
	return new(big.Int).Set(c.n)
}

// A returns the curve's a coefficient as a field element.
func (c *EccCtx) A() field.Elem {
	return c.a
}

// B returns the curve's b coefficient as a field element.
func (c *EccCtx) B() field.Elem {
	return c.b
}

// Generator returns the standardized base point G of the SM2 curve.
func (c *EccCtx) Generator() Point {
	p, err := c.NewAffine(c.gx, c.gy)
	if err != nil {
		// The hard-coded generator coordinates always satisfy the curve
		// equation; a failure here means the constants above are wrong.
		panic("sm2: generator is not on the curve: " + err.Error())
	}
	return p
}

// Identity returns the point at infinity in its canonical representation
// (1, 1, 0).
func (c *EccCtx) Identity() Point {
	return Point{x: field.FromUint32(1), y: field.FromUint32(1), z: field.Zero()}
}
