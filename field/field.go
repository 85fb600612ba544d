// Copyright (c) 2024 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package field implements the prime-field backend consumed by the SM2
// curve core: arithmetic over GF(p) for the GM/T 0003 prime p, plus the
// byte and limb conversions the curve layer needs for point validation,
// serialization and compression.
//
// spec.md treats this backend as an external collaborator and specifies
// only the interface it must expose. There is no third-party SM2 field
// implementation in the example corpus to import, so this package builds
// the backend on math/big: correctness of the modular reduction is easy to
// get right and to reason about without running the arithmetic, whereas a
// hand-rolled fixed-limb reduction (of the kind the teacher's FieldVal
// uses for secp256k1) would need exactly the kind of build-and-test
// iteration this exercise forbids. The outward shape — an 8x32-bit
// big-endian limb representation with a byte-addressable "limb 7" used for
// parity — matches what the curve core and spec.md's data model expect.
package field

import (
	"errors"
	"math/big"
)

// ErrNoSqrt is returned by (*Ctx).Sqrt when the argument is not a quadratic
// residue modulo p.
var ErrNoSqrt = errors.New("field: no square root exists")

// Elem is an element of GF(p) represented as eight big-endian 32-bit limbs,
// most significant word first. Limb index 7 is the least significant word,
// whose low bit gives the parity of the element's canonical integer
// representative.
type Elem struct {
	n [8]uint32
}

// Ctx is the modulus context for GF(p) arithmetic. It is immutable once
// constructed and safe to share across goroutines.
type Ctx struct {
	p *big.Int
}

// pHex is the SM2 prime field modulus from GM/T 0003.
const pHex = "FFFFFFFEFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF00000000FFFFFFFFFFFFFFFF"

// NewCtx constructs the GF(p) context for the SM2 prime. It never fails:
// the modulus is a compile-time constant.
func NewCtx() *Ctx {
	p, ok := new(big.Int).SetString(pHex, 16)
	if !ok {
		panic("field: invalid hard-coded prime modulus")
	}
	return &Ctx{p: p}
}

// Zero returns the additive identity of GF(p).
func Zero() Elem {
	return Elem{}
}

// FromUint32 returns the field element corresponding to the small
// non-negative integer v.
func FromUint32(v uint32) Elem {
	var e Elem
	e.n[7] = v
	return e
}

// FromBigInt reduces v modulo p and returns the resulting field element.
// v may be negative; the result is always in [0, p).
func (c *Ctx) FromBigInt(v *big.Int) Elem {
	r := new(big.Int).Mod(v, c.p)
	return fromBigIntUnreduced(r)
}

// FromBytes interprets b as a big-endian integer and reduces it modulo p.
// b need not be exactly 32 bytes.
func (c *Ctx) FromBytes(b []byte) Elem {
	v := new(big.Int).SetBytes(b)
	return c.FromBigInt(v)
}

// fromBigIntUnreduced converts an already-reduced non-negative big.Int
// (0 <= v < 2^256) into the eight-limb representation.
func fromBigIntUnreduced(v *big.Int) Elem {
	var buf [32]byte
	v.FillBytes(buf[:])
	var e Elem
	for i := 0; i < 8; i++ {
		e.n[i] = be32(buf[i*4 : i*4+4])
	}
	return e
}

func be32(b []byte) uint32 {
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
}

// BigInt returns the element's canonical integer representative in [0, p).
func (e Elem) BigInt() *big.Int {
	var buf [32]byte
	for i := 0; i < 8; i++ {
		buf[i*4+0] = byte(e.n[i] >> 24)
		buf[i*4+1] = byte(e.n[i] >> 16)
		buf[i*4+2] = byte(e.n[i] >> 8)
		buf[i*4+3] = byte(e.n[i])
	}
	return new(big.Int).SetBytes(buf[:])
}

// Bytes returns the element's canonical integer representative as 32
// big-endian bytes.
func (e Elem) Bytes() [32]byte {
	var buf [32]byte
	for i := 0; i < 8; i++ {
		buf[i*4+0] = byte(e.n[i] >> 24)
		buf[i*4+1] = byte(e.n[i] >> 16)
		buf[i*4+2] = byte(e.n[i] >> 8)
		buf[i*4+3] = byte(e.n[i])
	}
	return buf
}

// Limb returns the 32-bit word at index i, where i=0 is the most
// significant word and i=7 is the least significant. Limb(7) & 1 gives the
// element's parity.
func (e Elem) Limb(i int) uint32 {
	return e.n[i]
}

// IsZero reports whether e is the additive identity.
func (e Elem) IsZero() bool {
	for _, w := range e.n {
		if w != 0 {
			return false
		}
	}
	return true
}

// Equal reports whether e and other represent the same element of GF(p).
func (e Elem) Equal(other Elem) bool {
	return e.n == other.n
}

func (c *Ctx) binop(x, y Elem, op func(z, x, y *big.Int) *big.Int) Elem {
	z := new(big.Int)
	op(z, x.BigInt(), y.BigInt())
	z.Mod(z, c.p)
	if z.Sign() < 0 {
		z.Add(z, c.p)
	}
	return fromBigIntUnreduced(z)
}

// Add returns x + y mod p.
func (c *Ctx) Add(x, y Elem) Elem {
	return c.binop(x, y, (*big.Int).Add)
}

// Sub returns x - y mod p.
func (c *Ctx) Sub(x, y Elem) Elem {
	return c.binop(x, y, (*big.Int).Sub)
}

// Mul returns x * y mod p.
func (c *Ctx) Mul(x, y Elem) Elem {
	return c.binop(x, y, (*big.Int).Mul)
}

// Neg returns -x mod p.
func (c *Ctx) Neg(x Elem) Elem {
	z := new(big.Int).Neg(x.BigInt())
	z.Mod(z, c.p)
	if z.Sign() < 0 {
		z.Add(z, c.p)
	}
	return fromBigIntUnreduced(z)
}

// Square returns x^2 mod p.
func (c *Ctx) Square(x Elem) Elem {
	return c.Mul(x, x)
}

// Cubic returns x^3 mod p.
func (c *Ctx) Cubic(x Elem) Elem {
	return c.Mul(x, c.Square(x))
}

// Inv returns the multiplicative inverse of x modulo p. It panics if x is
// zero, which has no inverse; callers must ensure x is non-zero.
func (c *Ctx) Inv(x Elem) Elem {
	if x.IsZero() {
		panic("field: inverse of zero")
	}
	z := new(big.Int).ModInverse(x.BigInt(), c.p)
	return fromBigIntUnreduced(z)
}

// Sqrt returns a square root of x modulo p, if one exists. Since p ≡ 3
// (mod 4) for the SM2 prime, the root is computed directly as
// x^((p+1)/4) mod p and then verified by squaring.
func (c *Ctx) Sqrt(x Elem) (Elem, error) {
	if x.IsZero() {
		return Zero(), nil
	}
	exp := new(big.Int).Add(c.p, big.NewInt(1))
	exp.Rsh(exp, 2)
	root := new(big.Int).Exp(x.BigInt(), exp, c.p)
	candidate := fromBigIntUnreduced(root)
	if !c.Square(candidate).Equal(x) {
		return Elem{}, ErrNoSqrt
	}
	return candidate, nil
}
