// Copyright (c) 2024 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package sm2 implements the elliptic-curve arithmetic core of the SM2
public-key cryptosystem defined by GM/T 0003 in pure Go.

It provides the group operations that signature, key-agreement, and
encryption schemes built on top of SM2 compose with: point construction and
validation, point addition and doubling in Jacobian coordinates, generic
scalar multiplication of an arbitrary point, fixed-base scalar
multiplication of the group generator via a precomputed two-table comb,
modular inversion of scalars mod the subgroup order, generation of
cryptographically strong random scalars, and SEC1-style point
serialization.

An overview of the features provided by this package are as follows:

  - EccCtx holding the SM2 curve parameters a, b, n and the field constant 1/2
  - Point type in Jacobian projective coordinates, with the point at
    infinity represented as any triple with Z = 0
  - NewAffine/NewJacobian point construction with curve-equation validation
  - Point addition and doubling using the GM/T 0003 A.1.2.3.2 formulas
  - Generic scalar multiplication via left-to-right double-and-add
  - Fixed-base scalar multiplication via two lazily-built 256-entry tables
  - Binary extended Euclidean inversion modulo the subgroup order
  - CSPRNG-backed random scalar generation in [1, n-2]
  - Compressed (33-byte) and uncompressed (65-byte) point encode/decode

This package does not implement the SM2 signature, key-exchange, or public
key encryption schemes, nor does it provide a CLI, logging, or
configuration layer — those are protocol- and application-level concerns
that sit above this curve core.

The field arithmetic this package consumes lives in the field subpackage,
which implements GF(p) for the SM2 prime and is the one part of this
module that is a deliberate interface boundary rather than a hand-tuned
implementation; see its package doc for details.
*/
package sm2
