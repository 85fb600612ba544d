// Copyright (c) 2024 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sm2

// SEC1-like point serialization, SM2-compatible:
//
//	length  byte 0  meaning
//	33      0x02    compressed, y even
//	33      0x03    compressed, y odd
//	65      0x04    uncompressed, x || y
//
// All field elements serialize as 32 big-endian bytes.

// PointToBytes converts P to affine coordinates and serializes it.
// Converting the point at infinity is fatal, per spec.
//
// If compress is true, the output is 33 bytes: a tag byte (0x02 if y is
// even, 0x03 if y is odd) followed by the 32-byte x coordinate. Otherwise
// the output is 65 bytes: tag 0x04 followed by the 32-byte x and y
// coordinates.
func (c *EccCtx) PointToBytes(p Point, compress bool) []byte {
	x, y := c.ToAffine(p)

	if compress {
		out := make([]byte, 0, 33)
		if y.Limb(7)&1 == 0 {
			out = append(out, 0x02)
		} else {
			out = append(out, 0x03)
		}
		xb := x.Bytes()
		out = append(out, xb[:]...)
		return out
	}

	out := make([]byte, 0, 65)
	out = append(out, 0x04)
	xb := x.Bytes()
	yb := y.Bytes()
	out = append(out, xb[:]...)
	out = append(out, yb[:]...)
	return out
}

// BytesToPoint decodes b per the table above. A 33-byte input must carry
// tag 0x02 or 0x03, and its x coordinate must have a curve square root; the
// sign of the decoded y is flipped as needed to match the tag's parity. A
// 65-byte input must carry tag 0x04. Any other length or tag returns
// ErrBadEncoding.
func (c *EccCtx) BytesToPoint(b []byte) (Point, error) {
	fc := c.fctx

	switch len(b) {
	case 33:
		var wantOdd uint32
		switch b[0] {
		case 0x02:
			wantOdd = 0
		case 0x03:
			wantOdd = 1
		default:
			return Point{}, newError(ErrBadEncoding, "sm2: invalid compressed point tag")
		}

		x := fc.FromBytes(b[1:])
		x3 := fc.Cubic(x)
		ax := fc.Mul(x, c.a)
		y2 := fc.Add(c.b, fc.Add(x3, ax))

		y, err := fc.Sqrt(y2)
		if err != nil {
			return Point{}, newError(ErrBadEncoding, "sm2: x coordinate has no square root")
		}
		if y.Limb(7)&1 != wantOdd {
			y = fc.Neg(y)
		}
		p, err := c.NewAffine(x, y)
		if err != nil {
			return Point{}, newError(ErrBadEncoding, "sm2: decoded point is not on the curve")
		}
		return p, nil

	case 65:
		if b[0] != 0x04 {
			return Point{}, newError(ErrBadEncoding, "sm2: invalid uncompressed point tag")
		}
		x := fc.FromBytes(b[1:33])
		y := fc.FromBytes(b[33:65])
		p, err := c.NewAffine(x, y)
		if err != nil {
			return Point{}, newError(ErrBadEncoding, "sm2: decoded point is not on the curve")
		}
		return p, nil

	default:
		return Point{}, newError(ErrBadEncoding, "sm2: invalid point encoding length")
	}
}
