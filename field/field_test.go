// Copyright (c) 2024 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package field

import (
	"math/big"
	"testing"

	"github.com/davecgh/go-spew/spew"
)

func hexBig(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("bad hex: " + s)
	}
	return v
}

// TestArithmeticAgainstBigInt checks every exported arithmetic operation
// against an independent math/big computation for a handful of
// representative inputs, including values near the modulus boundary.
func TestArithmeticAgainstBigInt(t *testing.T) {
	c := NewCtx()

	tests := []struct {
		name string
		x, y *big.Int
	}{
		{"small values", big.NewInt(3), big.NewInt(5)},
		{"x == 0", big.NewInt(0), big.NewInt(7)},
		{"y == 0", big.NewInt(11), big.NewInt(0)},
		{"large values", hexBig("FFFFFFFE00000000000000000000000000000001"), hexBig("123456789ABCDEF0")},
		{"near modulus", new(big.Int).Sub(c.p, big.NewInt(1)), big.NewInt(2)},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			x := c.FromBigInt(test.x)
			y := c.FromBigInt(test.y)

			wantAdd := new(big.Int).Mod(new(big.Int).Add(test.x, test.y), c.p)
			if got := c.Add(x, y).BigInt(); got.Cmp(wantAdd) != 0 {
				t.Errorf("Add: got %s want %s\nx=%s\ny=%s", got, wantAdd, spew.Sdump(x), spew.Sdump(y))
			}

			wantSub := new(big.Int).Mod(new(big.Int).Sub(test.x, test.y), c.p)
			if wantSub.Sign() < 0 {
				wantSub.Add(wantSub, c.p)
			}
			if got := c.Sub(x, y).BigInt(); got.Cmp(wantSub) != 0 {
				t.Errorf("Sub: got %s want %s", got, wantSub)
			}

			wantMul := new(big.Int).Mod(new(big.Int).Mul(test.x, test.y), c.p)
			if got := c.Mul(x, y).BigInt(); got.Cmp(wantMul) != 0 {
				t.Errorf("Mul: got %s want %s", got, wantMul)
			}

			wantSquare := new(big.Int).Mod(new(big.Int).Mul(test.x, test.x), c.p)
			if got := c.Square(x).BigInt(); got.Cmp(wantSquare) != 0 {
				t.Errorf("Square: got %s want %s", got, wantSquare)
			}

			wantCubic := new(big.Int).Mod(new(big.Int).Exp(test.x, big.NewInt(3), c.p), c.p)
			if got := c.Cubic(x).BigInt(); got.Cmp(wantCubic) != 0 {
				t.Errorf("Cubic: got %s want %s", got, wantCubic)
			}

			wantNeg := new(big.Int).Mod(new(big.Int).Neg(test.x), c.p)
			if wantNeg.Sign() < 0 {
				wantNeg.Add(wantNeg, c.p)
			}
			if got := c.Neg(x).BigInt(); got.Cmp(wantNeg) != 0 {
				t.Errorf("Neg: got %s want %s", got, wantNeg)
			}
		})
	}
}

func TestInv(t *testing.T) {
	c := NewCtx()
	for _, v := range []int64{1, 2, 3, 12345, 999999937} {
		x := c.FromBigInt(big.NewInt(v))
		inv := c.Inv(x)
		got := c.Mul(x, inv)
		if !got.Equal(FromUint32(1)) {
			t.Errorf("Inv(%d): x*inv = %s, want 1", v, got.BigInt())
		}
	}
}

func TestInvZeroPanics(t *testing.T) {
	c := NewCtx()
	defer func() {
		if recover() == nil {
			t.Fatal("Inv(0) did not panic")
		}
	}()
	c.Inv(Zero())
}

func TestSqrt(t *testing.T) {
	c := NewCtx()

	// A known quadratic residue: 4 = 2^2.
	four := FromUint32(4)
	root, err := c.Sqrt(four)
	if err != nil {
		t.Fatalf("Sqrt(4) failed: %v", err)
	}
	if !c.Square(root).Equal(four) {
		t.Fatalf("Sqrt(4)^2 = %s, want 4", c.Square(root).BigInt())
	}

	// x = 13 is a non-residue modulo the SM2 prime (verified independently
	// via Euler's criterion below), used here purely as a field-level
	// non-residue check independent of the curve equation.
	nonResidue := FromUint32(13)
	legendre := new(big.Int).Exp(nonResidue.BigInt(), new(big.Int).Rsh(new(big.Int).Sub(c.p, big.NewInt(1)), 1), c.p)
	if legendre.Cmp(big.NewInt(1)) == 0 {
		t.Skip("13 turned out to be a residue; pick a different counter-example")
	}
	if _, err := c.Sqrt(nonResidue); err != ErrNoSqrt {
		t.Fatalf("Sqrt(13) = _, %v, want ErrNoSqrt", err)
	}
}

func TestBytesRoundTrip(t *testing.T) {
	c := NewCtx()
	x := c.FromBigInt(hexBig("32C4AE2C1F1981195F9904466A39C9948FE30BBFF2660BE1715A4589334C74C7"))
	b := x.Bytes()
	if len(b) != 32 {
		t.Fatalf("Bytes() length = %d, want 32", len(b))
	}
	y := c.FromBytes(b[:])
	if !x.Equal(y) {
		t.Fatalf("round trip mismatch: %s != %s", x.BigInt(), y.BigInt())
	}
}

func TestLimbParity(t *testing.T) {
	c := NewCtx()
	even := c.FromBigInt(big.NewInt(4))
	odd := c.FromBigInt(big.NewInt(5))
	if even.Limb(7)&1 != 0 {
		t.Errorf("Limb(7) parity wrong for even value")
	}
	if odd.Limb(7)&1 != 1 {
		t.Errorf("Limb(7) parity wrong for odd value")
	}
}
