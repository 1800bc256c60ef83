// Package cpmm implements a two-token constant-product liquidity pool:
// proportional deposits minting claim tokens, redemptions, and swaps priced
// by the x*y=k formula with a fixed 0.3% fee on the input side.
package cpmm

import "math/big"

// Sqrt returns the floor integer square root of n. n must be non-negative.
func Sqrt(n *big.Int) *big.Int {
	return new(big.Int).Sqrt(n)
}

// Min returns the smaller of a and b.
func Min(a, b *big.Int) *big.Int {
	if a.Cmp(b) <= 0 {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max(a, b *big.Int) *big.Int {
	if a.Cmp(b) >= 0 {
		return a
	}
	return b
}

// mulDiv returns floor(a * b / den). den must be non-zero.
func mulDiv(a, b, den *big.Int) *big.Int {
	p := new(big.Int).Mul(a, b)
	return p.Div(p, den)
}
