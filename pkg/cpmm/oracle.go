package cpmm

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Scale is the fixed-point multiplier applied to spot prices.
var Scale = new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)

// Price returns the spot price of tokenA denominated in tokenB, scaled by
// Scale: reserveB * Scale / reserveA for the bound ordering. Read-only.
func (p *Pool) Price(tokenA, tokenB common.Address) (*big.Int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	ra, rb, err := p.orient(tokenA, tokenB)
	if err != nil {
		return nil, err
	}
	if ra.Sign() == 0 {
		return nil, ErrNoLiquidity
	}
	return mulDiv(rb, Scale, ra), nil
}
