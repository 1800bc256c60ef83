package cpmm

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// fee: 0.3% => multiplier 997/1000
var (
	feeMul = big.NewInt(997)
	feeDen = big.NewInt(1000)
)

// GetAmountOut returns the swap output for amountIn against the given
// reserves under the constant-product formula with the 0.3% input-side fee:
//
//	floor(amountIn*997*reserveOut / (reserveIn*1000 + amountIn*997))
//
// Floor division biases rounding in the pool's favor, so the post-trade
// reserve product never drops below the pre-trade product.
func GetAmountOut(reserveIn, reserveOut, amountIn *big.Int) (*big.Int, error) {
	if amountIn == nil || amountIn.Sign() <= 0 {
		return nil, ErrInsufficientInputAmount
	}
	if reserveIn == nil || reserveOut == nil || reserveIn.Sign() <= 0 || reserveOut.Sign() <= 0 {
		return nil, ErrInsufficientLiquidity
	}

	amountInWithFee := new(big.Int).Mul(amountIn, feeMul)
	denominator := new(big.Int).Mul(reserveIn, feeDen)
	denominator.Add(denominator, amountInWithFee)
	numerator := new(big.Int).Mul(amountInWithFee, reserveOut)
	return numerator.Div(numerator, denominator), nil
}

// SwapExactIn trades amountIn of tokenIn for at least amountOutMin of
// tokenOut, paying the output to recipient. The output is priced against the
// reserves as they stood before the trade; the input is pulled from caller
// before any reserve is mutated, and the output is pushed only after the
// reserve update is committed.
func (p *Pool) SwapExactIn(caller common.Address, amountIn, amountOutMin *big.Int, tokenIn, tokenOut, recipient common.Address, deadline int64) (*SwapRecord, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.checkDeadline(deadline); err != nil {
		return nil, err
	}
	if tokenIn == tokenOut {
		return nil, ErrIdenticalTokens
	}
	if recipient == (common.Address{}) {
		return nil, ErrZeroRecipient
	}
	if !nonNeg(amountOutMin) {
		return nil, ErrArithmetic
	}

	reserveIn, reserveOut, err := p.orient(tokenIn, tokenOut)
	if err != nil {
		return nil, err
	}

	amountOut, err := GetAmountOut(reserveIn, reserveOut, amountIn)
	if err != nil {
		return nil, err
	}
	if amountOut.Cmp(amountOutMin) < 0 {
		return nil, ErrInsufficientOutputAmount
	}

	newReserveIn := new(big.Int).Add(reserveIn, amountIn)
	newReserveOut := new(big.Int).Sub(reserveOut, amountOut)
	if err := checkedReserve(newReserveIn); err != nil {
		return nil, err
	}
	// Cannot underflow for an output computed against current reserves;
	// checked all the same.
	if err := checkedReserve(newReserveOut); err != nil {
		return nil, err
	}

	tin, err := p.token(tokenIn)
	if err != nil {
		return nil, err
	}
	tout, err := p.token(tokenOut)
	if err != nil {
		return nil, err
	}
	if !tin.TransferFrom(caller, p.addr, amountIn) {
		return nil, ErrTransferFailed
	}

	oldReserveIn := new(big.Int).Set(reserveIn)
	oldReserveOut := new(big.Int).Set(reserveOut)
	reserveIn.Set(newReserveIn)
	reserveOut.Set(newReserveOut)

	if !tout.Transfer(recipient, amountOut) {
		reserveIn.Set(oldReserveIn)
		reserveOut.Set(oldReserveOut)
		tin.Transfer(caller, amountIn)
		return nil, ErrTransferFailed
	}

	return &SwapRecord{
		Caller:    caller,
		TokenIn:   tokenIn,
		TokenOut:  tokenOut,
		AmountIn:  new(big.Int).Set(amountIn),
		AmountOut: amountOut,
	}, nil
}
