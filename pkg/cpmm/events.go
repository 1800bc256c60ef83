package cpmm

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Records are the observable side effects of the three mutating operations.
// They are returned to the caller and never consumed internally.

// AddLiquidityRecord describes a completed deposit.
type AddLiquidityRecord struct {
	Caller       common.Address
	TokenA       common.Address
	TokenB       common.Address
	AmountA      *big.Int
	AmountB      *big.Int
	MintedClaims *big.Int
}

// RemoveLiquidityRecord describes a completed redemption.
type RemoveLiquidityRecord struct {
	Caller       common.Address
	TokenA       common.Address
	TokenB       common.Address
	AmountA      *big.Int
	AmountB      *big.Int
	BurnedClaims *big.Int
}

// SwapRecord describes a completed swap.
type SwapRecord struct {
	Caller    common.Address
	TokenIn   common.Address
	TokenOut  common.Address
	AmountIn  *big.Int
	AmountOut *big.Int
}
