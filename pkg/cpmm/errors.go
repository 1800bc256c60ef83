package cpmm

import "errors"

var (
	// ErrExpired is returned when an operation's deadline has passed.
	ErrExpired = errors.New("deadline expired")

	// ErrIdenticalTokens is returned when both sides of a pair are the same asset.
	ErrIdenticalTokens = errors.New("identical token addresses")

	// ErrZeroRecipient is returned when the recipient is the zero address.
	ErrZeroRecipient = errors.New("recipient is the zero address")

	// ErrInvalidPair is returned when the given tokens do not match the pool's
	// bound pair in either order.
	ErrInvalidPair = errors.New("pair does not match pool tokens")

	// ErrInsufficientAAmount / ErrInsufficientBAmount signal that a slippage
	// minimum on the corresponding asset was not met.
	ErrInsufficientAAmount = errors.New("insufficient A amount")
	ErrInsufficientBAmount = errors.New("insufficient B amount")

	// ErrInsufficientOutputAmount signals a swap output below the caller's minimum.
	ErrInsufficientOutputAmount = errors.New("insufficient output amount")

	// ErrInsufficientLiquidityMinted is returned when a deposit rounds to zero claims.
	ErrInsufficientLiquidityMinted = errors.New("insufficient liquidity minted")

	// ErrInsufficientLiquidity is returned when a reserve needed by the
	// operation is zero.
	ErrInsufficientLiquidity = errors.New("insufficient liquidity")

	// ErrInsufficientInputAmount is returned for a zero swap input.
	ErrInsufficientInputAmount = errors.New("insufficient input amount")

	// ErrInsufficientBalance is returned when a burn exceeds the caller's claims.
	ErrInsufficientBalance = errors.New("insufficient claim balance")

	// ErrNoLiquidity is returned by Price when the denominator reserve is zero.
	ErrNoLiquidity = errors.New("no liquidity for price")

	// ErrTransferFailed is returned when the asset collaborator reports failure.
	ErrTransferFailed = errors.New("token transfer failed")

	// ErrArithmetic is returned when an update would overflow a reserve or
	// drive a balance negative. State is left unchanged.
	ErrArithmetic = errors.New("arithmetic overflow or underflow")
)
