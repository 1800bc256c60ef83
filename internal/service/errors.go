package service

import "errors"

var (
	// ErrUnknownToken is returned when an asset address has no deployed ledger.
	ErrUnknownToken = errors.New("unknown token address")

	// ErrEmptySymbol is returned when deploying a token without a symbol.
	ErrEmptySymbol = errors.New("token symbol is empty")
)
