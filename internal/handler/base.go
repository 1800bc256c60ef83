// Package handler defines HTTP request handlers and related utilities.
package handler

import (
	"math/big"

	"log/slog"

	"github.com/ethereum/go-ethereum/common"
)

// BaseHandler provides common dependencies for HTTP handlers.
type BaseHandler struct {
	logger *slog.Logger
}

// parseAddress validates and decodes a required hex address field.
func parseAddress(field, addr string) (common.Address, error) {
	if addr == "" {
		return common.Address{}, NewAddressRequired(field)
	}
	if !common.IsHexAddress(addr) {
		return common.Address{}, NewInvalidAddress(field)
	}
	return common.HexToAddress(addr), nil
}

// parseAmount decodes a required positive base-10 amount.
func parseAmount(field, amountStr string) (*big.Int, error) {
	if amountStr == "" {
		return nil, NewInvalidAmount(field, ErrAmountRequired)
	}
	amount, ok := new(big.Int).SetString(amountStr, 10)
	if !ok {
		return nil, NewInvalidAmount(field, ErrInvalidAmountFormat)
	}
	if amount.Sign() <= 0 {
		return nil, NewInvalidAmount(field, ErrAmountNonPositive)
	}
	return amount, nil
}

// parseMinAmount decodes an optional non-negative base-10 amount, defaulting
// to zero when absent.
func parseMinAmount(field, amountStr string) (*big.Int, error) {
	if amountStr == "" {
		return new(big.Int), nil
	}
	amount, ok := new(big.Int).SetString(amountStr, 10)
	if !ok {
		return nil, NewInvalidAmount(field, ErrInvalidAmountFormat)
	}
	if amount.Sign() < 0 {
		return nil, NewInvalidAmount(field, ErrAmountNegative)
	}
	return amount, nil
}
