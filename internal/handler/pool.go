package handler

import (
	"errors"

	"log/slog"

	"github.com/gofiber/fiber/v3"
	"github.com/mrchurches/SimpleSwap/internal/service"
	"github.com/mrchurches/SimpleSwap/pkg/cpmm"
)

// PoolHandler exposes the pool operations: deposits, redemptions, swaps and
// the read-only reserve/price/quote queries.
type PoolHandler struct {
	BaseHandler
	service *service.PoolService
}

func NewPoolHandler(logger *slog.Logger, svc *service.PoolService) *PoolHandler {
	return &PoolHandler{
		BaseHandler: BaseHandler{logger: logger},
		service:     svc,
	}
}

// Address returns the pool's custody address, the spender to approve.
func (h *PoolHandler) Address() fiber.Handler {
	return func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"address": h.service.PoolAddress().Hex()})
	}
}

// mapEngineError translates a pool engine failure into an HTTP error. Every
// engine error is a rejected request with no partial state behind it.
func (h *PoolHandler) mapEngineError(err error) error {
	switch {
	case errors.Is(err, cpmm.ErrExpired),
		errors.Is(err, cpmm.ErrIdenticalTokens),
		errors.Is(err, cpmm.ErrZeroRecipient),
		errors.Is(err, cpmm.ErrInvalidPair),
		errors.Is(err, cpmm.ErrInsufficientAAmount),
		errors.Is(err, cpmm.ErrInsufficientBAmount),
		errors.Is(err, cpmm.ErrInsufficientOutputAmount),
		errors.Is(err, cpmm.ErrInsufficientLiquidityMinted),
		errors.Is(err, cpmm.ErrInsufficientLiquidity),
		errors.Is(err, cpmm.ErrInsufficientInputAmount),
		errors.Is(err, cpmm.ErrInsufficientBalance),
		errors.Is(err, cpmm.ErrTransferFailed),
		errors.Is(err, cpmm.ErrNoLiquidity),
		errors.Is(err, cpmm.ErrArithmetic):
		return NewPoolError(err)
	default:
		h.logger.Error("pool operation failed", "err", err)
		return ErrPoolOperationFailedInternal
	}
}
