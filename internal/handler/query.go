package handler

import "github.com/gofiber/fiber/v3"

type PairQuery struct {
	TokenA string `query:"token_a"`
	TokenB string `query:"token_b"`
}

// Reserves returns the reserves ordered to match the queried pair.
func (h *PoolHandler) Reserves() fiber.Handler {
	return func(c fiber.Ctx) error {
		var req PairQuery
		if err := c.Bind().Query(&req); err != nil {
			h.logger.Debug("failed to bind reserves query", "err", err)
			return ErrInvalidQueryParameters
		}

		tokenA, err := parseAddress("token_a", req.TokenA)
		if err != nil {
			return err
		}
		tokenB, err := parseAddress("token_b", req.TokenB)
		if err != nil {
			return err
		}

		reserveA, reserveB, err := h.service.Reserves(tokenA, tokenB)
		if err != nil {
			return h.mapEngineError(err)
		}
		return c.JSON(fiber.Map{
			"reserve_a": reserveA.String(),
			"reserve_b": reserveB.String(),
		})
	}
}

// Price returns the scaled spot price of token_a denominated in token_b.
func (h *PoolHandler) Price() fiber.Handler {
	return func(c fiber.Ctx) error {
		var req PairQuery
		if err := c.Bind().Query(&req); err != nil {
			h.logger.Debug("failed to bind price query", "err", err)
			return ErrInvalidQueryParameters
		}

		tokenA, err := parseAddress("token_a", req.TokenA)
		if err != nil {
			return err
		}
		tokenB, err := parseAddress("token_b", req.TokenB)
		if err != nil {
			return err
		}

		price, err := h.service.Price(tokenA, tokenB)
		if err != nil {
			return h.mapEngineError(err)
		}
		return c.JSON(fiber.Map{"price": price.String()})
	}
}

type QuoteQuery struct {
	ReserveIn  string `query:"reserve_in"`
	ReserveOut string `query:"reserve_out"`
	AmountIn   string `query:"amount_in"`
}

// Quote prices amount_in against explicit reserves without touching state.
func (h *PoolHandler) Quote() fiber.Handler {
	return func(c fiber.Ctx) error {
		var req QuoteQuery
		if err := c.Bind().Query(&req); err != nil {
			h.logger.Debug("failed to bind quote query", "err", err)
			return ErrInvalidQueryParameters
		}

		reserveIn, err := parseAmount("reserve_in", req.ReserveIn)
		if err != nil {
			return err
		}
		reserveOut, err := parseAmount("reserve_out", req.ReserveOut)
		if err != nil {
			return err
		}
		amountIn, err := parseAmount("amount_in", req.AmountIn)
		if err != nil {
			return err
		}

		amountOut, err := h.service.Quote(reserveIn, reserveOut, amountIn)
		if err != nil {
			return h.mapEngineError(err)
		}
		return c.SendString(amountOut.String())
	}
}
