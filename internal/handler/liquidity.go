package handler

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/gofiber/fiber/v3"
)

type AddLiquidityRequest struct {
	From           string `json:"from"`
	TokenA         string `json:"token_a"`
	TokenB         string `json:"token_b"`
	AmountADesired string `json:"amount_a_desired"`
	AmountBDesired string `json:"amount_b_desired"`
	AmountAMin     string `json:"amount_a_min"`
	AmountBMin     string `json:"amount_b_min"`
	Recipient      string `json:"recipient"`
	Deadline       int64  `json:"deadline"`
}

// AddLiquidity deposits a pair of assets and mints claim tokens.
func (h *PoolHandler) AddLiquidity() fiber.Handler {
	return func(c fiber.Ctx) error {
		var req AddLiquidityRequest
		if err := c.Bind().Body(&req); err != nil {
			h.logger.Debug("failed to bind add-liquidity request", "err", err)
			return ErrInvalidRequestBody
		}

		from, err := parseAddress("from", req.From)
		if err != nil {
			return err
		}
		tokenA, err := parseAddress("token_a", req.TokenA)
		if err != nil {
			return err
		}
		tokenB, err := parseAddress("token_b", req.TokenB)
		if err != nil {
			return err
		}
		amountADesired, err := parseAmount("amount_a_desired", req.AmountADesired)
		if err != nil {
			return err
		}
		amountBDesired, err := parseAmount("amount_b_desired", req.AmountBDesired)
		if err != nil {
			return err
		}
		amountAMin, err := parseMinAmount("amount_a_min", req.AmountAMin)
		if err != nil {
			return err
		}
		amountBMin, err := parseMinAmount("amount_b_min", req.AmountBMin)
		if err != nil {
			return err
		}
		recipient, err := optionalRecipient(req.Recipient, from)
		if err != nil {
			return err
		}

		rec, err := h.service.AddLiquidity(from, tokenA, tokenB, amountADesired, amountBDesired, amountAMin, amountBMin, recipient, req.Deadline)
		if err != nil {
			return h.mapEngineError(err)
		}
		return c.JSON(fiber.Map{
			"amount_a": rec.AmountA.String(),
			"amount_b": rec.AmountB.String(),
			"minted":   rec.MintedClaims.String(),
		})
	}
}

type RemoveLiquidityRequest struct {
	From       string `json:"from"`
	TokenA     string `json:"token_a"`
	TokenB     string `json:"token_b"`
	Claims     string `json:"claims"`
	AmountAMin string `json:"amount_a_min"`
	AmountBMin string `json:"amount_b_min"`
	Recipient  string `json:"recipient"`
	Deadline   int64  `json:"deadline"`
}

// RemoveLiquidity burns claim tokens and pays out the proportional reserves.
func (h *PoolHandler) RemoveLiquidity() fiber.Handler {
	return func(c fiber.Ctx) error {
		var req RemoveLiquidityRequest
		if err := c.Bind().Body(&req); err != nil {
			h.logger.Debug("failed to bind remove-liquidity request", "err", err)
			return ErrInvalidRequestBody
		}

		from, err := parseAddress("from", req.From)
		if err != nil {
			return err
		}
		tokenA, err := parseAddress("token_a", req.TokenA)
		if err != nil {
			return err
		}
		tokenB, err := parseAddress("token_b", req.TokenB)
		if err != nil {
			return err
		}
		claims, err := parseAmount("claims", req.Claims)
		if err != nil {
			return err
		}
		amountAMin, err := parseMinAmount("amount_a_min", req.AmountAMin)
		if err != nil {
			return err
		}
		amountBMin, err := parseMinAmount("amount_b_min", req.AmountBMin)
		if err != nil {
			return err
		}
		recipient, err := optionalRecipient(req.Recipient, from)
		if err != nil {
			return err
		}

		rec, err := h.service.RemoveLiquidity(from, tokenA, tokenB, claims, amountAMin, amountBMin, recipient, req.Deadline)
		if err != nil {
			return h.mapEngineError(err)
		}
		return c.JSON(fiber.Map{
			"amount_a": rec.AmountA.String(),
			"amount_b": rec.AmountB.String(),
			"burned":   rec.BurnedClaims.String(),
		})
	}
}

// optionalRecipient resolves a recipient field, defaulting to the caller.
func optionalRecipient(recipient string, from common.Address) (common.Address, error) {
	if recipient == "" {
		return from, nil
	}
	return parseAddress("recipient", recipient)
}
