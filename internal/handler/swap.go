package handler

import "github.com/gofiber/fiber/v3"

type SwapRequest struct {
	From         string `json:"from"`
	TokenIn      string `json:"token_in"`
	TokenOut     string `json:"token_out"`
	AmountIn     string `json:"amount_in"`
	AmountOutMin string `json:"amount_out_min"`
	Recipient    string `json:"recipient"`
	Deadline     int64  `json:"deadline"`
}

// Swap trades an exact input amount for the formula output.
func (h *PoolHandler) Swap() fiber.Handler {
	return func(c fiber.Ctx) error {
		var req SwapRequest
		if err := c.Bind().Body(&req); err != nil {
			h.logger.Debug("failed to bind swap request", "err", err)
			return ErrInvalidRequestBody
		}

		from, err := parseAddress("from", req.From)
		if err != nil {
			return err
		}
		tokenIn, err := parseAddress("token_in", req.TokenIn)
		if err != nil {
			return err
		}
		tokenOut, err := parseAddress("token_out", req.TokenOut)
		if err != nil {
			return err
		}
		amountIn, err := parseAmount("amount_in", req.AmountIn)
		if err != nil {
			return err
		}
		amountOutMin, err := parseMinAmount("amount_out_min", req.AmountOutMin)
		if err != nil {
			return err
		}
		recipient, err := optionalRecipient(req.Recipient, from)
		if err != nil {
			return err
		}

		rec, err := h.service.Swap(from, amountIn, amountOutMin, tokenIn, tokenOut, recipient, req.Deadline)
		if err != nil {
			return h.mapEngineError(err)
		}
		return c.JSON(fiber.Map{
			"amount_in":  rec.AmountIn.String(),
			"amount_out": rec.AmountOut.String(),
		})
	}
}
