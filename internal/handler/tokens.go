package handler

import (
	"log/slog"

	"github.com/gofiber/fiber/v3"
	"github.com/mrchurches/SimpleSwap/internal/service"
)

// TokenHandler exposes the token scaffolding: deploying test assets, funding
// accounts and granting the pool allowances.
type TokenHandler struct {
	BaseHandler
	service *service.PoolService
}

func NewTokenHandler(logger *slog.Logger, svc *service.PoolService) *TokenHandler {
	return &TokenHandler{
		BaseHandler: BaseHandler{logger: logger},
		service:     svc,
	}
}

type DeployTokenRequest struct {
	Symbol string `json:"symbol"`
}

// Deploy allocates a fresh asset ledger and returns its address.
func (h *TokenHandler) Deploy() fiber.Handler {
	return func(c fiber.Ctx) error {
		var req DeployTokenRequest
		if err := c.Bind().Body(&req); err != nil {
			h.logger.Debug("failed to bind deploy request", "err", err)
			return ErrInvalidRequestBody
		}
		if req.Symbol == "" {
			return ErrSymbolRequired
		}

		addr, err := h.service.DeployToken(req.Symbol)
		if err != nil {
			return h.mapServiceError(err)
		}
		return c.JSON(fiber.Map{"address": addr.Hex()})
	}
}

type MintRequest struct {
	Token  string `json:"token"`
	To     string `json:"to"`
	Amount string `json:"amount"`
}

// Mint credits test funds to an account.
func (h *TokenHandler) Mint() fiber.Handler {
	return func(c fiber.Ctx) error {
		var req MintRequest
		if err := c.Bind().Body(&req); err != nil {
			h.logger.Debug("failed to bind mint request", "err", err)
			return ErrInvalidRequestBody
		}

		asset, err := parseAddress("token", req.Token)
		if err != nil {
			return err
		}
		to, err := parseAddress("to", req.To)
		if err != nil {
			return err
		}
		amount, err := parseAmount("amount", req.Amount)
		if err != nil {
			return err
		}

		if err := h.service.Mint(asset, to, amount); err != nil {
			return h.mapServiceError(err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

type ApproveRequest struct {
	Token  string `json:"token"`
	Owner  string `json:"owner"`
	Amount string `json:"amount"`
}

// Approve grants the pool an allowance over the owner's balance.
func (h *TokenHandler) Approve() fiber.Handler {
	return func(c fiber.Ctx) error {
		var req ApproveRequest
		if err := c.Bind().Body(&req); err != nil {
			h.logger.Debug("failed to bind approve request", "err", err)
			return ErrInvalidRequestBody
		}

		asset, err := parseAddress("token", req.Token)
		if err != nil {
			return err
		}
		owner, err := parseAddress("owner", req.Owner)
		if err != nil {
			return err
		}
		amount, err := parseMinAmount("amount", req.Amount)
		if err != nil {
			return err
		}

		if err := h.service.Approve(asset, owner, amount); err != nil {
			return h.mapServiceError(err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

type BalanceRequest struct {
	Token string `query:"token"`
	Owner string `query:"owner"`
}

// Balance returns the owner's balance of an asset.
func (h *TokenHandler) Balance() fiber.Handler {
	return func(c fiber.Ctx) error {
		var req BalanceRequest
		if err := c.Bind().Query(&req); err != nil {
			h.logger.Debug("failed to bind balance query", "err", err)
			return ErrInvalidQueryParameters
		}

		asset, err := parseAddress("token", req.Token)
		if err != nil {
			return err
		}
		owner, err := parseAddress("owner", req.Owner)
		if err != nil {
			return err
		}

		balance, err := h.service.Balance(asset, owner)
		if err != nil {
			return h.mapServiceError(err)
		}
		return c.JSON(fiber.Map{"balance": balance.String()})
	}
}

func (h *TokenHandler) mapServiceError(err error) error {
	switch err {
	case service.ErrUnknownToken:
		return ErrUnknownTokenNotFound
	case service.ErrEmptySymbol:
		return ErrSymbolRequired
	default:
		h.logger.Error("token operation failed", "err", err)
		return ErrPoolOperationFailedInternal
	}
}
