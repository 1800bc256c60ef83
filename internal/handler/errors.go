package handler

import "github.com/gofiber/fiber/v3"

// ErrInvalidRequestBody indicates that the request body could not be parsed
// into the expected structure.
var ErrInvalidRequestBody = fiber.NewError(fiber.StatusBadRequest, "invalid request body")

// ErrInvalidQueryParameters indicates that the request query string could not
// be parsed into the expected structure.
var ErrInvalidQueryParameters = fiber.NewError(fiber.StatusBadRequest, "invalid query parameters")

// ErrSymbolRequired is returned when deploying a token without a symbol.
var ErrSymbolRequired = fiber.NewError(fiber.StatusBadRequest, "symbol is required")

// ErrAmountRequired is returned when a required amount parameter is missing.
var ErrAmountRequired = fiber.NewError(fiber.StatusBadRequest, "amount is required")

// ErrInvalidAmountFormat is returned when an amount cannot be parsed as a
// base-10 integer.
var ErrInvalidAmountFormat = fiber.NewError(fiber.StatusBadRequest, "invalid amount format")

// ErrAmountNonPositive is returned when an amount is zero or negative.
var ErrAmountNonPositive = fiber.NewError(fiber.StatusBadRequest, "amount must be greater than zero")

// ErrAmountNegative is returned when a minimum amount is negative.
var ErrAmountNegative = fiber.NewError(fiber.StatusBadRequest, "amount must not be negative")

// ErrUnknownTokenNotFound maps an unknown asset address to a 404 error.
var ErrUnknownTokenNotFound = fiber.NewError(fiber.StatusNotFound, "unknown token address")

// ErrPoolOperationFailedInternal signals a generic server-side pool error.
var ErrPoolOperationFailedInternal = fiber.NewError(fiber.StatusInternalServerError, "pool operation failed")

// NewAddressRequired returns a 400 Bad Request for a missing address field.
func NewAddressRequired(field string) error {
	return fiber.NewError(fiber.StatusBadRequest, field+" address is required")
}

// NewInvalidAddress returns a 400 Bad Request for an invalid address format.
func NewInvalidAddress(field string) error {
	return fiber.NewError(fiber.StatusBadRequest, "invalid "+field+" address")
}

// NewInvalidAmount wraps an amount parsing error for the named field into a
// 400 Bad Request with a descriptive message.
func NewInvalidAmount(field string, err error) error {
	return fiber.NewError(fiber.StatusBadRequest, "invalid "+field+": "+err.Error())
}

// NewPoolError maps a pool engine failure to a 400 Bad Request carrying the
// engine's message. Every engine error is a rejected request, not a server
// fault: the operation left no partial state behind.
func NewPoolError(err error) error {
	return fiber.NewError(fiber.StatusBadRequest, err.Error())
}
