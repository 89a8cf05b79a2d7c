package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/NadafMM/inventory-management-system-sub001/internal/application/dto"
	"github.com/NadafMM/inventory-management-system-sub001/internal/domain"
)

// writeError translates a domain error kind into an HTTP response. This is
// the single place where kinds meet status codes; handlers never branch on
// error messages.
func writeError(c *fiber.Ctx, err error) error {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: ve.Message, Field: ve.Field,
		})
	}
	var nf *domain.NotFoundError
	if errors.As(err, &nf) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Code: "NOT_FOUND", Message: nf.Error(),
		})
	}
	var ise *domain.InsufficientStockError
	if errors.As(err, &ise) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code: "INSUFFICIENT_STOCK", Message: ise.Error(),
		})
	}
	var be *domain.BusinessError
	if errors.As(err, &be) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code: "BUSINESS_RULE", Message: be.Message,
		})
	}
	var ce *domain.ConflictError
	if errors.As(err, &ce) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code: "CONFLICT", Message: ce.Message,
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Code: "INTERNAL", Message: "unexpected error",
	})
}

// writeInvalidBody is the shared response for unparseable request bodies.
func writeInvalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Code: "INVALID_BODY", Message: "malformed request body",
	})
}
