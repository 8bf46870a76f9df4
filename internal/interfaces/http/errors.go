package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cartera-api/internal/application/dto"
	"github.com/jhoicas/cartera-api/internal/domain"
)

// Códigos estables de error para clientes.
const (
	codeValidation    = "VALIDATION"
	codeMissingField  = "MISSING_FIELD"
	codeInvalidAmount = "INVALID_AMOUNT"
	codeOverpayment   = "OVERPAYMENT"
	codeNotFound      = "NOT_FOUND"
	codeInvalidBody   = "INVALID_BODY"
	codeBadRequest    = "BAD_REQUEST"
	codeInternal      = "INTERNAL"
)

// errorResponse responde {"error", "code"} con el status indicado.
func errorResponse(c *fiber.Ctx, status int, code, msg string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Error: msg, Code: code})
}

// filterError traduce errores de los casos de uso de lectura (filtros + consultas).
func filterError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrInvalidInput) {
		return errorResponse(c, fiber.StatusBadRequest, codeValidation,
			"customer_id must be an integer and dates must be YYYY-MM-DD")
	}
	return errorResponse(c, fiber.StatusInternalServerError, codeInternal, err.Error())
}
