package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cartera-api/internal/application/billing"
	"github.com/jhoicas/cartera-api/internal/application/dto"
	"github.com/jhoicas/cartera-api/internal/domain"
)

// PaymentHandler maneja el registro de pagos.
type PaymentHandler struct {
	uc      *billing.PaymentUseCase
	metrics *Metrics
}

// NewPaymentHandler construye el handler. metrics puede ser nil.
func NewPaymentHandler(uc *billing.PaymentUseCase, metrics *Metrics) *PaymentHandler {
	return &PaymentHandler{uc: uc, metrics: metrics}
}

// Create godoc
// @Summary      Registrar pago
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordPaymentRequest  true  "invoice_id, payment_date (YYYY-MM-DD), amount"
// @Success      201   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /payments [post]
func (h *PaymentHandler) Create(c *fiber.Ctx) error {
	var in dto.RecordPaymentRequest
	// Se decodifica como JSON sin importar el Content-Type; cuerpo vacío = campos ausentes.
	if body := c.Body(); len(body) > 0 {
		if err := c.App().Config().JSONDecoder(body, &in); err != nil {
			h.metrics.paymentResult("invalid_body")
			return errorResponse(c, fiber.StatusBadRequest, codeInvalidBody, "invalid JSON body")
		}
	}

	err := h.uc.Record(c.UserContext(), in)
	switch {
	case err == nil:
		h.metrics.paymentResult("recorded")
		return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "Payment recorded"})
	case errors.Is(err, domain.ErrMissingField):
		h.metrics.paymentResult("missing_field")
		return errorResponse(c, fiber.StatusBadRequest, codeMissingField, "invoice_id, payment_date, amount required")
	case errors.Is(err, domain.ErrInvalidInput):
		h.metrics.paymentResult("invalid_date")
		return errorResponse(c, fiber.StatusBadRequest, codeValidation, "payment_date must be YYYY-MM-DD")
	case errors.Is(err, domain.ErrNotFound):
		h.metrics.paymentResult("not_found")
		return errorResponse(c, fiber.StatusNotFound, codeNotFound, "Invoice not found")
	case errors.Is(err, domain.ErrInvalidAmount):
		h.metrics.paymentResult("invalid_amount")
		return errorResponse(c, fiber.StatusBadRequest, codeInvalidAmount, "Amount must be > 0")
	case errors.Is(err, domain.ErrOverpayment):
		h.metrics.paymentResult("overpayment")
		return errorResponse(c, fiber.StatusBadRequest, codeOverpayment, "Amount exceeds outstanding balance")
	default:
		h.metrics.paymentResult("error")
		return errorResponse(c, fiber.StatusInternalServerError, codeInternal, err.Error())
	}
}
