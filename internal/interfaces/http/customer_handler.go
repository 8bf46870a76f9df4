package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cartera-api/internal/application/billing"
)

// CustomerHandler maneja las peticiones HTTP de clientes.
type CustomerHandler struct {
	uc *billing.CustomerUseCase
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc *billing.CustomerUseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

// List godoc
// @Summary      Listar clientes
// @Tags         customers
// @Produce      json
// @Success      200  {array}   dto.CustomerResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /customers [get]
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.UserContext())
	if err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, codeInternal, err.Error())
	}
	return c.JSON(list)
}
