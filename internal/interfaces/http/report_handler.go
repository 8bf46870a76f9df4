package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cartera-api/internal/application/reporting"
)

// ReportHandler expone los indicadores agregados de cartera.
type ReportHandler struct {
	uc *reporting.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reporting.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// KPIs godoc
// @Summary      Indicadores de cartera
// @Description  Facturado, recaudado, saldo, saldo vencido y % vencido con los mismos filtros que /invoices.
// @Tags         reports
// @Produce      json
// @Param        customer_id  query  int     false  "ID de cliente"
// @Param        start_date   query  string  false  "invoice_date >= (YYYY-MM-DD)"
// @Param        end_date     query  string  false  "invoice_date <= (YYYY-MM-DD)"
// @Success      200  {object}  dto.KPISummaryDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /kpis [get]
func (h *ReportHandler) KPIs(c *fiber.Ctx) error {
	filter, err := parseFilter(c)
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, codeValidation, "invalid query string")
	}
	kpis, err := h.uc.GetKPIs(c.UserContext(), filter)
	if err != nil {
		return filterError(c, err)
	}
	return c.JSON(kpis)
}

// Top5 godoc
// @Summary      Top 5 clientes por saldo pendiente
// @Tags         reports
// @Produce      json
// @Success      200  {array}   dto.TopDebtorDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /top5 [get]
func (h *ReportHandler) Top5(c *fiber.Ctx) error {
	top, err := h.uc.TopDebtors(c.UserContext())
	if err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, codeInternal, err.Error())
	}
	return c.JSON(top)
}
