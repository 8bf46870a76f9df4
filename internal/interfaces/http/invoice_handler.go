package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cartera-api/internal/application/dto"
	"github.com/jhoicas/cartera-api/internal/application/reporting"
)

// InvoiceHandler maneja el listado de cartera y su reporte PDF.
type InvoiceHandler struct {
	reports *reporting.ReportUseCase
	pdf     *reporting.PDFUseCase
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(reports *reporting.ReportUseCase, pdf *reporting.PDFUseCase) *InvoiceHandler {
	return &InvoiceHandler{reports: reports, pdf: pdf}
}

// parseFilter lee customer_id, start_date y end_date del query string.
func parseFilter(c *fiber.Ctx) (dto.InvoiceFilterRequest, error) {
	var f dto.InvoiceFilterRequest
	err := c.QueryParser(&f)
	return f, err
}

// List godoc
// @Summary      Listar facturas con saldo y antigüedad
// @Tags         invoices
// @Produce      json
// @Param        customer_id  query  int     false  "ID de cliente"
// @Param        start_date   query  string  false  "invoice_date >= (YYYY-MM-DD)"
// @Param        end_date     query  string  false  "invoice_date <= (YYYY-MM-DD)"
// @Success      200  {array}   dto.InvoiceRowDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /invoices [get]
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	filter, err := parseFilter(c)
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, codeValidation, "invalid query string")
	}
	rows, err := h.reports.ListInvoices(c.UserContext(), filter)
	if err != nil {
		return filterError(c, err)
	}
	return c.JSON(rows)
}

// ReportPDF godoc
// @Summary      Descargar reporte de cartera en PDF
// @Description  Mismos filtros que GET /invoices; incluye KPIs y resumen por bucket.
// @Tags         invoices
// @Produce      application/pdf
// @Param        customer_id  query  int     false  "ID de cliente"
// @Param        start_date   query  string  false  "invoice_date >= (YYYY-MM-DD)"
// @Param        end_date     query  string  false  "invoice_date <= (YYYY-MM-DD)"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /invoices/report.pdf [get]
func (h *InvoiceHandler) ReportPDF(c *fiber.Ctx) error {
	filter, err := parseFilter(c)
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, codeValidation, "invalid query string")
	}
	pdfBytes, filename, err := h.pdf.DownloadAgingReport(c.UserContext(), filter)
	if err != nil {
		return filterError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(pdfBytes)
}
