package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cartera-api/internal/application/billing"
	"github.com/jhoicas/cartera-api/internal/application/reporting"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CustomerUC *billing.CustomerUseCase
	PaymentUC  *billing.PaymentUseCase
	ReportUC   *reporting.ReportUseCase
	PDFUC      *reporting.PDFUseCase
	Metrics    *Metrics // opcional; sin él no se expone /metrics
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	if deps.Metrics != nil {
		app.Get("/metrics", deps.Metrics.Handler())
	}

	customerHandler := NewCustomerHandler(deps.CustomerUC)
	app.Get("/customers", customerHandler.List)

	invoiceHandler := NewInvoiceHandler(deps.ReportUC, deps.PDFUC)
	app.Get("/invoices", invoiceHandler.List)
	app.Get("/invoices/report.pdf", invoiceHandler.ReportPDF)

	reportHandler := NewReportHandler(deps.ReportUC)
	app.Get("/kpis", reportHandler.KPIs)
	app.Get("/top5", reportHandler.Top5)

	paymentHandler := NewPaymentHandler(deps.PaymentUC, deps.Metrics)
	app.Post("/payments", paymentHandler.Create)
}
