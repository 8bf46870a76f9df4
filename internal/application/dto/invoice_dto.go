package dto

import "github.com/shopspring/decimal"

// InvoiceFilterRequest filtros opcionales de GET /invoices, GET /kpis y del reporte PDF.
// Se reciben como texto y los valida el use case.
type InvoiceFilterRequest struct {
	CustomerID string `query:"customer_id"` // entero; vacío = todos
	StartDate  string `query:"start_date"`  // YYYY-MM-DD inclusive, sobre invoice_date
	EndDate    string `query:"end_date"`    // YYYY-MM-DD inclusive, sobre invoice_date
}

// InvoiceRowDTO fila del listado de cartera.
type InvoiceRowDTO struct {
	InvoiceID    int64           `json:"invoice_id"`
	CustomerName string          `json:"customer_name"`
	Amount       decimal.Decimal `json:"amount"`
	TotalPaid    decimal.Decimal `json:"total_paid"`
	Outstanding  decimal.Decimal `json:"outstanding"`
	InvoiceDate  string          `json:"invoice_date"` // YYYY-MM-DD
	DueDate      string          `json:"due_date"`     // YYYY-MM-DD
	AgingBucket  string          `json:"aging_bucket"` // Current | 0-30 | 31-60 | 61-90 | 90+
}
