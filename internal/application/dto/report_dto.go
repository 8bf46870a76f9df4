package dto

import "github.com/shopspring/decimal"

// KPISummaryDTO respuesta de GET /kpis.
type KPISummaryDTO struct {
	TotalInvoiced      decimal.Decimal `json:"total_invoiced"`
	TotalReceived      decimal.Decimal `json:"total_received"`
	TotalOutstanding   decimal.Decimal `json:"total_outstanding"`
	OverdueOutstanding decimal.Decimal `json:"overdue_outstanding"`
	PercentOverdue     decimal.Decimal `json:"percent_overdue"` // overdue / outstanding * 100, 2 decimales; 0 sin saldo
}

// TopDebtorDTO fila de GET /top5.
type TopDebtorDTO struct {
	CustomerID       int64           `json:"customer_id"`
	Name             string          `json:"name"`
	TotalOutstanding decimal.Decimal `json:"total_outstanding"`
}

// AgingReportDTO datos del reporte PDF de cartera.
type AgingReportDTO struct {
	GeneratedAt string               // YYYY-MM-DD, fecha de referencia del aging
	Filter      InvoiceFilterRequest // filtros tal como llegaron
	KPIs        KPISummaryDTO
	Buckets     []AgingBucketTotalDTO // saldo por bucket, en orden Current..90+
	Rows        []InvoiceRowDTO
}

// AgingBucketTotalDTO saldo pendiente acumulado de un bucket.
type AgingBucketTotalDTO struct {
	Bucket       string
	InvoiceCount int
	Outstanding  decimal.Decimal
}
