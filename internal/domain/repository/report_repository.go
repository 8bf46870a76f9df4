package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// KPITotals sumas crudas del resumen de cartera; el porcentaje vencido lo calcula el use case.
type KPITotals struct {
	TotalInvoiced      decimal.Decimal
	TotalReceived      decimal.Decimal
	TotalOutstanding   decimal.Decimal
	OverdueOutstanding decimal.Decimal
}

// CustomerOutstanding saldo pendiente agregado de un cliente.
type CustomerOutstanding struct {
	CustomerID       int64
	Name             string
	TotalOutstanding decimal.Decimal
}

// ReportRepository define las consultas agregadas de cartera.
// Las implementaciones son read-only (no modifican datos).
type ReportRepository interface {
	// GetKPITotals ejecuta las cuatro sumas con el mismo filtro.
	// today es la fecha de referencia para decidir qué saldo está vencido (due_date < today).
	GetKPITotals(ctx context.Context, filter InvoiceFilter, today time.Time) (KPITotals, error)

	// GetTopOutstanding devuelve los `limit` clientes con mayor saldo pendiente,
	// ordenados de mayor a menor y por customer_id ante empates.
	GetTopOutstanding(ctx context.Context, limit int) ([]CustomerOutstanding, error)
}
