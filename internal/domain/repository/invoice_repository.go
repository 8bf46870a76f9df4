package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/cartera-api/internal/domain/entity"
)

// InvoiceRepository define el puerto de lectura de facturas con sus saldos.
type InvoiceRepository interface {
	// ListBalances devuelve una fila por factura con total pagado y saldo pendiente,
	// ordenadas por invoice_date DESC, invoice_id DESC.
	ListBalances(ctx context.Context, filter InvoiceFilter) ([]*entity.InvoiceBalance, error)

	// GetOutstanding devuelve amount - Σpagos de una factura (sin piso en 0).
	// found=false si la factura no existe.
	GetOutstanding(ctx context.Context, invoiceID int64) (outstanding decimal.Decimal, found bool, err error)
}
