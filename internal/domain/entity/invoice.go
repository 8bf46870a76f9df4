package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceBalance es una factura con sus pagos agregados, tal como la devuelve
// el listado de cartera.
type InvoiceBalance struct {
	InvoiceID    int64
	CustomerName string
	Amount       decimal.Decimal
	TotalPaid    decimal.Decimal // 0 si no hay pagos
	Outstanding  decimal.Decimal // max(Amount - TotalPaid, 0)
	InvoiceDate  time.Time
	DueDate      time.Time
}
