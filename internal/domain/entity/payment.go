package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment abono a una factura. Solo se inserta; nunca se actualiza ni se borra.
type Payment struct {
	ID          int64 // asignado por la base de datos
	InvoiceID   int64
	PaymentDate time.Time
	Amount      decimal.Decimal
}
