package repository

import (
	"context"

	"github.com/jhoicas/cartera-api/internal/domain/entity"
)

// PaymentRepository define el puerto de escritura de pagos (solo inserción).
type PaymentRepository interface {
	// Create inserta el pago y asigna payment.ID con el valor generado por la base.
	Create(ctx context.Context, payment *entity.Payment) error
}
