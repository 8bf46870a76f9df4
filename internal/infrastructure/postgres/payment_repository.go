package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/cartera-api/internal/domain"
	"github.com/jhoicas/cartera-api/internal/domain/entity"
	"github.com/jhoicas/cartera-api/internal/domain/repository"
)

var _ repository.PaymentRepository = (*PaymentRepo)(nil)

// PaymentRepo implementación de PaymentRepository (usable con pool o conexión).
type PaymentRepo struct {
	q Querier
}

// NewPaymentRepository construye el adaptador. Pasar pool o conexión (Querier).
func NewPaymentRepository(q Querier) *PaymentRepo {
	return &PaymentRepo{q: q}
}

// Create inserta un pago y rellena payment.ID.
func (r *PaymentRepo) Create(ctx context.Context, payment *entity.Payment) error {
	const query = `
		INSERT INTO payments (invoice_id, payment_date, amount)
		VALUES ($1, $2, $3)
		RETURNING payment_id`
	err := r.q.QueryRow(ctx, query, payment.InvoiceID, payment.PaymentDate, payment.Amount).Scan(&payment.ID)
	if err != nil {
		// La factura pudo desaparecer entre la validación y el insert.
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert payment: %w", err)
	}
	return nil
}
