package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/cartera-api/internal/domain/entity"
	"github.com/jhoicas/cartera-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación de CustomerRepository (usable con pool o conexión).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o conexión (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// List lista todos los clientes ordenados por nombre.
func (r *CustomerRepo) List(ctx context.Context) ([]*entity.Customer, error) {
	const query = `SELECT customer_id, name FROM customers ORDER BY name`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	list := []*entity.Customer{}
	for rows.Next() {
		var c entity.Customer
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
