package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/cartera-api/internal/application/ports"
	"github.com/jhoicas/cartera-api/internal/domain/repository"
)

var _ ports.ConnRunner = (*ConnRunner)(nil)

// ConnRunner adquiere una conexión del pool por operación y la libera siempre
// al terminar, también cuando fn devuelve error o entra en pánico.
type ConnRunner struct {
	pool *pgxpool.Pool
}

// NewConnRunner construye el runner con el pool.
func NewConnRunner(pool *pgxpool.Pool) *ConnRunner {
	return &ConnRunner{pool: pool}
}

// WithConn ejecuta fn con repositorios atados a una única conexión.
// No abre transacción: cada sentencia es atómica por sí sola.
func (r *ConnRunner) WithConn(ctx context.Context, fn func(repos repository.Repositories) error) error {
	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Release()

	return fn(NewRepositories(conn))
}

// NewRepositories construye todos los adaptadores sobre el mismo Querier.
func NewRepositories(q Querier) repository.Repositories {
	return repository.Repositories{
		Customers: NewCustomerRepository(q),
		Invoices:  NewInvoiceRepository(q),
		Payments:  NewPaymentRepository(q),
		Reports:   NewReportRepository(q),
	}
}
