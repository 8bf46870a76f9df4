package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/cartera-api/internal/domain/entity"
	"github.com/jhoicas/cartera-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación de InvoiceRepository (usable con pool o conexión).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o conexión (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

// %s recibe el WHERE de buildInvoiceWhere.
const listBalancesQuery = `
	SELECT
	    i.invoice_id,
	    c.name                                             AS customer_name,
	    i.amount,
	    COALESCE(SUM(p.amount), 0)                         AS total_paid,
	    GREATEST(i.amount - COALESCE(SUM(p.amount), 0), 0) AS outstanding,
	    i.invoice_date,
	    i.due_date
	FROM invoices i
	JOIN customers c      ON c.customer_id = i.customer_id
	LEFT JOIN payments p  ON p.invoice_id  = i.invoice_id
	%s
	GROUP BY i.invoice_id, c.name, i.amount, i.invoice_date, i.due_date
	ORDER BY i.invoice_date DESC, i.invoice_id DESC`

// ListBalances una fila por factura con lo pagado y el saldo (con piso en 0).
func (r *InvoiceRepo) ListBalances(ctx context.Context, filter repository.InvoiceFilter) ([]*entity.InvoiceBalance, error) {
	where, args := buildInvoiceWhere(filter)
	rows, err := r.q.Query(ctx, fmt.Sprintf(listBalancesQuery, where), args...)
	if err != nil {
		return nil, fmt.Errorf("invoices.ListBalances: %w", err)
	}
	defer rows.Close()

	list := []*entity.InvoiceBalance{}
	for rows.Next() {
		var b entity.InvoiceBalance
		if err := rows.Scan(
			&b.InvoiceID,
			&b.CustomerName,
			&b.Amount,
			&b.TotalPaid,
			&b.Outstanding,
			&b.InvoiceDate,
			&b.DueDate,
		); err != nil {
			return nil, fmt.Errorf("invoices.ListBalances scan: %w", err)
		}
		list = append(list, &b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("invoices.ListBalances rows: %w", err)
	}
	return list, nil
}

// GetOutstanding saldo sin piso de una factura; found=false si no existe.
func (r *InvoiceRepo) GetOutstanding(ctx context.Context, invoiceID int64) (decimal.Decimal, bool, error) {
	const query = `
	SELECT i.amount - COALESCE(SUM(p.amount), 0) AS outstanding
	FROM invoices i
	LEFT JOIN payments p ON p.invoice_id = i.invoice_id
	WHERE i.invoice_id = $1
	GROUP BY i.invoice_id, i.amount`

	var outstanding decimal.Decimal
	err := r.q.QueryRow(ctx, query, invoiceID).Scan(&outstanding)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, false, nil
		}
		return decimal.Zero, false, fmt.Errorf("invoices.GetOutstanding: %w", err)
	}
	return outstanding, true, nil
}
