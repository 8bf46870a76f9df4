package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/cartera-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura para el resumen de cartera y el ranking de deudores.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// Pagos agregados por factura; evita multiplicar montos de factura al unir con payments.
const paidByInvoice = `
	LEFT JOIN (
	    SELECT invoice_id, SUM(amount) AS total_paid
	    FROM payments
	    GROUP BY invoice_id
	) tp ON tp.invoice_id = i.invoice_id`

const (
	totalInvoicedQuery = `
	SELECT COALESCE(SUM(i.amount), 0) AS total_invoiced
	FROM invoices i
	%s`

	totalReceivedQuery = `
	SELECT COALESCE(SUM(p.amount), 0) AS total_received
	FROM payments p
	JOIN invoices i ON i.invoice_id = p.invoice_id
	%s`

	totalOutstandingQuery = `
	SELECT COALESCE(SUM(GREATEST(i.amount - COALESCE(tp.total_paid, 0), 0)), 0) AS total_outstanding
	FROM invoices i` + paidByInvoice + `
	%s`

	// El último parámetro ($%d) es la fecha de referencia "hoy".
	overdueOutstandingQuery = `
	SELECT COALESCE(SUM(
	    CASE WHEN i.due_date < $%d::date
	         THEN GREATEST(i.amount - COALESCE(tp.total_paid, 0), 0)
	         ELSE 0
	    END), 0) AS overdue_outstanding
	FROM invoices i` + paidByInvoice + `
	%s`
)

// GetKPITotals ejecuta las cuatro sumas de forma secuencial con el mismo WHERE y
// los mismos parámetros, así todas consideran exactamente las mismas facturas.
func (r *ReportRepo) GetKPITotals(
	ctx context.Context,
	filter repository.InvoiceFilter,
	today time.Time,
) (repository.KPITotals, error) {
	where, args := buildInvoiceWhere(filter)
	var out repository.KPITotals

	if err := r.sum(ctx, fmt.Sprintf(totalInvoicedQuery, where), args, &out.TotalInvoiced); err != nil {
		return repository.KPITotals{}, fmt.Errorf("reports.GetKPITotals invoiced: %w", err)
	}
	if err := r.sum(ctx, fmt.Sprintf(totalReceivedQuery, where), args, &out.TotalReceived); err != nil {
		return repository.KPITotals{}, fmt.Errorf("reports.GetKPITotals received: %w", err)
	}
	if err := r.sum(ctx, fmt.Sprintf(totalOutstandingQuery, where), args, &out.TotalOutstanding); err != nil {
		return repository.KPITotals{}, fmt.Errorf("reports.GetKPITotals outstanding: %w", err)
	}

	overdueArgs := append(append([]any{}, args...), today)
	if err := r.sum(ctx, formatOverdueQuery(where, len(overdueArgs)), overdueArgs, &out.OverdueOutstanding); err != nil {
		return repository.KPITotals{}, fmt.Errorf("reports.GetKPITotals overdue: %w", err)
	}
	return out, nil
}

// formatOverdueQuery todayParam es la posición del parámetro "hoy", siempre después de los del filtro.
func formatOverdueQuery(where string, todayParam int) string {
	return fmt.Sprintf(overdueOutstandingQuery, todayParam, where)
}

func (r *ReportRepo) sum(ctx context.Context, query string, args []any, dst *decimal.Decimal) error {
	return r.q.QueryRow(ctx, query, args...).Scan(dst)
}

// GetTopOutstanding ranking global de clientes por saldo pendiente (piso en 0 por factura).
// Solo aparecen clientes con al menos una factura; no se rellena hasta `limit`.
func (r *ReportRepo) GetTopOutstanding(ctx context.Context, limit int) ([]repository.CustomerOutstanding, error) {
	const query = `
	SELECT
	    c.customer_id,
	    c.name,
	    SUM(GREATEST(i.amount - COALESCE(tp.total_paid, 0), 0)) AS total_outstanding
	FROM customers c
	JOIN invoices i ON i.customer_id = c.customer_id` + paidByInvoice + `
	GROUP BY c.customer_id, c.name
	ORDER BY total_outstanding DESC, c.customer_id ASC
	LIMIT $1`

	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("reports.GetTopOutstanding: %w", err)
	}
	defer rows.Close()

	results := []repository.CustomerOutstanding{}
	for rows.Next() {
		var row repository.CustomerOutstanding
		if err := rows.Scan(&row.CustomerID, &row.Name, &row.TotalOutstanding); err != nil {
			return nil, fmt.Errorf("reports.GetTopOutstanding scan: %w", err)
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reports.GetTopOutstanding rows: %w", err)
	}
	return results, nil
}
