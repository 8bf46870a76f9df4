package postgres

import (
	"fmt"
	"strings"

	"github.com/jhoicas/cartera-api/internal/domain/repository"
)

// buildInvoiceWhere compone el WHERE común del listado de facturas y de los KPIs.
// Los valores van siempre como parámetros posicionales ($1, $2, ...) en el orden
// customer_id, start_date, end_date; los filtros ausentes no generan fragmento ni parámetro.
// Sin filtros devuelve "" y nil. Las consultas deben usar el alias "i" para invoices.
func buildInvoiceWhere(f repository.InvoiceFilter) (string, []any) {
	if f.IsEmpty() {
		return "", nil
	}

	var conds []string
	var args []any
	add := func(cond string, value any) {
		args = append(args, value)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if f.CustomerID != nil {
		add("i.customer_id = $%d", *f.CustomerID)
	}
	if f.StartDate != nil {
		add("i.invoice_date >= $%d", *f.StartDate)
	}
	if f.EndDate != nil {
		add("i.invoice_date <= $%d", *f.EndDate)
	}

	return "WHERE " + strings.Join(conds, " AND "), args
}
