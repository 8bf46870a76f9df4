package repository

import "time"

// InvoiceFilter filtros opcionales compartidos por el listado de facturas y los KPIs.
// Un campo nil significa "sin filtro". Las fechas se comparan contra invoice_date
// y ambos extremos son inclusivos.
type InvoiceFilter struct {
	CustomerID *int64
	StartDate  *time.Time
	EndDate    *time.Time
}

// IsEmpty indica que no hay ningún filtro activo.
func (f InvoiceFilter) IsEmpty() bool {
	return f.CustomerID == nil && f.StartDate == nil && f.EndDate == nil
}
