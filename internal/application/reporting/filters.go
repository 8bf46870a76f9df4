package reporting

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jhoicas/cartera-api/internal/application/dto"
	"github.com/jhoicas/cartera-api/internal/domain"
	"github.com/jhoicas/cartera-api/internal/domain/receivables"
	"github.com/jhoicas/cartera-api/internal/domain/repository"
)

// ParseInvoiceFilter convierte los filtros de texto en repository.InvoiceFilter.
// Un valor vacío deja el filtro sin aplicar. Valores mal formados devuelven
// domain.ErrInvalidInput (el cliente recibe 400).
// No se exige start_date <= end_date: un rango invertido simplemente no devuelve filas.
func ParseInvoiceFilter(req dto.InvoiceFilterRequest) (repository.InvoiceFilter, error) {
	var f repository.InvoiceFilter

	if s := strings.TrimSpace(req.CustomerID); s != "" {
		// La columna es INTEGER: fuera de rango int32 es un filtro inválido, no un 500.
		id, err := strconv.ParseInt(s, 10, 32)
		if err != nil {
			return repository.InvoiceFilter{}, fmt.Errorf("%w: customer_id %q no es un entero válido", domain.ErrInvalidInput, s)
		}
		f.CustomerID = &id
	}
	if s := strings.TrimSpace(req.StartDate); s != "" {
		d, err := receivables.ParseDate(s)
		if err != nil {
			return repository.InvoiceFilter{}, fmt.Errorf("start_date: %w", err)
		}
		f.StartDate = &d
	}
	if s := strings.TrimSpace(req.EndDate); s != "" {
		d, err := receivables.ParseDate(s)
		if err != nil {
			return repository.InvoiceFilter{}, fmt.Errorf("end_date: %w", err)
		}
		f.EndDate = &d
	}
	return f, nil
}
