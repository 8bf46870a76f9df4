// Package reporting contiene los casos de uso de lectura de cartera: listado de
// facturas con antigüedad, KPIs, ranking de deudores y reporte PDF.
package reporting

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/cartera-api/internal/application/dto"
	"github.com/jhoicas/cartera-api/internal/application/ports"
	"github.com/jhoicas/cartera-api/internal/domain/entity"
	"github.com/jhoicas/cartera-api/internal/domain/receivables"
	"github.com/jhoicas/cartera-api/internal/domain/repository"
)

const topDebtorsLimit = 5 // clientes en el ranking de GET /top5

// ReportUseCase orquesta las consultas de cartera y aplica las reglas de dominio:
//   - Clasificación por antigüedad de cada factura con saldo.
//   - Porcentaje vencido del saldo total.
//   - Ranking de deudores.
type ReportUseCase struct {
	runner ports.ConnRunner
	now    func() time.Time
}

// NewReportUseCase construye el caso de uso. now da la fecha de referencia del aging
// (en producción time.Now).
func NewReportUseCase(runner ports.ConnRunner, now func() time.Time) *ReportUseCase {
	if now == nil {
		now = time.Now
	}
	return &ReportUseCase{runner: runner, now: now}
}

// today fecha de calendario de referencia; la misma para el aging y para los KPIs.
func (uc *ReportUseCase) today() time.Time {
	return receivables.CalendarDate(uc.now())
}

// ListInvoices devuelve las facturas filtradas con su bucket de antigüedad.
func (uc *ReportUseCase) ListInvoices(ctx context.Context, req dto.InvoiceFilterRequest) ([]dto.InvoiceRowDTO, error) {
	filter, err := ParseInvoiceFilter(req)
	if err != nil {
		return nil, err
	}

	var balances []*entity.InvoiceBalance
	err = uc.runner.WithConn(ctx, func(repos repository.Repositories) error {
		balances, err = repos.Invoices.ListBalances(ctx, filter)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("reporting: facturas: %w", err)
	}
	return buildInvoiceRows(balances, uc.today()), nil
}

// GetKPIs devuelve los totales de cartera con los mismos filtros que el listado.
func (uc *ReportUseCase) GetKPIs(ctx context.Context, req dto.InvoiceFilterRequest) (*dto.KPISummaryDTO, error) {
	filter, err := ParseInvoiceFilter(req)
	if err != nil {
		return nil, err
	}

	var totals repository.KPITotals
	err = uc.runner.WithConn(ctx, func(repos repository.Repositories) error {
		totals, err = repos.Reports.GetKPITotals(ctx, filter, uc.today())
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("reporting: KPIs: %w", err)
	}
	summary := buildKPISummary(totals)
	return &summary, nil
}

// TopDebtors devuelve hasta 5 clientes con mayor saldo pendiente (sin filtros).
func (uc *ReportUseCase) TopDebtors(ctx context.Context) ([]dto.TopDebtorDTO, error) {
	var rows []repository.CustomerOutstanding
	err := uc.runner.WithConn(ctx, func(repos repository.Repositories) error {
		var err error
		rows, err = repos.Reports.GetTopOutstanding(ctx, topDebtorsLimit)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("reporting: top deudores: %w", err)
	}

	out := make([]dto.TopDebtorDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.TopDebtorDTO{
			CustomerID:       r.CustomerID,
			Name:             r.Name,
			TotalOutstanding: r.TotalOutstanding.Round(2),
		})
	}
	return out, nil
}

// buildInvoiceRows convierte los saldos en filas con bucket. Solo se clasifica por
// antigüedad cuando hay saldo; lo saldado es Current.
func buildInvoiceRows(balances []*entity.InvoiceBalance, today time.Time) []dto.InvoiceRowDTO {
	rows := make([]dto.InvoiceRowDTO, 0, len(balances))
	for _, b := range balances {
		bucket := receivables.BucketFor(receivables.Balance{
			Amount:      b.Amount,
			TotalPaid:   b.TotalPaid,
			Outstanding: b.Outstanding,
		}, b.DueDate, today)

		rows = append(rows, dto.InvoiceRowDTO{
			InvoiceID:    b.InvoiceID,
			CustomerName: b.CustomerName,
			Amount:       b.Amount.Round(2),
			TotalPaid:    b.TotalPaid.Round(2),
			Outstanding:  b.Outstanding.Round(2),
			InvoiceDate:  b.InvoiceDate.Format(receivables.DateLayout),
			DueDate:      b.DueDate.Format(receivables.DateLayout),
			AgingBucket:  string(bucket),
		})
	}
	return rows
}

func buildKPISummary(t repository.KPITotals) dto.KPISummaryDTO {
	return dto.KPISummaryDTO{
		TotalInvoiced:      t.TotalInvoiced.Round(2),
		TotalReceived:      t.TotalReceived.Round(2),
		TotalOutstanding:   t.TotalOutstanding.Round(2),
		OverdueOutstanding: t.OverdueOutstanding.Round(2),
		PercentOverdue:     receivables.PercentOverdue(t.OverdueOutstanding, t.TotalOutstanding),
	}
}
