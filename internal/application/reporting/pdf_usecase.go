package reporting

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/cartera-api/internal/application/dto"
	"github.com/jhoicas/cartera-api/internal/application/ports"
	"github.com/jhoicas/cartera-api/internal/domain/entity"
	"github.com/jhoicas/cartera-api/internal/domain/receivables"
	"github.com/jhoicas/cartera-api/internal/domain/repository"
)

var bucketOrder = []receivables.AgingBucket{
	receivables.BucketCurrent,
	receivables.Bucket0To30,
	receivables.Bucket31To60,
	receivables.Bucket61To90,
	receivables.BucketOver90,
}

// PDFUseCase genera el reporte de cartera (listado + KPIs + resumen por bucket) en PDF.
type PDFUseCase struct {
	runner    ports.ConnRunner
	generator ports.AgingReportPDFGenerator
	now       func() time.Time
}

// NewPDFUseCase construye el caso de uso inyectando sus dependencias.
func NewPDFUseCase(runner ports.ConnRunner, generator ports.AgingReportPDFGenerator, now func() time.Time) *PDFUseCase {
	if now == nil {
		now = time.Now
	}
	return &PDFUseCase{runner: runner, generator: generator, now: now}
}

// DownloadAgingReport arma el reporte con los mismos filtros de GET /invoices.
// El listado y los KPIs se leen sobre la misma conexión.
//
// Retorna (pdfBytes, filename, nil) o domain.ErrInvalidInput si los filtros son inválidos.
func (uc *PDFUseCase) DownloadAgingReport(
	ctx context.Context,
	req dto.InvoiceFilterRequest,
) (pdfBytes []byte, filename string, err error) {
	filter, err := ParseInvoiceFilter(req)
	if err != nil {
		return nil, "", err
	}
	today := receivables.CalendarDate(uc.now())

	var (
		balances []*entity.InvoiceBalance
		totals   repository.KPITotals
	)
	err = uc.runner.WithConn(ctx, func(repos repository.Repositories) error {
		var err error
		if balances, err = repos.Invoices.ListBalances(ctx, filter); err != nil {
			return err
		}
		totals, err = repos.Reports.GetKPITotals(ctx, filter, today)
		return err
	})
	if err != nil {
		return nil, "", fmt.Errorf("pdf: leer cartera: %w", err)
	}

	rows := buildInvoiceRows(balances, today)
	report := &dto.AgingReportDTO{
		GeneratedAt: today.Format(receivables.DateLayout),
		Filter:      req,
		KPIs:        buildKPISummary(totals),
		Buckets:     summarizeBuckets(rows),
		Rows:        rows,
	}

	pdfBytes, err = uc.generator.GenerateAgingReport(ctx, report)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generar reporte: %w", err)
	}
	return pdfBytes, fmt.Sprintf("cartera-%s.pdf", report.GeneratedAt), nil
}

// summarizeBuckets acumula saldo y número de facturas con saldo por bucket.
// Siempre devuelve los cinco buckets, aunque estén en cero.
func summarizeBuckets(rows []dto.InvoiceRowDTO) []dto.AgingBucketTotalDTO {
	idx := make(map[string]int, len(bucketOrder))
	out := make([]dto.AgingBucketTotalDTO, len(bucketOrder))
	for i, b := range bucketOrder {
		idx[string(b)] = i
		out[i] = dto.AgingBucketTotalDTO{Bucket: string(b), Outstanding: decimal.Zero}
	}
	for _, r := range rows {
		if !r.Outstanding.IsPositive() {
			continue
		}
		i := idx[r.AgingBucket]
		out[i].InvoiceCount++
		out[i].Outstanding = out[i].Outstanding.Add(r.Outstanding)
	}
	return out
}
