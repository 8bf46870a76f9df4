package ports

import (
	"context"

	"github.com/jhoicas/cartera-api/internal/application/dto"
)

// AgingReportPDFGenerator puerto de salida para renderizar el reporte de cartera en PDF.
type AgingReportPDFGenerator interface {
	GenerateAgingReport(ctx context.Context, report *dto.AgingReportDTO) ([]byte, error)
}
