// Package repotest provee dobles de prueba (testify/mock) de los puertos de
// repository y un ConnRunner en memoria que cuenta adquisiciones y liberaciones.
package repotest

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/jhoicas/cartera-api/internal/domain/entity"
	"github.com/jhoicas/cartera-api/internal/domain/repository"
)

// CustomerRepository mock de repository.CustomerRepository.
type CustomerRepository struct{ mock.Mock }

func (m *CustomerRepository) List(ctx context.Context) ([]*entity.Customer, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]*entity.Customer)
	return list, args.Error(1)
}

// InvoiceRepository mock de repository.InvoiceRepository.
type InvoiceRepository struct{ mock.Mock }

func (m *InvoiceRepository) ListBalances(ctx context.Context, filter repository.InvoiceFilter) ([]*entity.InvoiceBalance, error) {
	args := m.Called(ctx, filter)
	list, _ := args.Get(0).([]*entity.InvoiceBalance)
	return list, args.Error(1)
}

func (m *InvoiceRepository) GetOutstanding(ctx context.Context, invoiceID int64) (decimal.Decimal, bool, error) {
	args := m.Called(ctx, invoiceID)
	out, _ := args.Get(0).(decimal.Decimal)
	return out, args.Bool(1), args.Error(2)
}

// PaymentRepository mock de repository.PaymentRepository.
type PaymentRepository struct{ mock.Mock }

func (m *PaymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	return m.Called(ctx, payment).Error(0)
}

// ReportRepository mock de repository.ReportRepository.
type ReportRepository struct{ mock.Mock }

func (m *ReportRepository) GetKPITotals(ctx context.Context, filter repository.InvoiceFilter, today time.Time) (repository.KPITotals, error) {
	args := m.Called(ctx, filter, today)
	totals, _ := args.Get(0).(repository.KPITotals)
	return totals, args.Error(1)
}

func (m *ReportRepository) GetTopOutstanding(ctx context.Context, limit int) ([]repository.CustomerOutstanding, error) {
	args := m.Called(ctx, limit)
	rows, _ := args.Get(0).([]repository.CustomerOutstanding)
	return rows, args.Error(1)
}

// Runner implementa ports.ConnRunner sin base de datos.
type Runner struct {
	Customers *CustomerRepository
	Invoices  *InvoiceRepository
	Payments  *PaymentRepository
	Reports   *ReportRepository

	AcquireErr error // si no es nil, WithConn falla sin llamar a fn
	Acquired   int
	Released   int
}

// NewRunner crea un Runner con mocks vacíos.
func NewRunner() *Runner {
	return &Runner{
		Customers: &CustomerRepository{},
		Invoices:  &InvoiceRepository{},
		Payments:  &PaymentRepository{},
		Reports:   &ReportRepository{},
	}
}

func (r *Runner) WithConn(_ context.Context, fn func(repos repository.Repositories) error) error {
	if r.AcquireErr != nil {
		return r.AcquireErr
	}
	r.Acquired++
	defer func() { r.Released++ }()
	return fn(repository.Repositories{
		Customers: r.Customers,
		Invoices:  r.Invoices,
		Payments:  r.Payments,
		Reports:   r.Reports,
	})
}

// AssertExpectations verifica las expectativas de todos los mocks.
func (r *Runner) AssertExpectations(t mock.TestingT) {
	r.Customers.AssertExpectations(t)
	r.Invoices.AssertExpectations(t)
	r.Payments.AssertExpectations(t)
	r.Reports.AssertExpectations(t)
}
