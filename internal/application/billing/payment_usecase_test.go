package billing_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cartera-api/internal/application/billing"
	"github.com/jhoicas/cartera-api/internal/application/dto"
	"github.com/jhoicas/cartera-api/internal/domain"
	"github.com/jhoicas/cartera-api/internal/domain/entity"
	"github.com/jhoicas/cartera-api/internal/domain/repository/repotest"
)

func ptr[T any](v T) *T { return &v }

func paymentRequest(invoiceID int64, date, amount string) dto.RecordPaymentRequest {
	return dto.RecordPaymentRequest{
		InvoiceID:   ptr(invoiceID),
		PaymentDate: ptr(date),
		Amount:      ptr(decimal.RequireFromString(amount)),
	}
}

func newPaymentUseCase(runner *repotest.Runner, policy billing.PaymentPolicy) *billing.PaymentUseCase {
	return billing.NewPaymentUseCase(runner, policy, zerolog.Nop())
}

func TestRecord_PagoValido(t *testing.T) {
	runner := repotest.NewRunner()
	runner.Invoices.On("GetOutstanding", mock.Anything, int64(1)).
		Return(decimal.RequireFromString("1000.00"), true, nil)
	runner.Payments.On("Create", mock.Anything, mock.MatchedBy(func(p *entity.Payment) bool {
		return p.InvoiceID == 1 &&
			p.Amount.Equal(decimal.RequireFromString("250.50")) &&
			p.PaymentDate.Format("2006-01-02") == "2025-03-15"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.Payment).ID = 42
	}).Return(nil).Once()

	uc := newPaymentUseCase(runner, billing.PaymentPolicy{})
	err := uc.Record(context.Background(), paymentRequest(1, "2025-03-15", "250.50"))

	require.NoError(t, err)
	runner.AssertExpectations(t)
	assert.Equal(t, 1, runner.Acquired)
	assert.Equal(t, runner.Acquired, runner.Released)
}

func TestRecord_MontoCero_Rechazado(t *testing.T) {
	runner := repotest.NewRunner()
	runner.Invoices.On("GetOutstanding", mock.Anything, int64(1)).
		Return(decimal.RequireFromString("1000.00"), true, nil)

	uc := newPaymentUseCase(runner, billing.PaymentPolicy{})
	err := uc.Record(context.Background(), paymentRequest(1, "2025-03-15", "0"))

	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	runner.Payments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRecord_MontoNegativo_Rechazado(t *testing.T) {
	runner := repotest.NewRunner()
	runner.Invoices.On("GetOutstanding", mock.Anything, int64(1)).
		Return(decimal.RequireFromString("1000.00"), true, nil)

	uc := newPaymentUseCase(runner, billing.PaymentPolicy{})
	err := uc.Record(context.Background(), paymentRequest(1, "2025-03-15", "-5"))

	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	runner.Payments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRecord_FacturaInexistente(t *testing.T) {
	runner := repotest.NewRunner()
	runner.Invoices.On("GetOutstanding", mock.Anything, int64(999)).
		Return(decimal.Zero, false, nil)

	uc := newPaymentUseCase(runner, billing.PaymentPolicy{})
	err := uc.Record(context.Background(), paymentRequest(999, "2025-03-15", "10"))

	assert.ErrorIs(t, err, domain.ErrNotFound)
	runner.Payments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	assert.Equal(t, runner.Acquired, runner.Released)
}

// La existencia de la factura se valida antes que el monto.
func TestRecord_FacturaInexistenteConMontoCero(t *testing.T) {
	runner := repotest.NewRunner()
	runner.Invoices.On("GetOutstanding", mock.Anything, int64(999)).
		Return(decimal.Zero, false, nil)

	uc := newPaymentUseCase(runner, billing.PaymentPolicy{})
	err := uc.Record(context.Background(), paymentRequest(999, "2025-03-15", "0"))

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRecord_CamposFaltantes(t *testing.T) {
	full := paymentRequest(1, "2025-03-15", "10")

	cases := map[string]dto.RecordPaymentRequest{
		"sin invoice_id":     {PaymentDate: full.PaymentDate, Amount: full.Amount},
		"invoice_id cero":    {InvoiceID: ptr(int64(0)), PaymentDate: full.PaymentDate, Amount: full.Amount},
		"sin payment_date":   {InvoiceID: full.InvoiceID, Amount: full.Amount},
		"payment_date vacío": {InvoiceID: full.InvoiceID, PaymentDate: ptr("  "), Amount: full.Amount},
		"sin amount":         {InvoiceID: full.InvoiceID, PaymentDate: full.PaymentDate},
		"todo vacío":         {},
	}
	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			runner := repotest.NewRunner()
			uc := newPaymentUseCase(runner, billing.PaymentPolicy{})

			err := uc.Record(context.Background(), req)

			assert.ErrorIs(t, err, domain.ErrMissingField)
			assert.Zero(t, runner.Acquired, "no debe tocar la base de datos")
		})
	}
}

func TestRecord_FechaInvalida(t *testing.T) {
	for _, date := range []string{"15/03/2025", "2025-13-01", "ayer"} {
		t.Run(date, func(t *testing.T) {
			runner := repotest.NewRunner()
			uc := newPaymentUseCase(runner, billing.PaymentPolicy{})

			err := uc.Record(context.Background(), paymentRequest(1, date, "10"))

			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Zero(t, runner.Acquired)
		})
	}
}

func TestRecord_SobrepagoPermitidoPorDefecto(t *testing.T) {
	runner := repotest.NewRunner()
	runner.Invoices.On("GetOutstanding", mock.Anything, int64(3)).
		Return(decimal.RequireFromString("100.00"), true, nil)
	runner.Payments.On("Create", mock.Anything, mock.Anything).Return(nil).Once()

	uc := newPaymentUseCase(runner, billing.PaymentPolicy{})
	err := uc.Record(context.Background(), paymentRequest(3, "2025-03-15", "150"))

	require.NoError(t, err)
	runner.AssertExpectations(t)
}

func TestRecord_SobrepagoRechazadoPorPolitica(t *testing.T) {
	runner := repotest.NewRunner()
	runner.Invoices.On("GetOutstanding", mock.Anything, int64(3)).
		Return(decimal.RequireFromString("100.00"), true, nil)

	uc := newPaymentUseCase(runner, billing.PaymentPolicy{RejectOverpayment: true})
	err := uc.Record(context.Background(), paymentRequest(3, "2025-03-15", "100.01"))

	assert.ErrorIs(t, err, domain.ErrOverpayment)
	runner.Payments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRecord_PagoExactoAlSaldoConPolitica(t *testing.T) {
	runner := repotest.NewRunner()
	runner.Invoices.On("GetOutstanding", mock.Anything, int64(3)).
		Return(decimal.RequireFromString("100.00"), true, nil)
	runner.Payments.On("Create", mock.Anything, mock.Anything).Return(nil).Once()

	uc := newPaymentUseCase(runner, billing.PaymentPolicy{RejectOverpayment: true})
	err := uc.Record(context.Background(), paymentRequest(3, "2025-03-15", "100"))

	require.NoError(t, err)
	runner.AssertExpectations(t)
}

func TestRecord_ErrorDeBaseDeDatos(t *testing.T) {
	dbErr := errors.New("conexión perdida")
	runner := repotest.NewRunner()
	runner.Invoices.On("GetOutstanding", mock.Anything, int64(1)).
		Return(decimal.Zero, false, dbErr)

	uc := newPaymentUseCase(runner, billing.PaymentPolicy{})
	err := uc.Record(context.Background(), paymentRequest(1, "2025-03-15", "10"))

	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, runner.Acquired, runner.Released)
}

func TestRecord_ErrorAlAdquirirConexion(t *testing.T) {
	runner := repotest.NewRunner()
	runner.AcquireErr = errors.New("pool agotado")

	uc := newPaymentUseCase(runner, billing.PaymentPolicy{})
	err := uc.Record(context.Background(), paymentRequest(1, "2025-03-15", "10"))

	assert.ErrorIs(t, err, runner.AcquireErr)
}
