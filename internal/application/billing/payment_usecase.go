package billing

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/jhoicas/cartera-api/internal/application/dto"
	"github.com/jhoicas/cartera-api/internal/application/ports"
	"github.com/jhoicas/cartera-api/internal/domain"
	"github.com/jhoicas/cartera-api/internal/domain/entity"
	"github.com/jhoicas/cartera-api/internal/domain/receivables"
	"github.com/jhoicas/cartera-api/internal/domain/repository"
)

// PaymentPolicy reglas configurables del registro de pagos.
type PaymentPolicy struct {
	// RejectOverpayment rechaza pagos mayores al saldo pendiente. Apagado por
	// defecto: el pago se acepta y se deja un warning en el log.
	RejectOverpayment bool
}

// PaymentUseCase registra pagos contra facturas existentes.
type PaymentUseCase struct {
	runner ports.ConnRunner
	policy PaymentPolicy
	log    zerolog.Logger
}

// NewPaymentUseCase construye el caso de uso.
func NewPaymentUseCase(runner ports.ConnRunner, policy PaymentPolicy, log zerolog.Logger) *PaymentUseCase {
	return &PaymentUseCase{
		runner: runner,
		policy: policy,
		log:    log,
	}
}

// Record valida y registra un pago. Orden de validación:
//  1. invoice_id, payment_date y amount presentes → domain.ErrMissingField
//     (payment_date con formato YYYY-MM-DD → domain.ErrInvalidInput)
//  2. la factura existe                         → domain.ErrNotFound
//  3. amount > 0                                → domain.ErrInvalidAmount
//  4. amount <= saldo, solo si la política lo exige → domain.ErrOverpayment
//
// Inserta exactamente un pago; si alguna validación falla no escribe nada.
func (uc *PaymentUseCase) Record(ctx context.Context, req dto.RecordPaymentRequest) error {
	if req.InvoiceID == nil || *req.InvoiceID == 0 ||
		req.PaymentDate == nil || strings.TrimSpace(*req.PaymentDate) == "" ||
		req.Amount == nil {
		return domain.ErrMissingField
	}
	paymentDate, err := receivables.ParseDate(strings.TrimSpace(*req.PaymentDate))
	if err != nil {
		return fmt.Errorf("payment_date: %w", err)
	}

	invoiceID, amount := *req.InvoiceID, *req.Amount

	return uc.runner.WithConn(ctx, func(repos repository.Repositories) error {
		outstanding, found, err := repos.Invoices.GetOutstanding(ctx, invoiceID)
		if err != nil {
			return fmt.Errorf("billing: saldo de factura: %w", err)
		}
		if !found {
			return domain.ErrNotFound
		}
		if !amount.IsPositive() {
			return domain.ErrInvalidAmount
		}
		if amount.GreaterThan(outstanding) {
			if uc.policy.RejectOverpayment {
				return fmt.Errorf("%w: saldo pendiente %s", domain.ErrOverpayment, outstanding.StringFixed(2))
			}
			uc.log.Warn().
				Int64("invoice_id", invoiceID).
				Str("amount", amount.String()).
				Str("outstanding", outstanding.String()).
				Msg("pago supera el saldo pendiente; se registra igualmente")
		}

		payment := &entity.Payment{
			InvoiceID:   invoiceID,
			PaymentDate: paymentDate,
			Amount:      amount,
		}
		if err := repos.Payments.Create(ctx, payment); err != nil {
			return err
		}
		uc.log.Info().
			Int64("payment_id", payment.ID).
			Int64("invoice_id", invoiceID).
			Str("amount", amount.String()).
			Msg("pago registrado")
		return nil
	})
}
