package dto

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// RecordPaymentRequest body de POST /payments. Los punteros distinguen un campo
// ausente (o null) de un valor cero.
type RecordPaymentRequest struct {
	InvoiceID   *int64           `json:"invoice_id"`
	PaymentDate *string          `json:"payment_date"` // YYYY-MM-DD
	Amount      *decimal.Decimal `json:"amount"`       // número o string numérico
}

// UnmarshalJSON trata un string vacío (o solo espacios) como campo ausente,
// igual que null: el formulario del tablero envía "" cuando el input está vacío.
func (r *RecordPaymentRequest) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*r = RecordPaymentRequest{}
	for key, dst := range map[string]any{
		"invoice_id":   &r.InvoiceID,
		"payment_date": &r.PaymentDate,
		"amount":       &r.Amount,
	} {
		v, ok := raw[key]
		if !ok || isBlankString(v) {
			continue
		}
		if err := json.Unmarshal(v, dst); err != nil {
			return err
		}
	}
	return nil
}

func isBlankString(v json.RawMessage) bool {
	v = bytes.TrimSpace(v)
	if len(v) < 2 || v[0] != '"' {
		return false
	}
	var s string
	if err := json.Unmarshal(v, &s); err != nil {
		return false
	}
	return strings.TrimSpace(s) == ""
}
