package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordPaymentRequest_StringVacioEsAusente(t *testing.T) {
	var in RecordPaymentRequest

	require.NoError(t, json.Unmarshal([]byte(`{"invoice_id":"","payment_date":"2025-06-30","amount":" "}`), &in))

	assert.Nil(t, in.InvoiceID)
	assert.Nil(t, in.Amount)
	require.NotNil(t, in.PaymentDate)
	assert.Equal(t, "2025-06-30", *in.PaymentDate)
}

func TestRecordPaymentRequest_MontoNumeroOString(t *testing.T) {
	for _, body := range []string{`{"invoice_id":3,"amount":12.5}`, `{"invoice_id":3,"amount":"12.50"}`} {
		var in RecordPaymentRequest

		require.NoError(t, json.Unmarshal([]byte(body), &in), body)

		require.NotNil(t, in.InvoiceID)
		assert.EqualValues(t, 3, *in.InvoiceID)
		require.NotNil(t, in.Amount)
		assert.Equal(t, "12.5", in.Amount.String())
		assert.Nil(t, in.PaymentDate)
	}
}

func TestRecordPaymentRequest_ValorNoNumericoEsError(t *testing.T) {
	var in RecordPaymentRequest

	assert.Error(t, json.Unmarshal([]byte(`{"invoice_id":1,"amount":"abc"}`), &in))
	assert.Error(t, json.Unmarshal([]byte(`[1,2]`), &in))
}
