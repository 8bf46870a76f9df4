package receivables_test

import (
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/cartera-api/internal/domain/receivables"
)

func TestNewBalance_SinPagos(t *testing.T) {
	b := receivables.NewBalance(decimal.RequireFromString("250.75"))
	assert.True(t, b.TotalPaid.IsZero())
	assert.True(t, b.Outstanding.Equal(decimal.RequireFromString("250.75")))
}

func TestNewBalance_PagoTotal(t *testing.T) {
	b := receivables.NewBalance(decimal.NewFromInt(100), decimal.NewFromInt(60), decimal.NewFromInt(40))
	assert.True(t, b.TotalPaid.Equal(decimal.NewFromInt(100)))
	assert.True(t, b.Outstanding.IsZero())
}

// Propiedad: outstanding = max(amount - Σpagos, 0) y nunca es negativo,
// incluso con sobrepagos.
func TestNewBalance_NuncaNegativo(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 1000; i++ {
		amount := decimal.New(rng.Int63n(1_000_000)+1, -2)
		n := rng.Intn(6)
		payments := make([]decimal.Decimal, n)
		sum := decimal.Zero
		for j := range payments {
			payments[j] = decimal.New(rng.Int63n(600_000)+1, -2)
			sum = sum.Add(payments[j])
		}

		b := receivables.NewBalance(amount, payments...)

		assert.False(t, b.Outstanding.IsNegative(), "iteración %d", i)
		assert.True(t, b.TotalPaid.Equal(sum), "iteración %d", i)
		if sum.GreaterThanOrEqual(amount) {
			assert.True(t, b.Outstanding.IsZero(), "iteración %d: amount=%s pagado=%s", i, amount, sum)
		} else {
			assert.True(t, b.Outstanding.Equal(amount.Sub(sum)), "iteración %d", i)
		}
	}
}

func TestPercentOverdue(t *testing.T) {
	cases := []struct {
		name           string
		overdue, total string
		want           string
	}{
		{"sin saldo", "0", "0", "0"},
		{"sin saldo pero con vencido inconsistente", "50", "0", "0"},
		{"total negativo", "10", "-5", "0"},
		{"mitad", "50", "100", "50"},
		{"redondeo", "1", "3", "33.33"},
		{"redondeo arriba", "2", "3", "66.67"},
		{"todo vencido", "100", "100", "100"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := receivables.PercentOverdue(decimal.RequireFromString(tc.overdue), decimal.RequireFromString(tc.total))
			assert.True(t, got.Equal(decimal.RequireFromString(tc.want)), "got %s want %s", got, tc.want)
		})
	}
}

func TestPercentOverdue_NuncaNegativo(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		total := decimal.New(rng.Int63n(100_000)+1, -2)
		overdue := decimal.New(rng.Int63n(total.Mul(decimal.NewFromInt(100)).IntPart()+1), -2)
		pct := receivables.PercentOverdue(overdue, total)
		if overdue.IsZero() {
			assert.True(t, pct.IsZero())
		} else {
			assert.False(t, pct.IsNegative())
		}
	}
}
