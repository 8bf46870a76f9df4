package receivables_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cartera-api/internal/domain"
	"github.com/jhoicas/cartera-api/internal/domain/receivables"
)

var today = time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)

func daysAgo(n int) time.Time { return today.AddDate(0, 0, -n) }

func TestClassify_Limites(t *testing.T) {
	cases := []struct {
		name string
		due  time.Time
		want receivables.AgingBucket
	}{
		{"vence mañana", daysAgo(-1), receivables.BucketCurrent},
		{"vence hoy", today, receivables.BucketCurrent},
		{"1 día", daysAgo(1), receivables.Bucket0To30},
		{"7 días", daysAgo(7), receivables.Bucket0To30},
		{"30 días", daysAgo(30), receivables.Bucket0To30},
		{"31 días", daysAgo(31), receivables.Bucket31To60},
		{"45 días", daysAgo(45), receivables.Bucket31To60},
		{"60 días", daysAgo(60), receivables.Bucket31To60},
		{"61 días", daysAgo(61), receivables.Bucket61To90},
		{"75 días", daysAgo(75), receivables.Bucket61To90},
		{"90 días", daysAgo(90), receivables.Bucket61To90},
		{"91 días", daysAgo(91), receivables.BucketOver90},
		{"120 días", daysAgo(120), receivables.BucketOver90},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, receivables.Classify(tc.due, today))
		})
	}
}

func TestClassify_IgnoraHora(t *testing.T) {
	// Vence hoy a las 00:00 y son las 23:59: sigue sin estar vencida.
	lateToday := today.Add(23*time.Hour + 59*time.Minute)
	assert.Equal(t, receivables.BucketCurrent, receivables.Classify(today, lateToday))

	// Ayer a última hora cuenta como 1 día de atraso.
	lateYesterday := daysAgo(1).Add(23 * time.Hour)
	assert.Equal(t, receivables.Bucket0To30, receivables.Classify(lateYesterday, today))
}

func TestClassify_FuturoSiempreCurrent(t *testing.T) {
	for n := 0; n <= 400; n++ {
		assert.Equal(t, receivables.BucketCurrent, receivables.Classify(today.AddDate(0, 0, n), today), "día +%d", n)
	}
}

func TestClassifyString_MismaRespuestaQueFecha(t *testing.T) {
	for n := -10; n <= 200; n++ {
		due := daysAgo(n)
		got, err := receivables.ClassifyString(due.Format(receivables.DateLayout), today)
		require.NoError(t, err)
		assert.Equal(t, receivables.Classify(due, today), got, "días de atraso %d", n)
	}
}

func TestClassifyString_FormatoInvalido(t *testing.T) {
	for _, in := range []string{"", "15/03/2024", "2024-13-01", "2024-02-30", "ayer"} {
		_, err := receivables.ClassifyString(in, today)
		require.Error(t, err, "entrada %q", in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

func TestBucketFor_SaldoCeroEsCurrent(t *testing.T) {
	paid := receivables.NewBalance(decimal.NewFromInt(100), decimal.NewFromInt(100))
	assert.Equal(t, receivables.BucketCurrent, receivables.BucketFor(paid, daysAgo(200), today))

	overpaid := receivables.NewBalance(decimal.NewFromInt(100), decimal.NewFromInt(150))
	assert.Equal(t, receivables.BucketCurrent, receivables.BucketFor(overpaid, daysAgo(45), today))
}

// Factura de 100 vencida hace 10 días y sin pagos: saldo 100 en 0-30.
func TestBucketFor_FacturaVencidaSinPagos(t *testing.T) {
	b := receivables.NewBalance(decimal.NewFromInt(100))
	assert.True(t, b.Outstanding.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, receivables.Bucket0To30, receivables.BucketFor(b, daysAgo(10), today))
}

func TestDaysBetween(t *testing.T) {
	assert.Equal(t, 0, receivables.DaysBetween(today, today))
	assert.Equal(t, 10, receivables.DaysBetween(daysAgo(10), today))
	assert.Equal(t, -3, receivables.DaysBetween(today, daysAgo(3)))
	// cruza el 29 de febrero de 2024
	assert.Equal(t, 29, receivables.DaysBetween(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)))
}
