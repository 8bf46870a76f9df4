// Package receivables contiene las reglas de dominio de la cartera:
// clasificación por antigüedad (aging) y cálculo de saldos pendientes.
// No tiene dependencias de infraestructura; todo es función pura.
package receivables

import (
	"fmt"
	"time"

	"github.com/jhoicas/cartera-api/internal/domain"
)

// DateLayout formato de fecha de calendario usado en toda la API (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// AgingBucket etiqueta de antigüedad del saldo vencido de una factura.
type AgingBucket string

// Buckets de antigüedad. Los rangos son inclusivos en días de atraso.
const (
	BucketCurrent AgingBucket = "Current" // no vencida (vence hoy o después)
	Bucket0To30   AgingBucket = "0-30"
	Bucket31To60  AgingBucket = "31-60"
	Bucket61To90  AgingBucket = "61-90"
	BucketOver90  AgingBucket = "90+"
)

// Classify devuelve el bucket de antigüedad de una fecha de vencimiento respecto a today.
// Solo se comparan fechas de calendario: la hora y la zona se descartan.
//
//	due >= today  → Current
//	0..30 días    → 0-30
//	31..60 días   → 31-60
//	61..90 días   → 61-90
//	> 90 días     → 90+
func Classify(due, today time.Time) AgingBucket {
	d, t := CalendarDate(due), CalendarDate(today)
	if !d.Before(t) {
		return BucketCurrent
	}
	days := DaysBetween(d, t)
	switch {
	case days <= 30:
		return Bucket0To30
	case days <= 60:
		return Bucket31To60
	case days <= 90:
		return Bucket61To90
	default:
		return BucketOver90
	}
}

// ClassifyString es Classify con la fecha de vencimiento en formato YYYY-MM-DD.
func ClassifyString(due string, today time.Time) (AgingBucket, error) {
	d, err := ParseDate(due)
	if err != nil {
		return "", err
	}
	return Classify(d, today), nil
}

// BucketFor aplica la regla del listado: solo se clasifica por antigüedad cuando
// queda saldo; una factura saldada siempre es Current.
func BucketFor(balance Balance, due, today time.Time) AgingBucket {
	if !balance.Outstanding.IsPositive() {
		return BucketCurrent
	}
	return Classify(due, today)
}

// ParseDate interpreta una fecha YYYY-MM-DD como fecha de calendario en UTC.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: fecha %q no tiene formato YYYY-MM-DD", domain.ErrInvalidInput, s)
	}
	return t, nil
}

// CalendarDate normaliza t a medianoche UTC conservando año, mes y día locales de t.
func CalendarDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween número de días de calendario de from a to (negativo si to es anterior).
func DaysBetween(from, to time.Time) int {
	return int(CalendarDate(to).Sub(CalendarDate(from)).Hours() / 24)
}
