package receivables

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Balance saldo de una factura a partir de su monto y lo abonado.
type Balance struct {
	Amount      decimal.Decimal
	TotalPaid   decimal.Decimal
	Outstanding decimal.Decimal
}

// NewBalance suma los pagos y calcula el saldo pendiente, que nunca es negativo
// aunque la factura esté sobrepagada.
func NewBalance(amount decimal.Decimal, payments ...decimal.Decimal) Balance {
	paid := decimal.Zero
	for _, p := range payments {
		paid = paid.Add(p)
	}
	return Balance{
		Amount:      amount,
		TotalPaid:   paid,
		Outstanding: Outstanding(amount, paid),
	}
}

// Outstanding max(amount - paid, 0).
func Outstanding(amount, paid decimal.Decimal) decimal.Decimal {
	return decimal.Max(amount.Sub(paid), decimal.Zero)
}

// PercentOverdue overdue / total * 100 redondeado a 2 decimales.
// Es 0 siempre que total no sea positivo, sin importar overdue.
func PercentOverdue(overdue, total decimal.Decimal) decimal.Decimal {
	if !total.IsPositive() {
		return decimal.Zero
	}
	return overdue.Div(total).Mul(hundred).Round(2)
}
