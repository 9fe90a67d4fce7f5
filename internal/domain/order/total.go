package order

import "github.com/shopspring/decimal"

// Line cantidad y precio unitario de una línea de pedido.
type Line struct {
	Quantity  int
	UnitPrice decimal.Decimal
}

// Subtotal cantidad × precio unitario.
func Subtotal(quantity int, unitPrice decimal.Decimal) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
}

// CalculateTotal suma quantity × unit price de todas las líneas con aritmética decimal exacta.
func CalculateTotal(lines []Line) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(Subtotal(l.Quantity, l.UnitPrice))
	}
	return total
}
