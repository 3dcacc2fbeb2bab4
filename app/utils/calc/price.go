package calc

import "github.com/shopspring/decimal"

// LinePrice is unit price times quantity. Negative quantities are not rejected.
func LinePrice(price decimal.Decimal, qty int) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(int64(qty)))
}

func Sum(values ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}
