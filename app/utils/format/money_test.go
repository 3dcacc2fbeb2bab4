package format

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestMoney(t *testing.T) {
	cases := map[string]string{
		"0":       "$0.00",
		"7.5":     "$7.50",
		"12.50":   "$12.50",
		"1234.5":  "$1,234.50",
		"1000000": "$1,000,000.00",
	}
	for in, want := range cases {
		if got := Money(decimal.RequireFromString(in)); got != want {
			t.Fatalf("Money(%s) = %q, want %q", in, got, want)
		}
	}
}

func TestSetCurrencySymbol(t *testing.T) {
	SetCurrencySymbol("€")
	t.Cleanup(func() { SetCurrencySymbol("$") })

	if got := Money(decimal.RequireFromString("2.5")); got != "€2.50" {
		t.Fatalf("unexpected formatted price: %q", got)
	}
}
