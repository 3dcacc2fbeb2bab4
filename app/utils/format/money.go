package format

import (
	"sync"

	"github.com/leekchan/accounting"
	"github.com/shopspring/decimal"
)

var (
	mu    sync.RWMutex
	money = accounting.Accounting{Symbol: "$", Precision: 2, Thousand: ",", Decimal: "."}
)

// SetCurrencySymbol changes the symbol used by Money. Called once at startup.
func SetCurrencySymbol(symbol string) {
	mu.Lock()
	defer mu.Unlock()
	money.Symbol = symbol
}

// Money renders a price for display, e.g. "$1,234.50".
func Money(amount decimal.Decimal) string {
	mu.RLock()
	ac := money
	mu.RUnlock()
	return ac.FormatMoneyDecimal(amount)
}
