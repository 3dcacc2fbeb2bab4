package models

import (
	"time"

	"github.com/Rakhulsr/go-shoppinglist/app/utils/calc"
	"github.com/shopspring/decimal"
)

// CartLine is the quantity of one product in one cart. The product is
// referenced without a foreign key constraint, so deleting a product leaves
// its lines behind with a nil Product after preloading.
type CartLine struct {
	ShoppingCartID string   `gorm:"size:36;primaryKey"`
	ProductID      string   `gorm:"size:36;primaryKey"`
	Product        *Product `gorm:"foreignKey:ProductID;constraint:-"`
	Quantity       int      `gorm:"not null;default:0"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (CartLine) TableName() string {
	return "shopping_cart_products"
}

func (l *CartLine) Price() decimal.Decimal {
	if l.Product == nil {
		return decimal.Zero
	}
	return calc.LinePrice(l.Product.Price.Decimal, l.Quantity)
}
