package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ShoppingList struct {
	ID            string         `gorm:"size:36;not null;uniqueIndex;primary_key"`
	Name          string         `gorm:"size:255;not null"`
	ShoppingCarts []ShoppingCart `gorm:"foreignKey:ShoppingListID;constraint:OnDelete:CASCADE"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (l *ShoppingList) BeforeCreate(tx *gorm.DB) (err error) {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	return
}

// TotalPrice sums the cart prices of the loaded carts.
func (l *ShoppingList) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for i := range l.ShoppingCarts {
		total = total.Add(l.ShoppingCarts[i].CartPrice())
	}
	return total
}
