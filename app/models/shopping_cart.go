package models

import (
	"time"

	"github.com/Rakhulsr/go-shoppinglist/app/utils/calc"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ShoppingCart belongs to at most one list. ShoppingListID is set on creation
// and becomes nil once the cart is detached from its list.
type ShoppingCart struct {
	ID             string     `gorm:"size:36;not null;uniqueIndex;primary_key"`
	Name           string     `gorm:"size:255;not null"`
	ShoppingListID *string    `gorm:"size:36;index"`
	Lines          []CartLine `gorm:"foreignKey:ShoppingCartID;constraint:OnDelete:CASCADE"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (c *ShoppingCart) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return
}

func (c *ShoppingCart) CartPrice() decimal.Decimal {
	prices := make([]decimal.Decimal, 0, len(c.Lines))
	for i := range c.Lines {
		prices = append(prices, c.Lines[i].Price())
	}
	return calc.Sum(prices...)
}

func (c *ShoppingCart) InList(listID string) bool {
	return c.ShoppingListID != nil && *c.ShoppingListID == listID
}
