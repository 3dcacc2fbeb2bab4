package migrations

import (
	"github.com/Rakhulsr/go-shoppinglist/app/models"
	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.Product{}, &models.ShoppingList{}, &models.ShoppingCart{}, &models.CartLine{})
}
