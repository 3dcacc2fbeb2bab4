package repositories

import (
	"context"

	"github.com/Rakhulsr/go-shoppinglist/app/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartItemRepository struct {
	DB *gorm.DB
}

type CartItemRepositoryImpl interface {
	Add(ctx context.Context, item *models.CartLine) error
	UpdateQty(ctx context.Context, cartID, productID string, qty int) error
	Delete(ctx context.Context, cartID string, productID string) error
	GetCartAndProduct(ctx context.Context, cartID, productID string) (*models.CartLine, error)
	FindCartAndProduct(ctx context.Context, cartID, productID string) ([]models.CartLine, error)
	ClearCartItems(ctx context.Context, cartIDs ...string) error
	WithTx(tx *gorm.DB) CartItemRepositoryImpl
}

func NewCartItemRepository(db *gorm.DB) CartItemRepositoryImpl {
	return &CartItemRepository{db}
}

func (r *CartItemRepository) WithTx(tx *gorm.DB) CartItemRepositoryImpl {
	return &CartItemRepository{tx}
}

func (r *CartItemRepository) Add(ctx context.Context, item *models.CartLine) error {
	return r.DB.WithContext(ctx).Omit(clause.Associations).Create(item).Error
}

func (r *CartItemRepository) UpdateQty(ctx context.Context, cartID, productID string, qty int) error {
	return r.DB.WithContext(ctx).
		Model(&models.CartLine{}).
		Where("shopping_cart_id = ? AND product_id = ?", cartID, productID).
		Update("quantity", qty).Error
}

func (r *CartItemRepository) Delete(ctx context.Context, cartID string, productID string) error {
	return r.DB.WithContext(ctx).
		Where("shopping_cart_id = ? AND product_id = ?", cartID, productID).
		Delete(&models.CartLine{}).Error
}

func (r *CartItemRepository) GetCartAndProduct(ctx context.Context, cartID, productID string) (*models.CartLine, error) {
	var item models.CartLine

	err := r.DB.WithContext(ctx).Where("shopping_cart_id = ? AND product_id = ?", cartID, productID).First(&item).Error
	if err != nil {
		return nil, err
	}

	return &item, nil
}

// FindCartAndProduct returns every line for the pair, capped at two, so callers
// can detect a broken composite key.
func (r *CartItemRepository) FindCartAndProduct(ctx context.Context, cartID, productID string) ([]models.CartLine, error) {
	var items []models.CartLine
	err := r.DB.WithContext(ctx).
		Where("shopping_cart_id = ? AND product_id = ?", cartID, productID).
		Limit(2).
		Find(&items).Error
	return items, err
}

func (r *CartItemRepository) ClearCartItems(ctx context.Context, cartIDs ...string) error {
	if len(cartIDs) == 0 {
		return nil
	}
	return r.DB.WithContext(ctx).Where("shopping_cart_id IN ?", cartIDs).Delete(&models.CartLine{}).Error
}
