package repositories

import (
	"context"

	"github.com/Rakhulsr/go-shoppinglist/app/models"
	"gorm.io/gorm"
)

type CartRepositoryImpl interface {
	GetAllWithItems(ctx context.Context) ([]models.ShoppingCart, error)
	GetCartWithItems(ctx context.Context, cartID string) (*models.ShoppingCart, error)
	GetByID(ctx context.Context, id string) (*models.ShoppingCart, error)
	GetByListID(ctx context.Context, listID string) ([]models.ShoppingCart, error)
	CreateCart(ctx context.Context, cart *models.ShoppingCart) error
	Rename(ctx context.Context, cartID, name string) error
	SetList(ctx context.Context, cartID string, listID *string) error
	DeleteCart(ctx context.Context, cartID string) error
	DeleteByListID(ctx context.Context, listID string) error
	WithTx(tx *gorm.DB) CartRepositoryImpl
}

type cartRepository struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) CartRepositoryImpl {
	return &cartRepository{db}
}

func (r *cartRepository) WithTx(tx *gorm.DB) CartRepositoryImpl {
	return &cartRepository{tx}
}

func withItems(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Lines", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
		Preload("Lines.Product")
}

func (r *cartRepository) GetAllWithItems(ctx context.Context) ([]models.ShoppingCart, error) {
	var carts []models.ShoppingCart
	if err := withItems(r.db.WithContext(ctx)).Order("created_at ASC").Find(&carts).Error; err != nil {
		return nil, err
	}
	return carts, nil
}

func (r *cartRepository) GetCartWithItems(ctx context.Context, cartID string) (*models.ShoppingCart, error) {
	var cart models.ShoppingCart
	if err := withItems(r.db.WithContext(ctx)).Where("id = ?", cartID).First(&cart).Error; err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *cartRepository) GetByID(ctx context.Context, id string) (*models.ShoppingCart, error) {
	var cart models.ShoppingCart
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&cart).Error; err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *cartRepository) GetByListID(ctx context.Context, listID string) ([]models.ShoppingCart, error) {
	var carts []models.ShoppingCart
	if err := r.db.WithContext(ctx).Where("shopping_list_id = ?", listID).Order("created_at ASC").Find(&carts).Error; err != nil {
		return nil, err
	}
	return carts, nil
}

func (r *cartRepository) CreateCart(ctx context.Context, cart *models.ShoppingCart) error {
	return r.db.WithContext(ctx).Omit("Lines").Create(cart).Error
}

func (r *cartRepository) Rename(ctx context.Context, cartID, name string) error {
	return r.db.WithContext(ctx).Model(&models.ShoppingCart{ID: cartID}).Update("name", name).Error
}

// SetList re-parents a cart; a nil listID detaches it.
func (r *cartRepository) SetList(ctx context.Context, cartID string, listID *string) error {
	return r.db.WithContext(ctx).Model(&models.ShoppingCart{ID: cartID}).Update("shopping_list_id", listID).Error
}

func (r *cartRepository) DeleteCart(ctx context.Context, cartID string) error {
	return r.db.WithContext(ctx).Delete(&models.ShoppingCart{}, "id = ?", cartID).Error
}

func (r *cartRepository) DeleteByListID(ctx context.Context, listID string) error {
	return r.db.WithContext(ctx).Where("shopping_list_id = ?", listID).Delete(&models.ShoppingCart{}).Error
}
