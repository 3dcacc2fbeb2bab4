package repositories

import (
	"context"

	"github.com/Rakhulsr/go-shoppinglist/app/models"
	"gorm.io/gorm"
)

type ShoppingListRepositoryImpl interface {
	GetAllWithCarts(ctx context.Context) ([]models.ShoppingList, error)
	GetByIDWithCarts(ctx context.Context, id string) (*models.ShoppingList, error)
	GetByID(ctx context.Context, id string) (*models.ShoppingList, error)
	Create(ctx context.Context, list *models.ShoppingList) error
	Rename(ctx context.Context, id, name string) error
	Delete(ctx context.Context, id string) error
	WithTx(tx *gorm.DB) ShoppingListRepositoryImpl
}

type shoppingListRepository struct {
	db *gorm.DB
}

func NewShoppingListRepository(db *gorm.DB) ShoppingListRepositoryImpl {
	return &shoppingListRepository{db: db}
}

func (r *shoppingListRepository) WithTx(tx *gorm.DB) ShoppingListRepositoryImpl {
	return &shoppingListRepository{db: tx}
}

// withHierarchy preloads list -> carts -> lines -> product.
func withHierarchy(db *gorm.DB) *gorm.DB {
	return db.
		Preload("ShoppingCarts", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
		Preload("ShoppingCarts.Lines", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
		Preload("ShoppingCarts.Lines.Product")
}

func (r *shoppingListRepository) GetAllWithCarts(ctx context.Context) ([]models.ShoppingList, error) {
	var lists []models.ShoppingList
	err := withHierarchy(r.db.WithContext(ctx)).Order("created_at ASC").Find(&lists).Error
	if err != nil {
		return nil, err
	}
	return lists, nil
}

func (r *shoppingListRepository) GetByIDWithCarts(ctx context.Context, id string) (*models.ShoppingList, error) {
	var list models.ShoppingList
	if err := withHierarchy(r.db.WithContext(ctx)).First(&list, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &list, nil
}

func (r *shoppingListRepository) GetByID(ctx context.Context, id string) (*models.ShoppingList, error) {
	var list models.ShoppingList
	if err := r.db.WithContext(ctx).First(&list, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &list, nil
}

func (r *shoppingListRepository) Create(ctx context.Context, list *models.ShoppingList) error {
	return r.db.WithContext(ctx).Omit("ShoppingCarts").Create(list).Error
}

func (r *shoppingListRepository) Rename(ctx context.Context, id, name string) error {
	return r.db.WithContext(ctx).Model(&models.ShoppingList{ID: id}).Update("name", name).Error
}

func (r *shoppingListRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.ShoppingList{}, "id = ?", id).Error
}
