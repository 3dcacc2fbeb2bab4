package services

import (
	"testing"

	"github.com/Rakhulsr/go-shoppinglist/app/repositories"
	"github.com/Rakhulsr/go-shoppinglist/app/testutil"
	"gorm.io/gorm"
)

type testEnv struct {
	db       *gorm.DB
	products *ProductService
	carts    *CartService
	lists    *ShoppingListService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := testutil.DB(t)
	log := testutil.Logger(t)

	productRepo := repositories.NewProductRepository(db)
	listRepo := repositories.NewShoppingListRepository(db)
	cartRepo := repositories.NewCartRepository(db)
	cartItemRepo := repositories.NewCartItemRepository(db)

	return &testEnv{
		db:       db,
		products: NewProductService(db, productRepo, log),
		carts:    NewCartService(db, cartRepo, cartItemRepo, productRepo, listRepo, log),
		lists:    NewShoppingListService(db, listRepo, cartRepo, cartItemRepo, log),
	}
}
