package seeders

import (
	"context"
	"fmt"

	"github.com/Rakhulsr/go-shoppinglist/app/db/fakers"
	"github.com/Rakhulsr/go-shoppinglist/app/repositories"
	"github.com/Rakhulsr/go-shoppinglist/app/services"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Seeder struct {
	Name string
	Run  func(ctx context.Context) error
}

type seedServices struct {
	products *services.ProductService
	carts    *services.CartService
	lists    *services.ShoppingListService
}

func newSeedServices(db *gorm.DB, log logrus.FieldLogger) seedServices {
	productRepo := repositories.NewProductRepository(db)
	listRepo := repositories.NewShoppingListRepository(db)
	cartRepo := repositories.NewCartRepository(db)
	cartItemRepo := repositories.NewCartItemRepository(db)

	return seedServices{
		products: services.NewProductService(db, productRepo, log),
		carts:    services.NewCartService(db, cartRepo, cartItemRepo, productRepo, listRepo, log),
		lists:    services.NewShoppingListService(db, listRepo, cartRepo, cartItemRepo, log),
	}
}

func SeedersRegister(db *gorm.DB, log logrus.FieldLogger, products int) []Seeder {
	svc := newSeedServices(db, log)

	return []Seeder{
		{Name: "catalog", Run: func(ctx context.Context) error { return seedCatalog(ctx, svc, products) }},
		{Name: "groceries", Run: func(ctx context.Context) error { return seedGroceries(ctx, svc) }},
	}
}

func DBSeed(ctx context.Context, db *gorm.DB, log logrus.FieldLogger, products int) error {
	for _, seeder := range SeedersRegister(db, log, products) {
		if err := seeder.Run(ctx); err != nil {
			return fmt.Errorf("seeding %s: %w", seeder.Name, err)
		}
		log.WithField("seeder", seeder.Name).Info("seeded")
	}
	return nil
}

func seedCatalog(ctx context.Context, svc seedServices, n int) error {
	for i := 0; i < n; i++ {
		p := fakers.ProductFaker()
		if _, err := svc.products.Create(ctx, p.Name, p.Price.Decimal); err != nil {
			return err
		}
	}
	return nil
}

// seedGroceries builds the Groceries list with a Weekly cart holding five Milk.
func seedGroceries(ctx context.Context, svc seedServices) error {
	milk, err := svc.products.Create(ctx, "Milk", decimal.RequireFromString("2.50"))
	if err != nil {
		return err
	}
	list, err := svc.lists.Create(ctx, "Groceries")
	if err != nil {
		return err
	}
	cart, err := svc.carts.Create(ctx, "Weekly", list.ID)
	if err != nil {
		return err
	}
	if _, err := svc.carts.AddProduct(ctx, cart.ID, milk.ID, 3); err != nil {
		return err
	}
	_, err = svc.carts.UpdateProductQuantity(ctx, cart.ID, milk.ID, 5)
	return err
}
