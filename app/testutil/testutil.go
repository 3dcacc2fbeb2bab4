package testutil

import (
	"context"
	"fmt"
	"io"
	"testing"

	"github.com/Rakhulsr/go-shoppinglist/app/models"
	"github.com/Rakhulsr/go-shoppinglist/app/models/migrations"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

// DB opens a private in-memory SQLite database with the schema migrated.
func DB(tb testing.TB) *gorm.DB {
	tb.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		tb.Fatalf("open test db: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		tb.Fatalf("test db handle: %v", err)
	}
	tb.Cleanup(func() { _ = sqlDB.Close() })

	if err := migrations.AutoMigrate(db); err != nil {
		tb.Fatalf("migrate test db: %v", err)
	}
	return db
}

func Logger(tb testing.TB) logrus.FieldLogger {
	tb.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func Price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func SeedProduct(tb testing.TB, db *gorm.DB, name, price string) *models.Product {
	tb.Helper()
	p := &models.Product{Name: name, Price: models.NewMoney(Price(price))}
	if err := db.WithContext(context.Background()).Create(p).Error; err != nil {
		tb.Fatalf("seed product: %v", err)
	}
	return p
}

func SeedList(tb testing.TB, db *gorm.DB, name string) *models.ShoppingList {
	tb.Helper()
	l := &models.ShoppingList{Name: name}
	if err := db.WithContext(context.Background()).Create(l).Error; err != nil {
		tb.Fatalf("seed shopping list: %v", err)
	}
	return l
}

func SeedCart(tb testing.TB, db *gorm.DB, name, listID string) *models.ShoppingCart {
	tb.Helper()
	c := &models.ShoppingCart{Name: name, ShoppingListID: &listID}
	if err := db.WithContext(context.Background()).Create(c).Error; err != nil {
		tb.Fatalf("seed shopping cart: %v", err)
	}
	return c
}

func SeedLine(tb testing.TB, db *gorm.DB, cartID, productID string, qty int) *models.CartLine {
	tb.Helper()
	l := &models.CartLine{ShoppingCartID: cartID, ProductID: productID, Quantity: qty}
	if err := db.WithContext(context.Background()).Create(l).Error; err != nil {
		tb.Fatalf("seed cart line: %v", err)
	}
	return l
}

func CountLines(tb testing.TB, db *gorm.DB, cartID string) int64 {
	tb.Helper()
	var n int64
	if err := db.Model(&models.CartLine{}).Where("shopping_cart_id = ?", cartID).Count(&n).Error; err != nil {
		tb.Fatalf("count cart lines: %v", err)
	}
	return n
}
