package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/Rakhulsr/go-shoppinglist/app/models"
	"github.com/Rakhulsr/go-shoppinglist/app/testutil"
	"gorm.io/gorm"
)

func TestProductRepository(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()

	repo := NewProductRepository(db)

	p := &models.Product{Name: "Milk", Price: models.NewMoney(testutil.Price("2.50"))}
	if err := repo.Create(ctx, p); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByID(ctx, p.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Name != "Milk" || !got.Price.Equal(testutil.Price("2.50")) {
		t.Fatalf("GetByID: unexpected product %+v", got)
	}

	if err := repo.Update(ctx, &models.Product{ID: p.ID, Name: "Oat milk", Price: models.NewMoney(testutil.Price("0"))}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	got, err = repo.GetByID(ctx, p.ID)
	if err != nil {
		t.Fatalf("GetByID after update: %v", err)
	}
	if got.Name != "Oat milk" || !got.Price.IsZero() {
		t.Fatalf("Update did not overwrite fields: %+v", got)
	}

	all, err := repo.GetProducts(ctx)
	if err != nil || len(all) != 1 {
		t.Fatalf("GetProducts: %d products, %v", len(all), err)
	}

	if err := repo.Delete(ctx, p.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.GetByID(ctx, p.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("GetByID after delete: got %v, want ErrRecordNotFound", err)
	}
}

func TestProductDeleteLeavesCartLines(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()

	list := testutil.SeedList(t, db, "Groceries")
	cart := testutil.SeedCart(t, db, "Weekly", list.ID)
	milk := testutil.SeedProduct(t, db, "Milk", "2.50")
	testutil.SeedLine(t, db, cart.ID, milk.ID, 2)

	if err := NewProductRepository(db).Delete(ctx, milk.ID); err != nil {
		t.Fatalf("Delete referenced product: %v", err)
	}

	loaded, err := NewCartRepository(db).GetCartWithItems(ctx, cart.ID)
	if err != nil {
		t.Fatalf("GetCartWithItems: %v", err)
	}
	if len(loaded.Lines) != 1 || loaded.Lines[0].Product != nil {
		t.Fatalf("expected one dangling line without product, got %+v", loaded.Lines)
	}
	if !loaded.CartPrice().IsZero() {
		t.Fatalf("dangling line should not contribute to price, got %s", loaded.CartPrice())
	}
}
