package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/Rakhulsr/go-shoppinglist/app/models"
	"github.com/Rakhulsr/go-shoppinglist/app/testutil"
	"gorm.io/gorm"
)

func TestCartItemRepository(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()

	list := testutil.SeedList(t, db, "Groceries")
	cart := testutil.SeedCart(t, db, "Weekly", list.ID)
	milk := testutil.SeedProduct(t, db, "Milk", "2.50")

	repo := NewCartItemRepository(db)

	if err := repo.Add(ctx, &models.CartLine{ShoppingCartID: cart.ID, ProductID: milk.ID, Quantity: 3}); err != nil {
		t.Fatalf("Add: %v", err)
	}

	got, err := repo.GetCartAndProduct(ctx, cart.ID, milk.ID)
	if err != nil {
		t.Fatalf("GetCartAndProduct: %v", err)
	}
	if got.Quantity != 3 {
		t.Fatalf("GetCartAndProduct: quantity = %d, want 3", got.Quantity)
	}

	if err := repo.UpdateQty(ctx, cart.ID, milk.ID, 5); err != nil {
		t.Fatalf("UpdateQty: %v", err)
	}
	lines, err := repo.FindCartAndProduct(ctx, cart.ID, milk.ID)
	if err != nil {
		t.Fatalf("FindCartAndProduct: %v", err)
	}
	if len(lines) != 1 || lines[0].Quantity != 5 {
		t.Fatalf("FindCartAndProduct: unexpected lines %+v", lines)
	}

	if err := repo.Delete(ctx, cart.ID, milk.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.GetCartAndProduct(ctx, cart.ID, milk.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("GetCartAndProduct after delete: got %v, want ErrRecordNotFound", err)
	}
}

func TestCartItemRepositoryCompositeKey(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()

	list := testutil.SeedList(t, db, "Groceries")
	cart := testutil.SeedCart(t, db, "Weekly", list.ID)
	milk := testutil.SeedProduct(t, db, "Milk", "2.50")

	repo := NewCartItemRepository(db)
	if err := repo.Add(ctx, &models.CartLine{ShoppingCartID: cart.ID, ProductID: milk.ID, Quantity: 1}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := repo.Add(ctx, &models.CartLine{ShoppingCartID: cart.ID, ProductID: milk.ID, Quantity: 1}); err == nil {
		t.Fatalf("expected duplicate (cart, product) insert to fail")
	}
}

func TestCartItemRepositoryClearCartItems(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()

	list := testutil.SeedList(t, db, "Groceries")
	a := testutil.SeedCart(t, db, "A", list.ID)
	b := testutil.SeedCart(t, db, "B", list.ID)
	keep := testutil.SeedCart(t, db, "Keep", list.ID)
	milk := testutil.SeedProduct(t, db, "Milk", "2.50")
	eggs := testutil.SeedProduct(t, db, "Eggs", "0.35")

	testutil.SeedLine(t, db, a.ID, milk.ID, 1)
	testutil.SeedLine(t, db, a.ID, eggs.ID, 6)
	testutil.SeedLine(t, db, b.ID, milk.ID, 2)
	testutil.SeedLine(t, db, keep.ID, milk.ID, 4)

	repo := NewCartItemRepository(db)
	if err := repo.ClearCartItems(ctx, a.ID, b.ID); err != nil {
		t.Fatalf("ClearCartItems: %v", err)
	}
	if err := repo.ClearCartItems(ctx); err != nil {
		t.Fatalf("ClearCartItems (no ids): %v", err)
	}

	for _, id := range []string{a.ID, b.ID} {
		if n := testutil.CountLines(t, db, id); n != 0 {
			t.Fatalf("cart %s still has %d lines", id, n)
		}
	}
	if n := testutil.CountLines(t, db, keep.ID); n != 1 {
		t.Fatalf("untouched cart has %d lines, want 1", n)
	}
}
