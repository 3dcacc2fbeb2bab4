package models

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
)

func TestNewListView(t *testing.T) {
	listID := "l1"
	milk := &Product{ID: "p1", Name: "Milk", Price: money("2.50")}

	list := ShoppingList{
		ID:   listID,
		Name: "Groceries",
		ShoppingCarts: []ShoppingCart{
			{
				ID:             "c1",
				Name:           "Weekly",
				ShoppingListID: &listID,
				Lines:          []CartLine{{ShoppingCartID: "c1", ProductID: "p1", Product: milk, Quantity: 5}},
			},
		},
	}

	got := NewListView(list)

	want := ListView{
		ID:   "l1",
		Name: "Groceries",
		Carts: []CartView{
			{
				ID:             "c1",
				Name:           "Weekly",
				ShoppingListID: &listID,
				Products: []CartLineView{
					{ID: "p1", Name: "Milk", Price: price("2.50"), Quantity: 5, LinePrice: price("12.50")},
				},
				CartPrice:          price("12.50"),
				CartPriceFormatted: "$12.50",
			},
		},
		TotalPrice:          price("12.50"),
		TotalPriceFormatted: "$12.50",
	}

	decimalEqual := cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })
	if diff := cmp.Diff(want, got, decimalEqual); diff != "" {
		t.Fatalf("unexpected list view (-want +got):\n%s", diff)
	}
}

func TestNewCartLineViewMissingProduct(t *testing.T) {
	v := NewCartLineView(CartLine{ProductID: "gone", Quantity: 3})
	if v.ID != "gone" || v.Name != "" || !v.Price.IsZero() || !v.LinePrice.IsZero() || v.Quantity != 3 {
		t.Fatalf("unexpected view for dangling line: %+v", v)
	}
}

func TestNewCartViewsEmptyIsNotNil(t *testing.T) {
	if views := NewCartViews(nil); views == nil || len(views) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", views)
	}
}
