package models

import (
	"testing"

	"github.com/shopspring/decimal"
)

func price(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func money(s string) Money { return NewMoney(price(s)) }

func TestCartPrice(t *testing.T) {
	milk := &Product{ID: "p1", Name: "Milk", Price: money("2.50")}
	bread := &Product{ID: "p2", Name: "Bread", Price: money("1.99")}

	cart := ShoppingCart{
		ID: "c1",
		Lines: []CartLine{
			{ProductID: milk.ID, Product: milk, Quantity: 3},
			{ProductID: bread.ID, Product: bread, Quantity: 2},
		},
	}

	if got, want := cart.CartPrice(), price("11.48"); !got.Equal(want) {
		t.Fatalf("CartPrice = %s, want %s", got, want)
	}
}

func TestCartPriceEmpty(t *testing.T) {
	var cart ShoppingCart
	if got := cart.CartPrice(); !got.IsZero() {
		t.Fatalf("empty cart price = %s, want 0", got)
	}
}

func TestCartPriceSkipsMissingProduct(t *testing.T) {
	milk := &Product{ID: "p1", Price: money("2.50")}
	cart := ShoppingCart{
		Lines: []CartLine{
			{ProductID: "p1", Product: milk, Quantity: 2},
			{ProductID: "deleted", Quantity: 4},
		},
	}
	if got := cart.CartPrice(); !got.Equal(price("5")) {
		t.Fatalf("CartPrice = %s, want 5", got)
	}
}

func TestListTotalPrice(t *testing.T) {
	milk := &Product{ID: "p1", Price: money("2.50")}
	eggs := &Product{ID: "p2", Price: money("0.35")}

	list := ShoppingList{
		ShoppingCarts: []ShoppingCart{
			{Lines: []CartLine{{Product: milk, Quantity: 5}}},
			{Lines: []CartLine{{Product: eggs, Quantity: 12}, {Product: milk, Quantity: 1}}},
			{},
		},
	}

	if got, want := list.TotalPrice(), price("19.20"); !got.Equal(want) {
		t.Fatalf("TotalPrice = %s, want %s", got, want)
	}

	var empty ShoppingList
	if got := empty.TotalPrice(); !got.IsZero() {
		t.Fatalf("empty list total = %s, want 0", got)
	}
}

func TestInList(t *testing.T) {
	listID := "l1"
	cart := ShoppingCart{ShoppingListID: &listID}
	if !cart.InList("l1") {
		t.Fatalf("expected cart to be in l1")
	}
	if cart.InList("l2") {
		t.Fatalf("did not expect cart to be in l2")
	}

	cart.ShoppingListID = nil
	if cart.InList("l1") {
		t.Fatalf("detached cart reported as in list")
	}
}
