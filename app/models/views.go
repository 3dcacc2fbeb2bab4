package models

import (
	"github.com/Rakhulsr/go-shoppinglist/app/utils/format"
	"github.com/shopspring/decimal"
)

// CartLineView is a cart line with the product resolved. ID is the product id.
type CartLineView struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	LinePrice decimal.Decimal `json:"linePrice"`
}

type CartView struct {
	ID                 string          `json:"id"`
	Name               string          `json:"name"`
	ShoppingListID     *string         `json:"shoppingListId"`
	Products           []CartLineView  `json:"shoppingCartProducts"`
	CartPrice          decimal.Decimal `json:"cartPrice"`
	CartPriceFormatted string          `json:"cartPriceFormatted"`
}

type ListView struct {
	ID                  string          `json:"id"`
	Name                string          `json:"name"`
	Carts               []CartView      `json:"shoppingCarts"`
	TotalPrice          decimal.Decimal `json:"totalPrice"`
	TotalPriceFormatted string          `json:"totalPriceFormatted"`
}

func NewCartLineView(line CartLine) CartLineView {
	v := CartLineView{
		ID:        line.ProductID,
		Price:     decimal.Zero,
		Quantity:  line.Quantity,
		LinePrice: line.Price(),
	}
	if line.Product != nil {
		v.Name = line.Product.Name
		v.Price = line.Product.Price.Decimal
	}
	return v
}

func NewCartView(cart ShoppingCart) CartView {
	lines := make([]CartLineView, 0, len(cart.Lines))
	for _, line := range cart.Lines {
		lines = append(lines, NewCartLineView(line))
	}
	price := cart.CartPrice()
	return CartView{
		ID:                 cart.ID,
		Name:               cart.Name,
		ShoppingListID:     cart.ShoppingListID,
		Products:           lines,
		CartPrice:          price,
		CartPriceFormatted: format.Money(price),
	}
}

func NewCartViews(carts []ShoppingCart) []CartView {
	views := make([]CartView, 0, len(carts))
	for _, c := range carts {
		views = append(views, NewCartView(c))
	}
	return views
}

func NewListView(list ShoppingList) ListView {
	total := list.TotalPrice()
	return ListView{
		ID:                  list.ID,
		Name:                list.Name,
		Carts:               NewCartViews(list.ShoppingCarts),
		TotalPrice:          total,
		TotalPriceFormatted: format.Money(total),
	}
}

func NewListViews(lists []ShoppingList) []ListView {
	views := make([]ListView, 0, len(lists))
	for _, l := range lists {
		views = append(views, NewListView(l))
	}
	return views
}
