package handlers

import (
	"context"
	"net/http"

	"github.com/Rakhulsr/go-shoppinglist/app/services"
	"github.com/Rakhulsr/go-shoppinglist/app/web"
)

type CartHandler struct {
	cartService *services.CartService
}

func NewCartHandler(cartService *services.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

type createCartRequest struct {
	Name           string `json:"name" validate:"required"`
	ShoppingListID string `json:"shoppingListId" validate:"required"`
}

type renameRequest struct {
	Name string `json:"name" validate:"required"`
}

type quantityRequest struct {
	Quantity *int `json:"quantity" validate:"required"`
}

func (h *CartHandler) List(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	carts, err := h.cartService.ListAll(ctx)
	if err != nil {
		return serviceErr(err)
	}
	return web.Respond(ctx, w, carts, http.StatusOK)
}

func (h *CartHandler) Show(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	cart, err := h.cartService.Get(ctx, web.Param(r, "id"))
	if err != nil {
		return serviceErr(err)
	}
	return web.Respond(ctx, w, cart, http.StatusOK)
}

func (h *CartHandler) Create(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	var req createCartRequest
	if err := decode(w, r, &req); err != nil {
		return err
	}

	cart, err := h.cartService.Create(ctx, req.Name, req.ShoppingListID)
	if err != nil {
		return serviceErr(err)
	}
	return web.Created(ctx, w, "/api/shoppingcart/"+cart.ID, cart)
}

func (h *CartHandler) AddProduct(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	var req quantityRequest
	if err := decode(w, r, &req); err != nil {
		return err
	}

	cart, err := h.cartService.AddProduct(ctx, web.Param(r, "cartId"), web.Param(r, "productId"), *req.Quantity)
	if err != nil {
		return serviceErr(err)
	}
	return web.Respond(ctx, w, cart, http.StatusOK)
}

func (h *CartHandler) UpdateProduct(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	var req quantityRequest
	if err := decode(w, r, &req); err != nil {
		return err
	}

	cart, err := h.cartService.UpdateProductQuantity(ctx, web.Param(r, "cartId"), web.Param(r, "productId"), *req.Quantity)
	if err != nil {
		return serviceErr(err)
	}
	return web.Respond(ctx, w, cart, http.StatusOK)
}

func (h *CartHandler) RemoveProduct(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	if err := h.cartService.RemoveProduct(ctx, web.Param(r, "cartId"), web.Param(r, "productId")); err != nil {
		return serviceErr(err)
	}
	return web.Respond(ctx, w, nil, http.StatusNoContent)
}

func (h *CartHandler) Rename(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	var req renameRequest
	if err := decode(w, r, &req); err != nil {
		return err
	}

	cart, err := h.cartService.Rename(ctx, web.Param(r, "id"), req.Name)
	if err != nil {
		return serviceErr(err)
	}
	return web.Respond(ctx, w, cart, http.StatusOK)
}

func (h *CartHandler) Delete(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	if err := h.cartService.Delete(ctx, web.Param(r, "id")); err != nil {
		return serviceErr(err)
	}
	return web.Respond(ctx, w, nil, http.StatusNoContent)
}
