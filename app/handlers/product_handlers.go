package handlers

import (
	"context"
	"net/http"

	"github.com/Rakhulsr/go-shoppinglist/app/services"
	"github.com/Rakhulsr/go-shoppinglist/app/web"
	"github.com/shopspring/decimal"
)

type ProductHandler struct {
	svc *services.ProductService
}

func NewProductHandler(svc *services.ProductService) *ProductHandler {
	return &ProductHandler{svc: svc}
}

type productRequest struct {
	Name  string           `json:"name" validate:"required"`
	Price *decimal.Decimal `json:"price" validate:"required"`
}

func (h *ProductHandler) List(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	products, err := h.svc.ListAll(ctx)
	if err != nil {
		return serviceErr(err)
	}
	return web.Respond(ctx, w, products, http.StatusOK)
}

func (h *ProductHandler) Show(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	product, err := h.svc.Get(ctx, web.Param(r, "id"))
	if err != nil {
		return serviceErr(err)
	}
	return web.Respond(ctx, w, product, http.StatusOK)
}

func (h *ProductHandler) Create(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	var req productRequest
	if err := decode(w, r, &req); err != nil {
		return err
	}

	product, err := h.svc.Create(ctx, req.Name, *req.Price)
	if err != nil {
		return serviceErr(err)
	}
	return web.Created(ctx, w, "/api/product/"+product.ID, product)
}

func (h *ProductHandler) Update(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	var req productRequest
	if err := decode(w, r, &req); err != nil {
		return err
	}

	product, err := h.svc.Update(ctx, web.Param(r, "id"), req.Name, *req.Price)
	if err != nil {
		return serviceErr(err)
	}
	return web.Respond(ctx, w, product, http.StatusOK)
}

func (h *ProductHandler) Delete(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	if err := h.svc.Delete(ctx, web.Param(r, "id")); err != nil {
		return serviceErr(err)
	}
	return web.Respond(ctx, w, nil, http.StatusNoContent)
}
