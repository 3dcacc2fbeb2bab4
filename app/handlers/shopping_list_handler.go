package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/Rakhulsr/go-shoppinglist/app/services"
	"github.com/Rakhulsr/go-shoppinglist/app/web"
)

type ShoppingListHandler struct {
	listService *services.ShoppingListService
}

func NewShoppingListHandler(listService *services.ShoppingListService) *ShoppingListHandler {
	return &ShoppingListHandler{listService: listService}
}

type addCartRequest struct {
	CartID string `json:"cartId" validate:"required"`
}

// UnmarshalJSON also accepts the cart id as a bare JSON string.
func (a *addCartRequest) UnmarshalJSON(b []byte) error {
	var id string
	if err := json.Unmarshal(b, &id); err == nil {
		a.CartID = id
		return nil
	}

	type body addCartRequest
	var v body
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&v); err != nil {
		return err
	}
	*a = addCartRequest(v)
	return nil
}

func (h *ShoppingListHandler) List(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	lists, err := h.listService.ListAll(ctx)
	if err != nil {
		return serviceErr(err)
	}
	return web.Respond(ctx, w, lists, http.StatusOK)
}

func (h *ShoppingListHandler) Show(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	list, err := h.listService.Get(ctx, web.Param(r, "id"))
	if err != nil {
		return serviceErr(err)
	}
	return web.Respond(ctx, w, list, http.StatusOK)
}

func (h *ShoppingListHandler) Create(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	var req renameRequest
	if err := decode(w, r, &req); err != nil {
		return err
	}

	list, err := h.listService.Create(ctx, req.Name)
	if err != nil {
		return serviceErr(err)
	}
	return web.Created(ctx, w, "/api/shoppinglist/"+list.ID, list)
}

func (h *ShoppingListHandler) AddCart(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	var req addCartRequest
	if err := decode(w, r, &req); err != nil {
		return err
	}

	list, err := h.listService.AddCart(ctx, web.Param(r, "listId"), req.CartID)
	if err != nil {
		return serviceErr(err)
	}
	return web.Respond(ctx, w, list, http.StatusOK)
}

func (h *ShoppingListHandler) Update(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	var req renameRequest
	if err := decode(w, r, &req); err != nil {
		return err
	}

	list, err := h.listService.Update(ctx, web.Param(r, "id"), req.Name)
	if err != nil {
		return serviceErr(err)
	}
	return web.Respond(ctx, w, list, http.StatusOK)
}

func (h *ShoppingListHandler) Delete(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	if err := h.listService.Delete(ctx, web.Param(r, "id")); err != nil {
		return serviceErr(err)
	}
	return web.Respond(ctx, w, nil, http.StatusNoContent)
}

func (h *ShoppingListHandler) RemoveCart(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	if err := h.listService.RemoveCart(ctx, web.Param(r, "listId"), web.Param(r, "cartId")); err != nil {
		return serviceErr(err)
	}
	return web.Respond(ctx, w, nil, http.StatusNoContent)
}
