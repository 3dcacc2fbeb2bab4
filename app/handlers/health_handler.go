package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Rakhulsr/go-shoppinglist/app/web"
	"github.com/Rakhulsr/go-shoppinglist/app/weberr"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) Check(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		return weberr.NewError(fmt.Errorf("pinging database: %w", err), "database unavailable", http.StatusServiceUnavailable)
	}
	return web.Respond(ctx, w, map[string]string{"status": "ok"}, http.StatusOK)
}
