package routes

import (
	"net/http"

	"github.com/Rakhulsr/go-shoppinglist/app/handlers"
	"github.com/Rakhulsr/go-shoppinglist/app/middlewares"
	"github.com/Rakhulsr/go-shoppinglist/app/repositories"
	"github.com/Rakhulsr/go-shoppinglist/app/services"
	"github.com/Rakhulsr/go-shoppinglist/app/utils/ratelimit"
	"github.com/Rakhulsr/go-shoppinglist/app/web"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Config struct {
	DB  *gorm.DB
	Log logrus.FieldLogger
	// Limiter is optional; nil turns rate limiting off.
	Limiter *ratelimit.Limiter
}

type api struct {
	*mux.Router
	mw  []web.Middleware
	log logrus.FieldLogger
}

func NewRouter(cfg Config) *mux.Router {
	a := &api{
		Router: mux.NewRouter(),
		log:    cfg.Log,
	}

	a.mw = append(a.mw, middlewares.RequestID())
	a.mw = append(a.mw, middlewares.Logger(cfg.Log))
	a.mw = append(a.mw, middlewares.Errors(cfg.Log))
	a.mw = append(a.mw, middlewares.Panics())
	if cfg.Limiter != nil {
		a.mw = append(a.mw, middlewares.RateLimit(cfg.Limiter))
	}

	productRepo := repositories.NewProductRepository(cfg.DB)
	listRepo := repositories.NewShoppingListRepository(cfg.DB)
	cartRepo := repositories.NewCartRepository(cfg.DB)
	cartItemRepo := repositories.NewCartItemRepository(cfg.DB)

	productService := services.NewProductService(cfg.DB, productRepo, cfg.Log)
	cartService := services.NewCartService(cfg.DB, cartRepo, cartItemRepo, productRepo, listRepo, cfg.Log)
	listService := services.NewShoppingListService(cfg.DB, listRepo, cartRepo, cartItemRepo, cfg.Log)

	health := handlers.NewHealthHandler(cfg.DB)
	products := handlers.NewProductHandler(productService)
	carts := handlers.NewCartHandler(cartService)
	lists := handlers.NewShoppingListHandler(listService)

	a.Handle(http.MethodGet, "/healthz", health.Check)

	a.Handle(http.MethodGet, "/api/product", products.List)
	a.Handle(http.MethodPost, "/api/product", products.Create)
	a.Handle(http.MethodGet, "/api/product/{id}", products.Show)
	a.Handle(http.MethodPut, "/api/product/{id}", products.Update)
	a.Handle(http.MethodDelete, "/api/product/{id}", products.Delete)

	a.Handle(http.MethodGet, "/api/shoppingcart", carts.List)
	a.Handle(http.MethodPost, "/api/shoppingcart", carts.Create)
	a.Handle(http.MethodGet, "/api/shoppingcart/{id}", carts.Show)
	a.Handle(http.MethodPut, "/api/shoppingcart/{id}", carts.Rename)
	a.Handle(http.MethodDelete, "/api/shoppingcart/{id}", carts.Delete)
	a.Handle(http.MethodPost, "/api/shoppingcart/{cartId}/addproduct/{productId}", carts.AddProduct)
	a.Handle(http.MethodPut, "/api/shoppingcart/{cartId}/updateproduct/{productId}", carts.UpdateProduct)
	a.Handle(http.MethodDelete, "/api/shoppingcart/{cartId}/removeproduct/{productId}", carts.RemoveProduct)

	a.Handle(http.MethodGet, "/api/shoppinglist", lists.List)
	a.Handle(http.MethodPost, "/api/shoppinglist", lists.Create)
	a.Handle(http.MethodGet, "/api/shoppinglist/{id}", lists.Show)
	a.Handle(http.MethodPut, "/api/shoppinglist/{id}", lists.Update)
	a.Handle(http.MethodDelete, "/api/shoppinglist/{id}", lists.Delete)
	a.Handle(http.MethodPost, "/api/shoppinglist/{listId}/addcart", lists.AddCart)
	a.Handle(http.MethodDelete, "/api/shoppinglist/{listId}/removecart/{cartId}", lists.RemoveCart)

	return a.Router
}

func (a *api) Handle(method string, path string, handler web.Handler, mw ...web.Middleware) {

	handler = web.WrapMiddleware(mw, handler)

	handler = web.WrapMiddleware(a.mw, handler)

	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		ctx := r.Context()

		if err := handler(ctx, w, r); err != nil {

			a.log.WithFields(logrus.Fields{
				"req_id":  middlewares.ContextRequestID(ctx),
				"message": err,
			}).Error("ERROR")
		}
	})

	a.Router.Handle(path, h).Methods(method)
}
