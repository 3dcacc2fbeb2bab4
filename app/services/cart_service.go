package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Rakhulsr/go-shoppinglist/app/models"
	"github.com/Rakhulsr/go-shoppinglist/app/repositories"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type CartService struct {
	db           *gorm.DB
	cartRepo     repositories.CartRepositoryImpl
	cartItemRepo repositories.CartItemRepositoryImpl
	productRepo  repositories.ProductRepositoryImpl
	listRepo     repositories.ShoppingListRepositoryImpl
	log          logrus.FieldLogger
}

func NewCartService(
	db *gorm.DB,
	cartRepo repositories.CartRepositoryImpl,
	cartItemRepo repositories.CartItemRepositoryImpl,
	productRepo repositories.ProductRepositoryImpl,
	listRepo repositories.ShoppingListRepositoryImpl,
	log logrus.FieldLogger,
) *CartService {
	return &CartService{
		db:           db,
		cartRepo:     cartRepo,
		cartItemRepo: cartItemRepo,
		productRepo:  productRepo,
		listRepo:     listRepo,
		log:          log,
	}
}

func (s *CartService) ListAll(ctx context.Context) ([]models.CartView, error) {
	carts, err := s.cartRepo.GetAllWithItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing shopping carts: %w", err)
	}
	return models.NewCartViews(carts), nil
}

func (s *CartService) Get(ctx context.Context, id string) (*models.CartView, error) {
	if err := checkID("id", id); err != nil {
		return nil, err
	}
	cart, err := s.cartRepo.GetCartWithItems(ctx, id)
	if err != nil {
		return nil, lookupErr(err, "shopping cart")
	}
	view := models.NewCartView(*cart)
	return &view, nil
}

// Create makes an empty cart inside an existing list.
func (s *CartService) Create(ctx context.Context, name, listID string) (*models.CartView, error) {
	if err := requireName(name); err != nil {
		return nil, err
	}
	if err := checkID("shoppingListId", listID); err != nil {
		return nil, err
	}

	cart := &models.ShoppingCart{Name: name, ShoppingListID: &listID}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.listRepo.WithTx(tx).GetByID(ctx, listID); err != nil {
			return lookupErr(err, "shopping list")
		}
		if err := s.cartRepo.WithTx(tx).CreateCart(ctx, cart); err != nil {
			return fmt.Errorf("creating shopping cart: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{"cart_id": cart.ID, "list_id": listID}).Info("shopping cart created")
	return s.Get(ctx, cart.ID)
}

// AddProduct increments the quantity of an existing line or inserts a new one.
// Negative quantities are applied as given.
func (s *CartService) AddProduct(ctx context.Context, cartID, productID string, qty int) (*models.CartView, error) {
	if err := checkID("cartId", cartID); err != nil {
		return nil, err
	}
	if err := checkID("productId", productID); err != nil {
		return nil, err
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		items := s.cartItemRepo.WithTx(tx)

		if _, err := s.cartRepo.WithTx(tx).GetByID(ctx, cartID); err != nil {
			return lookupErr(err, "shopping cart")
		}
		if _, err := s.productRepo.WithTx(tx).GetByID(ctx, productID); err != nil {
			return lookupErr(err, "product")
		}

		existing, err := items.GetCartAndProduct(ctx, cartID, productID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check existing cart item: %w", err)
		}

		if existing != nil {
			sum := existing.Quantity + qty
			if (qty > 0 && sum < existing.Quantity) || (qty < 0 && sum > existing.Quantity) {
				return fmt.Errorf("%w: quantity overflows", ErrValidation)
			}
			if err := items.UpdateQty(ctx, cartID, productID, sum); err != nil {
				return fmt.Errorf("failed to update cart item: %w", err)
			}
			return nil
		}

		line := &models.CartLine{ShoppingCartID: cartID, ProductID: productID, Quantity: qty}
		if err := items.Add(ctx, line); err != nil {
			return fmt.Errorf("failed to add cart item: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"cart_id":    cartID,
		"product_id": productID,
		"quantity":   qty,
	}).Info("product added to cart")

	return s.Get(ctx, cartID)
}

// UpdateProductQuantity sets the quantity of an existing line.
func (s *CartService) UpdateProductQuantity(ctx context.Context, cartID, productID string, qty int) (*models.CartView, error) {
	if err := checkID("cartId", cartID); err != nil {
		return nil, err
	}
	if err := checkID("productId", productID); err != nil {
		return nil, err
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		items := s.cartItemRepo.WithTx(tx)

		if _, err := s.cartRepo.WithTx(tx).GetByID(ctx, cartID); err != nil {
			return lookupErr(err, "shopping cart")
		}
		if _, err := items.GetCartAndProduct(ctx, cartID, productID); err != nil {
			return lookupErr(err, "cart item")
		}
		if err := items.UpdateQty(ctx, cartID, productID, qty); err != nil {
			return fmt.Errorf("failed to update cart item: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"cart_id":    cartID,
		"product_id": productID,
		"quantity":   qty,
	}).Info("cart item quantity set")

	return s.Get(ctx, cartID)
}

func (s *CartService) RemoveProduct(ctx context.Context, cartID, productID string) error {
	if err := checkID("cartId", cartID); err != nil {
		return err
	}
	if err := checkID("productId", productID); err != nil {
		return err
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		items := s.cartItemRepo.WithTx(tx)

		if _, err := s.cartRepo.WithTx(tx).GetByID(ctx, cartID); err != nil {
			return lookupErr(err, "shopping cart")
		}

		lines, err := items.FindCartAndProduct(ctx, cartID, productID)
		if err != nil {
			return fmt.Errorf("loading cart item: %w", err)
		}
		switch len(lines) {
		case 0:
			return fmt.Errorf("cart item %w", ErrNotFound)
		case 1:
		default:
			return fmt.Errorf("%w: cart %s holds more than one line for product %s", ErrInvariant, cartID, productID)
		}

		if err := items.Delete(ctx, cartID, productID); err != nil {
			return fmt.Errorf("failed to remove cart item: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.WithFields(logrus.Fields{"cart_id": cartID, "product_id": productID}).Info("product removed from cart")
	return nil
}

func (s *CartService) Rename(ctx context.Context, id, name string) (*models.CartView, error) {
	if err := checkID("id", id); err != nil {
		return nil, err
	}
	if err := requireName(name); err != nil {
		return nil, err
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		carts := s.cartRepo.WithTx(tx)
		if _, err := carts.GetByID(ctx, id); err != nil {
			return lookupErr(err, "shopping cart")
		}
		if err := carts.Rename(ctx, id, name); err != nil {
			return fmt.Errorf("renaming shopping cart: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.Get(ctx, id)
}

// Delete removes the cart together with its lines.
func (s *CartService) Delete(ctx context.Context, id string) error {
	if err := checkID("id", id); err != nil {
		return err
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		carts := s.cartRepo.WithTx(tx)

		if _, err := carts.GetByID(ctx, id); err != nil {
			return lookupErr(err, "shopping cart")
		}
		if err := s.cartItemRepo.WithTx(tx).ClearCartItems(ctx, id); err != nil {
			return fmt.Errorf("clearing cart items: %w", err)
		}
		if err := carts.DeleteCart(ctx, id); err != nil {
			return fmt.Errorf("deleting shopping cart: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.WithField("cart_id", id).Info("shopping cart deleted")
	return nil
}
