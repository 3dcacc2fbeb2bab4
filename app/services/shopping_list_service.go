package services

import (
	"context"
	"fmt"

	"github.com/Rakhulsr/go-shoppinglist/app/models"
	"github.com/Rakhulsr/go-shoppinglist/app/repositories"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type ShoppingListService struct {
	db           *gorm.DB
	listRepo     repositories.ShoppingListRepositoryImpl
	cartRepo     repositories.CartRepositoryImpl
	cartItemRepo repositories.CartItemRepositoryImpl
	log          logrus.FieldLogger
}

func NewShoppingListService(
	db *gorm.DB,
	listRepo repositories.ShoppingListRepositoryImpl,
	cartRepo repositories.CartRepositoryImpl,
	cartItemRepo repositories.CartItemRepositoryImpl,
	log logrus.FieldLogger,
) *ShoppingListService {
	return &ShoppingListService{
		db:           db,
		listRepo:     listRepo,
		cartRepo:     cartRepo,
		cartItemRepo: cartItemRepo,
		log:          log,
	}
}

func (s *ShoppingListService) ListAll(ctx context.Context) ([]models.ListView, error) {
	lists, err := s.listRepo.GetAllWithCarts(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing shopping lists: %w", err)
	}
	return models.NewListViews(lists), nil
}

// Get returns the list with every cart it holds, lines and products resolved.
func (s *ShoppingListService) Get(ctx context.Context, id string) (*models.ListView, error) {
	if err := checkID("id", id); err != nil {
		return nil, err
	}
	list, err := s.listRepo.GetByIDWithCarts(ctx, id)
	if err != nil {
		return nil, lookupErr(err, "shopping list")
	}
	view := models.NewListView(*list)
	return &view, nil
}

func (s *ShoppingListService) Create(ctx context.Context, name string) (*models.ListView, error) {
	if err := requireName(name); err != nil {
		return nil, err
	}

	list := &models.ShoppingList{Name: name}
	if err := s.listRepo.Create(ctx, list); err != nil {
		return nil, fmt.Errorf("creating shopping list: %w", err)
	}

	s.log.WithField("list_id", list.ID).Info("shopping list created")
	return s.Get(ctx, list.ID)
}

// AddCart moves an existing cart into the list. The cart leaves whatever list
// held it before.
func (s *ShoppingListService) AddCart(ctx context.Context, listID, cartID string) (*models.ListView, error) {
	if err := checkID("listId", listID); err != nil {
		return nil, err
	}
	if err := checkID("cartId", cartID); err != nil {
		return nil, err
	}

	var previous *string
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		carts := s.cartRepo.WithTx(tx)

		if _, err := s.listRepo.WithTx(tx).GetByID(ctx, listID); err != nil {
			return lookupErr(err, "shopping list")
		}
		cart, err := carts.GetByID(ctx, cartID)
		if err != nil {
			return lookupErr(err, "shopping cart")
		}
		previous = cart.ShoppingListID

		if err := carts.SetList(ctx, cartID, &listID); err != nil {
			return fmt.Errorf("attaching shopping cart: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	entry := s.log.WithFields(logrus.Fields{"list_id": listID, "cart_id": cartID})
	if previous != nil && *previous != listID {
		entry = entry.WithField("previous_list_id", *previous)
	}
	entry.Info("shopping cart attached to list")

	return s.Get(ctx, listID)
}

func (s *ShoppingListService) Update(ctx context.Context, id, name string) (*models.ListView, error) {
	if err := checkID("id", id); err != nil {
		return nil, err
	}
	if err := requireName(name); err != nil {
		return nil, err
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		lists := s.listRepo.WithTx(tx)
		if _, err := lists.GetByID(ctx, id); err != nil {
			return lookupErr(err, "shopping list")
		}
		if err := lists.Rename(ctx, id, name); err != nil {
			return fmt.Errorf("renaming shopping list: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.Get(ctx, id)
}

// Delete removes the list, its carts and their lines in one transaction.
func (s *ShoppingListService) Delete(ctx context.Context, id string) error {
	if err := checkID("id", id); err != nil {
		return err
	}

	var removed int
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		lists := s.listRepo.WithTx(tx)
		carts := s.cartRepo.WithTx(tx)

		if _, err := lists.GetByID(ctx, id); err != nil {
			return lookupErr(err, "shopping list")
		}

		owned, err := carts.GetByListID(ctx, id)
		if err != nil {
			return fmt.Errorf("loading shopping carts: %w", err)
		}
		cartIDs := make([]string, 0, len(owned))
		for _, c := range owned {
			cartIDs = append(cartIDs, c.ID)
		}

		if err := s.cartItemRepo.WithTx(tx).ClearCartItems(ctx, cartIDs...); err != nil {
			return fmt.Errorf("clearing cart items: %w", err)
		}
		if err := carts.DeleteByListID(ctx, id); err != nil {
			return fmt.Errorf("deleting shopping carts: %w", err)
		}
		if err := lists.Delete(ctx, id); err != nil {
			return fmt.Errorf("deleting shopping list: %w", err)
		}
		removed = len(cartIDs)
		return nil
	})
	if err != nil {
		return err
	}

	s.log.WithFields(logrus.Fields{"list_id": id, "carts": removed}).Info("shopping list deleted")
	return nil
}

// RemoveCart detaches a cart from the list without deleting it. The cart stays
// reachable by id and can be attached again with AddCart.
func (s *ShoppingListService) RemoveCart(ctx context.Context, listID, cartID string) error {
	if err := checkID("listId", listID); err != nil {
		return err
	}
	if err := checkID("cartId", cartID); err != nil {
		return err
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		carts := s.cartRepo.WithTx(tx)

		if _, err := s.listRepo.WithTx(tx).GetByID(ctx, listID); err != nil {
			return lookupErr(err, "shopping list")
		}
		cart, err := carts.GetByID(ctx, cartID)
		if err != nil {
			return lookupErr(err, "shopping cart")
		}
		if !cart.InList(listID) {
			return fmt.Errorf("shopping cart %w in list", ErrNotFound)
		}

		if err := carts.SetList(ctx, cartID, nil); err != nil {
			return fmt.Errorf("detaching shopping cart: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.WithFields(logrus.Fields{"list_id": listID, "cart_id": cartID}).Info("shopping cart removed from list")
	return nil
}
