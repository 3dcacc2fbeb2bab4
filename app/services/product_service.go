package services

import (
	"context"
	"fmt"

	"github.com/Rakhulsr/go-shoppinglist/app/models"
	"github.com/Rakhulsr/go-shoppinglist/app/repositories"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type ProductService struct {
	db          *gorm.DB
	productRepo repositories.ProductRepositoryImpl
	log         logrus.FieldLogger
}

func NewProductService(db *gorm.DB, productRepo repositories.ProductRepositoryImpl, log logrus.FieldLogger) *ProductService {
	return &ProductService{
		db:          db,
		productRepo: productRepo,
		log:         log,
	}
}

func (s *ProductService) ListAll(ctx context.Context) ([]models.Product, error) {
	products, err := s.productRepo.GetProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing products: %w", err)
	}
	return products, nil
}

func (s *ProductService) Get(ctx context.Context, id string) (*models.Product, error) {
	if err := checkID("id", id); err != nil {
		return nil, err
	}
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, "product")
	}
	return product, nil
}

func validateProduct(name string, price decimal.Decimal) error {
	if err := requireName(name); err != nil {
		return err
	}
	if price.IsNegative() {
		return fmt.Errorf("%w: price must not be negative", ErrValidation)
	}
	if !price.Equal(price.Round(2)) {
		return fmt.Errorf("%w: price must have at most two decimal places", ErrValidation)
	}
	return nil
}

func (s *ProductService) Create(ctx context.Context, name string, price decimal.Decimal) (*models.Product, error) {
	if err := validateProduct(name, price); err != nil {
		return nil, err
	}

	product := &models.Product{Name: name, Price: models.NewMoney(price)}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("creating product: %w", err)
	}

	s.log.WithField("product_id", product.ID).Info("product created")
	return s.Get(ctx, product.ID)
}

// Update overwrites name and price and returns the stored row.
func (s *ProductService) Update(ctx context.Context, id, name string, price decimal.Decimal) (*models.Product, error) {
	if err := checkID("id", id); err != nil {
		return nil, err
	}
	if err := validateProduct(name, price); err != nil {
		return nil, err
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		products := s.productRepo.WithTx(tx)

		product, err := products.GetByID(ctx, id)
		if err != nil {
			return lookupErr(err, "product")
		}

		product.Name = name
		product.Price = models.NewMoney(price)
		if err := products.Update(ctx, product); err != nil {
			return fmt.Errorf("updating product: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.WithField("product_id", id).Info("product updated")
	return s.Get(ctx, id)
}

// Delete removes the product only. Cart lines that reference it are left in
// place and price as zero.
func (s *ProductService) Delete(ctx context.Context, id string) error {
	if err := checkID("id", id); err != nil {
		return err
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		products := s.productRepo.WithTx(tx)

		if _, err := products.GetByID(ctx, id); err != nil {
			return lookupErr(err, "product")
		}
		if err := products.Delete(ctx, id); err != nil {
			return fmt.Errorf("deleting product: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.WithField("product_id", id).Info("product deleted")
	return nil
}
