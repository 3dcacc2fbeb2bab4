package services

import (
	"errors"
	"fmt"

	"github.com/Rakhulsr/go-shoppinglist/app/utils/validate"
	"gorm.io/gorm"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("invalid data")
	ErrInvariant  = errors.New("invariant violation")
)

// lookupErr turns a repository read error into ErrNotFound for the entity or
// a wrapped store error.
func lookupErr(err error, entity string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s %w", entity, ErrNotFound)
	}
	return fmt.Errorf("loading %s: %w", entity, err)
}

func checkID(field, id string) error {
	if err := validate.CheckID(id); err != nil {
		return fmt.Errorf("%w: %s is not a valid id", ErrValidation, field)
	}
	return nil
}

func requireName(name string) error {
	if validate.Blank(name) {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	return nil
}
