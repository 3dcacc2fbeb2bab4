package validate

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type productInput struct {
	Name  string           `json:"name" validate:"required"`
	Price *decimal.Decimal `json:"price" validate:"required"`
}

func TestCheck(t *testing.T) {
	price := decimal.RequireFromString("2.50")
	if err := Check(productInput{Name: "Milk", Price: &price}); err != nil {
		t.Fatalf("expected valid input, got %v", err)
	}

	zero := decimal.Zero
	if err := Check(productInput{Name: "Free sample", Price: &zero}); err != nil {
		t.Fatalf("zero price should be accepted, got %v", err)
	}
}

func TestCheckFields(t *testing.T) {
	err := Check(productInput{})
	if err == nil {
		t.Fatal("expected validation error")
	}

	var fe FieldErrors
	if !errors.As(err, &fe) {
		t.Fatalf("expected FieldErrors, got %T", err)
	}
	if _, ok := fe["name"]; !ok {
		t.Fatalf("missing name error in %v", fe)
	}
	if _, ok := fe["price"]; !ok {
		t.Fatalf("missing price error in %v", fe)
	}
	if err.Error() != fe["name"] {
		t.Fatalf("expected first field message, got %q", err.Error())
	}
}

func TestCheckMissingPrice(t *testing.T) {
	err := Check(productInput{Name: "Milk"})
	var fe FieldErrors
	if !errors.As(err, &fe) {
		t.Fatalf("expected FieldErrors, got %v", err)
	}
	if _, ok := fe["price"]; !ok {
		t.Fatalf("missing price error in %v", fe)
	}
}

func TestCheckID(t *testing.T) {
	if err := CheckID(uuid.NewString()); err != nil {
		t.Fatalf("valid id rejected: %v", err)
	}
	for _, id := range []string{"", "42", "not-a-uuid"} {
		if err := CheckID(id); err == nil {
			t.Fatalf("expected error for %q", id)
		}
	}
}

func TestBlank(t *testing.T) {
	if !Blank("  \t") || Blank(" x ") {
		t.Fatal("Blank misreports whitespace")
	}
}
