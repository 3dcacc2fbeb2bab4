package fakers

import (
	"math"
	"math/rand"
	"strings"

	"github.com/Rakhulsr/go-shoppinglist/app/models"
	"github.com/go-faker/faker/v4"
	"github.com/shopspring/decimal"
)

// ProductFaker builds an unsaved catalog product with a random name and price.
func ProductFaker() *models.Product {
	name := title(faker.Word()) + " " + title(faker.Word())

	return &models.Product{
		Name:  name,
		Price: models.NewMoney(decimal.NewFromFloat(fakePrice()).Round(2)),
	}
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func fakePrice() float64 {
	return precision(rand.Float64()*math.Pow10(rand.Intn(3)+1), rand.Intn(2)+1)
}

func precision(val float64, pre int) float64 {
	a := math.Pow10(pre)
	return float64(int(val*a)) / a

}
