package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Categorías de producto del menú.
const (
	CategoryHotDrink  = "bebida_caliente"
	CategoryColdDrink = "bebida_fria"
	CategoryFood      = "alimento"
	CategoryDessert   = "postre"
	CategorySnack     = "snack"
)

// ProductCategories lista fija de categorías.
var ProductCategories = []string{CategoryHotDrink, CategoryColdDrink, CategoryFood, CategoryDessert, CategorySnack}

// IsValidCategory indica si c es una categoría conocida.
func IsValidCategory(c string) bool { return contains(ProductCategories, c) }

// Product producto del catálogo. El núcleo de pedidos solo lee Price y Available.
type Product struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal
	Category    string
	Available   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
