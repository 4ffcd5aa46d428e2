// Package products holds the product record shared by the lookup backends.
package products

import (
	"github.com/aarondl/null/v8"
)

// Product is a single row from the external products catalog. The catalog is
// read-only from this service's perspective; records only live for the duration
// of one webhook request.
type Product struct {
	ID          int64       `boil:"id" json:"id"`
	Name        string      `boil:"name" json:"name"`
	Model       string      `boil:"model" json:"model"`
	SKU         null.String `boil:"sku" json:"sku,omitempty"`
	Price       float64     `boil:"price" json:"price"`
	Stock       int         `boil:"stock" json:"stock"`
	Category    string      `boil:"category" json:"category"`
	Description null.String `boil:"description" json:"description,omitempty"`
}
