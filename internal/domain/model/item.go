// Package model defines the core domain entities for the basket service.
package model

import "github.com/shopspring/decimal"

// Item is a catalog product as it is placed into a basket.
type Item struct {
	// Code is the unique product code
	Code string `json:"code" example:"R01"`
	// Name is the display name of the product
	Name string `json:"name" example:"Red Widget"`
	// Price is the unit price in USD
	Price decimal.Decimal `json:"price" example:"32.95"`
}

// NewItem creates an Item from its code, name and unit price.
func NewItem(code, name string, price decimal.Decimal) Item {
	return Item{Code: code, Name: name, Price: price}
}
