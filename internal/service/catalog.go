package service

import (
	"errors"
	"fmt"
	"sort"

	"github.com/guttosm/basket-service/internal/domain/model"
)

// ErrProductNotFound is matched by every ProductNotFoundError via errors.Is.
var ErrProductNotFound = errors.New("product not found")

// ProductNotFoundError is returned when a product code has no catalog entry.
type ProductNotFoundError struct {
	Code string
}

// Error returns the message including the offending code verbatim.
func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product with code '%s' not found in catalog", e.Code)
}

// Is reports whether target is ErrProductNotFound.
func (e *ProductNotFoundError) Is(target error) bool {
	return target == ErrProductNotFound
}

// Catalog resolves product codes to items. Implementations are read-only.
type Catalog interface {
	Lookup(code string) (model.Item, error)
	Items() []model.Item
}

// MapCatalog is an in-memory Catalog keyed by product code.
type MapCatalog struct {
	items map[string]model.Item
}

// NewCatalog builds a MapCatalog. A later item with a duplicate code replaces the earlier one.
func NewCatalog(items ...model.Item) *MapCatalog {
	c := &MapCatalog{items: make(map[string]model.Item, len(items))}
	for _, item := range items {
		c.items[item.Code] = item
	}
	return c
}

// Lookup returns the item for code or a *ProductNotFoundError.
func (c *MapCatalog) Lookup(code string) (model.Item, error) {
	item, ok := c.items[code]
	if !ok {
		return model.Item{}, &ProductNotFoundError{Code: code}
	}
	return item, nil
}

// Items returns all catalog items sorted by code.
func (c *MapCatalog) Items() []model.Item {
	items := make([]model.Item, 0, len(c.items))
	for _, item := range c.items {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Code < items[j].Code })
	return items
}

// Len returns the number of products in the catalog.
func (c *MapCatalog) Len() int {
	return len(c.items)
}
