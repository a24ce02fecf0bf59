package application

import (
	"context"
	"fmt"

	"github.com/avelle/storefront-cli/internal/domain"
	"github.com/avelle/storefront-cli/internal/ports"
)

// Catalog exposes read-only product browsing. It holds no state; every call
// is a pass-through to the remote API.
type Catalog struct {
	api ports.CatalogAPI
}

func NewCatalog(api ports.CatalogAPI) *Catalog {
	return &Catalog{api: api}
}

func (c *Catalog) Products(ctx context.Context, filter domain.ProductFilter) (domain.ProductPage, error) {
	page, err := c.api.Products(ctx, filter)
	if err != nil {
		return domain.ProductPage{}, fmt.Errorf("list products: %w", err)
	}

	return page, nil
}

func (c *Catalog) Product(ctx context.Context, id domain.ProductID) (domain.Product, error) {
	product, err := c.api.Product(ctx, id)
	if err != nil {
		return domain.Product{}, fmt.Errorf("get product %d: %w", id, err)
	}

	return product, nil
}

func (c *Catalog) Featured(ctx context.Context, limit int) ([]domain.Product, error) {
	products, err := c.api.Featured(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list featured products: %w", err)
	}

	return products, nil
}

func (c *Catalog) Categories(ctx context.Context) ([]domain.Category, error) {
	categories, err := c.api.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	return categories, nil
}
