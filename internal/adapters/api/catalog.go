package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/avelle/storefront-cli/internal/domain"
)

type productListResponse struct {
	Products []productPayload `json:"products"`
	Total    int              `json:"total"`
	Page     int              `json:"page"`
	PerPage  int              `json:"per_page"`
	Pages    int              `json:"pages"`
}

func (c *Client) Products(ctx context.Context, filter domain.ProductFilter) (domain.ProductPage, error) {
	query := url.Values{}
	if filter.Page > 0 {
		query.Set("page", strconv.Itoa(filter.Page))
	}
	if filter.PerPage > 0 {
		query.Set("per_page", strconv.Itoa(filter.PerPage))
	}
	if filter.CategoryID > 0 {
		query.Set("category_id", strconv.FormatInt(int64(filter.CategoryID), 10))
	}
	if filter.Search != "" {
		query.Set("search", filter.Search)
	}
	if filter.Featured {
		query.Set("is_featured", "true")
	}
	if filter.MinPrice > 0 {
		query.Set("min_price", strconv.FormatFloat(filter.MinPrice, 'f', -1, 64))
	}
	if filter.MaxPrice > 0 {
		query.Set("max_price", strconv.FormatFloat(filter.MaxPrice, 'f', -1, 64))
	}

	var resp productListResponse
	if err := c.send(ctx, http.MethodGet, "/products", query, nil, &resp); err != nil {
		return domain.ProductPage{}, err
	}

	products := make([]domain.Product, 0, len(resp.Products))
	for _, product := range resp.Products {
		products = append(products, product.toDomain())
	}

	return domain.ProductPage{
		Products: products,
		Total:    resp.Total,
		Page:     resp.Page,
		PerPage:  resp.PerPage,
		Pages:    resp.Pages,
	}, nil
}

func (c *Client) Product(ctx context.Context, id domain.ProductID) (domain.Product, error) {
	var resp productPayload
	if err := c.send(ctx, http.MethodGet, fmt.Sprintf("/products/%d", id), nil, nil, &resp); err != nil {
		return domain.Product{}, err
	}

	return resp.toDomain(), nil
}

func (c *Client) Featured(ctx context.Context, limit int) ([]domain.Product, error) {
	query := url.Values{}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}

	var resp []productPayload
	if err := c.send(ctx, http.MethodGet, "/products/featured", query, nil, &resp); err != nil {
		return nil, err
	}

	products := make([]domain.Product, 0, len(resp))
	for _, product := range resp {
		products = append(products, product.toDomain())
	}

	return products, nil
}

func (c *Client) Categories(ctx context.Context) ([]domain.Category, error) {
	var resp []categoryPayload
	if err := c.send(ctx, http.MethodGet, "/products/categories", nil, nil, &resp); err != nil {
		return nil, err
	}

	categories := make([]domain.Category, 0, len(resp))
	for _, category := range resp {
		categories = append(categories, category.toDomain())
	}

	return categories, nil
}
