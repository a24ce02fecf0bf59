package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/avelle/storefront-cli/internal/domain"
)

type addCartItemRequest struct {
	ProductID int64  `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Size      string `json:"size"`
	Color     string `json:"color"`
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

func (c *Client) Cart(ctx context.Context) (domain.CartView, error) {
	var resp cartPayload
	if err := c.send(ctx, http.MethodGet, "/cart", nil, nil, &resp); err != nil {
		return domain.CartView{}, err
	}

	return resp.toDomain(), nil
}

func (c *Client) AddItem(ctx context.Context, addition domain.CartAddition) (domain.CartLine, error) {
	body := addCartItemRequest{
		ProductID: int64(addition.ProductID),
		Quantity:  addition.Quantity,
		Size:      addition.Size,
		Color:     addition.Color,
	}

	var resp cartItemPayload
	if err := c.send(ctx, http.MethodPost, "/cart/items", nil, body, &resp); err != nil {
		return domain.CartLine{}, err
	}

	return resp.toDomain(), nil
}

func (c *Client) UpdateItem(ctx context.Context, itemID domain.CartLineID, quantity int) (domain.CartLine, error) {
	body := updateCartItemRequest{Quantity: quantity}

	var resp cartItemPayload
	if err := c.send(ctx, http.MethodPut, fmt.Sprintf("/cart/items/%d", itemID), nil, body, &resp); err != nil {
		return domain.CartLine{}, err
	}

	return resp.toDomain(), nil
}

func (c *Client) RemoveItem(ctx context.Context, itemID domain.CartLineID) error {
	return c.send(ctx, http.MethodDelete, fmt.Sprintf("/cart/items/%d", itemID), nil, nil, nil)
}

func (c *Client) Clear(ctx context.Context) error {
	return c.send(ctx, http.MethodDelete, "/cart", nil, nil, nil)
}
