package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/avelle/storefront-cli/internal/domain"
)

type createOrderRequest struct {
	ShippingFirstName string `json:"shipping_first_name"`
	ShippingLastName  string `json:"shipping_last_name"`
	ShippingAddress   string `json:"shipping_address"`
	ShippingCity      string `json:"shipping_city"`
	ShippingState     string `json:"shipping_state"`
	ShippingZipCode   string `json:"shipping_zip_code"`
	ShippingCountry   string `json:"shipping_country"`
	ShippingPhone     string `json:"shipping_phone,omitempty"`
	PaymentMethod     string `json:"payment_method,omitempty"`
	Notes             string `json:"notes,omitempty"`
}

type orderListResponse struct {
	Orders  []orderPayload `json:"orders"`
	Total   int            `json:"total"`
	Page    int            `json:"page"`
	PerPage int            `json:"per_page"`
	Pages   int            `json:"pages"`
}

func (c *Client) CreateOrder(ctx context.Context, draft domain.OrderDraft) (domain.Order, error) {
	body := createOrderRequest{
		ShippingFirstName: draft.Shipping.FirstName,
		ShippingLastName:  draft.Shipping.LastName,
		ShippingAddress:   draft.Shipping.Address,
		ShippingCity:      draft.Shipping.City,
		ShippingState:     draft.Shipping.State,
		ShippingZipCode:   draft.Shipping.ZipCode,
		ShippingCountry:   draft.Shipping.Country,
		ShippingPhone:     draft.Shipping.Phone,
		PaymentMethod:     draft.PaymentMethod,
		Notes:             draft.Notes,
	}

	var resp orderPayload
	if err := c.send(ctx, http.MethodPost, "/orders", nil, body, &resp); err != nil {
		return domain.Order{}, err
	}

	return resp.toDomain(), nil
}

func (c *Client) Orders(ctx context.Context, page, perPage int) (domain.OrderPage, error) {
	query := url.Values{}
	if page > 0 {
		query.Set("page", strconv.Itoa(page))
	}
	if perPage > 0 {
		query.Set("per_page", strconv.Itoa(perPage))
	}

	var resp orderListResponse
	if err := c.send(ctx, http.MethodGet, "/orders", query, nil, &resp); err != nil {
		return domain.OrderPage{}, err
	}

	orders := make([]domain.Order, 0, len(resp.Orders))
	for _, order := range resp.Orders {
		orders = append(orders, order.toDomain())
	}

	return domain.OrderPage{
		Orders:  orders,
		Total:   resp.Total,
		Page:    resp.Page,
		PerPage: resp.PerPage,
		Pages:   resp.Pages,
	}, nil
}

func (c *Client) Order(ctx context.Context, id domain.OrderID) (domain.Order, error) {
	var resp orderPayload
	if err := c.send(ctx, http.MethodGet, fmt.Sprintf("/orders/%d", id), nil, nil, &resp); err != nil {
		return domain.Order{}, err
	}

	return resp.toDomain(), nil
}

func (c *Client) OrderByNumber(ctx context.Context, number string) (domain.Order, error) {
	var resp orderPayload
	if err := c.send(ctx, http.MethodGet, "/orders/number/"+url.PathEscape(number), nil, nil, &resp); err != nil {
		return domain.Order{}, err
	}

	return resp.toDomain(), nil
}
