package application

import (
	"context"
	"fmt"

	"github.com/avelle/storefront-cli/internal/domain"
	"github.com/avelle/storefront-cli/internal/ports"
)

// Orders places and reads orders. Placement reports through the notifier like
// the stores do; reads return errors directly.
type Orders struct {
	api      ports.OrdersAPI
	notifier ports.Notifier
}

func NewOrders(api ports.OrdersAPI, notifier ports.Notifier) *Orders {
	if notifier == nil {
		notifier = ports.NopNotifier{}
	}

	return &Orders{api: api, notifier: notifier}
}

// Create places an order from the server-side cart. The returned order
// carries the server's authoritative totals; any client-side estimate shown
// before this call is advisory only.
func (o *Orders) Create(ctx context.Context, draft domain.OrderDraft) (domain.Order, bool) {
	order, err := o.api.CreateOrder(ctx, draft)
	if err != nil {
		o.notifier.Error(domain.UserMessage(err, "Failed to place order"))
		return domain.Order{}, false
	}

	o.notifier.Success(fmt.Sprintf("Order %s placed!", order.OrderNumber))
	return order, true
}

func (o *Orders) List(ctx context.Context, page, perPage int) (domain.OrderPage, error) {
	orders, err := o.api.Orders(ctx, page, perPage)
	if err != nil {
		return domain.OrderPage{}, fmt.Errorf("list orders: %w", err)
	}

	return orders, nil
}

func (o *Orders) Get(ctx context.Context, id domain.OrderID) (domain.Order, error) {
	order, err := o.api.Order(ctx, id)
	if err != nil {
		return domain.Order{}, fmt.Errorf("get order %d: %w", id, err)
	}

	return order, nil
}

func (o *Orders) GetByNumber(ctx context.Context, number string) (domain.Order, error) {
	order, err := o.api.OrderByNumber(ctx, number)
	if err != nil {
		return domain.Order{}, fmt.Errorf("get order %s: %w", number, err)
	}

	return order, nil
}
