package ports

import (
	"context"

	"github.com/avelle/storefront-cli/internal/domain"
)

type AuthAPI interface {
	Login(ctx context.Context, creds domain.Credentials) (domain.AuthSession, error)
	Register(ctx context.Context, reg domain.Registration) (domain.UserIdentity, error)
	CurrentUser(ctx context.Context) (domain.UserIdentity, error)
	Logout(ctx context.Context) error
}

type CartAPI interface {
	Cart(ctx context.Context) (domain.CartView, error)
	AddItem(ctx context.Context, addition domain.CartAddition) (domain.CartLine, error)
	UpdateItem(ctx context.Context, itemID domain.CartLineID, quantity int) (domain.CartLine, error)
	RemoveItem(ctx context.Context, itemID domain.CartLineID) error
	Clear(ctx context.Context) error
}

type CatalogAPI interface {
	Products(ctx context.Context, filter domain.ProductFilter) (domain.ProductPage, error)
	Product(ctx context.Context, id domain.ProductID) (domain.Product, error)
	Featured(ctx context.Context, limit int) ([]domain.Product, error)
	Categories(ctx context.Context) ([]domain.Category, error)
}

type OrdersAPI interface {
	CreateOrder(ctx context.Context, draft domain.OrderDraft) (domain.Order, error)
	Orders(ctx context.Context, page, perPage int) (domain.OrderPage, error)
	Order(ctx context.Context, id domain.OrderID) (domain.Order, error)
	OrderByNumber(ctx context.Context, number string) (domain.Order, error)
}
