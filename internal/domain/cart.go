package domain

import "time"

type CartLineID int64

// CartLine is a single entry in the server-side cart. UnitPrice and LineTotal
// are server-computed; the client never derives them locally.
type CartLine struct {
	ID        CartLineID
	ProductID ProductID
	Quantity  int
	Size      string
	Color     string
	UnitPrice float64
	LineTotal float64
	AddedAt   time.Time
	Product   *Product
}

// CartView is the client-cached snapshot of the server-authoritative cart.
// It is invalidated and replaced wholesale after every mutation; last fetch
// wins.
type CartView struct {
	ID          int64
	UserID      UserID
	Items       []CartLine
	TotalItems  int
	TotalAmount float64
	UpdatedAt   time.Time
}

type CartAddition struct {
	ProductID ProductID
	Quantity  int
	Size      string
	Color     string
}

const (
	freeShippingThreshold = 100.0
	flatShippingRate      = 10.0
	salesTaxRate          = 0.08
)

// CheckoutEstimate is a display-only projection of checkout totals computed
// from the held cart snapshot. It is advisory: the server's order totals are
// authoritative and may differ.
type CheckoutEstimate struct {
	Subtotal float64
	Shipping float64
	Tax      float64
	Total    float64
}

func EstimateCheckout(cart CartView) CheckoutEstimate {
	subtotal := cart.TotalAmount
	shipping := flatShippingRate
	if subtotal >= freeShippingThreshold {
		shipping = 0
	}
	tax := subtotal * salesTaxRate

	return CheckoutEstimate{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal + shipping + tax,
	}
}
