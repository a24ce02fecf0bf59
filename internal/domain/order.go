package domain

import "time"

type OrderID int64

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
	OrderStatusRefunded   OrderStatus = "refunded"
)

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

type OrderItem struct {
	ID        int64
	ProductID ProductID
	Quantity  int
	Size      string
	Color     string
	UnitPrice float64
	LineTotal float64
	Product   *Product
}

type ShippingAddress struct {
	FirstName string
	LastName  string
	Address   string
	City      string
	State     string
	ZipCode   string
	Country   string
	Phone     string
}

type Order struct {
	ID             OrderID
	UserID         UserID
	OrderNumber    string
	Status         OrderStatus
	PaymentStatus  PaymentStatus
	Subtotal       float64
	TaxAmount      float64
	ShippingAmount float64
	DiscountAmount float64
	TotalAmount    float64
	Shipping       ShippingAddress
	PaymentMethod  string
	TransactionID  string
	TrackingNumber string
	Notes          string
	Items          []OrderItem
	CreatedAt      time.Time
	UpdatedAt      time.Time
	ShippedAt      time.Time
	DeliveredAt    time.Time
}

// OrderDraft is the client-supplied portion of an order; all amounts are
// computed server-side from the current cart.
type OrderDraft struct {
	Shipping      ShippingAddress
	PaymentMethod string
	Notes         string
}

type OrderPage struct {
	Orders  []Order
	Total   int
	Page    int
	PerPage int
	Pages   int
}
