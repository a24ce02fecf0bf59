package api

import (
	"time"

	"github.com/avelle/storefront-cli/internal/domain"
)

// Wire payloads for the storefront backend. Field names follow the server's
// snake_case JSON; these structs never leave this package.

type userPayload struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zip_code"`
	Country   string `json:"country"`
	IsActive  bool   `json:"is_active"`
	IsAdmin   bool   `json:"is_admin"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func (p userPayload) toDomain() domain.UserIdentity {
	return domain.UserIdentity{
		ID:        domain.UserID(p.ID),
		Email:     p.Email,
		Username:  p.Username,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Phone:     p.Phone,
		Address:   p.Address,
		City:      p.City,
		State:     p.State,
		ZipCode:   p.ZipCode,
		Country:   p.Country,
		IsActive:  p.IsActive,
		IsAdmin:   p.IsAdmin,
		CreatedAt: parseServerTime(p.CreatedAt),
		UpdatedAt: parseServerTime(p.UpdatedAt),
	}
}

type categoryPayload struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Slug        string `json:"slug"`
	IsActive    bool   `json:"is_active"`
	CreatedAt   string `json:"created_at"`
}

func (p categoryPayload) toDomain() domain.Category {
	return domain.Category{
		ID:          domain.CategoryID(p.ID),
		Name:        p.Name,
		Description: p.Description,
		Slug:        p.Slug,
		IsActive:    p.IsActive,
		CreatedAt:   parseServerTime(p.CreatedAt),
	}
}

type productImagePayload struct {
	ID        int64  `json:"id"`
	ProductID int64  `json:"product_id"`
	ImageURL  string `json:"image_url"`
	AltText   string `json:"alt_text"`
	IsMain    bool   `json:"is_main"`
	SortOrder int    `json:"sort_order"`
}

type productPayload struct {
	ID                 int64                 `json:"id"`
	Name               string                `json:"name"`
	Description        string                `json:"description"`
	Price              float64               `json:"price"`
	OriginalPrice      float64               `json:"original_price"`
	SKU                string                `json:"sku"`
	CategoryID         int64                 `json:"category_id"`
	Brand              string                `json:"brand"`
	IsFeatured         bool                  `json:"is_featured"`
	IsActive           bool                  `json:"is_active"`
	StockQuantity      int                   `json:"stock_quantity"`
	Sizes              []string              `json:"sizes"`
	Colors             []string              `json:"colors"`
	Category           categoryPayload       `json:"category"`
	Images             []productImagePayload `json:"images"`
	MainImage          string                `json:"main_image"`
	IsOnSale           bool                  `json:"is_on_sale"`
	DiscountPercentage float64               `json:"discount_percentage"`
	CreatedAt          string                `json:"created_at"`
	UpdatedAt          string                `json:"updated_at"`
}

func (p productPayload) toDomain() domain.Product {
	images := make([]domain.ProductImage, 0, len(p.Images))
	for _, image := range p.Images {
		images = append(images, domain.ProductImage{
			ID:        image.ID,
			ProductID: domain.ProductID(image.ProductID),
			ImageURL:  image.ImageURL,
			AltText:   image.AltText,
			IsMain:    image.IsMain,
			SortOrder: image.SortOrder,
		})
	}

	return domain.Product{
		ID:                 domain.ProductID(p.ID),
		Name:               p.Name,
		Description:        p.Description,
		Price:              p.Price,
		OriginalPrice:      p.OriginalPrice,
		SKU:                p.SKU,
		CategoryID:         domain.CategoryID(p.CategoryID),
		Brand:              p.Brand,
		IsFeatured:         p.IsFeatured,
		IsActive:           p.IsActive,
		StockQuantity:      p.StockQuantity,
		Sizes:              p.Sizes,
		Colors:             p.Colors,
		Category:           p.Category.toDomain(),
		Images:             images,
		MainImage:          p.MainImage,
		IsOnSale:           p.IsOnSale,
		DiscountPercentage: p.DiscountPercentage,
		CreatedAt:          parseServerTime(p.CreatedAt),
		UpdatedAt:          parseServerTime(p.UpdatedAt),
	}
}

type cartItemPayload struct {
	ID         int64           `json:"id"`
	CartID     int64           `json:"cart_id"`
	ProductID  int64           `json:"product_id"`
	Quantity   int             `json:"quantity"`
	Size       string          `json:"size"`
	Color      string          `json:"color"`
	UnitPrice  float64         `json:"unit_price"`
	TotalPrice float64         `json:"total_price"`
	AddedAt    string          `json:"added_at"`
	Product    *productPayload `json:"product"`
}

func (p cartItemPayload) toDomain() domain.CartLine {
	line := domain.CartLine{
		ID:        domain.CartLineID(p.ID),
		ProductID: domain.ProductID(p.ProductID),
		Quantity:  p.Quantity,
		Size:      p.Size,
		Color:     p.Color,
		UnitPrice: p.UnitPrice,
		LineTotal: p.TotalPrice,
		AddedAt:   parseServerTime(p.AddedAt),
	}
	if p.Product != nil {
		product := p.Product.toDomain()
		line.Product = &product
	}
	return line
}

type cartPayload struct {
	ID          int64             `json:"id"`
	UserID      int64             `json:"user_id"`
	Items       []cartItemPayload `json:"items"`
	TotalItems  int               `json:"total_items"`
	TotalAmount float64           `json:"total_amount"`
	UpdatedAt   string            `json:"updated_at"`
}

func (p cartPayload) toDomain() domain.CartView {
	items := make([]domain.CartLine, 0, len(p.Items))
	for _, item := range p.Items {
		items = append(items, item.toDomain())
	}

	return domain.CartView{
		ID:          p.ID,
		UserID:      domain.UserID(p.UserID),
		Items:       items,
		TotalItems:  p.TotalItems,
		TotalAmount: p.TotalAmount,
		UpdatedAt:   parseServerTime(p.UpdatedAt),
	}
}

type orderItemPayload struct {
	ID         int64           `json:"id"`
	ProductID  int64           `json:"product_id"`
	Quantity   int             `json:"quantity"`
	Size       string          `json:"size"`
	Color      string          `json:"color"`
	UnitPrice  float64         `json:"unit_price"`
	TotalPrice float64         `json:"total_price"`
	Product    *productPayload `json:"product"`
}

type orderPayload struct {
	ID                   int64              `json:"id"`
	UserID               int64              `json:"user_id"`
	OrderNumber          string             `json:"order_number"`
	Status               string             `json:"status"`
	PaymentStatus        string             `json:"payment_status"`
	Subtotal             float64            `json:"subtotal"`
	TaxAmount            float64            `json:"tax_amount"`
	ShippingAmount       float64            `json:"shipping_amount"`
	DiscountAmount       float64            `json:"discount_amount"`
	TotalAmount          float64            `json:"total_amount"`
	ShippingFirstName    string             `json:"shipping_first_name"`
	ShippingLastName     string             `json:"shipping_last_name"`
	ShippingAddress      string             `json:"shipping_address"`
	ShippingCity         string             `json:"shipping_city"`
	ShippingState        string             `json:"shipping_state"`
	ShippingZipCode      string             `json:"shipping_zip_code"`
	ShippingCountry      string             `json:"shipping_country"`
	ShippingPhone        string             `json:"shipping_phone"`
	PaymentMethod        string             `json:"payment_method"`
	PaymentTransactionID string             `json:"payment_transaction_id"`
	TrackingNumber       string             `json:"tracking_number"`
	Notes                string             `json:"notes"`
	Items                []orderItemPayload `json:"items"`
	CreatedAt            string             `json:"created_at"`
	UpdatedAt            string             `json:"updated_at"`
	ShippedAt            string             `json:"shipped_at"`
	DeliveredAt          string             `json:"delivered_at"`
}

func (p orderPayload) toDomain() domain.Order {
	items := make([]domain.OrderItem, 0, len(p.Items))
	for _, item := range p.Items {
		converted := domain.OrderItem{
			ID:        item.ID,
			ProductID: domain.ProductID(item.ProductID),
			Quantity:  item.Quantity,
			Size:      item.Size,
			Color:     item.Color,
			UnitPrice: item.UnitPrice,
			LineTotal: item.TotalPrice,
		}
		if item.Product != nil {
			product := item.Product.toDomain()
			converted.Product = &product
		}
		items = append(items, converted)
	}

	return domain.Order{
		ID:             domain.OrderID(p.ID),
		UserID:         domain.UserID(p.UserID),
		OrderNumber:    p.OrderNumber,
		Status:         domain.OrderStatus(p.Status),
		PaymentStatus:  domain.PaymentStatus(p.PaymentStatus),
		Subtotal:       p.Subtotal,
		TaxAmount:      p.TaxAmount,
		ShippingAmount: p.ShippingAmount,
		DiscountAmount: p.DiscountAmount,
		TotalAmount:    p.TotalAmount,
		Shipping: domain.ShippingAddress{
			FirstName: p.ShippingFirstName,
			LastName:  p.ShippingLastName,
			Address:   p.ShippingAddress,
			City:      p.ShippingCity,
			State:     p.ShippingState,
			ZipCode:   p.ShippingZipCode,
			Country:   p.ShippingCountry,
			Phone:     p.ShippingPhone,
		},
		PaymentMethod:  p.PaymentMethod,
		TransactionID:  p.PaymentTransactionID,
		TrackingNumber: p.TrackingNumber,
		Notes:          p.Notes,
		Items:          items,
		CreatedAt:      parseServerTime(p.CreatedAt),
		UpdatedAt:      parseServerTime(p.UpdatedAt),
		ShippedAt:      parseServerTime(p.ShippedAt),
		DeliveredAt:    parseServerTime(p.DeliveredAt),
	}
}

// serverTimeLayouts covers the backend's ISO timestamps with and without a
// zone offset or fractional seconds.
var serverTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
}

func parseServerTime(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}

	for _, layout := range serverTimeLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed
		}
	}

	return time.Time{}
}
