package domain

import "time"

type ProductID int64

type CategoryID int64

type Category struct {
	ID          CategoryID
	Name        string
	Description string
	Slug        string
	IsActive    bool
	CreatedAt   time.Time
}

type ProductImage struct {
	ID        int64
	ProductID ProductID
	ImageURL  string
	AltText   string
	IsMain    bool
	SortOrder int
}

type Product struct {
	ID                 ProductID
	Name               string
	Description        string
	Price              float64
	OriginalPrice      float64
	SKU                string
	CategoryID         CategoryID
	Brand              string
	IsFeatured         bool
	IsActive           bool
	StockQuantity      int
	Sizes              []string
	Colors             []string
	Category           Category
	Images             []ProductImage
	MainImage          string
	IsOnSale           bool
	DiscountPercentage float64
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// ProductFilter narrows a catalog listing. Zero-valued fields are omitted
// from the request.
type ProductFilter struct {
	Page       int
	PerPage    int
	CategoryID CategoryID
	Search     string
	Featured   bool
	MinPrice   float64
	MaxPrice   float64
}

type ProductPage struct {
	Products []Product
	Total    int
	Page     int
	PerPage  int
	Pages    int
}
