package shopview

import (
	"fmt"
	"strings"

	"github.com/avelle/storefront-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

func RenderProductPage(page domain.ProductPage, _ RenderOptions) string {
	s := newStyles()

	lines := []string{
		s.title.Render("Products"),
		s.header.Render(fmt.Sprintf("page %d/%d · %d total", page.Page, max(page.Pages, 1), page.Total)),
	}

	if len(page.Products) == 0 {
		lines = append(lines, s.empty.Render("No products matched."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, product := range page.Products {
		lines = append(lines, s.section.Render(renderProductSummary(product, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func RenderProducts(products []domain.Product, opts RenderOptions) string {
	return RenderProductPage(domain.ProductPage{
		Products: products,
		Total:    len(products),
		Page:     1,
		Pages:    1,
	}, opts)
}

func RenderProduct(product domain.Product, _ RenderOptions) string {
	s := newStyles()

	lines := []string{
		s.name.Render(fmt.Sprintf("%s (#%d)", product.Name, product.ID)),
		s.meta.Render(fmt.Sprintf("%s · %s · sku %s", product.Brand, product.Category.Name, product.SKU)),
		s.detail.Render(priceLine(product, s)),
	}

	if product.Description != "" {
		lines = append(lines, s.section.Render(s.detail.Render(product.Description)))
	}

	facts := []string{fmt.Sprintf("stock: %d", product.StockQuantity)}
	if len(product.Sizes) > 0 {
		facts = append(facts, "sizes: "+strings.Join(product.Sizes, ", "))
	}
	if len(product.Colors) > 0 {
		facts = append(facts, "colors: "+strings.Join(product.Colors, ", "))
	}
	lines = append(lines, s.section.Render(s.meta.Render(strings.Join(facts, " · "))))

	if product.StockQuantity == 0 {
		lines = append(lines, s.warning.Render("Out of stock"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func RenderCategories(categories []domain.Category, _ RenderOptions) string {
	s := newStyles()

	lines := []string{s.title.Render("Categories")}

	if len(categories) == 0 {
		lines = append(lines, s.empty.Render("No categories available."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, category := range categories {
		entry := s.name.Render(category.Name) + s.meta.Render(fmt.Sprintf("  (#%d, %s)", category.ID, category.Slug))
		lines = append(lines, entry)
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderProductSummary(product domain.Product, s styles) string {
	parts := []string{
		s.name.Render(fmt.Sprintf("%s (#%d)", product.Name, product.ID)),
		s.detail.Render("  " + priceLine(product, s)),
		s.meta.Render(fmt.Sprintf("  %s · stock %d", product.Brand, product.StockQuantity)),
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func priceLine(product domain.Product, s styles) string {
	price := s.price.Render(fmt.Sprintf("$%.2f", product.Price))
	if product.IsOnSale && product.OriginalPrice > product.Price {
		return fmt.Sprintf("%s %s", price,
			s.sale.Render(fmt.Sprintf("(was $%.2f, -%.0f%%)", product.OriginalPrice, product.DiscountPercentage)))
	}
	return price
}
