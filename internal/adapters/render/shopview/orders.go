package shopview

import (
	"fmt"
	"time"

	"github.com/avelle/storefront-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

func RenderOrderPage(page domain.OrderPage, opts RenderOptions) string {
	s := newStyles()

	lines := []string{
		s.title.Render("Orders"),
		s.header.Render(fmt.Sprintf("page %d/%d · %d total", page.Page, max(page.Pages, 1), page.Total)),
	}

	if len(page.Orders) == 0 {
		lines = append(lines, s.empty.Render("No orders yet."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, order := range page.Orders {
		lines = append(lines, s.section.Render(renderOrderSummary(order, opts, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func RenderOrder(order domain.Order, opts RenderOptions) string {
	s := newStyles()

	lines := []string{
		s.name.Render(fmt.Sprintf("Order %s", order.OrderNumber)),
		s.meta.Render(fmt.Sprintf("status %s · payment %s%s", order.Status, order.PaymentStatus, placedAt(order, opts))),
	}

	for _, item := range order.Items {
		name := fmt.Sprintf("product #%d", item.ProductID)
		if item.Product != nil {
			name = item.Product.Name
		}
		lines = append(lines, s.detail.Render(fmt.Sprintf("  %d × %s · $%.2f", item.Quantity, name, item.LineTotal)))
	}

	lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left,
		s.lineKey.Render(fmt.Sprintf("Subtotal  $%.2f", order.Subtotal)),
		s.lineKey.Render(fmt.Sprintf("Shipping  $%.2f", order.ShippingAmount)),
		s.lineKey.Render(fmt.Sprintf("Tax       $%.2f", order.TaxAmount)),
		s.amount.Render(fmt.Sprintf("Total     $%.2f", order.TotalAmount)),
	)))

	shipping := order.Shipping
	lines = append(lines, s.section.Render(s.meta.Render(fmt.Sprintf(
		"Ship to: %s %s, %s, %s %s %s, %s",
		shipping.FirstName, shipping.LastName, shipping.Address, shipping.City,
		shipping.State, shipping.ZipCode, shipping.Country,
	))))

	if order.TrackingNumber != "" {
		lines = append(lines, s.meta.Render("Tracking: "+order.TrackingNumber))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderOrderSummary(order domain.Order, opts RenderOptions, s styles) string {
	parts := []string{
		s.name.Render(order.OrderNumber),
		s.detail.Render(fmt.Sprintf("  %d item(s) · $%.2f", len(order.Items), order.TotalAmount)),
		s.meta.Render(fmt.Sprintf("  %s · %s%s", order.Status, order.PaymentStatus, placedAt(order, opts))),
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func placedAt(order domain.Order, opts RenderOptions) string {
	if order.CreatedAt.IsZero() {
		return ""
	}
	if !opts.Now.IsZero() {
		age := opts.Now.Sub(order.CreatedAt)
		if age >= 0 && age < 48*time.Hour {
			return fmt.Sprintf(" · placed %dh ago", int(age.Hours()))
		}
	}
	return " · placed " + order.CreatedAt.Format("2006-01-02")
}
