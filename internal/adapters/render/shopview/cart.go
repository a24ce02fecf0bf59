package shopview

import (
	"fmt"
	"time"

	"github.com/avelle/storefront-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

type RenderOptions struct {
	Now time.Time
}

// RenderCart renders the held cart snapshot plus the advisory checkout
// estimate. The estimate is display-only; order totals come from the server.
func RenderCart(cart domain.CartView, loaded bool, opts RenderOptions) string {
	s := newStyles()

	lines := []string{s.title.Render("Your Cart")}

	if !loaded || len(cart.Items) == 0 {
		lines = append(lines, s.empty.Render("Your cart is empty."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	lines = append(lines, s.header.Render(fmt.Sprintf("items: %d", cart.TotalItems)))

	for _, item := range cart.Items {
		lines = append(lines, s.section.Render(renderCartLine(item, s)))
	}

	estimate := domain.EstimateCheckout(cart)
	lines = append(lines,
		s.section.Render(lipgloss.JoinVertical(lipgloss.Left,
			s.lineKey.Render(fmt.Sprintf("Subtotal  $%.2f", estimate.Subtotal)),
			s.lineKey.Render(fmt.Sprintf("Shipping  %s", shippingLabel(estimate.Shipping, s))),
			s.lineKey.Render(fmt.Sprintf("Tax       $%.2f", estimate.Tax)),
			s.amount.Render(fmt.Sprintf("Total     $%.2f", estimate.Total)),
			s.estimated.Render("Shipping and tax are estimates; final totals are computed at order placement."),
		)),
	)

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderCartLine(item domain.CartLine, s styles) string {
	name := fmt.Sprintf("item #%d", item.ID)
	if item.Product != nil {
		name = item.Product.Name
	}

	parts := []string{
		s.name.Render(name),
		s.detail.Render(fmt.Sprintf("  qty %d · size %s · color %s", item.Quantity, orDash(item.Size), orDash(item.Color))),
		s.meta.Render(fmt.Sprintf("  $%.2f each · line total $%.2f", item.UnitPrice, item.LineTotal)),
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func shippingLabel(amount float64, s styles) string {
	if amount == 0 {
		return s.price.Render("free")
	}
	return fmt.Sprintf("$%.2f", amount)
}

func orDash(value string) string {
	if value == "" {
		return "-"
	}
	return value
}
