package cmd

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/avelle/storefront-cli/internal/adapters/render/shopview"
	"github.com/avelle/storefront-cli/internal/domain"
	"github.com/spf13/cobra"
)

var errOrderFailed = errors.New("order placement failed")

func newOrdersCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "Place and track orders",
	}

	cmd.AddCommand(
		newOrdersCreateCmd(app),
		newOrdersListCmd(app),
		newOrdersShowCmd(app),
	)

	return cmd
}

func newOrdersCreateCmd(app *app) *cobra.Command {
	var draft domain.OrderDraft

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Place an order from the current cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			orders, err := app.orders(cmd)
			if err != nil {
				return err
			}

			order, ok := orders.Create(cmd.Context(), draft)
			if !ok {
				return errOrderFailed
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), shopview.RenderOrder(order, shopview.RenderOptions{Now: app.clock.Now()}))
			return err
		},
	}

	cmd.Flags().StringVar(&draft.Shipping.FirstName, "first-name", "", "Shipping first name")
	cmd.Flags().StringVar(&draft.Shipping.LastName, "last-name", "", "Shipping last name")
	cmd.Flags().StringVar(&draft.Shipping.Address, "address", "", "Shipping street address")
	cmd.Flags().StringVar(&draft.Shipping.City, "city", "", "Shipping city")
	cmd.Flags().StringVar(&draft.Shipping.State, "state", "", "Shipping state or province")
	cmd.Flags().StringVar(&draft.Shipping.ZipCode, "zip-code", "", "Shipping postal code")
	cmd.Flags().StringVar(&draft.Shipping.Country, "country", "", "Shipping country")
	cmd.Flags().StringVar(&draft.Shipping.Phone, "phone", "", "Shipping phone number")
	cmd.Flags().StringVar(&draft.PaymentMethod, "payment-method", "", "Payment method")
	cmd.Flags().StringVar(&draft.Notes, "notes", "", "Order notes")
	_ = cmd.MarkFlagRequired("first-name")
	_ = cmd.MarkFlagRequired("last-name")
	_ = cmd.MarkFlagRequired("address")
	_ = cmd.MarkFlagRequired("city")
	_ = cmd.MarkFlagRequired("state")
	_ = cmd.MarkFlagRequired("zip-code")
	_ = cmd.MarkFlagRequired("country")

	return cmd
}

func newOrdersListCmd(app *app) *cobra.Command {
	var page, perPage int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your orders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			orders, err := app.orders(cmd)
			if err != nil {
				return err
			}

			var result domain.OrderPage
			fetch := func(ctx context.Context) error {
				var fetchErr error
				result, fetchErr = orders.List(ctx, page, perPage)
				return fetchErr
			}
			if err := runFetchSpinner(cmd.Context(), cmd.ErrOrStderr(), "Fetching orders...", fetch); err != nil {
				return loginGuidance(err)
			}

			return printResult(cmd, asJSON, result, func() string {
				return shopview.RenderOrderPage(result, shopview.RenderOptions{Now: app.clock.Now()})
			})
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "Page number")
	cmd.Flags().IntVar(&perPage, "per-page", 10, "Orders per page")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newOrdersShowCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show <order-id-or-number>",
		Short: "Show an order by numeric ID or order number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			orders, err := app.orders(cmd)
			if err != nil {
				return err
			}

			var order domain.Order
			fetch := func(ctx context.Context) error {
				var fetchErr error
				if id, parseErr := strconv.ParseInt(args[0], 10, 64); parseErr == nil {
					order, fetchErr = orders.Get(ctx, domain.OrderID(id))
				} else {
					order, fetchErr = orders.GetByNumber(ctx, args[0])
				}
				return fetchErr
			}
			if err := runFetchSpinner(cmd.Context(), cmd.ErrOrStderr(), "Fetching order...", fetch); err != nil {
				return loginGuidance(err)
			}

			return printResult(cmd, asJSON, order, func() string {
				return shopview.RenderOrder(order, shopview.RenderOptions{Now: app.clock.Now()})
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}
