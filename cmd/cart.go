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

var errCartActionFailed = errors.New("cart action failed")

func newCartCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Manage your shopping cart",
	}

	cmd.AddCommand(
		newCartShowCmd(app),
		newCartAddCmd(app),
		newCartUpdateCmd(app),
		newCartRemoveCmd(app),
		newCartClearCmd(app),
	)

	return cmd
}

func newCartShowCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the current cart with estimated totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := app.cartStore(cmd)
			if err != nil {
				return err
			}

			fetch := func(ctx context.Context) error {
				return store.Fetch(ctx)
			}
			if err := runFetchSpinner(cmd.Context(), cmd.ErrOrStderr(), "Fetching cart...", fetch); err != nil {
				return loginGuidance(err)
			}

			cart, loaded := store.Cart()
			return printResult(cmd, asJSON, cart, func() string {
				return shopview.RenderCart(cart, loaded, shopview.RenderOptions{Now: app.clock.Now()})
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newCartAddCmd(app *app) *cobra.Command {
	var addition domain.CartAddition
	var productID int64

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a product to the cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if addition.Quantity < 1 {
				return fmt.Errorf("quantity must be at least 1, got %d", addition.Quantity)
			}

			store, err := app.cartStore(cmd)
			if err != nil {
				return err
			}
			addition.ProductID = domain.ProductID(productID)

			if !store.AddItem(cmd.Context(), addition) {
				return errCartActionFailed
			}
			return nil
		},
	}

	cmd.Flags().Int64Var(&productID, "product", 0, "Product ID")
	cmd.Flags().IntVar(&addition.Quantity, "quantity", 1, "Quantity")
	cmd.Flags().StringVar(&addition.Size, "size", "", "Size variant")
	cmd.Flags().StringVar(&addition.Color, "color", "", "Color variant")
	_ = cmd.MarkFlagRequired("product")

	return cmd
}

func newCartUpdateCmd(app *app) *cobra.Command {
	var quantity int

	cmd := &cobra.Command{
		Use:   "update <item-id>",
		Short: "Change a cart line's quantity (0 removes it)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			itemID, err := parseItemID(args[0])
			if err != nil {
				return err
			}

			store, err := app.cartStore(cmd)
			if err != nil {
				return err
			}

			if !store.UpdateItem(cmd.Context(), itemID, quantity) {
				return errCartActionFailed
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&quantity, "quantity", 1, "New quantity")
	_ = cmd.MarkFlagRequired("quantity")

	return cmd
}

func newCartRemoveCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <item-id>",
		Short: "Remove a line from the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			itemID, err := parseItemID(args[0])
			if err != nil {
				return err
			}

			store, err := app.cartStore(cmd)
			if err != nil {
				return err
			}

			if !store.RemoveItem(cmd.Context(), itemID) {
				return errCartActionFailed
			}
			return nil
		},
	}
}

func newCartClearCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every item from the cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := app.cartStore(cmd)
			if err != nil {
				return err
			}

			if !store.ClearCart(cmd.Context()) {
				return errCartActionFailed
			}
			return nil
		},
	}
}

func parseItemID(raw string) (domain.CartLineID, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid cart item id %q", raw)
	}
	return domain.CartLineID(id), nil
}
