package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/avelle/storefront-cli/internal/adapters/render/shopview"
	"github.com/avelle/storefront-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newProductsCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "products",
		Short: "Browse the product catalog",
	}

	cmd.AddCommand(
		newProductsListCmd(app),
		newProductsShowCmd(app),
		newProductsFeaturedCmd(app),
		newProductsCategoriesCmd(app),
	)

	return cmd
}

func newProductsListCmd(app *app) *cobra.Command {
	var filter domain.ProductFilter
	var categoryID int64
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List products with optional filters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalog, err := app.catalog(cmd)
			if err != nil {
				return err
			}
			filter.CategoryID = domain.CategoryID(categoryID)

			var page domain.ProductPage
			fetch := func(ctx context.Context) error {
				var fetchErr error
				page, fetchErr = catalog.Products(ctx, filter)
				return fetchErr
			}
			if err := runFetchSpinner(cmd.Context(), cmd.ErrOrStderr(), "Fetching products...", fetch); err != nil {
				return loginGuidance(err)
			}

			return printResult(cmd, asJSON, page, func() string {
				return shopview.RenderProductPage(page, shopview.RenderOptions{Now: app.clock.Now()})
			})
		},
	}

	cmd.Flags().IntVar(&filter.Page, "page", 1, "Page number")
	cmd.Flags().IntVar(&filter.PerPage, "per-page", 12, "Products per page")
	cmd.Flags().Int64Var(&categoryID, "category", 0, "Filter by category ID")
	cmd.Flags().StringVar(&filter.Search, "search", "", "Search term")
	cmd.Flags().BoolVar(&filter.Featured, "featured", false, "Only featured products")
	cmd.Flags().Float64Var(&filter.MinPrice, "min-price", 0, "Minimum price")
	cmd.Flags().Float64Var(&filter.MaxPrice, "max-price", 0, "Maximum price")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newProductsShowCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show <product-id>",
		Short: "Show a single product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid product id %q", args[0])
			}

			catalog, err := app.catalog(cmd)
			if err != nil {
				return err
			}

			var product domain.Product
			fetch := func(ctx context.Context) error {
				var fetchErr error
				product, fetchErr = catalog.Product(ctx, domain.ProductID(id))
				return fetchErr
			}
			if err := runFetchSpinner(cmd.Context(), cmd.ErrOrStderr(), "Fetching product...", fetch); err != nil {
				return loginGuidance(err)
			}

			return printResult(cmd, asJSON, product, func() string {
				return shopview.RenderProduct(product, shopview.RenderOptions{Now: app.clock.Now()})
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newProductsFeaturedCmd(app *app) *cobra.Command {
	var limit int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "featured",
		Short: "List featured products",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalog, err := app.catalog(cmd)
			if err != nil {
				return err
			}

			var products []domain.Product
			fetch := func(ctx context.Context) error {
				var fetchErr error
				products, fetchErr = catalog.Featured(ctx, limit)
				return fetchErr
			}
			if err := runFetchSpinner(cmd.Context(), cmd.ErrOrStderr(), "Fetching featured products...", fetch); err != nil {
				return loginGuidance(err)
			}

			return printResult(cmd, asJSON, products, func() string {
				return shopview.RenderProducts(products, shopview.RenderOptions{Now: app.clock.Now()})
			})
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 8, "Maximum number of products")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newProductsCategoriesCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List product categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalog, err := app.catalog(cmd)
			if err != nil {
				return err
			}

			var categories []domain.Category
			fetch := func(ctx context.Context) error {
				var fetchErr error
				categories, fetchErr = catalog.Categories(ctx)
				return fetchErr
			}
			if err := runFetchSpinner(cmd.Context(), cmd.ErrOrStderr(), "Fetching categories...", fetch); err != nil {
				return loginGuidance(err)
			}

			return printResult(cmd, asJSON, categories, func() string {
				return shopview.RenderCategories(categories, shopview.RenderOptions{Now: app.clock.Now()})
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func printResult(cmd *cobra.Command, asJSON bool, value any, render func() string) error {
	if asJSON {
		encoded, err := json.MarshalIndent(value, "", "  ")
		if err != nil {
			return fmt.Errorf("encode output: %w", err)
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(encoded))
		return err
	}

	_, err := fmt.Fprintln(cmd.OutOrStdout(), render())
	return err
}
