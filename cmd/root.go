package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "sf",
		Short:         "Storefront CLI (sf): browse products, manage your cart, place orders",
		Long:          "sf is a terminal client for the storefront API: log in, browse the catalog, manage your shopping cart, and place and track orders without leaving the shell.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newLoginCmd(app),
		newRegisterCmd(app),
		newLogoutCmd(app),
		newWhoamiCmd(app),
		newProductsCmd(app),
		newCartCmd(app),
		newOrdersCmd(app),
	)

	return rootCmd
}
