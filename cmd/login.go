package cmd

import (
	"errors"

	"github.com/avelle/storefront-cli/internal/domain"
	"github.com/spf13/cobra"
)

var errLoginFailed = errors.New("login failed")

func newLoginCmd(app *app) *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in to the storefront",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := app.sessionStore(cmd)
			if err != nil {
				return err
			}

			if !store.Login(cmd.Context(), domain.Credentials{Username: username, Password: password}) {
				return errLoginFailed
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "Account username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Account password")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newLogoutCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and clear the saved session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := app.sessionStore(cmd)
			if err != nil {
				return err
			}

			store.Logout(cmd.Context())
			return nil
		},
	}
}
