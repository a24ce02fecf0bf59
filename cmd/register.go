package cmd

import (
	"errors"

	"github.com/avelle/storefront-cli/internal/domain"
	"github.com/spf13/cobra"
)

var errRegistrationFailed = errors.New("registration failed")

func newRegisterCmd(app *app) *cobra.Command {
	var reg domain.Registration

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a storefront account",
		Long:  "Creates a new account. Registration does not sign you in; run `sf login` afterwards.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := app.sessionStore(cmd)
			if err != nil {
				return err
			}

			if !store.Register(cmd.Context(), reg) {
				return errRegistrationFailed
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&reg.Email, "email", "", "Email address")
	cmd.Flags().StringVar(&reg.Username, "username", "", "Username")
	cmd.Flags().StringVar(&reg.FirstName, "first-name", "", "First name")
	cmd.Flags().StringVar(&reg.LastName, "last-name", "", "Last name")
	cmd.Flags().StringVar(&reg.Password, "password", "", "Password")
	cmd.Flags().StringVar(&reg.Phone, "phone", "", "Phone number")
	cmd.Flags().StringVar(&reg.Address, "address", "", "Street address")
	cmd.Flags().StringVar(&reg.City, "city", "", "City")
	cmd.Flags().StringVar(&reg.State, "state", "", "State or province")
	cmd.Flags().StringVar(&reg.ZipCode, "zip-code", "", "Postal code")
	cmd.Flags().StringVar(&reg.Country, "country", "", "Country")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("first-name")
	_ = cmd.MarkFlagRequired("last-name")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}
