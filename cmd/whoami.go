package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/avelle/storefront-cli/internal/adapters/render/shopview"
	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/cobra"
)

var errNotLoggedIn = errors.New("not logged in: run `sf login` first")

func newWhoamiCmd(app *app) *cobra.Command {
	var remote bool
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user and token state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := app.sessionStore(cmd)
			if err != nil {
				return err
			}

			if err := store.Initialize(cmd.Context()); err != nil {
				return err
			}
			if !store.Authenticated() {
				return errNotLoggedIn
			}

			if remote {
				if err := store.Refresh(cmd.Context()); err != nil {
					return loginGuidance(err)
				}
			}

			session := store.Session()

			if asJSON {
				encoded, err := json.MarshalIndent(session.Identity, "", "  ")
				if err != nil {
					return fmt.Errorf("encode identity: %w", err)
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), string(encoded))
				return err
			}

			token := shopview.TokenInfo{ExpiresAt: tokenExpiry(session.Token)}
			output := shopview.RenderSession(*session.Identity, token, shopview.RenderOptions{Now: app.clock.Now()})
			_, err = fmt.Fprintln(cmd.OutOrStdout(), output)
			return err
		},
	}

	cmd.Flags().BoolVar(&remote, "remote", false, "Refresh the profile from the server instead of the saved session")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

// tokenExpiry reads the exp claim without validating the signature; the
// server stays the authority on token validity.
func tokenExpiry(token string) time.Time {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return time.Time{}
	}

	expiry, err := parsed.Claims.GetExpirationTime()
	if err != nil || expiry == nil {
		return time.Time{}
	}

	return expiry.Time
}
