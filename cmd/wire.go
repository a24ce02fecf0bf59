package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/avelle/storefront-cli/internal/adapters/api"
	"github.com/avelle/storefront-cli/internal/adapters/notify"
	tomlrepo "github.com/avelle/storefront-cli/internal/adapters/repo/toml"
	"github.com/avelle/storefront-cli/internal/application"
	"github.com/avelle/storefront-cli/internal/domain"
	"github.com/avelle/storefront-cli/internal/ports"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type app struct {
	sessions   ports.SessionRepository
	apiBaseURL string
	httpClient *http.Client
	timeout    time.Duration
	clock      ports.Clock
}

func wireApp() (*app, error) {
	sessions, err := tomlrepo.NewSessionRepository(viper.New())
	if err != nil {
		return nil, fmt.Errorf("wire session repository: %w", err)
	}

	timeout, err := time.ParseDuration(envOrDefault("SF_HTTP_TIMEOUT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("parse SF_HTTP_TIMEOUT: %w", err)
	}

	return &app{
		sessions:   sessions,
		apiBaseURL: envOrDefault("SF_API_BASE_URL", "http://localhost:8000/api/v1"),
		httpClient: http.DefaultClient,
		timeout:    timeout,
		clock:      ports.SystemClock{},
	}, nil
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func (a *app) apiClient(cmd *cobra.Command) (*api.Client, error) {
	notifier := a.notifier(cmd)

	client, err := api.NewClient(api.Config{
		BaseURL:        a.apiBaseURL,
		HTTPClient:     a.httpClient,
		Sessions:       a.sessions,
		RequestTimeout: a.timeout,
		OnAuthExpired: func(context.Context) {
			notifier.Error("Your session has expired. Please log in again.")
		},
	})
	if err != nil {
		return nil, fmt.Errorf("wire api client: %w", err)
	}

	return client, nil
}

func (a *app) notifier(cmd *cobra.Command) ports.Notifier {
	return notify.NewConsole(cmd.OutOrStdout(), cmd.ErrOrStderr())
}

func (a *app) sessionStore(cmd *cobra.Command) (*application.SessionStore, error) {
	client, err := a.apiClient(cmd)
	if err != nil {
		return nil, err
	}

	return application.NewSessionStore(client, a.sessions, a.notifier(cmd)), nil
}

func (a *app) cartStore(cmd *cobra.Command) (*application.CartStore, error) {
	client, err := a.apiClient(cmd)
	if err != nil {
		return nil, err
	}

	return application.NewCartStore(client, a.notifier(cmd)), nil
}

func (a *app) catalog(cmd *cobra.Command) (*application.Catalog, error) {
	client, err := a.apiClient(cmd)
	if err != nil {
		return nil, err
	}

	return application.NewCatalog(client), nil
}

func (a *app) orders(cmd *cobra.Command) (*application.Orders, error) {
	client, err := a.apiClient(cmd)
	if err != nil {
		return nil, err
	}

	return application.NewOrders(client, a.notifier(cmd)), nil
}

// loginGuidance maps an expired session to an actionable failure. The API
// client has already evicted the persisted record by the time this runs; all
// that is left is to point the user back at login.
func loginGuidance(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrSessionExpired) {
		return fmt.Errorf("session expired: run `sf login` to sign in again: %w", err)
	}
	return err
}
