package api

import (
	"context"
	"net/http"

	"github.com/avelle/storefront-cli/internal/domain"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	User        userPayload `json:"user"`
}

type registerRequest struct {
	Email     string `json:"email"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Password  string `json:"password"`
	Phone     string `json:"phone,omitempty"`
	Address   string `json:"address,omitempty"`
	City      string `json:"city,omitempty"`
	State     string `json:"state,omitempty"`
	ZipCode   string `json:"zip_code,omitempty"`
	Country   string `json:"country,omitempty"`
}

func (c *Client) Login(ctx context.Context, creds domain.Credentials) (domain.AuthSession, error) {
	body := loginRequest{Username: creds.Username, Password: creds.Password}

	var resp loginResponse
	if err := c.send(ctx, http.MethodPost, "/auth/login-json", nil, body, &resp); err != nil {
		return domain.AuthSession{}, err
	}

	return domain.AuthSession{
		Token:     resp.AccessToken,
		TokenType: resp.TokenType,
		Identity:  resp.User.toDomain(),
	}, nil
}

func (c *Client) Register(ctx context.Context, reg domain.Registration) (domain.UserIdentity, error) {
	body := registerRequest{
		Email:     reg.Email,
		Username:  reg.Username,
		FirstName: reg.FirstName,
		LastName:  reg.LastName,
		Password:  reg.Password,
		Phone:     reg.Phone,
		Address:   reg.Address,
		City:      reg.City,
		State:     reg.State,
		ZipCode:   reg.ZipCode,
		Country:   reg.Country,
	}

	var resp userPayload
	if err := c.send(ctx, http.MethodPost, "/auth/register", nil, body, &resp); err != nil {
		return domain.UserIdentity{}, err
	}

	return resp.toDomain(), nil
}

func (c *Client) CurrentUser(ctx context.Context) (domain.UserIdentity, error) {
	var resp userPayload
	if err := c.send(ctx, http.MethodGet, "/auth/me", nil, nil, &resp); err != nil {
		return domain.UserIdentity{}, err
	}

	return resp.toDomain(), nil
}

func (c *Client) Logout(ctx context.Context) error {
	return c.send(ctx, http.MethodPost, "/auth/logout", nil, nil, nil)
}
