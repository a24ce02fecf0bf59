package toml

import (
	"fmt"
	"time"

	"github.com/avelle/storefront-cli/internal/domain"
)

const currentSchemaVersion = 1

type fileSchema struct {
	Version int           `toml:"version"`
	Session sessionSchema `toml:"session"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported session schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type sessionSchema struct {
	Authenticated bool            `toml:"authenticated"`
	Token         string          `toml:"token"`
	Identity      *identitySchema `toml:"identity,omitempty"`
}

type identitySchema struct {
	ID        int64  `toml:"id"`
	Email     string `toml:"email"`
	Username  string `toml:"username"`
	FirstName string `toml:"first_name"`
	LastName  string `toml:"last_name"`
	Phone     string `toml:"phone,omitempty"`
	Address   string `toml:"address,omitempty"`
	City      string `toml:"city,omitempty"`
	State     string `toml:"state,omitempty"`
	ZipCode   string `toml:"zip_code,omitempty"`
	Country   string `toml:"country,omitempty"`
	IsActive  bool   `toml:"is_active"`
	IsAdmin   bool   `toml:"is_admin"`
	CreatedAt string `toml:"created_at,omitempty"`
	UpdatedAt string `toml:"updated_at,omitempty"`
}

func toSchema(session domain.Session) sessionSchema {
	encoded := sessionSchema{
		Authenticated: session.Authenticated(),
		Token:         session.Token,
	}

	if session.Identity != nil {
		identity := session.Identity
		encoded.Identity = &identitySchema{
			ID:        int64(identity.ID),
			Email:     identity.Email,
			Username:  identity.Username,
			FirstName: identity.FirstName,
			LastName:  identity.LastName,
			Phone:     identity.Phone,
			Address:   identity.Address,
			City:      identity.City,
			State:     identity.State,
			ZipCode:   identity.ZipCode,
			Country:   identity.Country,
			IsActive:  identity.IsActive,
			IsAdmin:   identity.IsAdmin,
			CreatedAt: formatTime(identity.CreatedAt),
			UpdatedAt: formatTime(identity.UpdatedAt),
		}
	}

	return encoded
}

func fromSchema(session sessionSchema) domain.Session {
	decoded := domain.Session{Token: session.Token}

	if session.Identity != nil {
		decoded.Identity = &domain.UserIdentity{
			ID:        domain.UserID(session.Identity.ID),
			Email:     session.Identity.Email,
			Username:  session.Identity.Username,
			FirstName: session.Identity.FirstName,
			LastName:  session.Identity.LastName,
			Phone:     session.Identity.Phone,
			Address:   session.Identity.Address,
			City:      session.Identity.City,
			State:     session.Identity.State,
			ZipCode:   session.Identity.ZipCode,
			Country:   session.Identity.Country,
			IsActive:  session.Identity.IsActive,
			IsAdmin:   session.Identity.IsAdmin,
			CreatedAt: parseTime(session.Identity.CreatedAt),
			UpdatedAt: parseTime(session.Identity.UpdatedAt),
		}
	}

	return decoded
}

func parseTime(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}

	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}
	}

	return parsed
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}

	return value.Format(time.RFC3339)
}
