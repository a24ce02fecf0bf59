package shopview

import (
	"fmt"
	"time"

	"github.com/avelle/storefront-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// TokenInfo is whatever could be read from the access token without
// validating it. A zero ExpiresAt means the expiry is unknown.
type TokenInfo struct {
	ExpiresAt time.Time
}

func RenderSession(identity domain.UserIdentity, token TokenInfo, opts RenderOptions) string {
	s := newStyles()

	lines := []string{
		s.title.Render("Signed in"),
		s.name.Render(fmt.Sprintf("%s %s (@%s)", identity.FirstName, identity.LastName, identity.Username)),
		s.detail.Render(identity.Email),
	}

	if identity.IsAdmin {
		lines = append(lines, s.meta.Render("role: admin"))
	}

	location := joinNonEmpty(identity.City, identity.State, identity.Country)
	if location != "" {
		lines = append(lines, s.meta.Render(location))
	}

	lines = append(lines, tokenLine(token, opts, s))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func tokenLine(token TokenInfo, opts RenderOptions, s styles) string {
	if token.ExpiresAt.IsZero() {
		return s.meta.Render("token expiry: unknown")
	}

	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	if token.ExpiresAt.Before(now) {
		return s.warning.Render(fmt.Sprintf("token expired %s, the next request will sign you out", token.ExpiresAt.Format(time.RFC3339)))
	}

	return s.meta.Render("token valid until " + token.ExpiresAt.Format(time.RFC3339))
}

func joinNonEmpty(parts ...string) string {
	joined := ""
	for _, part := range parts {
		if part == "" {
			continue
		}
		if joined != "" {
			joined += ", "
		}
		joined += part
	}
	return joined
}
