package ports

import (
	"context"

	"github.com/avelle/storefront-cli/internal/domain"
)

// SessionRepository persists the single local session record across process
// restarts. Load returns the zero session when no record exists.
type SessionRepository interface {
	Load(ctx context.Context) (domain.Session, error)
	Save(ctx context.Context, session domain.Session) error
	Clear(ctx context.Context) error
}
