package toml

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/avelle/storefront-cli/internal/domain"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) (*SessionRepository, string) {
	t.Helper()

	sessionPath := filepath.Join(t.TempDir(), "session.toml")
	config := viper.New()
	config.Set("session.path", sessionPath)

	repo, err := NewSessionRepository(config)
	require.NoError(t, err)
	return repo, sessionPath
}

func TestSessionRepositoryRoundTrip(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRepository(t)

	session := domain.Session{
		Token: "t1",
		Identity: &domain.UserIdentity{
			ID:        1,
			Email:     "alice@example.com",
			Username:  "alice",
			FirstName: "Alice",
			LastName:  "Doe",
			Country:   "US",
			IsActive:  true,
			CreatedAt: time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC),
		},
	}

	require.NoError(t, repo.Save(context.Background(), session))

	got, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, session, got)
	assert.True(t, got.Authenticated())
}

func TestSessionRepositoryLoadMissingFileIsAnonymous(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRepository(t)

	got, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.Session{}, got)
	assert.False(t, got.Authenticated())
}

func TestSessionRepositoryClearRemovesRecord(t *testing.T) {
	t.Parallel()

	repo, sessionPath := newTestRepository(t)

	identity := domain.UserIdentity{ID: 1, Username: "alice"}
	require.NoError(t, repo.Save(context.Background(), domain.Session{Identity: &identity, Token: "t1"}))
	require.FileExists(t, sessionPath)

	require.NoError(t, repo.Clear(context.Background()))
	assert.NoFileExists(t, sessionPath)

	got, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.Session{}, got)

	// Clearing an already-cleared record is not an error.
	require.NoError(t, repo.Clear(context.Background()))
}

func TestSessionRepositoryPersistsPartialRecord(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRepository(t)

	require.NoError(t, repo.Save(context.Background(), domain.Session{Token: "orphan-token"}))

	got, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "orphan-token", got.Token)
	assert.Nil(t, got.Identity)
	assert.False(t, got.Authenticated())
}

func TestSessionRepositoryFilePermissions(t *testing.T) {
	t.Parallel()

	repo, sessionPath := newTestRepository(t)

	identity := domain.UserIdentity{ID: 1, Username: "alice"}
	require.NoError(t, repo.Save(context.Background(), domain.Session{Identity: &identity, Token: "t1"}))

	info, err := os.Stat(sessionPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestSessionRepositoryRejectsNewerSchemaVersion(t *testing.T) {
	t.Parallel()

	repo, sessionPath := newTestRepository(t)

	require.NoError(t, os.WriteFile(sessionPath, []byte("version = 99\n"), 0o600))

	_, err := repo.Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported session schema version")
}

func TestSessionRepositoryHonorsCancelledContext(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRepository(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.Load(ctx)
	require.ErrorIs(t, err, context.Canceled)
	require.ErrorIs(t, repo.Save(ctx, domain.Session{}), context.Canceled)
	require.ErrorIs(t, repo.Clear(ctx), context.Canceled)
}
