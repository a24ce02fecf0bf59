package application

import (
	"context"
	"testing"

	"github.com/avelle/storefront-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStoreLoginSuccess(t *testing.T) {
	t.Parallel()

	api := &fakeAuthAPI{
		loginResult: domain.AuthSession{
			Token:     "t1",
			TokenType: "bearer",
			Identity:  domain.UserIdentity{ID: 1, Username: "alice", FirstName: "Alice"},
		},
	}
	sessions := &memorySessions{}
	notifier := &recordingNotifier{}
	store := NewSessionStore(api, sessions, notifier)

	ok := store.Login(context.Background(), domain.Credentials{Username: "alice", Password: "x"})
	require.True(t, ok)

	session := store.Session()
	assert.True(t, session.Authenticated())
	assert.Equal(t, "t1", session.Token)
	require.NotNil(t, session.Identity)
	assert.Equal(t, domain.UserID(1), session.Identity.ID)

	assert.Equal(t, 1, sessions.saves)
	assert.True(t, sessions.session.Authenticated())
	assert.Equal(t, []string{"Welcome back, Alice!"}, notifier.successes)
	assert.False(t, store.Loading())
}

func TestSessionStoreLoginFailureLeavesStateUntouched(t *testing.T) {
	t.Parallel()

	api := &fakeAuthAPI{
		loginErr: &domain.RequestError{Kind: domain.ErrorKindServer, StatusCode: 400, Detail: "Incorrect username or password"},
	}
	sessions := &memorySessions{}
	notifier := &recordingNotifier{}
	store := NewSessionStore(api, sessions, notifier)

	ok := store.Login(context.Background(), domain.Credentials{Username: "alice", Password: "wrong"})
	require.False(t, ok)

	assert.Equal(t, domain.Session{}, store.Session())
	assert.Equal(t, 0, sessions.saves)
	assert.Equal(t, []string{"Incorrect username or password"}, notifier.failures)
	assert.Empty(t, notifier.successes)
}

func TestSessionStoreLoginFailureFallbackMessage(t *testing.T) {
	t.Parallel()

	api := &fakeAuthAPI{
		loginErr: &domain.RequestError{Kind: domain.ErrorKindNetwork},
	}
	notifier := &recordingNotifier{}
	store := NewSessionStore(api, &memorySessions{}, notifier)

	require.False(t, store.Login(context.Background(), domain.Credentials{Username: "alice", Password: "x"}))
	assert.Equal(t, []string{"Login failed"}, notifier.failures)
}

func TestSessionStoreLoginThenLogoutIsAnonymous(t *testing.T) {
	t.Parallel()

	api := &fakeAuthAPI{
		loginResult: domain.AuthSession{
			Token:    "t1",
			Identity: domain.UserIdentity{ID: 1, Username: "alice", FirstName: "Alice"},
		},
	}
	sessions := &memorySessions{}
	store := NewSessionStore(api, sessions, &recordingNotifier{})

	require.True(t, store.Login(context.Background(), domain.Credentials{Username: "alice", Password: "x"}))
	store.Logout(context.Background())

	assert.Equal(t, domain.Session{}, store.Session())
	assert.False(t, store.Authenticated())
	assert.Equal(t, 1, sessions.clears)
	assert.Equal(t, domain.Session{}, sessions.session)
	assert.Equal(t, 1, api.logoutCalls)
}

func TestSessionStoreLogoutClearsLocallyEvenWhenRemoteFails(t *testing.T) {
	t.Parallel()

	api := &fakeAuthAPI{
		loginResult: domain.AuthSession{Token: "t1", Identity: domain.UserIdentity{ID: 1}},
		logoutErr:   &domain.RequestError{Kind: domain.ErrorKindNetwork},
	}
	sessions := &memorySessions{}
	store := NewSessionStore(api, sessions, &recordingNotifier{})

	require.True(t, store.Login(context.Background(), domain.Credentials{}))
	store.Logout(context.Background())

	assert.False(t, store.Authenticated())
	assert.Equal(t, domain.Session{}, sessions.session)
}

func TestSessionStoreRegisterDoesNotAuthenticate(t *testing.T) {
	t.Parallel()

	api := &fakeAuthAPI{}
	sessions := &memorySessions{}
	notifier := &recordingNotifier{}
	store := NewSessionStore(api, sessions, notifier)

	ok := store.Register(context.Background(), domain.Registration{
		Email:    "alice@example.com",
		Username: "alice",
		Password: "x",
	})
	require.True(t, ok)

	assert.False(t, store.Authenticated())
	assert.Equal(t, domain.Session{}, store.Session())
	assert.Equal(t, 0, sessions.saves)
	assert.Equal(t, []string{"Registration successful! Please log in."}, notifier.successes)
	assert.Equal(t, "alice", api.lastRegister.Username)
}

func TestSessionStoreRegisterFailureUsesServerDetail(t *testing.T) {
	t.Parallel()

	api := &fakeAuthAPI{
		registerErr: &domain.RequestError{Kind: domain.ErrorKindServer, StatusCode: 400, Detail: "Email already registered"},
	}
	notifier := &recordingNotifier{}
	store := NewSessionStore(api, &memorySessions{}, notifier)

	require.False(t, store.Register(context.Background(), domain.Registration{Email: "dup@example.com"}))
	assert.Equal(t, []string{"Email already registered"}, notifier.failures)
}

func TestSessionStoreInitializeHydratesCompleteRecord(t *testing.T) {
	t.Parallel()

	identity := domain.UserIdentity{ID: 1, Username: "alice"}
	sessions := &memorySessions{session: domain.Session{Identity: &identity, Token: "t1"}}
	store := NewSessionStore(&fakeAuthAPI{}, sessions, &recordingNotifier{})

	require.NoError(t, store.Initialize(context.Background()))
	assert.True(t, store.Authenticated())
	assert.Equal(t, "t1", store.Session().Token)
}

func TestSessionStoreInitializePartialRecordStaysAnonymous(t *testing.T) {
	t.Parallel()

	identity := domain.UserIdentity{ID: 1, Username: "alice"}
	cases := map[string]domain.Session{
		"empty":         {},
		"token only":    {Token: "t1"},
		"identity only": {Identity: &identity},
	}

	for name, persisted := range cases {
		persisted := persisted
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			sessions := &memorySessions{session: persisted}
			store := NewSessionStore(&fakeAuthAPI{}, sessions, &recordingNotifier{})

			require.NoError(t, store.Initialize(context.Background()))
			assert.False(t, store.Authenticated())
		})
	}
}

func TestSessionStoreRefreshReplacesIdentity(t *testing.T) {
	t.Parallel()

	api := &fakeAuthAPI{
		loginResult: domain.AuthSession{Token: "t1", Identity: domain.UserIdentity{ID: 1, FirstName: "Alice"}},
		currentUser: domain.UserIdentity{ID: 1, FirstName: "Alicia"},
	}
	store := NewSessionStore(api, &memorySessions{}, &recordingNotifier{})

	require.True(t, store.Login(context.Background(), domain.Credentials{}))
	require.NoError(t, store.Refresh(context.Background()))
	assert.Equal(t, "Alicia", store.Session().Identity.FirstName)
}
