// api/service/auth_service_test.go
package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	board_errors "github.com/dev-anuragv/skillboard/api/errors"
	"github.com/dev-anuragv/skillboard/api/model"
)

func registerAlice(t *testing.T, env *testEnv) *model.User {
	t.Helper()
	user, err := env.services.User.Register(context.Background(), model.UserCreate{
		Name:     "alice",
		Age:      30,
		Password: "Passw0rd",
		City:     "London",
	})
	require.NoError(t, err)
	return user
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	env := newTestEnv(t)
	registerAlice(t, env)
	ctx := context.Background()

	pair, err := env.services.Auth.Login(ctx, "alice", "Passw0rd", "10.0.0.1")
	require.NoError(t, err)

	assert.Equal(t, "bearer", pair.TokenType)
	assert.NotEmpty(t, pair.RefreshSecret)

	claims, err := env.issuer.Verify(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims["sub"])
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	env := newTestEnv(t)
	registerAlice(t, env)
	ctx := context.Background()

	_, err := env.services.Auth.Login(ctx, "alice", "wrong-password", "10.0.0.1")
	assert.ErrorIs(t, err, board_errors.ErrAuth)

	// Unknown user and wrong password are indistinguishable.
	_, err = env.services.Auth.Login(ctx, "nobody", "Passw0rd", "10.0.0.1")
	assert.ErrorIs(t, err, board_errors.ErrAuth)
}

func TestLoginDatabaseOutageIsNotAuthFailure(t *testing.T) {
	env := newTestEnv(t)
	registerAlice(t, env)

	// With the database gone, valid credentials must surface an internal
	// error, not "invalid username or password".
	sqlDB, err := env.gdb.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	_, err = env.services.Auth.Login(context.Background(), "alice", "Passw0rd", "10.0.0.1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, board_errors.ErrAuth)
	assert.ErrorIs(t, err, board_errors.ErrDatabaseOperation)
}

func TestRefreshRotatesSession(t *testing.T) {
	env := newTestEnv(t)
	alice := registerAlice(t, env)
	ctx := context.Background()

	pair, err := env.services.Auth.Login(ctx, "alice", "Passw0rd", "10.0.0.1")
	require.NoError(t, err)

	next, err := env.services.Auth.Refresh(ctx, pair.RefreshSecret, "10.0.0.1")
	require.NoError(t, err)
	assert.NotEqual(t, pair.RefreshSecret, next.RefreshSecret)

	// Refreshed tokens carry the numeric user ID; it resolves to the same
	// account the login token did.
	claims, err := env.issuer.Verify(next.AccessToken)
	require.NoError(t, err)
	resolved, err := env.services.User.ResolveSubject(ctx, claims["sub"].(string))
	require.NoError(t, err)
	assert.Equal(t, alice.ID, resolved.ID)

	// The consumed secret is dead.
	_, err = env.services.Auth.Refresh(ctx, pair.RefreshSecret, "10.0.0.1")
	assert.ErrorIs(t, err, board_errors.ErrSessionNotFound)
}

func TestRefreshUnknownSecret(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.services.Auth.Refresh(context.Background(), "no-such-secret", "10.0.0.1")
	assert.ErrorIs(t, err, board_errors.ErrSessionNotFound)
}

func TestLogoutKillsSession(t *testing.T) {
	env := newTestEnv(t)
	registerAlice(t, env)
	ctx := context.Background()

	pair, err := env.services.Auth.Login(ctx, "alice", "Passw0rd", "10.0.0.1")
	require.NoError(t, err)

	require.NoError(t, env.services.Auth.Logout(ctx, pair.RefreshSecret, "10.0.0.1"))

	_, err = env.services.Auth.Refresh(ctx, pair.RefreshSecret, "10.0.0.1")
	assert.ErrorIs(t, err, board_errors.ErrSessionNotFound)

	// Logging out twice with the same secret still succeeds.
	assert.NoError(t, env.services.Auth.Logout(ctx, pair.RefreshSecret, "10.0.0.1"))
}
