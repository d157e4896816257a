package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frosty-coder/red-society/internal/auth"
	"github.com/frosty-coder/red-society/internal/repository"
	"github.com/frosty-coder/red-society/internal/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	s := store.New(t.TempDir())
	require.NoError(t, s.Init())
	return s
}

func newAuthService(t *testing.T) (*AuthService, repository.FriendRepository) {
	t.Helper()
	st := newTestStore(t)
	users := repository.NewUserRepository(st)
	friends := repository.NewFriendRepository(st)
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	return NewAuthService(users, friends, tokens), friends
}

func TestSignupThenLogin(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthService(t)

	require.NoError(t, svc.Signup(ctx, "alice", "p1"))

	token, err := svc.Login(ctx, "alice", "p1")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestSignupInitializesFriendList(t *testing.T) {
	ctx := context.Background()
	svc, friends := newAuthService(t)

	require.NoError(t, svc.Signup(ctx, "alice", "p1"))
	list, err := friends.List(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestSignupMissingFields(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthService(t)

	assert.ErrorIs(t, svc.Signup(ctx, "", "p1"), ErrMissingFields)
	assert.ErrorIs(t, svc.Signup(ctx, "alice", ""), ErrMissingFields)
}

func TestSignupDuplicateUsername(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthService(t)

	require.NoError(t, svc.Signup(ctx, "alice", "p1"))
	// a different password makes no difference
	assert.ErrorIs(t, svc.Signup(ctx, "alice", "p2"), repository.ErrUserExists)
}

func TestLoginWrongCredentials(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthService(t)

	require.NoError(t, svc.Signup(ctx, "alice", "p1"))

	_, err := svc.Login(ctx, "alice", "nope")
	assert.ErrorIs(t, err, repository.ErrInvalidCredentials)

	_, err = svc.Login(ctx, "nobody", "p1")
	assert.ErrorIs(t, err, repository.ErrInvalidCredentials)

	_, err = svc.Login(ctx, "", "p1")
	assert.ErrorIs(t, err, ErrMissingFields)
}

func TestLoginTokenCarriesUsername(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	users := repository.NewUserRepository(st)
	friends := repository.NewFriendRepository(st)
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	svc := NewAuthService(users, friends, tokens)

	require.NoError(t, svc.Signup(ctx, "alice", "p1"))
	token, err := svc.Login(ctx, "alice", "p1")
	require.NoError(t, err)

	claims, err := tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)
	assert.NotEmpty(t, claims.ID)
}
