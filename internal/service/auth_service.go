package service

import (
	"context"
	"errors"

	"github.com/frosty-coder/red-society/internal/auth"
	"github.com/frosty-coder/red-society/internal/repository"
)

var ErrMissingFields = errors.New("please provide both username and password")

// AuthService handles signup and login against the user store.
type AuthService struct {
	users   repository.UserRepository
	friends repository.FriendRepository
	tokens  *auth.TokenManager
}

func NewAuthService(users repository.UserRepository, friends repository.FriendRepository, tokens *auth.TokenManager) *AuthService {
	return &AuthService{users: users, friends: friends, tokens: tokens}
}

// Signup creates the user and initializes an empty friend list. The
// password is stored as given; users.json maps username to the verbatim
// password string.
func (s *AuthService) Signup(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return ErrMissingFields
	}
	if err := s.users.Create(ctx, username, password); err != nil {
		return err
	}
	return s.friends.Init(ctx, username)
}

// Login checks credentials and returns a signed session token.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", ErrMissingFields
	}
	if err := s.users.Authenticate(ctx, username, password); err != nil {
		return "", err
	}
	return s.tokens.Issue(username)
}
