package service

import (
	"context"
	"errors"
	"strings"

	"github.com/frosty-coder/red-society/internal/repository"
)

var ErrNoQuery = errors.New("no name provided")

// UserService exposes the user directory.
type UserService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) *UserService {
	return &UserService{users: users}
}

func (s *UserService) All(ctx context.Context) ([]string, error) {
	return s.users.All(ctx)
}

// Search finds usernames containing the query, case-insensitive.
func (s *UserService) Search(ctx context.Context, query string) ([]string, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrNoQuery
	}
	return s.users.Search(ctx, query)
}
