package repository

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/frosty-coder/red-society/internal/store"
)

var (
	ErrUserExists         = errors.New("username already exists")
	ErrUserNotFound       = errors.New("user does not exist")
	ErrInvalidCredentials = errors.New("wrong username or password")
)

type UserRepository interface {
	Create(ctx context.Context, username, password string) error
	Exists(ctx context.Context, username string) (bool, error)
	Authenticate(ctx context.Context, username, password string) error
	All(ctx context.Context) ([]string, error)
	Search(ctx context.Context, query string) ([]string, error)
}

type fileUserRepo struct {
	store *store.Store
}

func NewUserRepository(s *store.Store) UserRepository {
	return &fileUserRepo{store: s}
}

func (r *fileUserRepo) Create(ctx context.Context, username, password string) error {
	return r.store.Update(store.Users, func() error {
		users := map[string]string{}
		if err := r.store.Load(store.Users, &users); err != nil {
			return err
		}
		if _, ok := users[username]; ok {
			return ErrUserExists
		}
		users[username] = password
		return r.store.Save(store.Users, users)
	})
}

func (r *fileUserRepo) Exists(ctx context.Context, username string) (bool, error) {
	var found bool
	err := r.store.Update(store.Users, func() error {
		users := map[string]string{}
		if err := r.store.Load(store.Users, &users); err != nil {
			return err
		}
		_, found = users[username]
		return nil
	})
	return found, err
}

func (r *fileUserRepo) Authenticate(ctx context.Context, username, password string) error {
	return r.store.Update(store.Users, func() error {
		users := map[string]string{}
		if err := r.store.Load(store.Users, &users); err != nil {
			return err
		}
		stored, ok := users[username]
		if !ok || stored != password {
			return ErrInvalidCredentials
		}
		return nil
	})
}

func (r *fileUserRepo) All(ctx context.Context) ([]string, error) {
	var names []string
	err := r.store.Update(store.Users, func() error {
		users := map[string]string{}
		if err := r.store.Load(store.Users, &users); err != nil {
			return err
		}
		names = make([]string, 0, len(users))
		for name := range users {
			names = append(names, name)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(names)
	return names, nil
}

func (r *fileUserRepo) Search(ctx context.Context, query string) ([]string, error) {
	all, err := r.All(ctx)
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(query)
	matches := make([]string, 0)
	for _, name := range all {
		if strings.Contains(strings.ToLower(name), q) {
			matches = append(matches, name)
		}
	}
	return matches, nil
}
