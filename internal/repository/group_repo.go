package repository

import (
	"context"
	"errors"

	"github.com/frosty-coder/red-society/internal/models"
	"github.com/frosty-coder/red-society/internal/store"
)

var ErrGroupExists = errors.New("group name already exists")

type GroupRepository interface {
	Create(ctx context.Context, name string, group models.Group) error
	// ForMember returns every group whose member list contains username,
	// keyed by group name.
	ForMember(ctx context.Context, username string) (map[string]models.Group, error)
}

type fileGroupRepo struct {
	store *store.Store
}

func NewGroupRepository(s *store.Store) GroupRepository {
	return &fileGroupRepo{store: s}
}

func (r *fileGroupRepo) Create(ctx context.Context, name string, group models.Group) error {
	return r.store.Update(store.Groups, func() error {
		groups := map[string]models.Group{}
		if err := r.store.Load(store.Groups, &groups); err != nil {
			return err
		}
		if _, ok := groups[name]; ok {
			return ErrGroupExists
		}
		groups[name] = group
		return r.store.Save(store.Groups, groups)
	})
}

func (r *fileGroupRepo) ForMember(ctx context.Context, username string) (map[string]models.Group, error) {
	matched := map[string]models.Group{}
	err := r.store.Update(store.Groups, func() error {
		groups := map[string]models.Group{}
		if err := r.store.Load(store.Groups, &groups); err != nil {
			return err
		}
		for name, g := range groups {
			if contains(g.Members, username) {
				matched[name] = g
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return matched, nil
}
