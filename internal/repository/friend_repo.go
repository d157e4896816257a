package repository

import (
	"context"
	"errors"

	"github.com/frosty-coder/red-society/internal/store"
)

var ErrAlreadyFriends = errors.New("already friends")

type FriendRepository interface {
	// Init sets username's friend list to empty; called once at signup.
	Init(ctx context.Context, username string) error
	// Add appends friend to username's list and username to friend's list.
	// Both sides are written in one locked update, so the relation stays
	// symmetric.
	Add(ctx context.Context, username, friend string) error
	// List returns username's friends, initializing and persisting an
	// empty list when the entry is absent.
	List(ctx context.Context, username string) ([]string, error)
}

type fileFriendRepo struct {
	store *store.Store
}

func NewFriendRepository(s *store.Store) FriendRepository {
	return &fileFriendRepo{store: s}
}

func (r *fileFriendRepo) Init(ctx context.Context, username string) error {
	return r.store.Update(store.Friends, func() error {
		friends := map[string][]string{}
		if err := r.store.Load(store.Friends, &friends); err != nil {
			return err
		}
		friends[username] = []string{}
		return r.store.Save(store.Friends, friends)
	})
}

func (r *fileFriendRepo) Add(ctx context.Context, username, friend string) error {
	return r.store.Update(store.Friends, func() error {
		friends := map[string][]string{}
		if err := r.store.Load(store.Friends, &friends); err != nil {
			return err
		}
		if contains(friends[username], friend) {
			return ErrAlreadyFriends
		}
		friends[username] = append(friends[username], friend)
		if !contains(friends[friend], username) {
			friends[friend] = append(friends[friend], username)
		}
		return r.store.Save(store.Friends, friends)
	})
}

func (r *fileFriendRepo) List(ctx context.Context, username string) ([]string, error) {
	var list []string
	err := r.store.Update(store.Friends, func() error {
		friends := map[string][]string{}
		if err := r.store.Load(store.Friends, &friends); err != nil {
			return err
		}
		if _, ok := friends[username]; !ok {
			friends[username] = []string{}
			if err := r.store.Save(store.Friends, friends); err != nil {
				return err
			}
		}
		list = friends[username]
		return nil
	})
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []string{}
	}
	return list, nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
