package service

import (
	"context"
	"errors"
	"time"

	"github.com/frosty-coder/red-society/internal/models"
	"github.com/frosty-coder/red-society/internal/repository"
)

var (
	ErrNoFriendName = errors.New("no friend name provided")
	ErrSelfFriend   = errors.New("cannot add yourself as a friend")
	ErrNoGroupName  = errors.New("no group name provided")
)

// SocialService maintains the friend relation and the group set.
type SocialService struct {
	users   repository.UserRepository
	friends repository.FriendRepository
	groups  repository.GroupRepository
}

func NewSocialService(users repository.UserRepository, friends repository.FriendRepository, groups repository.GroupRepository) *SocialService {
	return &SocialService{users: users, friends: friends, groups: groups}
}

// AddFriend links username and friend in both directions.
func (s *SocialService) AddFriend(ctx context.Context, username, friend string) error {
	if friend == "" {
		return ErrNoFriendName
	}
	exists, err := s.users.Exists(ctx, friend)
	if err != nil {
		return err
	}
	if !exists {
		return repository.ErrUserNotFound
	}
	if friend == username {
		return ErrSelfFriend
	}
	return s.friends.Add(ctx, username, friend)
}

func (s *SocialService) Friends(ctx context.Context, username string) ([]string, error) {
	return s.friends.List(ctx, username)
}

// CreateGroup creates a group with the creator always included in the
// member list. Membership is fixed from then on.
func (s *SocialService) CreateGroup(ctx context.Context, creator, name string, members []string) error {
	if name == "" {
		return ErrNoGroupName
	}
	if !containsString(members, creator) {
		members = append(members, creator)
	}
	group := models.Group{
		Creator:   creator,
		Members:   members,
		CreatedAt: time.Now().Format(models.TimestampLayout),
	}
	return s.groups.Create(ctx, name, group)
}

// GroupsFor returns the groups username belongs to, keyed by name.
func (s *SocialService) GroupsFor(ctx context.Context, username string) (map[string]models.Group, error) {
	return s.groups.ForMember(ctx, username)
}

func containsString(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
