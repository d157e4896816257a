package repository

import (
	"context"

	"github.com/frosty-coder/red-society/internal/models"
	"github.com/frosty-coder/red-society/internal/store"
)

type MessageRepository interface {
	Append(ctx context.Context, msg models.Message) error
	// Between returns direct messages exchanged between a and b in either
	// direction, in storage order (oldest first).
	Between(ctx context.Context, a, b string) ([]models.Message, error)
	// ForGroup returns every message tagged with the group name, in
	// storage order.
	ForGroup(ctx context.Context, group string) ([]models.Message, error)
}

type fileMessageRepo struct {
	store *store.Store
}

func NewMessageRepository(s *store.Store) MessageRepository {
	return &fileMessageRepo{store: s}
}

func (r *fileMessageRepo) Append(ctx context.Context, msg models.Message) error {
	return r.store.Update(store.Messages, func() error {
		messages := []models.Message{}
		if err := r.store.Load(store.Messages, &messages); err != nil {
			return err
		}
		messages = append(messages, msg)
		return r.store.Save(store.Messages, messages)
	})
}

func (r *fileMessageRepo) Between(ctx context.Context, a, b string) ([]models.Message, error) {
	return r.filter(func(m models.Message) bool {
		if m.Group != "" {
			return false
		}
		return (m.Sender == a && m.Recipient == b) || (m.Sender == b && m.Recipient == a)
	})
}

func (r *fileMessageRepo) ForGroup(ctx context.Context, group string) ([]models.Message, error) {
	return r.filter(func(m models.Message) bool {
		return m.Group == group
	})
}

func (r *fileMessageRepo) filter(keep func(models.Message) bool) ([]models.Message, error) {
	matched := make([]models.Message, 0)
	err := r.store.Update(store.Messages, func() error {
		messages := []models.Message{}
		if err := r.store.Load(store.Messages, &messages); err != nil {
			return err
		}
		for _, m := range messages {
			if keep(m) {
				matched = append(matched, m)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return matched, nil
}
