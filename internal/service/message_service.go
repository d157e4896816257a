package service

import (
	"context"
	"errors"
	"time"

	"github.com/frosty-coder/red-society/internal/models"
	"github.com/frosty-coder/red-society/internal/repository"
)

var ErrEmptyMessage = errors.New("message is empty")

// MessageService appends to and filters the append-only message log.
type MessageService struct {
	messages repository.MessageRepository
}

func NewMessageService(messages repository.MessageRepository) *MessageService {
	return &MessageService{messages: messages}
}

// Send records a message from sender to target and returns its timestamp.
// The target is not validated; a message to an unknown user or group is
// stored all the same.
func (s *MessageService) Send(ctx context.Context, sender, content, target string, isGroup bool) (string, error) {
	if content == "" {
		return "", ErrEmptyMessage
	}
	timestamp := time.Now().Format(models.TimestampLayout)
	msg := models.Message{
		Sender:    sender,
		Content:   content,
		Timestamp: timestamp,
	}
	if isGroup {
		msg.Group = target
	} else {
		msg.Recipient = target
	}
	if err := s.messages.Append(ctx, msg); err != nil {
		return "", err
	}
	return timestamp, nil
}

// History returns the conversation between requester and target in storage
// order. Group history is open to any authenticated requester; there is no
// membership check.
func (s *MessageService) History(ctx context.Context, requester, target string, isGroup bool) ([]models.Message, error) {
	if isGroup {
		return s.messages.ForGroup(ctx, target)
	}
	return s.messages.Between(ctx, requester, target)
}
