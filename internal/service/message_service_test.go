package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frosty-coder/red-society/internal/models"
	"github.com/frosty-coder/red-society/internal/repository"
)

func newMessageService(t *testing.T) *MessageService {
	t.Helper()
	return NewMessageService(repository.NewMessageRepository(newTestStore(t)))
}

func TestSendDirectMessage(t *testing.T) {
	ctx := context.Background()
	svc := newMessageService(t)

	ts, err := svc.Send(ctx, "alice", "hi", "bob", false)
	require.NoError(t, err)

	parsed, err := time.ParseInLocation(models.TimestampLayout, ts, time.Local)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), parsed, 5*time.Second)

	msgs, err := svc.History(ctx, "bob", "alice", false)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "alice", msgs[0].Sender)
	assert.Equal(t, "bob", msgs[0].Recipient)
	assert.Equal(t, "hi", msgs[0].Content)
	assert.Equal(t, ts, msgs[0].Timestamp)
	assert.Empty(t, msgs[0].Group)
}

func TestSendEmptyMessage(t *testing.T) {
	ctx := context.Background()
	svc := newMessageService(t)

	_, err := svc.Send(ctx, "alice", "", "bob", false)
	assert.ErrorIs(t, err, ErrEmptyMessage)
}

func TestSendToUnknownTargetIsAccepted(t *testing.T) {
	ctx := context.Background()
	svc := newMessageService(t)

	// targets are never validated
	_, err := svc.Send(ctx, "alice", "hello?", "nobody", false)
	assert.NoError(t, err)
}

func TestDirectHistoryHiddenFromThirdParty(t *testing.T) {
	ctx := context.Background()
	svc := newMessageService(t)

	_, err := svc.Send(ctx, "alice", "secret", "bob", false)
	require.NoError(t, err)

	msgs, err := svc.History(ctx, "carol", "alice", false)
	require.NoError(t, err)
	assert.Empty(t, msgs)
}

func TestGroupHistoryOpenToAnyRequester(t *testing.T) {
	ctx := context.Background()
	svc := newMessageService(t)

	_, err := svc.Send(ctx, "alice", "standup at 10", "Team", true)
	require.NoError(t, err)

	// carol is not a member of Team but can still read it
	msgs, err := svc.History(ctx, "carol", "Team", true)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "Team", msgs[0].Group)
	assert.Empty(t, msgs[0].Recipient)
}

func TestHistoryKeepsStorageOrder(t *testing.T) {
	ctx := context.Background()
	svc := newMessageService(t)

	for _, content := range []string{"one", "two", "three"} {
		_, err := svc.Send(ctx, "alice", content, "bob", false)
		require.NoError(t, err)
	}
	msgs, err := svc.History(ctx, "alice", "bob", false)
	require.NoError(t, err)
	require.Len(t, msgs, 3)
	assert.Equal(t, "one", msgs[0].Content)
	assert.Equal(t, "three", msgs[2].Content)
}
