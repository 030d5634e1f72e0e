package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"chat_backend/internal/feature/channels/domain/entity"
	"chat_backend/internal/feature/channels/usecase"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&entity.Channel{}, &entity.Participant{}, &entity.Message{})
	require.NoError(t, err, "failed to migrate tables")

	return db
}

func TestChannelPostgres_Channels(t *testing.T) {
	db := setupTestDB(t)
	repo := NewChannelPostgres(db)
	ctx := context.Background()

	t.Run("create and find", func(t *testing.T) {
		channel := &entity.Channel{Name: "general", OwnerID: 1}
		require.NoError(t, repo.CreateChannel(ctx, channel))
		require.NotZero(t, channel.ID)

		got, err := repo.FindChannel(ctx, channel.ID)
		require.NoError(t, err)
		assert.Equal(t, "general", got.Name)
	})

	t.Run("unknown channel returns ErrChannelNotFound", func(t *testing.T) {
		_, err := repo.FindChannel(ctx, 9999)
		assert.ErrorIs(t, err, usecase.ErrChannelNotFound)
	})
}

func TestChannelPostgres_Participants(t *testing.T) {
	db := setupTestDB(t)
	repo := NewChannelPostgres(db)
	ctx := context.Background()

	channel := &entity.Channel{Name: "general", OwnerID: 1}
	require.NoError(t, repo.CreateChannel(ctx, channel))

	t.Run("membership is recorded", func(t *testing.T) {
		require.NoError(t, repo.AddParticipant(ctx, channel.ID, 1))

		member, err := repo.IsParticipant(ctx, channel.ID, 1)
		require.NoError(t, err)
		assert.True(t, member)

		member, err = repo.IsParticipant(ctx, channel.ID, 2)
		require.NoError(t, err)
		assert.False(t, member)
	})

	t.Run("joining twice is a no-op", func(t *testing.T) {
		require.NoError(t, repo.AddParticipant(ctx, channel.ID, 1))
		require.NoError(t, repo.AddParticipant(ctx, channel.ID, 1))

		var count int64
		db.Model(&entity.Participant{}).
			Where("channel_id = ? AND user_id = ?", channel.ID, 1).
			Count(&count)
		assert.Equal(t, int64(1), count)
	})

	t.Run("ListForUser returns only joined channels", func(t *testing.T) {
		other := &entity.Channel{Name: "random", OwnerID: 2}
		require.NoError(t, repo.CreateChannel(ctx, other))
		require.NoError(t, repo.AddParticipant(ctx, other.ID, 2))

		channels, err := repo.ListForUser(ctx, 1)
		require.NoError(t, err)
		require.Len(t, channels, 1)
		assert.Equal(t, "general", channels[0].Name)
	})
}

func TestChannelPostgres_Messages(t *testing.T) {
	db := setupTestDB(t)
	repo := NewChannelPostgres(db)
	ctx := context.Background()

	channel := &entity.Channel{Name: "general", OwnerID: 1}
	require.NoError(t, repo.CreateChannel(ctx, channel))

	require.NoError(t, repo.CreateMessage(ctx, &entity.Message{ChannelID: channel.ID, SenderID: 1, Content: "first"}))
	require.NoError(t, repo.CreateMessage(ctx, &entity.Message{ChannelID: channel.ID, SenderID: 2, Content: "second"}))

	messages, err := repo.ListMessages(ctx, channel.ID)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "first", messages[0].Content, "messages come back oldest first")
	assert.Equal(t, "second", messages[1].Content)
}
