package usecase

import (
	"context"
	"fmt"

	"chat_backend/internal/feature/channels/domain/entity"
)

// ChannelRepository abstracts the persistence layer for channels, memberships
// and messages. Following Go convention: interfaces are defined by the
// consumer (usecase), not the provider (adapters).
type ChannelRepository interface {
	// CreateChannel persists a new channel.
	CreateChannel(ctx context.Context, channel *entity.Channel) error

	// FindChannel retrieves a channel by ID.
	// It returns ErrChannelNotFound when the channel does not exist.
	FindChannel(ctx context.Context, id uint) (*entity.Channel, error)

	// ListForUser retrieves the channels a user participates in.
	ListForUser(ctx context.Context, userID uint) ([]entity.Channel, error)

	// AddParticipant records a membership. Joining twice is not an error.
	AddParticipant(ctx context.Context, channelID, userID uint) error

	// IsParticipant reports whether a user has joined a channel.
	IsParticipant(ctx context.Context, channelID, userID uint) (bool, error)

	// CreateMessage persists a message.
	CreateMessage(ctx context.Context, message *entity.Message) error

	// ListMessages retrieves a channel's messages, oldest first.
	ListMessages(ctx context.Context, channelID uint) ([]entity.Message, error)
}

// ChannelUsecase provides the channel and message operations. This layer is
// delegation plumbing: beyond membership checks it adds no domain rules.
type ChannelUsecase struct {
	repo ChannelRepository
}

// NewChannelUsecase creates a new ChannelUsecase with the given repository.
func NewChannelUsecase(r ChannelRepository) *ChannelUsecase {
	return &ChannelUsecase{repo: r}
}

// CreateChannel creates a channel and enrolls the creator as its first
// participant.
func (u *ChannelUsecase) CreateChannel(ctx context.Context, ownerID uint, name string) (*entity.Channel, error) {
	channel := &entity.Channel{Name: name, OwnerID: ownerID}
	if err := u.repo.CreateChannel(ctx, channel); err != nil {
		return nil, fmt.Errorf("failed to create channel: %w", err)
	}
	if err := u.repo.AddParticipant(ctx, channel.ID, ownerID); err != nil {
		return nil, fmt.Errorf("failed to enroll channel owner: %w", err)
	}
	return channel, nil
}

// ListChannels returns the channels the user participates in.
func (u *ChannelUsecase) ListChannels(ctx context.Context, userID uint) ([]entity.Channel, error) {
	return u.repo.ListForUser(ctx, userID)
}

// JoinChannel enrolls a user into an existing channel. Joining a channel the
// user already belongs to is a no-op.
func (u *ChannelUsecase) JoinChannel(ctx context.Context, userID, channelID uint) error {
	if _, err := u.repo.FindChannel(ctx, channelID); err != nil {
		return err
	}
	return u.repo.AddParticipant(ctx, channelID, userID)
}

// PostMessage appends a message to a channel on behalf of a participant.
// Non-participants receive ErrNotParticipant.
func (u *ChannelUsecase) PostMessage(ctx context.Context, userID, channelID uint, content string) (*entity.Message, error) {
	member, err := u.repo.IsParticipant(ctx, channelID, userID)
	if err != nil {
		return nil, err
	}
	if !member {
		return nil, ErrNotParticipant
	}

	message := &entity.Message{ChannelID: channelID, SenderID: userID, Content: content}
	if err := u.repo.CreateMessage(ctx, message); err != nil {
		return nil, fmt.Errorf("failed to store message: %w", err)
	}
	return message, nil
}

// ListMessages returns a channel's messages to a participant, oldest first.
func (u *ChannelUsecase) ListMessages(ctx context.Context, userID, channelID uint) ([]entity.Message, error) {
	member, err := u.repo.IsParticipant(ctx, channelID, userID)
	if err != nil {
		return nil, err
	}
	if !member {
		return nil, ErrNotParticipant
	}
	return u.repo.ListMessages(ctx, channelID)
}
