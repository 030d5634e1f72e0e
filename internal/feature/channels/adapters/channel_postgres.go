// Package adapters はchannelsフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"chat_backend/internal/feature/channels/domain/entity"
	"chat_backend/internal/feature/channels/usecase"
)

// channelPostgres はChannelRepositoryインターフェースのPostgres実装です。
type channelPostgres struct {
	db *gorm.DB
}

var _ usecase.ChannelRepository = (*channelPostgres)(nil)

// NewChannelPostgres は指定されたDB接続でchannelPostgresの新しいインスタンスを生成します。
func NewChannelPostgres(db *gorm.DB) *channelPostgres {
	return &channelPostgres{db: db}
}

// CreateChannel はチャンネルをデータベースに追加します。
func (r *channelPostgres) CreateChannel(ctx context.Context, channel *entity.Channel) error {
	return r.db.WithContext(ctx).Create(channel).Error
}

// FindChannel はIDでチャンネルを取得します。
// 存在しない場合、usecase.ErrChannelNotFoundを返します。
func (r *channelPostgres) FindChannel(ctx context.Context, id uint) (*entity.Channel, error) {
	var channel entity.Channel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&channel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrChannelNotFound
		}
		return nil, err
	}
	return &channel, nil
}

// ListForUser はユーザーが参加しているチャンネルを作成順に返します。
func (r *channelPostgres) ListForUser(ctx context.Context, userID uint) ([]entity.Channel, error) {
	var channels []entity.Channel
	if err := r.db.WithContext(ctx).
		Select("channels.*").
		Joins("JOIN participants ON participants.channel_id = channels.id").
		Where("participants.user_id = ?", userID).
		Order("channels.created_at ASC").
		Find(&channels).Error; err != nil {
		return nil, err
	}
	return channels, nil
}

// AddParticipant は参加レコードを追加します。
// 既に参加済みの場合（ユニーク制約違反）はエラーにしません。
func (r *channelPostgres) AddParticipant(ctx context.Context, channelID, userID uint) error {
	p := &entity.Participant{ChannelID: channelID, UserID: userID}
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return nil
		}
		return err
	}
	return nil
}

// IsParticipant はユーザーがチャンネルに参加しているかを返します。
func (r *channelPostgres) IsParticipant(ctx context.Context, channelID, userID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.Participant{}).
		Where("channel_id = ? AND user_id = ?", channelID, userID).
		Count(&count).Error
	return count > 0, err
}

// CreateMessage はメッセージをデータベースに追加します。
func (r *channelPostgres) CreateMessage(ctx context.Context, message *entity.Message) error {
	return r.db.WithContext(ctx).Create(message).Error
}

// ListMessages はチャンネルのメッセージを古い順に返します。
func (r *channelPostgres) ListMessages(ctx context.Context, channelID uint) ([]entity.Message, error) {
	var messages []entity.Message
	if err := r.db.WithContext(ctx).
		Where("channel_id = ?", channelID).
		Order("created_at ASC").
		Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}
