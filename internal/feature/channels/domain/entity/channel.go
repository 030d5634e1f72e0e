// Package entity defines the domain entities for the channels feature.
package entity

import "time"

// Channel is a named room users join to exchange messages.
type Channel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:128;not null" json:"name"`
	OwnerID   uint      `gorm:"index;not null" json:"ownerId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Participant records a user's membership in a channel.
// A user joins a channel at most once.
type Participant struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ChannelID uint      `gorm:"uniqueIndex:idx_channel_member;not null" json:"channelId"`
	UserID    uint      `gorm:"uniqueIndex:idx_channel_member;not null" json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

// Message is a single post inside a channel.
type Message struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ChannelID uint      `gorm:"index;not null" json:"channelId"`
	SenderID  uint      `gorm:"index;not null" json:"senderId"`
	Content   string    `gorm:"size:2000;not null" json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}
