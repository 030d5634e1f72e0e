// Package usecase implements the business logic for the channels feature.
package usecase

import "errors"

var (
	// ErrChannelNotFound is returned when a channel cannot be found by ID.
	ErrChannelNotFound = errors.New("channel not found")

	// ErrNotParticipant is returned when a user acts on a channel they have
	// not joined.
	ErrNotParticipant = errors.New("user is not a participant of the channel")
)
