// Package handler provides the HTTP handlers for the channels feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"chat_backend/internal/feature/auth/transport/middleware"
	"chat_backend/internal/feature/channels/domain/entity"
	"chat_backend/internal/feature/channels/transport/http/dto"
	"chat_backend/internal/feature/channels/usecase"
)

// ChannelUsecase defines the channel operations consumed by this handler.
// Following Go convention: interfaces are defined by the consumer (handler),
// not the provider (usecase).
type ChannelUsecase interface {
	CreateChannel(ctx context.Context, ownerID uint, name string) (*entity.Channel, error)
	ListChannels(ctx context.Context, userID uint) ([]entity.Channel, error)
	JoinChannel(ctx context.Context, userID, channelID uint) error
	PostMessage(ctx context.Context, userID, channelID uint, content string) (*entity.Message, error)
	ListMessages(ctx context.Context, userID, channelID uint) ([]entity.Message, error)
}

// ChannelHandler handles HTTP requests for channels and messages. All routes
// sit behind the session middleware, so the user ID is always present.
type ChannelHandler struct {
	channels ChannelUsecase
}

// NewChannelHandler creates a new ChannelHandler.
func NewChannelHandler(channels ChannelUsecase) *ChannelHandler {
	return &ChannelHandler{channels: channels}
}

// Create handles POST /channels.
func (h *ChannelHandler) Create(c *gin.Context) {
	var req dto.CreateChannelReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	userID, _ := middleware.UserID(c)
	channel, err := h.channels.CreateChannel(c.Request.Context(), userID, req.Name)
	if err != nil {
		slog.Error("channel creation failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, channel)
}

// List handles GET /channels.
func (h *ChannelHandler) List(c *gin.Context) {
	userID, _ := middleware.UserID(c)
	channels, err := h.channels.ListChannels(c.Request.Context(), userID)
	if err != nil {
		slog.Error("channel listing failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if channels == nil {
		channels = []entity.Channel{}
	}
	c.JSON(http.StatusOK, channels)
}

// Join handles POST /channels/:id/join.
func (h *ChannelHandler) Join(c *gin.Context) {
	channelID, ok := channelParam(c)
	if !ok {
		return
	}

	userID, _ := middleware.UserID(c)
	if err := h.channels.JoinChannel(c.Request.Context(), userID, channelID); err != nil {
		if errors.Is(err, usecase.ErrChannelNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "channel not found"})
			return
		}
		slog.Error("channel join failed", "error", err, "user_id", userID, "channel_id", channelID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"joined": true})
}

// PostMessage handles POST /channels/:id/messages.
func (h *ChannelHandler) PostMessage(c *gin.Context) {
	channelID, ok := channelParam(c)
	if !ok {
		return
	}

	var req dto.PostMessageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	userID, _ := middleware.UserID(c)
	message, err := h.channels.PostMessage(c.Request.Context(), userID, channelID, req.Content)
	if err != nil {
		if errors.Is(err, usecase.ErrNotParticipant) {
			c.JSON(http.StatusForbidden, gin.H{"error": "not a channel participant"})
			return
		}
		slog.Error("message post failed", "error", err, "user_id", userID, "channel_id", channelID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, message)
}

// ListMessages handles GET /channels/:id/messages.
func (h *ChannelHandler) ListMessages(c *gin.Context) {
	channelID, ok := channelParam(c)
	if !ok {
		return
	}

	userID, _ := middleware.UserID(c)
	messages, err := h.channels.ListMessages(c.Request.Context(), userID, channelID)
	if err != nil {
		if errors.Is(err, usecase.ErrNotParticipant) {
			c.JSON(http.StatusForbidden, gin.H{"error": "not a channel participant"})
			return
		}
		slog.Error("message listing failed", "error", err, "user_id", userID, "channel_id", channelID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if messages == nil {
		messages = []entity.Message{}
	}
	c.JSON(http.StatusOK, messages)
}

// channelParam parses the :id path parameter, writing a 400 on failure.
func channelParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid channel id"})
		return 0, false
	}
	return uint(id), true
}
