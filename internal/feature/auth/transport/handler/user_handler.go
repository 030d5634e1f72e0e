package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"chat_backend/internal/feature/auth/domain"
	"chat_backend/internal/feature/auth/domain/entity"
)

// UserDirectory exposes read-only user projections.
// Following Go convention: interfaces are defined by the consumer (handler),
// not the provider (adapters).
type UserDirectory interface {
	ListUsers(ctx context.Context) ([]entity.Me, error)
	GetUser(ctx context.Context, id uint) (*entity.Me, error)
}

// UserHandler serves the read-only user directory. The routes sit behind the
// session middleware and only ever return identity projections.
type UserHandler struct {
	dir UserDirectory
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(dir UserDirectory) *UserHandler {
	return &UserHandler{dir: dir}
}

// List handles GET /users.
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.dir.ListUsers(c.Request.Context())
	if err != nil {
		slog.Error("user listing failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if users == nil {
		users = []entity.Me{}
	}
	c.JSON(http.StatusOK, users)
}

// Get handles GET /users/:id.
func (h *UserHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	user, err := h.dir.GetUser(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		slog.Error("user lookup failed", "error", err, "user_id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, user)
}
