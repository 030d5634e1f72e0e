// Package handler はauthフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"chat_backend/internal/feature/auth/domain/entity"
	"chat_backend/internal/feature/auth/transport/http/dto"
	"chat_backend/internal/feature/auth/usecase"
	"chat_backend/internal/platform/metrics"
)

// CookieName はセッショントークンを運ぶCookieの名前です。
const CookieName = "sid"

// CookieConfig はセッションCookieの属性を定義します。
// Secure/Domainは本番環境でのみ設定されます（埋め込み層の責務）。
type CookieConfig struct {
	Domain string
	Secure bool
	MaxAge int // seconds
}

// AuthUsecase は認証操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type AuthUsecase interface {
	// Register は新規アカウントを作成し、セッショントークンを発行します。
	Register(ctx context.Context, input usecase.RegisterInput) (*usecase.AuthResult, string, error)
	// Login はユーザーを認証し、成功時にセッショントークンを発行します。
	Login(ctx context.Context, usernameOrEmail, password string) (*usecase.AuthResult, string, error)
	// Logout はトークンに紐づくセッションを破棄します。
	Logout(ctx context.Context, token string) (bool, error)
	// CurrentIdentity はセッショントークンから現在のユーザーを解決します。
	CurrentIdentity(ctx context.Context, token string) (*entity.Me, error)
}

// AuthHandler は認証操作のHTTPリクエストを処理します。
// トークンはCookieから取り出してユースケースに渡し、発行されたトークンを
// Cookieとしてレスポンスに添付します。ユースケース自身はトランスポートに
// 一切触れません。
type AuthHandler struct {
	auth   AuthUsecase
	cookie CookieConfig
}

// NewAuthHandler はAuthHandlerの新しいインスタンスを生成します。
func NewAuthHandler(auth AuthUsecase, cookie CookieConfig) *AuthHandler {
	return &AuthHandler{auth: auth, cookie: cookie}
}

// attachSession はセッショントークンをHTTP-only/SameSite-laxのCookieとして添付します。
func (h *AuthHandler) attachSession(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, token, h.cookie.MaxAge, "/", h.cookie.Domain, h.cookie.Secure, true)
}

// clearSession はセッションCookieを失効させます。
func (h *AuthHandler) clearSession(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, "", -1, "/", h.cookie.Domain, h.cookie.Secure, true)
}

// Register はアカウント登録APIエンドポイントを処理します。
// - リクエストJSONをRegisterReqにバインド（形式不正は400）
// - ドメインレベルの失敗はAuthResult.Errorsとして200で返却
// - 成功時はセッションCookieを添付して200を返却
// - インフラ障害は500（詳細はログのみ）
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("register request malformed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request"})
		return
	}

	input := usecase.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	}
	res, token, err := h.auth.Register(c.Request.Context(), input)
	if err != nil {
		slog.Error("register failed", "error", err, "remote_addr", c.ClientIP())
		metrics.RegisterTotal.WithLabelValues(metrics.OutcomeError).Inc()
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
		return
	}
	if len(res.Errors) > 0 {
		metrics.RegisterTotal.WithLabelValues(metrics.OutcomeRejected).Inc()
		c.JSON(http.StatusOK, res)
		return
	}

	h.attachSession(c, token)
	slog.Info("user registered", "username", res.User.Username, "remote_addr", c.ClientIP())
	metrics.RegisterTotal.WithLabelValues(metrics.OutcomeSuccess).Inc()
	c.JSON(http.StatusOK, res)
}

// Login はログインAPIエンドポイントを処理します。
// 認証失敗の内訳はAuthResult.Errorsのフィールドタグ以上には公開しません。
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login request malformed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request"})
		return
	}

	res, token, err := h.auth.Login(c.Request.Context(), req.UsernameOrEmail, req.Password)
	if err != nil {
		slog.Error("login failed", "error", err, "remote_addr", c.ClientIP())
		metrics.LoginTotal.WithLabelValues(metrics.OutcomeError).Inc()
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
		return
	}
	if len(res.Errors) > 0 {
		slog.Warn("login rejected", "usernameOrEmail", req.UsernameOrEmail, "remote_addr", c.ClientIP())
		metrics.LoginTotal.WithLabelValues(metrics.OutcomeRejected).Inc()
		c.JSON(http.StatusOK, res)
		return
	}

	h.attachSession(c, token)
	slog.Info("user login successful", "username", res.User.Username, "remote_addr", c.ClientIP())
	metrics.LoginTotal.WithLabelValues(metrics.OutcomeSuccess).Inc()
	c.JSON(http.StatusOK, res)
}

// Logout はセッションを破棄し、Cookieを失効させます。
// 既に存在しないセッションの破棄もエラーにはしません（冪等）。
func (h *AuthHandler) Logout(c *gin.Context) {
	token, _ := c.Cookie(CookieName)

	found, err := h.auth.Logout(c.Request.Context(), token)
	if err != nil {
		slog.Error("logout failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
		return
	}

	h.clearSession(c)
	metrics.LogoutTotal.WithLabelValues(logoutResult(found)).Inc()
	c.JSON(http.StatusOK, dto.LogoutResponse{Logout: found})
}

// Me は現在のセッションに紐づくユーザーの射影を返します。
// セッションが存在しない場合はnullを返します。
func (h *AuthHandler) Me(c *gin.Context) {
	token, _ := c.Cookie(CookieName)

	me, err := h.auth.CurrentIdentity(c.Request.Context(), token)
	if err != nil {
		slog.Error("identity resolution failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
		return
	}
	c.JSON(http.StatusOK, me)
}

func logoutResult(found bool) string {
	if found {
		return "destroyed"
	}
	return "absent"
}
