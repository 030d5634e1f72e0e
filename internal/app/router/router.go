package router

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "chat_backend/internal/feature/auth/transport/handler"
	"chat_backend/internal/feature/auth/transport/middleware"
	channelhandler "chat_backend/internal/feature/channels/transport/handler"
	"chat_backend/internal/platform/metrics"
)

// NewRouter assembles the HTTP surface. corsOrigin is the single allowed
// origin for credentialed requests; an empty value disables CORS entirely
// (same-origin deployments).
func NewRouter(auth *authhandler.AuthHandler, users *authhandler.UserHandler,
	channels *channelhandler.ChannelHandler, sessions middleware.SessionResolver,
	corsOrigin string) *gin.Engine {
	r := gin.Default()

	// Cookieを伴うリクエストを許可するため、ワイルドカードではなく
	// 明示的なオリジンとAllowCredentialsを設定する
	if corsOrigin != "" {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     []string{corsOrigin},
			AllowMethods:     []string{http.MethodGet, http.MethodPost},
			AllowHeaders:     []string{"Content-Type"},
			AllowCredentials: true,
		}))
	}

	// 認証不要
	// 導通確認用
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", metrics.Handler())
	// 新規アカウント登録（成功時にセッションCookie発行）
	r.POST("/register", auth.Register)
	// ログイン（セッションCookie発行）
	r.POST("/login", auth.Login)
	// ログアウト・現セッションの照会はCookieの有無に関わらず応答する
	r.POST("/logout", auth.Logout)
	r.GET("/me", auth.Me)

	// 認証必須のルート
	protected := r.Group("/")
	protected.Use(middleware.SessionRequired(sessions))
	{
		protected.GET("/users", users.List)
		protected.GET("/users/:id", users.Get)

		protected.POST("/channels", channels.Create)
		protected.GET("/channels", channels.List)
		protected.POST("/channels/:id/join", channels.Join)
		protected.POST("/channels/:id/messages", channels.PostMessage)
		protected.GET("/channels/:id/messages", channels.ListMessages)
	}

	return r
}
