package main

import (
	"log"
	"os"
	"strconv"
	"time"

	redisv9 "github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"

	"chat_backend/internal/app/di"
	"chat_backend/internal/app/router"
	authadapters "chat_backend/internal/feature/auth/adapters"
	authhandler "chat_backend/internal/feature/auth/transport/handler"
	authusecase "chat_backend/internal/feature/auth/usecase"
	chanadapters "chat_backend/internal/feature/channels/adapters"
	chanhandler "chat_backend/internal/feature/channels/transport/handler"
	chanusecase "chat_backend/internal/feature/channels/usecase"
	infradb "chat_backend/internal/platform/db"
	"chat_backend/internal/platform/password"
	infraredis "chat_backend/internal/platform/redis"
	"chat_backend/internal/platform/session"
)

func main() {
	prod := os.Getenv("APP_ENV") == "production"

	// db
	db := infradb.OpenDB()

	// Redis（セッションストア）。接続できない場合はリレーショナルにフォールバック
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Falling back to relational session store.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	ttl := sessionTTL()
	sessions := di.NewSessionStore(rdb, db, ttl)

	// Repository
	userRepo := authadapters.NewUserPostgres(db)
	channelRepo := chanadapters.NewChannelPostgres(db)

	// Usecase
	hasher := password.NewBcryptHasher(bcrypt.DefaultCost)
	authUC := authusecase.NewAuthUsecase(userRepo, sessions, hasher)
	channelUC := chanusecase.NewChannelUsecase(channelRepo)

	// Handler
	cookie := authhandler.CookieConfig{
		Secure: prod,
		MaxAge: int(ttl.Seconds()),
	}
	if prod {
		// 本番環境でのみCookieをドメインスコープにする
		cookie.Domain = os.Getenv("COOKIE_DOMAIN")
	}
	authH := authhandler.NewAuthHandler(authUC, cookie)
	usersH := authhandler.NewUserHandler(userRepo)
	channelsH := chanhandler.NewChannelHandler(channelUC)

	// ルータ生成
	r := router.NewRouter(authH, usersH, channelsH, sessions, os.Getenv("CORS_ORIGIN"))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}

// sessionTTL reads SESSION_TTL_HOURS, defaulting to the 10-year session
// lifetime (no practical expiry unless the user logs out).
func sessionTTL() time.Duration {
	if v := os.Getenv("SESSION_TTL_HOURS"); v != "" {
		if hours, err := strconv.Atoi(v); err == nil && hours > 0 {
			return time.Duration(hours) * time.Hour
		}
		log.Println("[WARN] Invalid SESSION_TTL_HOURS, using default TTL.")
	}
	return session.DefaultTTL
}
