// Package usecase はauthフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"chat_backend/internal/feature/auth/domain"
	"chat_backend/internal/feature/auth/domain/entity"
)

// UserRepository はユーザーエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type UserRepository interface {
	// Create は新しいユーザーをストレージに永続化します。
	// username/emailのユニーク制約に違反した場合、*domain.ConflictErrorを返します。
	Create(ctx context.Context, user *entity.User) error

	// FindByLogin はusernameまたはemailでユーザーを取得します。
	// valueに"@"が含まれる場合はemail、それ以外はusernameで検索します。
	// ユーザーが存在しない場合、domain.ErrUserNotFoundを返します。
	FindByLogin(ctx context.Context, value string) (*entity.User, error)

	// FindByID は指定されたIDに一致するユーザーを取得します。
	// ユーザーが存在しない場合、domain.ErrUserNotFoundを返します。
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// PasswordHasher はパスワードのハッシュ化と照合のインターフェースを定義します。
type PasswordHasher interface {
	// Hash は平文パスワードから保存可能なハッシュを生成します。
	Hash(plaintext string) (string, error)
	// Verify はハッシュと平文を比較します。不正な形式のハッシュはfalseを返します。
	Verify(hash, plaintext string) bool
}

// authUsecase は認証ビジネスロジックを実装します。
// 状態は一切持たず、すべての状態は注入されたストアに存在します。
type authUsecase struct {
	users    UserRepository
	sessions SessionStore
	hasher   PasswordHasher
}

// NewAuthUsecase はauthUsecaseの新しいインスタンスを生成します。
func NewAuthUsecase(users UserRepository, sessions SessionStore, hasher PasswordHasher) *authUsecase {
	return &authUsecase{
		users:    users,
		sessions: sessions,
		hasher:   hasher,
	}
}

// Register は新規アカウントを作成し、セッションを発行します。
// バリデーション失敗・一意性違反はAuthResult.Errorsとして返します。
// セッション発行の失敗のみerrorとして伝播します（§インフラ障害）。
func (u *authUsecase) Register(ctx context.Context, input RegisterInput) (*AuthResult, string, error) {
	// ストアに触れる前に形式・長さルールをすべて検証する
	if errs := validateRegister(input); len(errs) > 0 {
		return errorResult(errs...), "", nil
	}

	hashed, err := u.hasher.Hash(input.Password)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{
		Username: input.Username,
		Email:    input.Email,
		Password: hashed,
	}

	// 一意性はストアの制約が原子的に保証する。
	// 同一usernameの同時登録はここで正確に1件だけ成功する。
	if err := u.users.Create(ctx, user); err != nil {
		var conflict *domain.ConflictError
		if errors.As(err, &conflict) {
			return errorResult(conflictFieldError(conflict)), "", nil
		}
		// 内部詳細は呼び出し側に漏らさず、ログにのみ残す
		slog.Error("user creation failed", "error", err, "username", input.Username)
		return errorResult(FieldError{Field: "Server", Message: msgServerError}), "", nil
	}

	token, err := u.sessions.Create(ctx, user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create session: %w", err)
	}

	user.Password = ""
	return &AuthResult{User: user}, token, nil
}

// Login はユーザーを認証し、成功時にセッションを発行します。
// valueに"@"が含まれる場合はemail、それ以外はusernameで検索します。
func (u *authUsecase) Login(ctx context.Context, usernameOrEmail, password string) (*AuthResult, string, error) {
	user, err := u.users.FindByLogin(ctx, usernameOrEmail)

	// ユーザーが存在しない場合のタイミング攻撃緩和用ダミーハッシュ。
	// ハッシュ照合が常に実行されることを保証する。
	passwordHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
	if err == nil {
		passwordHash = user.Password
	}
	valid := u.hasher.Verify(passwordHash, password)

	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return errorResult(FieldError{Field: "usernameOrEmail", Message: msgUnknownLogin}), "", nil
		}
		return nil, "", fmt.Errorf("failed to look up user: %w", err)
	}

	if !valid {
		return errorResult(FieldError{Field: "password", Message: msgInvalidPassword}), "", nil
	}

	token, err := u.sessions.Create(ctx, user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create session: %w", err)
	}

	user.Password = ""
	return &AuthResult{User: user}, token, nil
}

// Logout はトークンに紐づくセッションを破棄します。
// 有効なセッションを破棄した場合のみtrueを返します。
// 既に存在しない・期限切れのトークンはエラーにせずfalseを返します。
func (u *authUsecase) Logout(ctx context.Context, token string) (bool, error) {
	if token == "" {
		return false, nil
	}
	found, err := u.sessions.Destroy(ctx, token)
	if err != nil {
		return false, fmt.Errorf("failed to destroy session: %w", err)
	}
	return found, nil
}

// CurrentIdentity はセッショントークンから現在のユーザーを解決します。
// セッションが存在しない場合はnilを返します（エラーではありません）。
// 返却される射影にパスワードハッシュは決して含まれません。
func (u *authUsecase) CurrentIdentity(ctx context.Context, token string) (*entity.Me, error) {
	if token == "" {
		return nil, nil
	}

	userID, err := u.sessions.Resolve(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to resolve session: %w", err)
	}

	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	return &entity.Me{ID: user.ID, Username: user.Username, Email: user.Email}, nil
}

// conflictFieldError は一意性違反をフィールドエラーに変換します。
// ストアが列を特定できなかった場合はemailとして報告します。
func conflictFieldError(conflict *domain.ConflictError) FieldError {
	if strings.Contains(conflict.Column, "username") {
		return FieldError{Field: "username", Message: msgUsernameTaken}
	}
	return FieldError{Field: "email", Message: msgEmailTaken}
}
