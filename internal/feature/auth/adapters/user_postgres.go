// Package adapters はauthフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"chat_backend/internal/feature/auth/domain"
	"chat_backend/internal/feature/auth/domain/entity"
	"chat_backend/internal/feature/auth/usecase"
)

// userPostgres はUserRepositoryインターフェースのPostgres実装です。
// GORMを使用してデータベース操作を行います。
type userPostgres struct {
	db *gorm.DB
}

// userPostgresがUserRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.UserRepository = (*userPostgres)(nil)

// NewUserPostgres は指定されたgorm.DB接続でuserPostgresの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタです。
func NewUserPostgres(db *gorm.DB) *userPostgres {
	return &userPostgres{db: db}
}

// Create はユーザーをデータベースに追加します。
// username/emailのユニーク制約に違反した場合、*domain.ConflictErrorを返します。
// 一意性の保証はINSERT時の制約が原子的に行うため、事前チェックはしません。
func (r *userPostgres) Create(ctx context.Context, u *entity.User) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		// Postgres SQLSTATE 23505: ユニーク制約違反
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return &domain.ConflictError{Column: duplicateColumn(pgErr.ConstraintName + " " + pgErr.Detail)}
		}
		// ドライバが構造化エラーを返さない場合（テスト用sqlite等）のフォールバック
		if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return &domain.ConflictError{Column: duplicateColumn(err.Error())}
		}
		return err
	}
	return nil
}

// FindByLogin はusernameまたはemailでユーザーを取得します。
// "@"を含む値はemail、それ以外はusernameとして正確に一方の列のみ検索します。
// ユーザーが存在しない場合、domain.ErrUserNotFoundを返します。
func (r *userPostgres) FindByLogin(ctx context.Context, value string) (*entity.User, error) {
	column := "username"
	if strings.Contains(value, "@") {
		column = "email"
	}

	var u entity.User
	if err := r.db.WithContext(ctx).Where(column+" = ?", value).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// FindByID はIDでユーザーを取得します。
// ユーザーが存在しない場合、domain.ErrUserNotFoundを返します。
func (r *userPostgres) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// duplicateColumn は重複キーエラーの詳細文字列から違反した列を特定します。
// 制約名・詳細に"username"が含まれる場合はusername、それ以外はemailとして
// 報告します（列を特定できない場合のemailデフォルトは仕様上のあいまい性）。
func duplicateColumn(detail string) string {
	if strings.Contains(detail, "username") {
		return "username"
	}
	return "email"
}
