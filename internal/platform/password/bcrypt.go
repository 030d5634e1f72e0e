// Package password provides one-way password hashing and verification.
package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// BcryptHasher hashes passwords with bcrypt. The cost factor is tunable so
// tests can run at bcrypt.MinCost while production uses bcrypt.DefaultCost.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher はBcryptHasherの新しいインスタンスを生成します。
// costが範囲外の場合はbcrypt.DefaultCostを使用します。
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash は平文パスワードからソルト付きハッシュを生成します。
// 同じ平文でも呼び出しごとに異なるエンコーディングになります。
func (h *BcryptHasher) Hash(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// Verify はハッシュと平文パスワードを比較します。
// 不正な形式のハッシュは照合失敗として扱い、panicしません。
func (h *BcryptHasher) Verify(hash, plaintext string) bool {
	// bcrypt.CompareHashAndPassword returns an error both for mismatches and
	// for malformed hashes, which is exactly the contract needed here.
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
