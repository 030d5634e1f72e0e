package usecase

import "strings"

const (
	// minUsernameLength はユーザー名の最低文字数を定義します。
	minUsernameLength = 3

	// minPasswordLength はパスワードの最低文字数を定義します。
	minPasswordLength = 8
)

// validateRegister は登録候補のフィールドを形式・長さルールに対して検証します。
// ストアへのアクセスは行わず、一意性の検証はストアの制約に委ねます。
// 呼び出し側が一度にすべての問題を修正できるよう、最初のエラーで
// 打ち切らず、該当するすべてのフィールドエラーを蓄積して返します。
func validateRegister(input RegisterInput) []FieldError {
	var errs []FieldError

	if len(input.Username) < minUsernameLength {
		errs = append(errs, FieldError{
			Field:   "username",
			Message: "username must be at least 3 characters",
		})
	}
	if strings.Contains(input.Username, "@") {
		// "@"はログイン時にメールアドレスと区別するために予約されている
		errs = append(errs, FieldError{
			Field:   "username",
			Message: "username cannot include an @",
		})
	}

	if !validEmailShape(input.Email) {
		errs = append(errs, FieldError{
			Field:   "email",
			Message: "invalid email",
		})
	}

	if len(input.Password) < minPasswordLength {
		errs = append(errs, FieldError{
			Field:   "password",
			Message: "password must be at least 8 characters",
		})
	}

	return errs
}

// validEmailShape はメールアドレスの最小限の形式をチェックします。
// "@"を含み、ローカル部とドメイン部が空でないことのみを要求します。
func validEmailShape(email string) bool {
	at := strings.Index(email, "@")
	return at > 0 && at < len(email)-1
}
