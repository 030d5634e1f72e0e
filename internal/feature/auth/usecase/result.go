package usecase

import "chat_backend/internal/feature/auth/domain/entity"

// FieldError reports a validation or conflict failure for a single input
// field. It is returned to the caller inside an AuthResult, never persisted.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// AuthResult is the tagged outcome of Register and Login: either User is set
// or Errors is non-empty, never both. The user's password hash is cleared
// before the entity is placed here (and the entity never serializes it).
type AuthResult struct {
	User   *entity.User `json:"user,omitempty"`
	Errors []FieldError `json:"errors,omitempty"`
}

// RegisterInput is the candidate account submitted to Register.
type RegisterInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// User-facing messages. The wording is part of the API contract and is
// asserted by clients, so change it deliberately.
const (
	msgUsernameTaken   = "username already taken"
	msgEmailTaken      = "email already taken"
	msgUnknownLogin    = "Username doesn't exist"
	msgInvalidPassword = "Invalid login, Please try again!"
	msgServerError     = "Server error"
)

// errorResult builds a failed AuthResult from field errors.
func errorResult(errs ...FieldError) *AuthResult {
	return &AuthResult{Errors: errs}
}
