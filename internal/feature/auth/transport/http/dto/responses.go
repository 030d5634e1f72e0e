package dto

// ErrorResponse is the generic error payload for malformed requests and
// infrastructure failures. Domain failures travel inside the AuthResult body
// instead.
type ErrorResponse struct {
	Error string `json:"error"`
}

// LogoutResponse reports whether a live session was destroyed.
type LogoutResponse struct {
	Logout bool `json:"logout"`
}
