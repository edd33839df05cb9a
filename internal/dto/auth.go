package dto

// LoginRequest carries the credentials for obtaining a bearer token.
// Password is only checked for the administrator.
type LoginRequest struct {
	Handle   string `json:"handle" binding:"required"`
	Password string `json:"password"`
}

// LoginResponse represents the response for a successful login.
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expiresIn"` // seconds
}
