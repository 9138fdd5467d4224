package dto

// SignupRequest represents the API request for registering a new account
type SignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// SigninRequest represents the API request for opening a session
type SigninRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// SessionResponse represents the API response carrying a session token
type SessionResponse struct {
	Token string `json:"token"`
}

// ProfileResponse represents the API response for the authenticated user's profile
type ProfileResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}
