package models

import "time"

// UserRole constants
const (
	RoleApplicant = "applicant"
	RoleHR        = "hr"
)

// User represents a user account in Firestore
// @Description User account information
type User struct {
	ID        string    `json:"id" firestore:"-" example:"user@example.com"`
	Email     string    `json:"email" firestore:"email" example:"user@example.com"`
	FullName  string    `json:"fullName" firestore:"fullName" example:"John Doe"`
	Role      string    `json:"role" firestore:"role" example:"applicant"` // "applicant" or "hr"
	Password  string    `json:"-" firestore:"password"`                    // Hashed password, never sent to client
	Provider  string    `json:"provider" firestore:"provider" example:"email"` // "email" or "google"
	GoogleID  string    `json:"-" firestore:"googleId,omitempty"`
	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" firestore:"updatedAt"`
}

// IsValidRole reports whether the role is one the platform knows.
func IsValidRole(role string) bool {
	return role == RoleApplicant || role == RoleHR
}

// RegisterRequest represents registration request
// @Description User registration request
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email" example:"user@example.com"`
	Password string `json:"password" binding:"required,min=6" example:"password123"`
	FullName string `json:"fullName" binding:"required" example:"John Doe"`
	Role     string `json:"role" binding:"required" example:"applicant"`
}

// LoginRequest represents login request
// @Description User login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"user@example.com"`
	Password string `json:"password" binding:"required" example:"password123"`
}

// GoogleAuthRequest represents Google SSO authentication request
// @Description Google SSO authentication request
type GoogleAuthRequest struct {
	IDToken string `json:"idToken" binding:"required" example:"eyJhbGciOiJSUzI1NiIsInR5cCI6IkpXVCJ9..."`
	Role    string `json:"role,omitempty" example:"applicant"` // Used on first login only
}

// AuthResponse represents authentication response
// @Description Authentication response with JWT token
type AuthResponse struct {
	Token   string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	User    *User  `json:"user"`
	Message string `json:"message,omitempty" example:"Login successful"`
}
