package models

import (
	"time"
)

// User represents an account as returned by the auth service
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"fullname"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	IsActive  bool      `json:"is_active"`
}

// User roles known to the gateway
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Credentials is the login request payload
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is the auth service's answer to a successful login
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Session is the server-side record behind a session cookie. The upstream
// auth token never leaves the gateway.
type Session struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	Role          string    `json:"role"`
	UpstreamToken string    `json:"upstream_token"`
	CreatedAt     time.Time `json:"created_at"`
	ExpiresAt     time.Time `json:"expires_at"`
}
