package dto

import "time"

// LoginRequest body for POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse token plus the authenticated profile.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// CreateUserRequest body for POST /api/users (superAdmin only).
type CreateUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"` // "admin" | "staff"
}

// UpdateRoleRequest body for POST /api/users/:id/role.
type UpdateRoleRequest struct {
	Role string `json:"role"` // "admin" | "staff"
}

// UpdateStatusRequest body for POST /api/users/:id/status.
type UpdateStatusRequest struct {
	Status string `json:"status"` // "Active" | "Suspended"
	Notes  string `json:"notes,omitempty"`
}

// UserResponse user profile without the password hash.
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
