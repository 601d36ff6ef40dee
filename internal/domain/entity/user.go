package entity

import "time"

// Valid roles for UserProfile.
const (
	RoleSuperAdmin = "superAdmin"
	RoleAdmin      = "admin"
	RoleStaff      = "staff"
)

// Account statuses.
const (
	StatusActive    = "Active"
	StatusSuspended = "Suspended"
)

// UserProfile is a system user. The core treats it as a capability lookup:
// the role decides which ledger and workflow operations are allowed.
type UserProfile struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt, never plaintext after persisting
	Role         string
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CanManageInventory reports whether the role may create/edit items, archive
// them or apply direct stock adjustments.
func CanManageInventory(role string) bool {
	return role == RoleAdmin || role == RoleSuperAdmin
}

// CanResolveRequests reports whether the role may approve or deny stock-out requests.
func CanResolveRequests(role string) bool {
	return role == RoleAdmin || role == RoleSuperAdmin
}

// CanRequestStockout reports whether the role may submit stock-out requests.
func CanRequestStockout(role string) bool {
	return role == RoleStaff || role == RoleAdmin || role == RoleSuperAdmin
}

// UserStatusAudit records an Active/Suspended transition for a user.
type UserStatusAudit struct {
	ID              string
	TargetUserID    string
	ChangedByUserID string
	OldStatus       string
	NewStatus       string
	Notes           string
	CreatedAt       time.Time
}
