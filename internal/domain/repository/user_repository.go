package repository

import "github.com/NikoNepomuceno/AcadKeeper/internal/domain/entity"

// UserRepository is the persistence port for user profiles.
type UserRepository interface {
	Create(user *entity.UserProfile) error
	// GetByID returns (nil, nil) when the user does not exist.
	GetByID(id string) (*entity.UserProfile, error)
	GetByEmail(email string) (*entity.UserProfile, error)
	Update(user *entity.UserProfile) error
	List() ([]*entity.UserProfile, error)
}

// UserStatusAuditRepository appends Active/Suspended transition records.
type UserStatusAuditRepository interface {
	Create(audit *entity.UserStatusAudit) error
}
