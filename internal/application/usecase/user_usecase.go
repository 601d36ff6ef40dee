package usecase

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/NikoNepomuceno/AcadKeeper/internal/application/auth"
	"github.com/NikoNepomuceno/AcadKeeper/internal/application/dto"
	"github.com/NikoNepomuceno/AcadKeeper/internal/domain"
	"github.com/NikoNepomuceno/AcadKeeper/internal/domain/entity"
	"github.com/NikoNepomuceno/AcadKeeper/internal/domain/repository"
)

// Password policy: at least one uppercase, one digit and one special character.
var (
	upperPattern   = regexp.MustCompile(`[A-Z]`)
	digitPattern   = regexp.MustCompile(`[0-9]`)
	specialPattern = regexp.MustCompile("[~`!@#$%^&*()_+\\-={}\\[\\]|\\\\:;\"'<>,.?/]")
)

// UserUseCase user administration: create accounts, change roles, suspend and
// reinstate. Every operation requires the superAdmin capability, checked here
// with the explicitly-passed actor role.
type UserUseCase struct {
	userRepo  repository.UserRepository
	auditRepo repository.UserStatusAuditRepository
}

// NewUserUseCase builds the use case.
func NewUserUseCase(userRepo repository.UserRepository, auditRepo repository.UserStatusAuditRepository) *UserUseCase {
	return &UserUseCase{userRepo: userRepo, auditRepo: auditRepo}
}

func validPassword(p string) bool {
	return upperPattern.MatchString(p) && digitPattern.MatchString(p) && specialPattern.MatchString(p)
}

// CreateUser creates an admin or staff account with a bcrypt-hashed password.
func (uc *UserUseCase) CreateUser(actorRole string, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if actorRole != entity.RoleSuperAdmin {
		return nil, domain.ErrForbidden
	}
	email := strings.TrimSpace(strings.ToLower(in.Email))
	if email == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Role != entity.RoleAdmin && in.Role != entity.RoleStaff {
		return nil, domain.ErrInvalidInput
	}
	if !validPassword(in.Password) {
		return nil, domain.ErrWeakPassword
	}

	existing, err := uc.userRepo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.UserProfile{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		Role:         in.Role,
		Status:       entity.StatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

// UpdateRole switches a user between admin and staff. superAdmin accounts
// cannot be reassigned.
func (uc *UserUseCase) UpdateRole(actorRole, userID, newRole string) (*dto.UserResponse, error) {
	if actorRole != entity.RoleSuperAdmin {
		return nil, domain.ErrForbidden
	}
	if newRole != entity.RoleAdmin && newRole != entity.RoleStaff {
		return nil, domain.ErrInvalidInput
	}

	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	if user.Role == entity.RoleSuperAdmin {
		return nil, domain.ErrForbidden
	}

	user.Role = newRole
	user.UpdatedAt = time.Now()
	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

// UpdateStatus activates or suspends an account and records the transition in
// the status audit. Unchanged status is a no-op.
func (uc *UserUseCase) UpdateStatus(actorID, actorRole, userID, status, notes string) (*dto.UserResponse, error) {
	if actorRole != entity.RoleSuperAdmin {
		return nil, domain.ErrForbidden
	}
	if status != entity.StatusActive && status != entity.StatusSuspended {
		return nil, domain.ErrInvalidInput
	}

	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	if user.Status == status {
		return auth.ToUserResponse(user), nil
	}

	now := time.Now()
	oldStatus := user.Status
	user.Status = status
	user.UpdatedAt = now
	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}

	audit := &entity.UserStatusAudit{
		ID:              uuid.New().String(),
		TargetUserID:    userID,
		ChangedByUserID: actorID,
		OldStatus:       oldStatus,
		NewStatus:       status,
		Notes:           notes,
		CreatedAt:       now,
	}
	if err := uc.auditRepo.Create(audit); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

// List returns all user profiles, newest first.
func (uc *UserUseCase) List(actorRole string) ([]*dto.UserResponse, error) {
	if actorRole != entity.RoleSuperAdmin {
		return nil, domain.ErrForbidden
	}
	users, err := uc.userRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, auth.ToUserResponse(u))
	}
	return out, nil
}
