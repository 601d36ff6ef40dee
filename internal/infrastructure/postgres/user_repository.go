package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/NikoNepomuceno/AcadKeeper/internal/domain"
	"github.com/NikoNepomuceno/AcadKeeper/internal/domain/entity"
	"github.com/NikoNepomuceno/AcadKeeper/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)
var _ repository.UserStatusAuditRepository = (*UserStatusAuditRepo)(nil)

// UserRepo UserRepository implementation over PostgreSQL.
type UserRepo struct {
	pool *pgxpool.Pool
}

// NewUserRepository builds the user persistence adapter.
func NewUserRepository(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

const userColumns = `id, email, password_hash, role, status, created_at, updated_at`

func scanUser(row pgx.Row) (*entity.UserProfile, error) {
	var u entity.UserProfile
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.Status, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create persists a new user profile.
func (r *UserRepo) Create(user *entity.UserProfile) error {
	query := `
		INSERT INTO user_profiles (id, email, password_hash, role, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.pool.Exec(context.Background(), query,
		user.ID, user.Email, user.PasswordHash, user.Role, user.Status, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID fetches a user by ID. Returns (nil, nil) when missing.
func (r *UserRepo) GetByID(id string) (*entity.UserProfile, error) {
	query := `SELECT ` + userColumns + ` FROM user_profiles WHERE id = $1`
	u, err := scanUser(r.pool.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by id: %w", err)
	}
	return u, nil
}

// GetByEmail fetches a user by email. Returns (nil, nil) when missing.
func (r *UserRepo) GetByEmail(email string) (*entity.UserProfile, error) {
	query := `SELECT ` + userColumns + ` FROM user_profiles WHERE email = $1 LIMIT 1`
	u, err := scanUser(r.pool.QueryRow(context.Background(), query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return u, nil
}

// Update writes role, status and password hash.
func (r *UserRepo) Update(user *entity.UserProfile) error {
	query := `
		UPDATE user_profiles SET email = $2, password_hash = $3, role = $4, status = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		user.ID, user.Email, user.PasswordHash, user.Role, user.Status, user.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// List returns all users, newest first.
func (r *UserRepo) List() ([]*entity.UserProfile, error) {
	query := `SELECT ` + userColumns + ` FROM user_profiles ORDER BY created_at DESC`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var list []*entity.UserProfile
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

// UserStatusAuditRepo appends user status transitions.
type UserStatusAuditRepo struct {
	pool *pgxpool.Pool
}

// NewUserStatusAuditRepository builds the audit adapter.
func NewUserStatusAuditRepository(pool *pgxpool.Pool) *UserStatusAuditRepo {
	return &UserStatusAuditRepo{pool: pool}
}

// Create appends an audit row.
func (r *UserStatusAuditRepo) Create(audit *entity.UserStatusAudit) error {
	if audit.ID == "" {
		audit.ID = uuid.New().String()
	}
	query := `
		INSERT INTO user_status_audit (id, target_user_id, changed_by_user_id, old_status, new_status, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.pool.Exec(context.Background(), query,
		audit.ID, audit.TargetUserID, audit.ChangedByUserID, audit.OldStatus, audit.NewStatus, audit.Notes, audit.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert status audit: %w", err)
	}
	return nil
}
