package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/minwoopark/board-api/models"
)

// UserRepository stores and retrieves user records.
type UserRepository interface {
	// FindByID looks a user up by username. Misses return ErrNotFound.
	FindByID(ctx context.Context, username string) (*models.User, error)
	// FindByNickname looks a user up by nickname. Misses return ErrNotFound.
	FindByNickname(ctx context.Context, nickname string) (*models.User, error)
	// FindAll returns every user record.
	FindAll(ctx context.Context) ([]models.User, error)
	// Create inserts a new user. A unique-constraint violation returns
	// ErrDuplicateKey.
	Create(ctx context.Context, user *models.User) error
	// Transact runs fn against a repository bound to a single database
	// transaction: commit when fn returns nil, rollback otherwise.
	Transact(ctx context.Context, fn func(UserRepository) error) error
}

// GormUserRepository implements UserRepository on a gorm handle.
type GormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

func (r *GormUserRepository) FindByID(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("id = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find user %q: %w", username, err)
	}
	return &user, nil
}

func (r *GormUserRepository) FindByNickname(ctx context.Context, nickname string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("nickname = ?", nickname).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find user by nickname %q: %w", nickname, err)
	}
	return &user, nil
}

func (r *GormUserRepository) FindAll(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (r *GormUserRepository) Create(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateKey
		}
		return fmt.Errorf("create user %q: %w", user.ID, err)
	}
	return nil
}

func (r *GormUserRepository) Transact(ctx context.Context, fn func(UserRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormUserRepository{db: tx})
	})
}

// isUniqueViolation reports whether err is a unique-constraint failure.
// Postgres reports these with a dedicated SQLSTATE; the message check is a
// fallback for drivers that do not expose one.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.UniqueViolation
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "duplicate key value violates unique constraint") ||
		strings.Contains(err.Error(), "UNIQUE constraint failed")
}
