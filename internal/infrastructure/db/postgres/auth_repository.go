package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/northstar/goals-api/internal/core/domain"
)

type PostgresAuthRepository struct {
	db *gorm.DB
}

func NewAuthRepository(db *gorm.DB) *PostgresAuthRepository {
	return &PostgresAuthRepository{db: db}
}

func (r *PostgresAuthRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	rec := userRecord{
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		CreatedAt:    user.CreatedAt,
	}

	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	return rec.toDomain(), nil
}

func (r *PostgresAuthRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var rec userRecord
	if err := r.db.WithContext(ctx).First(&rec, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return rec.toDomain(), nil
}
