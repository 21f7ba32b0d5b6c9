package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/northstar/goals-api/internal/core/domain"
)

type PostgresGoalRepository struct {
	db *gorm.DB
}

func NewGoalRepository(db *gorm.DB) *PostgresGoalRepository {
	return &PostgresGoalRepository{db: db}
}

// ListByOwner returns ownerID's goals ordered newest id first.
func (r *PostgresGoalRepository) ListByOwner(ctx context.Context, ownerID uint) ([]domain.Goal, error) {
	var recs []goalRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("id DESC").
		Find(&recs).Error
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}

	goals := make([]domain.Goal, len(recs))
	for i := range recs {
		goals[i] = *recs[i].toDomain()
	}
	return goals, nil
}

func (r *PostgresGoalRepository) Create(ctx context.Context, goal *domain.Goal) (*domain.Goal, error) {
	rec := goalToRecord(goal)
	rec.ID = 0
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return nil, fmt.Errorf("insert goal: %w", err)
	}
	return rec.toDomain(), nil
}

// FindOwned loads a goal by id scoped to its owner. A foreign or missing id
// yields domain.ErrGoalNotFound either way.
func (r *PostgresGoalRepository) FindOwned(ctx context.Context, id, ownerID uint) (*domain.Goal, error) {
	var rec goalRecord
	err := r.db.WithContext(ctx).First(&rec, "id = ? AND user_id = ?", id, ownerID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrGoalNotFound
		}
		return nil, fmt.Errorf("find goal: %w", err)
	}
	return rec.toDomain(), nil
}

func (r *PostgresGoalRepository) Update(ctx context.Context, goal *domain.Goal) (*domain.Goal, error) {
	rec := goalToRecord(goal)
	if err := r.db.WithContext(ctx).Save(&rec).Error; err != nil {
		return nil, fmt.Errorf("update goal: %w", err)
	}
	return rec.toDomain(), nil
}

func (r *PostgresGoalRepository) Delete(ctx context.Context, goal *domain.Goal) error {
	res := r.db.WithContext(ctx).Delete(&goalRecord{}, goal.ID)
	if res.Error != nil {
		return fmt.Errorf("delete goal: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrGoalNotFound
	}
	return nil
}
