package ports

import (
	"context"

	"github.com/northstar/goals-api/internal/core/domain"
)

// GoalRepository defines the interface for goal persistence. Every read and
// mutation is scoped by owner: a goal that exists but belongs to someone else
// is reported as domain.ErrGoalNotFound, exactly like a missing id.
type GoalRepository interface {
	ListByOwner(ctx context.Context, ownerID uint) ([]domain.Goal, error)
	Create(ctx context.Context, goal *domain.Goal) (*domain.Goal, error)
	FindOwned(ctx context.Context, id, ownerID uint) (*domain.Goal, error)
	Update(ctx context.Context, goal *domain.Goal) (*domain.Goal, error)
	Delete(ctx context.Context, goal *domain.Goal) error
}
