package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/northstar/goals-api/internal/core/domain"
)

// CreateGoalInput carries all data needed to create a new goal.
type CreateGoalInput struct {
	Name          string
	TargetAmount  decimal.Decimal
	TargetDate    string
	CurrentAmount decimal.Decimal
}

// UpdateGoalInput carries a partial update. Nil fields are left untouched.
type UpdateGoalInput struct {
	Name          *string
	TargetAmount  *decimal.Decimal
	TargetDate    *string
	CurrentAmount *decimal.Decimal
}

// GoalService defines use-case operations for goals. The ownerID on every
// call is the authenticated caller; goals belonging to other users are
// invisible through this interface.
type GoalService interface {
	List(ctx context.Context, ownerID uint) ([]domain.Goal, error)
	Create(ctx context.Context, ownerID uint, input CreateGoalInput) (*domain.Goal, error)
	Update(ctx context.Context, ownerID, goalID uint, input UpdateGoalInput) (*domain.Goal, error)
	Delete(ctx context.Context, ownerID, goalID uint) (*domain.Goal, error)
}
