package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/northstar/goals-api/internal/core/domain"
	"github.com/northstar/goals-api/internal/core/ports"
)

// GoalService implements ownership-scoped goal CRUD. A goal owned by another
// user behaves exactly like a missing one on every path.
type GoalService struct {
	repo   ports.GoalRepository
	logger zerolog.Logger
}

func NewGoalService(repo ports.GoalRepository, logger zerolog.Logger) *GoalService {
	return &GoalService{repo: repo, logger: logger}
}

// List returns all goals owned by ownerID, newest id first.
func (s *GoalService) List(ctx context.Context, ownerID uint) ([]domain.Goal, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

func (s *GoalService) Create(ctx context.Context, ownerID uint, input ports.CreateGoalInput) (*domain.Goal, error) {
	goal := &domain.Goal{
		UserID:        ownerID,
		Name:          input.Name,
		TargetAmount:  input.TargetAmount,
		TargetDate:    input.TargetDate,
		CurrentAmount: input.CurrentAmount,
	}

	created, err := s.repo.Create(ctx, goal)
	if err != nil {
		s.logger.Error().Err(err).Uint("user_id", ownerID).Msg("failed to create goal")
		return nil, err
	}

	s.logger.Info().Uint("goal_id", created.ID).Uint("user_id", ownerID).Msg("goal created")
	return created, nil
}

// Update applies the non-nil fields of input to the goal. Omitted fields are
// left untouched. Concurrent updates observe last-write-wins.
func (s *GoalService) Update(ctx context.Context, ownerID, goalID uint, input ports.UpdateGoalInput) (*domain.Goal, error) {
	goal, err := s.repo.FindOwned(ctx, goalID, ownerID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		goal.Name = *input.Name
	}
	if input.TargetAmount != nil {
		goal.TargetAmount = *input.TargetAmount
	}
	if input.TargetDate != nil {
		goal.TargetDate = *input.TargetDate
	}
	if input.CurrentAmount != nil {
		goal.CurrentAmount = *input.CurrentAmount
	}

	return s.repo.Update(ctx, goal)
}

// Delete removes the goal and returns it as it was stored.
func (s *GoalService) Delete(ctx context.Context, ownerID, goalID uint) (*domain.Goal, error) {
	goal, err := s.repo.FindOwned(ctx, goalID, ownerID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Delete(ctx, goal); err != nil {
		s.logger.Error().Err(err).Uint("goal_id", goalID).Msg("failed to delete goal")
		return nil, err
	}

	s.logger.Info().Uint("goal_id", goalID).Uint("user_id", ownerID).Msg("goal deleted")
	return goal, nil
}
