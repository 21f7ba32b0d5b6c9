package handler

import (
	"github.com/shopspring/decimal"

	"github.com/northstar/goals-api/internal/core/domain"
)

type createGoalRequest struct {
	Name          string          `json:"name"           validate:"required"`
	TargetAmount  decimal.Decimal `json:"target_amount"  validate:"required"`
	TargetDate    string          `json:"target_date"    validate:"required"`
	CurrentAmount decimal.Decimal `json:"current_amount"`
}

// updateGoalRequest carries a partial update; omitted fields stay nil and are
// left untouched.
type updateGoalRequest struct {
	Name          *string          `json:"name"`
	TargetAmount  *decimal.Decimal `json:"target_amount"`
	TargetDate    *string          `json:"target_date"`
	CurrentAmount *decimal.Decimal `json:"current_amount"`
}

// goalResponse omits the owning user id; goals are only ever visible to
// their owner.
type goalResponse struct {
	ID            uint            `json:"id"`
	Name          string          `json:"name"`
	TargetAmount  decimal.Decimal `json:"target_amount"`
	TargetDate    string          `json:"target_date"`
	CurrentAmount decimal.Decimal `json:"current_amount"`
}

func toGoalResponse(g *domain.Goal) goalResponse {
	return goalResponse{
		ID:            g.ID,
		Name:          g.Name,
		TargetAmount:  g.TargetAmount,
		TargetDate:    g.TargetDate,
		CurrentAmount: g.CurrentAmount,
	}
}

func toGoalListResponse(goals []domain.Goal) []goalResponse {
	out := make([]goalResponse, len(goals))
	for i := range goals {
		out[i] = toGoalResponse(&goals[i])
	}
	return out
}
