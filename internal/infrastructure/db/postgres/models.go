package postgres

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/northstar/goals-api/internal/core/domain"
)

// userRecord is the GORM mapping for the users table. Deleting a user
// cascades to its goals at the database level.
type userRecord struct {
	ID           uint         `gorm:"primaryKey"`
	Email        string       `gorm:"uniqueIndex;not null"`
	PasswordHash string       `gorm:"not null"`
	CreatedAt    time.Time    `gorm:"autoCreateTime"`
	Goals        []goalRecord `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (userRecord) TableName() string { return "users" }

// goalRecord is the GORM mapping for the goals table. TargetDate is stored
// as an opaque ISO string, not a timestamp.
type goalRecord struct {
	ID            uint            `gorm:"primaryKey"`
	UserID        uint            `gorm:"index;not null"`
	Name          string          `gorm:"not null"`
	TargetAmount  decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	TargetDate    string          `gorm:"not null"`
	CurrentAmount decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
}

func (goalRecord) TableName() string { return "goals" }

func (r *userRecord) toDomain() *domain.User {
	return &domain.User{
		ID:           r.ID,
		Email:        r.Email,
		PasswordHash: r.PasswordHash,
		CreatedAt:    r.CreatedAt,
	}
}

func (r *goalRecord) toDomain() *domain.Goal {
	return &domain.Goal{
		ID:            r.ID,
		UserID:        r.UserID,
		Name:          r.Name,
		TargetAmount:  r.TargetAmount,
		TargetDate:    r.TargetDate,
		CurrentAmount: r.CurrentAmount,
	}
}

func goalToRecord(g *domain.Goal) goalRecord {
	return goalRecord{
		ID:            g.ID,
		UserID:        g.UserID,
		Name:          g.Name,
		TargetAmount:  g.TargetAmount,
		TargetDate:    g.TargetDate,
		CurrentAmount: g.CurrentAmount,
	}
}
