package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

var ErrEmailTaken = errors.New("email already registered")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrInvalidToken = errors.New("invalid token")
var ErrGoalNotFound = errors.New("goal not found")
var ErrTooManyAttempts = errors.New("too many login attempts")

// Goal is a savings target owned by exactly one user. Amounts are exact
// decimals (numeric(14,2) in storage); TargetDate is kept as an opaque
// ISO-formatted string and never parsed as a calendar date.
type Goal struct {
	ID            uint            `json:"id"`
	UserID        uint            `json:"-"`
	Name          string          `json:"name"`
	TargetAmount  decimal.Decimal `json:"target_amount"`
	TargetDate    string          `json:"target_date"`
	CurrentAmount decimal.Decimal `json:"current_amount"`
}
